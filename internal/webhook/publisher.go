package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

const (
	webhookQueueKey = "webhook_events"
)

// EventKind - тип события для внешней системы
type EventKind string

const (
	EventHazardNotification EventKind = "hazard_notification"
	EventEmergencySOS       EventKind = "emergency_sos"
)

// Event - событие, которое уходит во внешнюю систему оповещения
type Event struct {
	Kind         EventKind            `json:"kind"`
	UserID       string               `json:"user_id"`
	Notification *models.Notification `json:"notification,omitempty"`
	Complaint    *models.Complaint    `json:"complaint,omitempty"`
	Timestamp    time.Time            `json:"timestamp"`
}

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher кладет события в очередь Redis, откуда их забирает Worker
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
