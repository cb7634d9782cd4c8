package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func complaintKey(id uuid.UUID) string {
	return fmt.Sprintf("complaint:%s", id.String())
}

func markerKey(userID string) string {
	return fmt.Sprintf("marker:%s", userID)
}

// getJSON читает значение по ключу в dst. found == false при промахе кеша.
func getJSON(ctx context.Context, client *redis.Client, key string, dst any) (bool, error) {
	val, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func setJSON(ctx context.Context, client *redis.Client, key string, value any, ttl time.Duration) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return client.Set(ctx, key, val, ttl).Err()
}
