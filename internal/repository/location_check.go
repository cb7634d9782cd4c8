package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type LocationCheckRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewLocationCheckRepository(db *pgxpool.Pool, redisClient *redis.Client) service.LocationCheckRepository {
	return &LocationCheckRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// SaveLocationCheck сохраняет запись о проверке местоположения в бд
func (r *LocationCheckRepository) SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error {
	query := `
		INSERT INTO location_checks (user_id, location, is_dangerous, alert_count)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5) RETURNING id, checked_at;
	`
	err := r.db.QueryRow(ctx, query,
		check.UserID,
		check.Longitude,
		check.Latitude,
		check.IsDangerous,
		check.AlertCount,
	).Scan(&check.ID, &check.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save location check: %w", err)
	}
	return nil
}

// GetLocationCheckStats возвращает количество уникальных пользователей, проверивших геолокацию
func (r *LocationCheckRepository) GetLocationCheckStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM location_checks
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get location check stats: %w", err)
	}
	return count, nil
}

func (r *LocationCheckRepository) DeleteLocationChecksBefore(ctx context.Context, before time.Time) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM location_checks WHERE checked_at < $1;`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete location checks: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// SetMarker кеширует последнюю позицию маркера пользователя
func (r *LocationCheckRepository) SetMarker(ctx context.Context, position *models.MarkerPosition, ttl time.Duration) error {
	if err := setJSON(ctx, r.redisClient, markerKey(position.UserID), position, ttl); err != nil {
		return fmt.Errorf("failed to set marker in cache: %w", err)
	}
	return nil
}

// GetMarker возвращает nil, nil, если позиция не закеширована
func (r *LocationCheckRepository) GetMarker(ctx context.Context, userID string) (*models.MarkerPosition, error) {
	position := &models.MarkerPosition{}
	found, err := getJSON(ctx, r.redisClient, markerKey(userID), position)
	if err != nil {
		return nil, fmt.Errorf("failed to get marker from cache: %w", err)
	}
	if !found {
		return nil, nil
	}
	return position, nil
}
