package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) service.NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create сохраняет уведомление, точка опасности пишется в PostGIS
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	var lon, lat *float64
	var address string
	if n.Location != nil {
		lon, lat = &n.Location.Coordinates[0], &n.Location.Coordinates[1]
		address = n.Location.Address
	}

	query := `
		INSERT INTO notifications (user_id, type, title, message, priority, hazard_type, location, location_address)
		VALUES ($1, $2, $3, $4, $5, $6, ST_SetSRID(ST_MakePoint($7, $8), 4326), $9)
		RETURNING id, is_read, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		n.UserID,
		n.Type,
		n.Title,
		n.Message,
		n.Priority,
		n.HazardType,
		lon,
		lat,
		address,
	).Scan(&n.ID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByUser возвращает уведомления пользователя, новые сначала
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*models.Notification, error) {
	query := `
		SELECT
			id,
			user_id,
			type,
			title,
			message,
			priority,
			is_read,
			hazard_type,
			ST_X(location::geometry) AS longitude,
			ST_Y(location::geometry) AS latitude,
			location_address,
			created_at
		FROM notifications
		WHERE user_id = $1 AND (NOT $2 OR is_read = FALSE)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.db.Query(ctx, query, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]*models.Notification, 0)
	for rows.Next() {
		var (
			n        models.Notification
			lon, lat *float64
			address  string
		)
		err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.Priority,
			&n.IsRead,
			&n.HazardType,
			&lon,
			&lat,
			&address,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		if lon != nil && lat != nil {
			n.Location = models.NewPointLocation(*lon, *lat, address)
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return notifications, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE;`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead отмечает уведомление прочитанным. Чужое уведомление считается ненайденным.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID string, id uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE;`
	cmdTag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications as read: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *NotificationRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	query := `DELETE FROM notifications WHERE id = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, models.ErrNotFound)
	}
	return nil
}
