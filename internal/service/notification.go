package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// NotificationRepository определяет контракт хранилища уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*models.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID string, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// NotificationService определяет контракт работы с уведомлениями.
// CreateHazardNotification вызывается движком геозон.
type NotificationService interface {
	CreateHazardNotification(ctx context.Context, userID, hazardType, message string, location *models.GeoLocation) error
	List(ctx context.Context, userID string, unreadOnly bool, page, pageSize int) ([]*models.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID string, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type notificationService struct {
	repo      NotificationRepository
	publisher webhook.Publisher
	logger    *logrus.Logger
}

func NewNotificationService(repo NotificationRepository, publisher webhook.Publisher, logger *logrus.Logger) NotificationService {
	return &notificationService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateHazardNotification сохраняет предупреждение об опасности и публикует его во внешнюю систему
func (s *notificationService) CreateHazardNotification(ctx context.Context, userID, hazardType, message string, location *models.GeoLocation) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "notification",
		"method":      "CreateHazardNotification",
		"user_id":     userID,
		"hazard_type": hazardType,
	})

	notification := &models.Notification{
		UserID:     userID,
		Type:       models.NotificationWarning,
		Title:      hazardType + " Alert",
		Message:    message,
		Priority:   models.PriorityHigh,
		HazardType: hazardType,
		Location:   location,
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		log.WithError(err).Error("Failed to create notification in repository")
		return fmt.Errorf("service: could not create hazard notification: %w", err)
	}

	event := webhook.Event{
		Kind:         webhook.EventHazardNotification,
		UserID:       userID,
		Notification: notification,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// уведомление уже сохранено, внешняя доставка не критична
		log.WithError(err).Error("Failed to publish hazard notification webhook")
	}

	log.WithField("notification_id", notification.ID).Info("Hazard notification created")
	return nil
}

// List возвращает уведомления пользователя, новые сначала
func (s *notificationService) List(ctx context.Context, userID string, unreadOnly bool, page, pageSize int) ([]*models.Notification, error) {
	page, pageSize = normalizePage(page, pageSize)
	log := s.logger.WithFields(logrus.Fields{
		"service":     "notification",
		"method":      "List",
		"user_id":     userID,
		"unread_only": unreadOnly,
		"page":        page,
	})

	notifications, err := s.repo.ListByUser(ctx, userID, unreadOnly, pageSize, (page-1)*pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list notifications from repository")
		return nil, fmt.Errorf("service: could not list notifications: %w", err)
	}

	log.WithField("count", len(notifications)).Debug("Notifications listed")
	return notifications, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service": "notification",
			"method":  "UnreadCount",
			"user_id": userID,
		}).Error("Failed to count unread notifications")
		return 0, fmt.Errorf("service: could not count unread notifications: %w", err)
	}
	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID string, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "notification",
		"method":          "MarkRead",
		"user_id":         userID,
		"notification_id": id,
	})

	if err := s.repo.MarkRead(ctx, userID, id); err != nil {
		log.WithError(err).Warn("Failed to mark notification as read")
		return fmt.Errorf("service: could not mark notification %s as read: %w", id, err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "MarkAllRead",
		"user_id": userID,
	})

	updated, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to mark all notifications as read")
		return 0, fmt.Errorf("service: could not mark all notifications as read: %w", err)
	}

	log.WithField("updated", updated).Info("Notifications marked as read")
	return updated, nil
}

func (s *notificationService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "notification",
		"method":          "Delete",
		"user_id":         userID,
		"notification_id": id,
	})

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		log.WithError(err).Warn("Failed to delete notification")
		return fmt.Errorf("service: could not delete notification %s: %w", id, err)
	}

	log.Info("Notification deleted")
	return nil
}

// normalizePage приводит параметры пагинации к допустимым значениям
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
