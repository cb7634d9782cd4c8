package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/shenikar/tourist_safety_system/internal/webhook"
	webhook_mocks "github.com/shenikar/tourist_safety_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestNotificationService - сервис уведомлений с моками хранилища и вебхука
func newTestNotificationService(t *testing.T) (NotificationService, *mocks.MockNotificationRepository, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockNotificationRepository(ctrl)
	webhookMock := webhook_mocks.NewMockPublisher(ctrl)

	return NewNotificationService(repoMock, webhookMock, newTestLogger()), repoMock, webhookMock
}

func TestCreateHazardNotification_Success(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestNotificationService(t)
	ctx := context.Background()
	location := models.NewPointLocation(10, 10, "Sector 7")

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, "user-1", n.UserID)
			assert.Equal(t, "sachet Alert", n.Title)
			assert.Equal(t, models.NotificationWarning, n.Type)
			assert.Equal(t, models.PriorityHigh, n.Priority)
			assert.Equal(t, "sachet", n.HazardType)
			assert.Equal(t, location, n.Location)
			n.ID = uuid.New()
			return nil
		}).Times(1)

	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.Event) {
			assert.Equal(t, webhook.EventHazardNotification, event.Kind)
			assert.Equal(t, "user-1", event.UserID)
			require.NotNil(t, event.Notification)
			assert.NotEqual(t, uuid.Nil, event.Notification.ID)
		}).Return(nil).Times(1)

	// Действие
	err := service.CreateHazardNotification(ctx, "user-1", "sachet", "Disaster alert in your area", location)

	// Проверки
	require.NoError(t, err)
}

func TestCreateHazardNotification_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestNotificationService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down")).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.CreateHazardNotification(ctx, "user-1", "landslide", "msg", nil)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create hazard notification")
}

func TestCreateHazardNotification_PublishErrorIgnored(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestNotificationService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	// Действие
	err := service.CreateHazardNotification(ctx, "user-1", "restricted_area", "msg", nil)

	// Проверки
	require.NoError(t, err)
}

func TestListNotifications_NormalizesPage(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestNotificationService(t)
	ctx := context.Background()
	expected := []*models.Notification{{ID: uuid.New()}}

	// Ожидания
	repoMock.EXPECT().ListByUser(ctx, "user-1", true, 20, 0).Return(expected, nil).Times(1)

	// Действие
	notifications, err := service.List(ctx, "user-1", true, 0, 1000)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestListNotifications_Offset(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestNotificationService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ListByUser(ctx, "user-1", false, 10, 20).Return(nil, nil).Times(1)

	// Действие
	_, err := service.List(ctx, "user-1", false, 3, 10)

	// Проверки
	require.NoError(t, err)
}

func TestUnreadCount(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestNotificationService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().CountUnread(ctx, "user-1").Return(7, nil).Times(1)

	// Действие
	count, err := service.UnreadCount(ctx, "user-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestMarkRead_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestNotificationService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	repoMock.EXPECT().MarkRead(ctx, "user-1", id).Return(models.ErrNotFound).Times(1)

	// Действие
	err := service.MarkRead(ctx, "user-1", id)

	// Проверки
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMarkAllRead(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestNotificationService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().MarkAllRead(ctx, "user-1").Return(int64(3), nil).Times(1)

	// Действие
	updated, err := service.MarkAllRead(ctx, "user-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
}

func TestDeleteNotification(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestNotificationService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	repoMock.EXPECT().Delete(ctx, "user-1", id).Return(nil).Times(1)

	// Действие
	err := service.Delete(ctx, "user-1", id)

	// Проверки
	require.NoError(t, err)
}
