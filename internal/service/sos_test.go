package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/shenikar/tourist_safety_system/internal/sos"
	"github.com/shenikar/tourist_safety_system/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sosFixture struct {
	service    SOSService
	clock      *clock.Fake
	complaints *mocks.MockComplaintService
	markers    *mocks.MockMapService
}

func newTestSOSService(t *testing.T) *sosFixture {
	ctrl := gomock.NewController(t)
	complaints := mocks.NewMockComplaintService(ctrl)
	markers := mocks.NewMockMapService(ctrl)
	fake := clock.NewFake(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	logger := newTestLogger()
	registry := sos.NewRegistry(fake, sos.ResponderMaps{}, logger)
	cfg := &config.Config{SOSIdleTimeout: 10 * time.Minute}

	return &sosFixture{
		service:    NewSOSService(registry, complaints, markers, cfg, logger),
		clock:      fake,
		complaints: complaints,
		markers:    markers,
	}
}

func (f *sosFixture) swipe(t *testing.T, userID string) {
	t.Helper()
	_, err := f.service.Input(userID, sos.PointerEvent{Kind: sos.PointerDown, X: 0})
	require.NoError(t, err)
	snap, err := f.service.Input(userID, sos.PointerEvent{Kind: sos.PointerMove, X: 280})
	require.NoError(t, err)
	require.Equal(t, sos.StateSending, snap.State)
}

func TestSOSActivate_ExplicitLocation(t *testing.T) {
	// Подготовка
	f := newTestSOSService(t)
	location := orb.Point{1, 2}

	// Ожидания
	f.markers.EXPECT().LastMarker(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	snap, err := f.service.Activate(context.Background(), "user-1", &location)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, sos.StateSwipe, snap.State)
}

func TestSOSActivate_UsesLastMarker(t *testing.T) {
	// Подготовка
	f := newTestSOSService(t)
	ctx := context.Background()

	// Ожидания
	f.markers.EXPECT().
		LastMarker(ctx, "user-1").
		Return(&models.MarkerPosition{UserID: "user-1", Longitude: 30, Latitude: 40}, nil).
		Times(1)
	f.complaints.EXPECT().
		SubmitEmergency(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, report models.EmergencyReport) (*models.Complaint, error) {
			assert.Equal(t, "Location: 40.0000, 30.0000", report.Location.Address)
			return &models.Complaint{ID: uuid.New()}, nil
		}).Times(1)

	// Действие
	_, err := f.service.Activate(ctx, "user-1", nil)
	require.NoError(t, err)
	f.swipe(t, "user-1")
	f.clock.Advance(sos.SentDelay)
	_, err = f.service.LogEmergency(ctx, "user-1", "")

	// Проверки
	require.NoError(t, err)
}

func TestSOSActivate_MarkerErrorFallsBackToDefault(t *testing.T) {
	// Подготовка
	f := newTestSOSService(t)
	ctx := context.Background()

	// Ожидания
	f.markers.EXPECT().LastMarker(ctx, "user-1").Return(nil, errors.New("redis down")).Times(1)

	// Действие
	snap, err := f.service.Activate(ctx, "user-1", nil)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, sos.StateSwipe, snap.State)
}

func TestSOSFlow_ThroughWaitingAndClose(t *testing.T) {
	// Подготовка
	f := newTestSOSService(t)
	location := orb.Point{55.2708, 25.2048}
	_, err := f.service.Activate(context.Background(), "user-1", &location)
	require.NoError(t, err)

	// Действие
	f.swipe(t, "user-1")
	f.clock.Advance(sos.SentDelay + sos.WaitingDelay)
	waiting := f.service.State("user-1")
	closed := f.service.Close("user-1")

	// Проверки
	assert.Equal(t, sos.StateWaiting, waiting.State)
	assert.Len(t, waiting.Responders, 3)
	assert.Equal(t, sos.StateInactive, closed.State)
	assert.Equal(t, 0.0, closed.Progress)
}

func TestSOSState_UnknownUser(t *testing.T) {
	f := newTestSOSService(t)

	assert.Equal(t, sos.StateInactive, f.service.State("nobody").State)
}

func TestSOSLogEmergency_NoSession(t *testing.T) {
	// Подготовка
	f := newTestSOSService(t)

	// Ожидания
	f.complaints.EXPECT().SubmitEmergency(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := f.service.LogEmergency(context.Background(), "nobody", "")

	// Проверки
	assert.ErrorIs(t, err, sos.ErrInvalidTransition)
}

func TestSOSLogEmergency_FailureKeepsState(t *testing.T) {
	// Подготовка
	f := newTestSOSService(t)
	ctx := context.Background()
	location := orb.Point{1, 1}
	_, err := f.service.Activate(ctx, "user-1", &location)
	require.NoError(t, err)
	f.swipe(t, "user-1")
	f.clock.Advance(sos.SentDelay)

	// Ожидания
	f.complaints.EXPECT().SubmitEmergency(gomock.Any(), "user-1", gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	// Действие
	_, err = f.service.LogEmergency(ctx, "user-1", "help")

	// Проверки
	require.Error(t, err)
	assert.Equal(t, sos.StateSent, f.service.State("user-1").State)
}

func TestSOSInput_InvalidState(t *testing.T) {
	f := newTestSOSService(t)

	_, err := f.service.Input("user-1", sos.PointerEvent{Kind: sos.PointerDown})

	assert.ErrorIs(t, err, sos.ErrInvalidTransition)
}

func TestSOSSweepIdle(t *testing.T) {
	// Подготовка
	f := newTestSOSService(t)
	location := orb.Point{1, 1}
	_, err := f.service.Activate(context.Background(), "user-1", &location)
	require.NoError(t, err)

	// Действие
	f.clock.Advance(11 * time.Minute)
	removed := f.service.SweepIdle(f.clock.Now())

	// Проверки
	assert.Equal(t, 1, removed)
	assert.Equal(t, sos.StateInactive, f.service.State("user-1").State)
}

func TestSOSHelpCategories(t *testing.T) {
	f := newTestSOSService(t)

	categories := f.service.HelpCategories()

	require.Len(t, categories, 6)
	assert.Equal(t, "missing_person", categories[0].ID)
}
