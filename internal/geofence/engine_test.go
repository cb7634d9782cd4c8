package geofence

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/shenikar/tourist_safety_system/internal/geofence/mocks"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEngine(t *testing.T, areas []RestrictedArea, hazards []HazardPoint) (*Engine, *mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	engine := NewEngine(areas, hazards, notifier, logger)
	// фоновые отправки должны завершиться до проверки ожиданий контроллера
	t.Cleanup(func() { waitNotifications(t, engine) })
	return engine, notifier
}

func waitNotifications(t *testing.T, engine *Engine) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, engine.Wait(ctx))
}

func zoneA(t *testing.T) RestrictedArea {
	area, err := NewRestrictedArea("Zone A", orb.Ring{{0, 0}, {0, 2}, {2, 2}, {2, 0}, {0, 0}})
	require.NoError(t, err)
	return area
}

func sector7() HazardPoint {
	return HazardPoint{
		Category:        CategorySachet,
		Location:        orb.Point{10, 10},
		DisasterType:    "Heavy Rain",
		Severity:        "High",
		AreaDescription: "Sector 7",
	}
}

func TestCheckRestrictedAreas_Inside(t *testing.T) {
	engine, notifier := newTestEngine(t, []RestrictedArea{zoneA(t)}, nil)
	ctx := context.Background()

	notifier.EXPECT().
		CreateHazardNotification(gomock.Any(), "user-1", RestrictedAreaType, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, message string, loc *models.GeoLocation) error {
			assert.Contains(t, message, "Zone A")
			assert.Equal(t, "Point", loc.Type)
			assert.Equal(t, [2]float64{1, 1}, loc.Coordinates)
			assert.Equal(t, "Zone A", loc.Address)
			return nil
		}).Times(1)

	messages := engine.CheckRestrictedAreas(ctx, "user-1", orb.Point{1, 1})
	waitNotifications(t, engine)

	assert.Equal(t, []string{"Restricted area: Zone A"}, messages)
}

func TestCheckRestrictedAreas_Outside(t *testing.T) {
	engine, notifier := newTestEngine(t, []RestrictedArea{zoneA(t)}, nil)

	notifier.EXPECT().CreateHazardNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	messages := engine.CheckRestrictedAreas(context.Background(), "user-1", orb.Point{5, 5})

	assert.Empty(t, messages)
}

func TestCheckRestrictedAreas_ConcavePolygon(t *testing.T) {
	// U-образный полигон: выемка между x=1 и x=2 выше y=1
	u, err := NewRestrictedArea("U", orb.Ring{{0, 0}, {3, 0}, {3, 3}, {2, 3}, {2, 1}, {1, 1}, {1, 3}, {0, 3}, {0, 0}})
	require.NoError(t, err)
	engine, notifier := newTestEngine(t, []RestrictedArea{u}, nil)
	notifier.EXPECT().CreateHazardNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.Background()
	assert.NotEmpty(t, engine.CheckRestrictedAreas(ctx, "u", orb.Point{0.5, 2}))
	assert.NotEmpty(t, engine.CheckRestrictedAreas(ctx, "u", orb.Point{1.5, 0.5}))
	assert.NotEmpty(t, engine.CheckRestrictedAreas(ctx, "u", orb.Point{2.5, 2.5}))
	assert.Empty(t, engine.CheckRestrictedAreas(ctx, "u", orb.Point{1.5, 2}))
}

func TestCheckRestrictedAreas_UnnamedArea(t *testing.T) {
	area, err := NewRestrictedArea("", orb.Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
	require.NoError(t, err)
	engine, notifier := newTestEngine(t, []RestrictedArea{area}, nil)

	notifier.EXPECT().
		CreateHazardNotification(gomock.Any(), gomock.Any(), RestrictedAreaType, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, message string, loc *models.GeoLocation) error {
			assert.Contains(t, message, "Unknown area")
			assert.Equal(t, "Restricted Area", loc.Address)
			return nil
		}).Times(1)

	messages := engine.CheckRestrictedAreas(context.Background(), "u", orb.Point{0.5, 0.5})
	assert.Equal(t, []string{"Restricted area: "}, messages)
}

func TestCheckHazardProximity_SachetScenario(t *testing.T) {
	engine, notifier := newTestEngine(t, nil, []HazardPoint{sector7()})
	ctx := context.Background()

	notifier.EXPECT().
		CreateHazardNotification(gomock.Any(), "user-1", "sachet", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, message string, loc *models.GeoLocation) error {
			assert.Contains(t, message, "Sector 7")
			assert.Contains(t, message, "High")
			assert.Equal(t, [2]float64{10, 10}, loc.Coordinates)
			assert.Equal(t, "Sector 7", loc.Address)
			return nil
		}).Times(1)

	near := engine.CheckHazardProximity(ctx, "user-1", orb.Point{10.01, 10.01})
	require.Len(t, near, 1)
	assert.Contains(t, near[0], "Sector 7")
	assert.Contains(t, near[0], "High")

	far := engine.CheckHazardProximity(ctx, "user-1", orb.Point{10.1, 10.1})
	assert.Empty(t, far)
}

func TestCheckHazardProximity_Landslide(t *testing.T) {
	landslide := HazardPoint{
		Category: CategoryLandslide,
		Location: orb.Point{92.9, 26.2},
		State:    "Assam",
		District: "Dima Hasao",
		Place:    "Haflong",
		Status:   "Active",
	}
	engine, notifier := newTestEngine(t, nil, []HazardPoint{landslide})

	notifier.EXPECT().
		CreateHazardNotification(gomock.Any(), gomock.Any(), "landslide", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, message string, loc *models.GeoLocation) error {
			assert.Contains(t, message, "Haflong, Dima Hasao, Assam")
			assert.Contains(t, message, "Status: Active")
			assert.Equal(t, "Haflong, Dima Hasao, Assam", loc.Address)
			return nil
		}).Times(1)

	messages := engine.CheckHazardProximity(context.Background(), "u", orb.Point{92.9, 26.2})
	assert.Equal(t, []string{"Landslide Alert: Assam, Dima Hasao, Haflong, Active"}, messages)
}

func TestCheckHazardProximity_Boundary(t *testing.T) {
	center := orb.Point{10, 10}
	hazard := sector7()

	// расстояния на сфере среднего радиуса
	tests := []struct {
		name     string
		meters   float64
		expected bool
	}{
		{"1.990 km", 1990, true},
		{"1.999 km", 1999, true},
		{"2.000 km", 2000, true},
		{"2.001 km", 2001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, notifier := newTestEngine(t, nil, []HazardPoint{hazard})
			if tt.expected {
				notifier.EXPECT().CreateHazardNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
			}

			p := northOf(center, tt.meters)
			messages := engine.CheckHazardProximity(context.Background(), "u", p)
			waitNotifications(t, engine)

			assert.Equal(t, tt.expected, len(messages) == 1)
		})
	}
}

func TestEvaluate_OrderRestrictedFirst(t *testing.T) {
	hazard := sector7()
	hazard.Location = orb.Point{1, 1}
	engine, notifier := newTestEngine(t, []RestrictedArea{zoneA(t)}, []HazardPoint{hazard})

	notifier.EXPECT().CreateHazardNotification(gomock.Any(), gomock.Any(), RestrictedAreaType, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	notifier.EXPECT().CreateHazardNotification(gomock.Any(), gomock.Any(), "sachet", gomock.Any(), gomock.Any()).Return(nil).Times(1)

	result := engine.Evaluate(context.Background(), "u", orb.Point{1, 1})

	require.Len(t, result.Messages, 2)
	assert.Equal(t, "Restricted area: Zone A", result.Messages[0])
	assert.Contains(t, result.Messages[1], "Sector 7")
	assert.False(t, result.Safe)
}

func TestEvaluate_SafeZone(t *testing.T) {
	engine, _ := newTestEngine(t, []RestrictedArea{zoneA(t)}, []HazardPoint{sector7()})

	result := engine.Evaluate(context.Background(), "u", orb.Point{50, 50})

	assert.Empty(t, result.Messages)
	assert.True(t, result.Safe)
}

func TestEvaluate_NotificationFailureDoesNotAffectMessages(t *testing.T) {
	engine, notifier := newTestEngine(t, []RestrictedArea{zoneA(t)}, nil)

	notifier.EXPECT().
		CreateHazardNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("network down")).
		Times(1)

	result := engine.Evaluate(context.Background(), "u", orb.Point{1, 1})
	waitNotifications(t, engine)

	assert.Equal(t, []string{"Restricted area: Zone A"}, result.Messages)
}

func TestEvaluate_Idempotent(t *testing.T) {
	engine, notifier := newTestEngine(t, []RestrictedArea{zoneA(t)}, []HazardPoint{sector7()})
	// каждое совпадение дает уведомление при каждом вызове, без дедупликации
	notifier.EXPECT().CreateHazardNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first := engine.Evaluate(context.Background(), "u", orb.Point{1, 1})
	second := engine.Evaluate(context.Background(), "u", orb.Point{1, 1})

	assert.Equal(t, first, second)
	assert.Len(t, engine.Areas(), 1)
	assert.Len(t, engine.Hazards(), 1)
}

func TestEvaluate_MultipleHazardsEachNotified(t *testing.T) {
	a := sector7()
	b := sector7()
	b.AreaDescription = "Sector 8"
	engine, notifier := newTestEngine(t, nil, []HazardPoint{a, b})

	notifier.EXPECT().CreateHazardNotification(gomock.Any(), gomock.Any(), "sachet", gomock.Any(), gomock.Any()).Return(nil).Times(2)

	result := engine.Evaluate(context.Background(), "u", orb.Point{10, 10})

	require.Len(t, result.Messages, 2)
	assert.Contains(t, result.Messages[0], "Sector 7")
	assert.Contains(t, result.Messages[1], "Sector 8")
}

func TestEvaluate_NilNotifier(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	engine := NewEngine([]RestrictedArea{zoneA(t)}, nil, nil, logger)

	result := engine.Evaluate(context.Background(), "u", orb.Point{1, 1})

	assert.Len(t, result.Messages, 1)
}

func TestEvaluate_SlowNotifierDoesNotDelayMessages(t *testing.T) {
	engine, notifier := newTestEngine(t, []RestrictedArea{zoneA(t)}, nil)
	release := make(chan struct{})

	// Ожидания: уведомление висит, пока тест его не отпустит
	notifier.EXPECT().
		CreateHazardNotification(gomock.Any(), gomock.Any(), RestrictedAreaType, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _, _ string, _ *models.GeoLocation) error {
			<-release
			return nil
		}).Times(1)

	// Действие
	done := make(chan Result, 1)
	go func() { done <- engine.Evaluate(context.Background(), "u", orb.Point{1, 1}) }()

	// Проверки
	select {
	case result := <-done:
		assert.Equal(t, []string{"Restricted area: Zone A"}, result.Messages)
	case <-time.After(2 * time.Second):
		t.Fatal("Evaluate waited for the notifier")
	}

	shortCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, engine.Wait(shortCtx), context.DeadlineExceeded)

	close(release)
	waitNotifications(t, engine)
}

func TestEvaluate_CancelledRequestDoesNotCancelNotification(t *testing.T) {
	engine, notifier := newTestEngine(t, []RestrictedArea{zoneA(t)}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	notifier.EXPECT().
		CreateHazardNotification(gomock.Any(), "u", RestrictedAreaType, gomock.Any(), gomock.Any()).
		DoAndReturn(func(notifyCtx context.Context, _, _, _ string, _ *models.GeoLocation) error {
			assert.NoError(t, notifyCtx.Err())
			_, hasDeadline := notifyCtx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		}).Times(1)

	engine.Evaluate(ctx, "u", orb.Point{1, 1})
	cancel()
	waitNotifications(t, engine)
}

func TestEvaluate_NotifyTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	engine := NewEngine([]RestrictedArea{zoneA(t)}, nil, notifier, logger, WithNotifyTimeout(10*time.Millisecond))

	notifier.EXPECT().
		CreateHazardNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(notifyCtx context.Context, _, _, _ string, _ *models.GeoLocation) error {
			<-notifyCtx.Done()
			return notifyCtx.Err()
		}).Times(1)

	result := engine.Evaluate(context.Background(), "u", orb.Point{1, 1})
	waitNotifications(t, engine)

	assert.Len(t, result.Messages, 1)
}
