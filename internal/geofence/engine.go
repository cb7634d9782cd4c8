package geofence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/shenikar/tourist_safety_system/internal/metrics"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/pkg/tracing"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	RestrictedAreaType = "restricted_area"

	// DefaultNotifyTimeout ограничивает одну фоновую отправку уведомления
	DefaultNotifyTimeout = 10 * time.Second
)

// Notifier создает уведомление об опасности. Ошибки движок только логирует.
type Notifier interface {
	CreateHazardNotification(ctx context.Context, userID, hazardType, message string, location *models.GeoLocation) error
}

// Result - итог проверки позиции маркера
type Result struct {
	Messages []string `json:"messages"`
	Safe     bool     `json:"safe"`
}

type pendingNotification struct {
	hazardType string
	message    string
	location   *models.GeoLocation
}

// Engine проверяет позицию маркера по запретным зонам и точечным опасностям.
// Наборы данных загружаются один раз и дальше только читаются.
// Уведомления уходят в фоне, сообщения возвращаются не дожидаясь их.
type Engine struct {
	areas         []RestrictedArea
	hazards       []HazardPoint
	notifier      Notifier
	logger        *logrus.Logger
	notifyTimeout time.Duration

	inflight sync.WaitGroup
}

type EngineOption func(*Engine)

// WithNotifyTimeout задает таймаут одной отправки уведомления
func WithNotifyTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.notifyTimeout = d
		}
	}
}

func NewEngine(areas []RestrictedArea, hazards []HazardPoint, notifier Notifier, logger *logrus.Logger, opts ...EngineOption) *Engine {
	e := &Engine{
		areas:         areas,
		hazards:       hazards,
		notifier:      notifier,
		logger:        logger,
		notifyTimeout: DefaultNotifyTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Areas возвращает загруженные запретные зоны
func (e *Engine) Areas() []RestrictedArea {
	return e.areas
}

// Hazards возвращает загруженные точечные опасности
func (e *Engine) Hazards() []HazardPoint {
	return e.hazards
}

// CheckRestrictedAreas возвращает сообщения по всем зонам, содержащим точку,
// и на каждое совпадение отправляет уведомление restricted_area
func (e *Engine) CheckRestrictedAreas(ctx context.Context, userID string, p orb.Point) []string {
	messages, pending := e.restrictedAlerts(p)
	e.dispatch(ctx, userID, pending)
	return messages
}

// CheckHazardProximity возвращает сообщения по опасностям в радиусе 2 км
// и отправляет по уведомлению на каждую
func (e *Engine) CheckHazardProximity(ctx context.Context, userID string, p orb.Point) []string {
	messages, pending := e.hazardAlerts(p)
	e.dispatch(ctx, userID, pending)
	return messages
}

// Evaluate выполняет обе проверки. Сначала зоны, потом опасности.
func (e *Engine) Evaluate(ctx context.Context, userID string, p orb.Point) Result {
	ctx, span := tracing.Start(ctx, "geofence.Evaluate",
		attribute.Float64("longitude", p.Lon()),
		attribute.Float64("latitude", p.Lat()),
	)
	defer span.End()

	restricted, pendingAreas := e.restrictedAlerts(p)
	hazards, pendingHazards := e.hazardAlerts(p)

	messages := make([]string, 0, len(restricted)+len(hazards))
	messages = append(messages, restricted...)
	messages = append(messages, hazards...)

	e.logger.WithFields(logrus.Fields{
		"component":  "geofence",
		"user_id":    userID,
		"longitude":  p.Lon(),
		"latitude":   p.Lat(),
		"restricted": len(restricted),
		"hazards":    len(hazards),
	}).Debug("Marker position evaluated")

	outcome := "safe"
	if len(messages) > 0 {
		outcome = "alert"
	}
	metrics.GeofenceEvaluations.WithLabelValues(outcome).Inc()
	span.SetAttributes(attribute.Int("alerts", len(messages)))

	e.dispatch(ctx, userID, append(pendingAreas, pendingHazards...))

	return Result{Messages: messages, Safe: len(messages) == 0}
}

func (e *Engine) restrictedAlerts(p orb.Point) ([]string, []pendingNotification) {
	var (
		messages []string
		pending  []pendingNotification
	)
	for _, area := range ContainingAreas(p, e.areas) {
		messages = append(messages, "Restricted area: "+area.Name)

		name := area.Name
		if name == "" {
			name = "Unknown area"
		}
		pending = append(pending, pendingNotification{
			hazardType: RestrictedAreaType,
			message:    fmt.Sprintf("You have entered a restricted area: %s. Please move to a safe location.", name),
			location:   models.NewPointLocation(p.Lon(), p.Lat(), area.DisplayName()),
		})
		metrics.GeofenceAlerts.WithLabelValues(RestrictedAreaType).Inc()
	}
	return messages, pending
}

func (e *Engine) hazardAlerts(p orb.Point) ([]string, []pendingNotification) {
	var (
		messages []string
		pending  []pendingNotification
	)
	for _, h := range NearbyHazards(p, e.hazards) {
		messages = append(messages, h.AlertMessage())
		pending = append(pending, pendingNotification{
			hazardType: h.Category.NotificationType(),
			message:    h.NotificationMessage(),
			location:   models.NewPointLocation(h.Location.Lon(), h.Location.Lat(), h.Address()),
		})
		metrics.GeofenceAlerts.WithLabelValues(h.Category.String()).Inc()
	}
	return messages, pending
}

// dispatch запускает отправку уведомлений в фоне и сразу возвращается.
// Отправка не зависит от отмены ctx запроса, но ограничена notifyTimeout.
// Порядок отправки не гарантируется, ошибки не влияют на сообщения.
func (e *Engine) dispatch(ctx context.Context, userID string, pending []pendingNotification) {
	if e.notifier == nil || len(pending) == 0 {
		return
	}

	detached := context.WithoutCancel(ctx)
	for _, n := range pending {
		e.inflight.Add(1)
		go func(n pendingNotification) {
			defer e.inflight.Done()

			notifyCtx, cancel := context.WithTimeout(detached, e.notifyTimeout)
			defer cancel()

			if err := e.notifier.CreateHazardNotification(notifyCtx, userID, n.hazardType, n.message, n.location); err != nil {
				metrics.NotificationFailures.WithLabelValues(n.hazardType).Inc()
				e.logger.WithError(err).WithFields(logrus.Fields{
					"component":   "geofence",
					"user_id":     userID,
					"hazard_type": n.hazardType,
				}).Error("Failed to create hazard notification")
			}
		}(n)
	}
}

// Wait дожидается фоновых уведомлений или отмены ctx
func (e *Engine) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		e.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for hazard notifications: %w", ctx.Err())
	}
}
