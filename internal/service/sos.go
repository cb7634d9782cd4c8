package service

import (
	"context"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/sos"
	"github.com/shenikar/tourist_safety_system/pkg/tracing"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SOSService определяет контракт экрана SOS поверх машин состояний пользователей
type SOSService interface {
	Activate(ctx context.Context, userID string, location *orb.Point) (sos.Snapshot, error)
	Input(userID string, event sos.PointerEvent) (sos.Snapshot, error)
	Close(userID string) sos.Snapshot
	State(userID string) sos.Snapshot
	LogEmergency(ctx context.Context, userID, description string) (*models.Complaint, error)
	HelpCategories() []models.HelpCategory
	SweepIdle(now time.Time) int
}

type sosService struct {
	registry   *sos.Registry
	complaints ComplaintService
	markers    MapService
	cfg        *config.Config
	logger     *logrus.Logger
}

func NewSOSService(registry *sos.Registry, complaints ComplaintService, markers MapService, cfg *config.Config, logger *logrus.Logger) SOSService {
	return &sosService{
		registry:   registry,
		complaints: complaints,
		markers:    markers,
		cfg:        cfg,
		logger:     logger,
	}
}

// Activate открывает слайдер SOS. Без явной позиции берется последний маркер пользователя,
// а если его нет, позиция по умолчанию.
func (s *sosService) Activate(ctx context.Context, userID string, location *orb.Point) (sos.Snapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "Activate",
		"user_id": userID,
	})

	point := sos.DefaultLocation
	if location != nil {
		point = *location
	} else {
		marker, err := s.markers.LastMarker(ctx, userID)
		switch {
		case err == nil:
			point = orb.Point{marker.Longitude, marker.Latitude}
		case !isNotFound(err):
			log.WithError(err).Warn("Failed to get last marker, using default location")
		}
	}

	snap, err := s.registry.Get(userID).Activate(point)
	if err != nil {
		log.WithError(err).Warn("SOS activation rejected")
		return snap, fmt.Errorf("service: could not activate sos: %w", err)
	}

	log.Info("SOS activated")
	return snap, nil
}

func (s *sosService) Input(userID string, event sos.PointerEvent) (sos.Snapshot, error) {
	snap, err := s.registry.Get(userID).Input(event)
	if err != nil {
		return snap, fmt.Errorf("service: pointer event rejected: %w", err)
	}
	if snap.State == sos.StateSending {
		s.logger.WithFields(logrus.Fields{
			"service": "sos",
			"method":  "Input",
			"user_id": userID,
		}).Warn("Emergency SOS swipe completed")
	}
	return snap, nil
}

func (s *sosService) Close(userID string) sos.Snapshot {
	s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "Close",
		"user_id": userID,
	}).Info("SOS closed by user")
	return s.registry.Get(userID).Close()
}

func (s *sosService) State(userID string) sos.Snapshot {
	if m, ok := s.registry.Lookup(userID); ok {
		return m.Snapshot()
	}
	return sos.Snapshot{State: sos.StateInactive}
}

// LogEmergency регистрирует экстренное обращение из активной сессии SOS
func (s *sosService) LogEmergency(ctx context.Context, userID, description string) (*models.Complaint, error) {
	ctx, span := tracing.Start(ctx, "sos.LogEmergency", attribute.String("user_id", userID))
	defer span.End()

	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "LogEmergency",
		"user_id": userID,
	})

	m, ok := s.registry.Lookup(userID)
	if !ok {
		return nil, fmt.Errorf("service: no sos session: %w", sos.ErrInvalidTransition)
	}

	complaint, err := m.LogEmergency(ctx, s.complaints, description)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "emergency report failed")
		log.WithError(err).Error("Failed to log emergency report")
		return nil, fmt.Errorf("service: could not log emergency: %w", err)
	}

	log.WithField("complaint_id", complaint.ID).Info("Emergency report logged")
	return complaint, nil
}

func (s *sosService) HelpCategories() []models.HelpCategory {
	return models.HelpCategories()
}

// SweepIdle удаляет сессии без активности дольше SOS_IDLE_TIMEOUT
func (s *sosService) SweepIdle(now time.Time) int {
	removed := s.registry.Sweep(now, s.cfg.SOSIdleTimeout)
	if removed > 0 {
		s.logger.WithFields(logrus.Fields{
			"service": "sos",
			"method":  "SweepIdle",
			"removed": removed,
		}).Info("Idle SOS sessions removed")
	}
	return removed
}
