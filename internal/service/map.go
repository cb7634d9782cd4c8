package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/geofence"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

const maxZoneScale = 3.0

// LocationCheckRepository определяет контракт журнала проверок позиции и кеша маркера
type LocationCheckRepository interface {
	SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error
	GetLocationCheckStats(ctx context.Context, minutes int) (int, error)
	DeleteLocationChecksBefore(ctx context.Context, before time.Time) (int64, error)
	SetMarker(ctx context.Context, position *models.MarkerPosition, ttl time.Duration) error
	GetMarker(ctx context.Context, userID string) (*models.MarkerPosition, error)
}

// MapService определяет контракт карты: перемещение маркера и слои опасностей
type MapService interface {
	MoveMarker(ctx context.Context, userID string, p orb.Point) (geofence.Result, error)
	LastMarker(ctx context.Context, userID string) (*models.MarkerPosition, error)
	RestrictedAreas() *geojson.FeatureCollection
	Hazards() *geojson.FeatureCollection
	HazardZones(scale float64) *geojson.FeatureCollection
	GetStats(ctx context.Context) (int, error)
	PruneLocationChecks(ctx context.Context, retention time.Duration) (int64, error)
}

type mapService struct {
	engine *geofence.Engine
	repo   LocationCheckRepository
	cfg    *config.Config
	logger *logrus.Logger

	// слои статичны, собираются один раз
	areasLayer   *geojson.FeatureCollection
	hazardsLayer *geojson.FeatureCollection
}

func NewMapService(engine *geofence.Engine, repo LocationCheckRepository, cfg *config.Config, logger *logrus.Logger) MapService {
	return &mapService{
		engine:       engine,
		repo:         repo,
		cfg:          cfg,
		logger:       logger,
		areasLayer:   geofence.AreasCollection(engine.Areas()),
		hazardsLayer: geofence.HazardsCollection(engine.Hazards()),
	}
}

// MoveMarker обрабатывает окончание перетаскивания маркера: полная проверка позиции с нуля.
// Ошибки журнала и кеша только логируются и не влияют на результат.
func (s *mapService) MoveMarker(ctx context.Context, userID string, p orb.Point) (geofence.Result, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "map",
		"method":    "MoveMarker",
		"user_id":   userID,
		"longitude": p.Lon(),
		"latitude":  p.Lat(),
	})

	if err := validatePoint(p); err != nil {
		log.WithError(err).Warn("Marker position rejected")
		return geofence.Result{}, err
	}

	result := s.engine.Evaluate(ctx, userID, p)

	check := &models.LocationCheck{
		UserID:      userID,
		Latitude:    p.Lat(),
		Longitude:   p.Lon(),
		IsDangerous: !result.Safe,
		AlertCount:  len(result.Messages),
	}
	if err := s.repo.SaveLocationCheck(ctx, check); err != nil {
		log.WithError(err).Error("Failed to save location check")
	}

	position := &models.MarkerPosition{
		UserID:    userID,
		Latitude:  p.Lat(),
		Longitude: p.Lon(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.SetMarker(ctx, position, s.cfg.MarkerCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache marker position")
	}

	log.WithField("alerts", len(result.Messages)).Info("Marker position checked")
	return result, nil
}

// LastMarker возвращает последнюю позицию маркера или models.ErrNotFound
func (s *mapService) LastMarker(ctx context.Context, userID string) (*models.MarkerPosition, error) {
	position, err := s.repo.GetMarker(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get marker: %w", err)
	}
	if position == nil {
		return nil, fmt.Errorf("service: marker of user %s: %w", userID, models.ErrNotFound)
	}
	return position, nil
}

func (s *mapService) RestrictedAreas() *geojson.FeatureCollection {
	return s.areasLayer
}

func (s *mapService) Hazards() *geojson.FeatureCollection {
	return s.hazardsLayer
}

// HazardZones строит круги зон с множителем анимации. Нулевой множитель дает базовый радиус.
func (s *mapService) HazardZones(scale float64) *geojson.FeatureCollection {
	if scale <= 0 {
		scale = 1
	}
	if scale > maxZoneScale {
		scale = maxZoneScale
	}
	return geofence.ZonesCollection(s.engine.Hazards(), scale)
}

// GetStats возвращает количество уникальных пользователей, проверявших позицию за окно статистики
func (s *mapService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "map",
		"method":         "GetStats",
		"window_minutes": s.cfg.StatsTimeWindowMinutes,
	})

	count, err := s.repo.GetLocationCheckStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get location check stats")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}

	log.WithField("user_count", count).Info("Stats fetched successfully")
	return count, nil
}

// PruneLocationChecks удаляет записи журнала старше retention
func (s *mapService) PruneLocationChecks(ctx context.Context, retention time.Duration) (int64, error) {
	before := time.Now().UTC().Add(-retention)
	log := s.logger.WithFields(logrus.Fields{
		"service": "map",
		"method":  "PruneLocationChecks",
		"before":  before,
	})

	deleted, err := s.repo.DeleteLocationChecksBefore(ctx, before)
	if err != nil {
		log.WithError(err).Error("Failed to prune location checks")
		return 0, fmt.Errorf("service: could not prune location checks: %w", err)
	}

	log.WithField("deleted", deleted).Info("Location checks pruned")
	return deleted, nil
}

func validatePoint(p orb.Point) error {
	var messages []string
	if p.Lon() < -180 || p.Lon() > 180 {
		messages = append(messages, "Longitude must be between -180 and 180")
	}
	if p.Lat() < -90 || p.Lat() > 90 {
		messages = append(messages, "Latitude must be between -90 and 90")
	}
	if len(messages) > 0 {
		return &models.ValidationError{Messages: messages}
	}
	return nil
}

// isNotFound сообщает об отсутствии записи
func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
