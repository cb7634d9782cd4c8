package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/pkg/clock"
	"github.com/sirupsen/logrus"
)

const (
	defaultMemberAge    = 18
	defaultDocumentType = "aadhar"
	defaultPhoneType    = "primary"
)

// TripRepository определяет контракт хранилища поездок
type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ListByUser(ctx context.Context, userID string, filter models.TripFilter) ([]*models.Trip, int, error)
	Update(ctx context.Context, trip *models.Trip) error
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.TripStatus) error
	Archive(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetActive(ctx context.Context, userID string) (*models.Trip, error)
	GetCurrent(ctx context.Context, userID string, day time.Time) (*models.Trip, error)
	Stats(ctx context.Context, userID string) (*models.TripStats, error)
}

// TripService определяет контракт поездок: планирование и жизненный цикл
type TripService interface {
	CreateTrip(ctx context.Context, userID string, input *models.TripInput) (*models.Trip, error)
	GetTrip(ctx context.Context, userID string, id uuid.UUID) (*models.Trip, error)
	ListTrips(ctx context.Context, userID string, filter models.TripFilter) (*models.TripPage, error)
	UpdateTrip(ctx context.Context, userID string, id uuid.UUID, update models.TripUpdate) (*models.Trip, error)
	DeleteTrip(ctx context.Context, userID string, id uuid.UUID) error
	ArchiveTrip(ctx context.Context, userID string, id uuid.UUID) (*models.Trip, error)
	ActivateTrip(ctx context.Context, userID string, id uuid.UUID) (*models.Trip, error)
	CompleteTrip(ctx context.Context, userID string, id uuid.UUID) (*models.Trip, error)
	CancelTrip(ctx context.Context, userID string, id uuid.UUID) (*models.Trip, error)
	GetActiveTrip(ctx context.Context, userID string) (*models.Trip, error)
	GetCurrentTrip(ctx context.Context, userID string) (*models.Trip, error)
	CheckActiveTrip(ctx context.Context, userID string) (*models.ActiveTripStatus, error)
	GetStats(ctx context.Context, userID string) (*models.TripStats, error)
}

type tripService struct {
	repo      TripRepository
	validator *TripValidator
	clock     clock.Clock
	logger    *logrus.Logger
}

func NewTripService(repo TripRepository, clk clock.Clock, logger *logrus.Logger) TripService {
	return &tripService{
		repo:      repo,
		validator: NewTripValidator(),
		clock:     clk,
		logger:    logger,
	}
}

// CreateTrip проверяет форму и сохраняет поездку в статусе planned
func (s *tripService) CreateTrip(ctx context.Context, userID string, input *models.TripInput) (*models.Trip, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "CreateTrip",
		"user_id": userID,
	})
	log.Info("Attempting to create trip")

	if err := s.validator.Validate(input); err != nil {
		log.WithError(err).Warn("Trip rejected by validation")
		return nil, err
	}

	trip := &models.Trip{
		UserID: userID,
		Status: models.TripPlanned,
	}
	if err := fillTrip(trip, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, trip); err != nil {
		log.WithError(err).Error("Failed to create trip in repository")
		return nil, fmt.Errorf("service: could not create trip: %w", err)
	}

	log.WithField("trip_id", trip.ID).Info("Trip created successfully")
	return trip, nil
}

// GetTrip возвращает поездку, чужая поездка - models.ErrForbidden
func (s *tripService) GetTrip(ctx context.Context, userID string, id uuid.UUID) (*models.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service": "trip",
			"method":  "GetTrip",
			"trip_id": id,
		}).Warn("Failed to get trip from repository")
		return nil, fmt.Errorf("service: could not get trip: %w", err)
	}
	if trip.UserID != userID {
		s.logger.WithFields(logrus.Fields{
			"service": "trip",
			"method":  "GetTrip",
			"user_id": userID,
			"trip_id": id,
		}).Warn("Trip requested by another user")
		return nil, fmt.Errorf("service: trip %s: %w", id, models.ErrForbidden)
	}
	return trip, nil
}

func (s *tripService) ListTrips(ctx context.Context, userID string, filter models.TripFilter) (*models.TripPage, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service": "trip",
			"method":  "ListTrips",
			"user_id": userID,
		}).Error("Failed to list trips from repository")
		return nil, fmt.Errorf("service: could not list trips: %w", err)
	}
	return models.NewTripPage(items, total, filter.Page, filter.Limit), nil
}

// UpdateTrip накладывает изменения на текущую форму и проверяет результат целиком
func (s *tripService) UpdateTrip(ctx context.Context, userID string, id uuid.UUID, update models.TripUpdate) (*models.Trip, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "UpdateTrip",
		"user_id": userID,
		"trip_id": id,
	})

	trip, err := s.GetTrip(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if trip.IsArchived || !trip.Status.Editable() {
		log.WithField("status", trip.Status).Warn("Attempted to edit a closed trip")
		return nil, fmt.Errorf("service: trip in status %s cannot be edited: %w", trip.Status, models.ErrInvalidState)
	}

	input := update.Apply(trip.Input())
	if err := s.validator.Validate(&input); err != nil {
		log.WithError(err).Warn("Trip update rejected by validation")
		return nil, err
	}
	if err := fillTrip(trip, &input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, trip); err != nil {
		log.WithError(err).Error("Failed to update trip in repository")
		return nil, fmt.Errorf("service: could not update trip: %w", err)
	}

	log.Info("Trip updated")
	return trip, nil
}

// DeleteTrip удаляет поездку, активную нужно сначала завершить или отменить
func (s *tripService) DeleteTrip(ctx context.Context, userID string, id uuid.UUID) error {
	trip, err := s.GetTrip(ctx, userID, id)
	if err != nil {
		return err
	}
	if trip.Status == models.TripActive {
		return fmt.Errorf("service: active trip cannot be deleted: %w", models.ErrInvalidState)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete trip: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "DeleteTrip",
		"user_id": userID,
		"trip_id": id,
	}).Info("Trip deleted")
	return nil
}

func (s *tripService) ArchiveTrip(ctx context.Context, userID string, id uuid.UUID) (*models.Trip, error) {
	trip, err := s.GetTrip(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if trip.IsArchived {
		return nil, fmt.Errorf("service: trip already archived: %w", models.ErrInvalidState)
	}
	if trip.Status == models.TripActive {
		return nil, fmt.Errorf("service: active trip cannot be archived: %w", models.ErrInvalidState)
	}
	if err := s.repo.Archive(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not archive trip: %w", err)
	}
	trip.IsArchived = true
	return trip, nil
}

// ActivateTrip запускает запланированную поездку, у пользователя может быть одна активная
func (s *tripService) ActivateTrip(ctx context.Context, userID string, id uuid.UUID) (*models.Trip, error) {
	trip, err := s.GetTrip(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := checkTransition(trip, models.TripActive); err != nil {
		return nil, err
	}

	active, err := s.repo.GetActive(ctx, userID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("service: trip %s is already active: %w", active.ID, models.ErrInvalidState)
	case !isNotFound(err):
		return nil, fmt.Errorf("service: could not check active trip: %w", err)
	}

	return s.transition(ctx, trip, models.TripActive)
}

func (s *tripService) CompleteTrip(ctx context.Context, userID string, id uuid.UUID) (*models.Trip, error) {
	trip, err := s.GetTrip(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := checkTransition(trip, models.TripCompleted); err != nil {
		return nil, err
	}
	return s.transition(ctx, trip, models.TripCompleted)
}

func (s *tripService) CancelTrip(ctx context.Context, userID string, id uuid.UUID) (*models.Trip, error) {
	trip, err := s.GetTrip(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := checkTransition(trip, models.TripCancelled); err != nil {
		return nil, err
	}
	return s.transition(ctx, trip, models.TripCancelled)
}

func (s *tripService) GetActiveTrip(ctx context.Context, userID string) (*models.Trip, error) {
	trip, err := s.repo.GetActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get active trip: %w", err)
	}
	return trip, nil
}

// GetCurrentTrip возвращает поездку, в сроки которой попадает сегодняшний день (UTC)
func (s *tripService) GetCurrentTrip(ctx context.Context, userID string) (*models.Trip, error) {
	y, m, d := s.clock.Now().UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	trip, err := s.repo.GetCurrent(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("service: could not get current trip: %w", err)
	}
	return trip, nil
}

// CheckActiveTrip не считает отсутствие активной поездки ошибкой
func (s *tripService) CheckActiveTrip(ctx context.Context, userID string) (*models.ActiveTripStatus, error) {
	trip, err := s.repo.GetActive(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return &models.ActiveTripStatus{}, nil
		}
		return nil, fmt.Errorf("service: could not check active trip: %w", err)
	}
	return &models.ActiveTripStatus{HasActiveTrip: true, ActiveTrip: trip}, nil
}

func (s *tripService) GetStats(ctx context.Context, userID string) (*models.TripStats, error) {
	stats, err := s.repo.Stats(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service": "trip",
			"method":  "GetStats",
			"user_id": userID,
		}).Error("Failed to get trip stats")
		return nil, fmt.Errorf("service: could not get trip stats: %w", err)
	}
	return stats, nil
}

func (s *tripService) transition(ctx context.Context, trip *models.Trip, to models.TripStatus) (*models.Trip, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "transition",
		"trip_id": trip.ID,
		"from":    trip.Status,
		"to":      to,
	})
	if err := s.repo.UpdateStatus(ctx, trip.ID, trip.Status, to); err != nil {
		log.WithError(err).Warn("Failed to change trip status")
		return nil, fmt.Errorf("service: could not change trip status: %w", err)
	}
	trip.Status = to
	log.Info("Trip status changed")
	return trip, nil
}

func checkTransition(trip *models.Trip, to models.TripStatus) error {
	if trip.IsArchived {
		return fmt.Errorf("service: archived trip cannot change status: %w", models.ErrInvalidState)
	}
	if !trip.Status.CanTransition(to) {
		return fmt.Errorf("service: trip cannot go from %s to %s: %w", trip.Status, to, models.ErrInvalidState)
	}
	return nil
}

// fillTrip переносит проверенную форму в поездку: обрезает пробелы,
// проставляет значения по умолчанию и идентификаторы вложенных записей
func fillTrip(trip *models.Trip, input *models.TripInput) error {
	start, err := models.ParseTripDate(input.StartDate)
	if err != nil {
		return &models.ValidationError{Messages: []string{"Start date must be in YYYY-MM-DD format"}}
	}
	end, err := models.ParseTripDate(input.EndDate)
	if err != nil {
		return &models.ValidationError{Messages: []string{"End date must be in YYYY-MM-DD format"}}
	}

	trip.Name = strings.TrimSpace(input.Name)
	trip.Destination = strings.TrimSpace(input.Destination)
	trip.Description = strings.TrimSpace(input.Description)
	trip.StartDate = start
	trip.EndDate = end
	trip.Members = normalizeMembers(input.Members)
	trip.Itinerary = normalizeItinerary(input.Itinerary)
	return nil
}

func normalizeMembers(in []models.TripMember) []models.TripMember {
	members := make([]models.TripMember, 0, len(in))
	for _, m := range in {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		m.Name = strings.TrimSpace(m.Name)
		m.DocumentNumber = strings.TrimSpace(m.DocumentNumber)
		if m.Age == 0 {
			m.Age = defaultMemberAge
		}
		if m.DocumentType == "" {
			m.DocumentType = defaultDocumentType
		}

		phones := make([]models.PhoneNumber, 0, len(m.PhoneNumbers))
		for _, p := range m.PhoneNumbers {
			if p.ID == "" {
				p.ID = uuid.NewString()
			}
			p.Number = strings.TrimSpace(p.Number)
			if p.Type == "" {
				p.Type = defaultPhoneType
			}
			phones = append(phones, p)
		}
		m.PhoneNumbers = phones
		members = append(members, m)
	}
	return members
}

// normalizeItinerary оставляет дни с датой и местом, пустые активности отбрасываются
func normalizeItinerary(in []models.ItineraryDay) []models.ItineraryDay {
	days := make([]models.ItineraryDay, 0, len(in))
	for _, day := range in {
		day.Date = strings.TrimSpace(day.Date)
		day.Location = strings.TrimSpace(day.Location)
		if day.Date == "" || day.Location == "" {
			continue
		}
		if day.ID == "" {
			day.ID = uuid.NewString()
		}

		activities := make([]string, 0, len(day.Activities))
		for _, a := range day.Activities {
			if a = strings.TrimSpace(a); a != "" {
				activities = append(activities, a)
			}
		}
		day.Activities = activities
		days = append(days, day)
	}
	return days
}
