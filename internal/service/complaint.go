package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/sos"
	"github.com/shenikar/tourist_safety_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

const (
	emergencyTitle          = "Emergency SOS"
	emergencyUnknownAddress = "Unknown location"
)

// ComplaintRepository определяет контракт хранилища обращений и их кеша
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error)
	ListByUser(ctx context.Context, userID string, filter models.ComplaintFilter) ([]*models.Complaint, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ComplaintStatus, reason string) error
	AppendCommunication(ctx context.Context, id uuid.UUID, communication models.Communication) error
	SetFeedback(ctx context.Context, id uuid.UUID, feedback models.Feedback) error
	Stats(ctx context.Context, userID string) (*models.ComplaintStats, error)

	GetComplaintFromCache(ctx context.Context, id uuid.UUID) (*models.Complaint, error)
	SetComplaintCache(ctx context.Context, complaint *models.Complaint) error
	InvalidateComplaintCache(ctx context.Context, id uuid.UUID) error
}

// ComplaintService определяет контракт обращений: запросы помощи и экстренные SOS
type ComplaintService interface {
	SubmitHelpRequest(ctx context.Context, userID string, req *models.HelpRequest) (*models.Complaint, error)
	SubmitEmergency(ctx context.Context, userID string, report models.EmergencyReport) (*models.Complaint, error)
	GetComplaint(ctx context.Context, userID string, id uuid.UUID) (*models.Complaint, error)
	ListComplaints(ctx context.Context, userID string, filter models.ComplaintFilter) (*models.ComplaintPage, error)
	CancelComplaint(ctx context.Context, userID string, id uuid.UUID, reason string) (*models.Complaint, error)
	AddCommunication(ctx context.Context, userID string, id uuid.UUID, message string) (*models.Communication, error)
	SubmitFeedback(ctx context.Context, userID string, id uuid.UUID, rating int, comment string) (*models.Feedback, error)
	GetStats(ctx context.Context, userID string) (*models.ComplaintStats, error)
}

type complaintService struct {
	repo      ComplaintRepository
	publisher webhook.Publisher
	validator *HelpRequestValidator
	logger    *logrus.Logger
}

func NewComplaintService(repo ComplaintRepository, publisher webhook.Publisher, logger *logrus.Logger) ComplaintService {
	return &complaintService{
		repo:      repo,
		publisher: publisher,
		validator: NewHelpRequestValidator(),
		logger:    logger,
	}
}

// SubmitHelpRequest проверяет форму и создает обращение. При ошибке валидации хранилище не вызывается.
func (s *complaintService) SubmitHelpRequest(ctx context.Context, userID string, req *models.HelpRequest) (*models.Complaint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "complaint",
		"method":   "SubmitHelpRequest",
		"user_id":  userID,
		"category": req.Category,
	})
	log.Info("Attempting to submit help request")

	if err := s.validator.Validate(req); err != nil {
		log.WithError(err).Warn("Help request rejected by validation")
		return nil, err
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = models.UrgencyMedium
		if category, ok := models.LookupHelpCategory(req.Category); ok {
			urgency = category.Urgency
		}
	}

	complaint := &models.Complaint{
		UserID:           userID,
		Category:         req.Category,
		Title:            strings.TrimSpace(req.Title),
		Description:      strings.TrimSpace(req.Description),
		Urgency:          urgency,
		ContactInfo:      strings.TrimSpace(req.ContactInfo),
		AlternateContact: req.AlternateContact,
		Location:         req.Location,
		AdditionalInfo:   req.AdditionalInfo,
		Status:           models.StatusSubmitted,
		Communications:   []models.Communication{},
	}
	if err := s.repo.Create(ctx, complaint); err != nil {
		log.WithError(err).Error("Failed to create complaint in repository")
		return nil, fmt.Errorf("service: could not submit help request: %w", err)
	}

	log.WithField("complaint_id", complaint.ID).Info("Help request submitted successfully")
	return complaint, nil
}

// SubmitEmergency создает критическое обращение SOS и публикует его во внешнюю систему
func (s *complaintService) SubmitEmergency(ctx context.Context, userID string, report models.EmergencyReport) (*models.Complaint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "complaint",
		"method":  "SubmitEmergency",
		"user_id": userID,
	})
	log.Info("Attempting to submit emergency SOS")

	description := strings.TrimSpace(report.Description)
	if description == "" {
		description = sos.DefaultEmergencyDescription
	}
	location := report.Location
	if strings.TrimSpace(location.Address) == "" {
		location.Address = emergencyUnknownAddress
	}

	complaint := &models.Complaint{
		UserID:         userID,
		Category:       models.EmergencySOSCategory,
		Title:          emergencyTitle,
		Description:    description,
		Urgency:        models.UrgencyCritical,
		Location:       location,
		IsEmergencySOS: true,
		Status:         models.StatusSubmitted,
		Communications: []models.Communication{},
	}
	if err := s.repo.Create(ctx, complaint); err != nil {
		log.WithError(err).Error("Failed to create emergency complaint in repository")
		return nil, fmt.Errorf("service: could not submit emergency: %w", err)
	}

	event := webhook.Event{
		Kind:      webhook.EventEmergencySOS,
		UserID:    userID,
		Complaint: complaint,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish emergency webhook")
	}

	log.WithField("complaint_id", complaint.ID).Info("Emergency SOS submitted successfully")
	return complaint, nil
}

// GetComplaint возвращает обращение пользователя: сначала из кеша, затем из БД
func (s *complaintService) GetComplaint(ctx context.Context, userID string, id uuid.UUID) (*models.Complaint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "complaint",
		"method":       "GetComplaint",
		"user_id":      userID,
		"complaint_id": id,
	})

	complaint, err := s.repo.GetComplaintFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read complaint from cache")
	}

	if complaint == nil {
		complaint, err = s.repo.GetByID(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Failed to get complaint from repository")
			return nil, fmt.Errorf("service: could not get complaint: %w", err)
		}
		if err := s.repo.SetComplaintCache(ctx, complaint); err != nil {
			log.WithError(err).Warn("Failed to cache complaint")
		}
	}

	if complaint.UserID != userID {
		log.Warn("Complaint requested by another user")
		return nil, fmt.Errorf("service: complaint %s: %w", id, models.ErrForbidden)
	}
	return complaint, nil
}

// ListComplaints возвращает страницу обращений с фильтрами
func (s *complaintService) ListComplaints(ctx context.Context, userID string, filter models.ComplaintFilter) (*models.ComplaintPage, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	log := s.logger.WithFields(logrus.Fields{
		"service": "complaint",
		"method":  "ListComplaints",
		"user_id": userID,
		"page":    filter.Page,
		"limit":   filter.Limit,
	})

	items, total, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list complaints from repository")
		return nil, fmt.Errorf("service: could not list complaints: %w", err)
	}

	log.WithField("count", len(items)).Debug("Complaints listed")
	return models.NewComplaintPage(items, total, filter.Page, filter.Limit), nil
}

// CancelComplaint отменяет обращение, если оно еще не в конечном статусе
func (s *complaintService) CancelComplaint(ctx context.Context, userID string, id uuid.UUID, reason string) (*models.Complaint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "complaint",
		"method":       "CancelComplaint",
		"user_id":      userID,
		"complaint_id": id,
	})
	log.Info("Attempting to cancel complaint")

	complaint, err := s.GetComplaint(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if complaint.Status.IsFinal() {
		log.WithField("status", complaint.Status).Warn("Attempted to cancel a finished complaint")
		return nil, fmt.Errorf("service: complaint in status %s cannot be cancelled: %w", complaint.Status, models.ErrInvalidState)
	}

	if err := s.repo.UpdateStatus(ctx, id, models.StatusCancelled, reason); err != nil {
		log.WithError(err).Error("Failed to cancel complaint in repository")
		return nil, fmt.Errorf("service: could not cancel complaint: %w", err)
	}
	s.invalidate(ctx, log, id)

	complaint.Status = models.StatusCancelled
	complaint.CancelReason = reason
	log.Info("Complaint cancelled successfully")
	return complaint, nil
}

// AddCommunication добавляет сообщение пользователя в переписку по обращению
func (s *complaintService) AddCommunication(ctx context.Context, userID string, id uuid.UUID, message string) (*models.Communication, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "complaint",
		"method":       "AddCommunication",
		"user_id":      userID,
		"complaint_id": id,
	})

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &models.ValidationError{Messages: []string{"Message is required"}}
	}
	if _, err := s.GetComplaint(ctx, userID, id); err != nil {
		return nil, err
	}

	communication := models.Communication{
		From:      "user",
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.AppendCommunication(ctx, id, communication); err != nil {
		log.WithError(err).Error("Failed to append communication in repository")
		return nil, fmt.Errorf("service: could not add communication: %w", err)
	}
	s.invalidate(ctx, log, id)

	log.Info("Communication added")
	return &communication, nil
}

// SubmitFeedback сохраняет оценку решенного обращения, оценка от 1 до 5
func (s *complaintService) SubmitFeedback(ctx context.Context, userID string, id uuid.UUID, rating int, comment string) (*models.Feedback, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "complaint",
		"method":       "SubmitFeedback",
		"user_id":      userID,
		"complaint_id": id,
		"rating":       rating,
	})

	if rating < 1 || rating > 5 {
		return nil, &models.ValidationError{Messages: []string{"Rating must be between 1 and 5"}}
	}

	complaint, err := s.GetComplaint(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if complaint.Status != models.StatusResolved {
		return nil, fmt.Errorf("service: feedback requires a resolved complaint, got %s: %w", complaint.Status, models.ErrInvalidState)
	}
	if complaint.Feedback != nil {
		return nil, fmt.Errorf("service: feedback already submitted: %w", models.ErrInvalidState)
	}

	feedback := models.Feedback{
		Rating:      rating,
		Comment:     strings.TrimSpace(comment),
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.repo.SetFeedback(ctx, id, feedback); err != nil {
		log.WithError(err).Error("Failed to save feedback in repository")
		return nil, fmt.Errorf("service: could not submit feedback: %w", err)
	}
	s.invalidate(ctx, log, id)

	log.Info("Feedback submitted")
	return &feedback, nil
}

func (s *complaintService) GetStats(ctx context.Context, userID string) (*models.ComplaintStats, error) {
	stats, err := s.repo.Stats(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service": "complaint",
			"method":  "GetStats",
			"user_id": userID,
		}).Error("Failed to get complaint stats")
		return nil, fmt.Errorf("service: could not get complaint stats: %w", err)
	}
	return stats, nil
}

func (s *complaintService) invalidate(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if err := s.repo.InvalidateComplaintCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate complaint cache")
	}
}

// IsValidation сообщает, что ошибка вызвана некорректными данными пользователя
func IsValidation(err error) bool {
	var ve *models.ValidationError
	return errors.As(err, &ve)
}
