package models

import (
	"time"

	"github.com/google/uuid"
)

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

type ComplaintStatus string

const (
	StatusSubmitted   ComplaintStatus = "submitted"
	StatusUnderReview ComplaintStatus = "under_review"
	StatusAssigned    ComplaintStatus = "assigned"
	StatusInProgress  ComplaintStatus = "in_progress"
	StatusResolved    ComplaintStatus = "resolved"
	StatusClosed      ComplaintStatus = "closed"
	StatusRejected    ComplaintStatus = "rejected"
	StatusCancelled   ComplaintStatus = "cancelled"
)

// IsFinal сообщает, что обращение больше нельзя отменить
func (s ComplaintStatus) IsFinal() bool {
	switch s {
	case StatusResolved, StatusClosed, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// HelpRequest - данные формы запроса помощи.
// Порядок полей определяет порядок сообщений валидации.
type HelpRequest struct {
	Category         string  `json:"category" validate:"notblank"`
	Title            string  `json:"title" validate:"notblank,max=200"`
	Description      string  `json:"description" validate:"notblank,max=2000"`
	ContactInfo      string  `json:"contactInfo" validate:"notblank"`
	Location         Address `json:"location"`
	Urgency          Urgency `json:"urgency" validate:"omitempty,oneof=low medium high critical"`
	AlternateContact string  `json:"alternateContact,omitempty"`
	AdditionalInfo   string  `json:"additionalInfo,omitempty"`
}

// EmergencyReport - экстренное SOS-сообщение
type EmergencyReport struct {
	Description string  `json:"description"`
	Location    Address `json:"location"`
}

// Communication - сообщение в переписке по обращению
type Communication struct {
	From      string    `json:"from"` // user, officer, system
	Message   string    `json:"message"`
	OfficerID string    `json:"officerId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Feedback - оценка пользователем решенного обращения
type Feedback struct {
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Complaint - обращение (запрос помощи или экстренный SOS)
type Complaint struct {
	ID               uuid.UUID       `json:"id"`
	UserID           string          `json:"userId"`
	Category         string          `json:"category"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Urgency          Urgency         `json:"urgency"`
	ContactInfo      string          `json:"contactInfo"`
	AlternateContact string          `json:"alternateContact,omitempty"`
	Location         Address         `json:"location"`
	AdditionalInfo   string          `json:"additionalInfo,omitempty"`
	IsEmergencySOS   bool            `json:"isEmergencySOS"`
	Status           ComplaintStatus `json:"status"`
	CancelReason     string          `json:"cancelReason,omitempty"`
	Communications   []Communication `json:"communications"`
	Feedback         *Feedback       `json:"feedback,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ComplaintFilter - параметры выборки обращений пользователя
type ComplaintFilter struct {
	Status    string
	Category  string
	Urgency   string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// ComplaintPage - страница обращений с данными пагинации
type ComplaintPage struct {
	Complaints []*Complaint `json:"complaints"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"totalPages"`
	HasNext    bool         `json:"hasNext"`
	HasPrev    bool         `json:"hasPrev"`
}

// NewComplaintPage считает поля пагинации
func NewComplaintPage(items []*Complaint, total, page, limit int) *ComplaintPage {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &ComplaintPage{
		Complaints: items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ComplaintStats - сводная статистика обращений пользователя
type ComplaintStats struct {
	Total         int            `json:"total"`
	Resolved      int            `json:"resolved"`
	Emergency     int            `json:"emergency"`
	ByStatus      map[string]int `json:"byStatus"`
	ByCategory    map[string]int `json:"byCategory"`
	ByUrgency     map[string]int `json:"byUrgency"`
	AverageRating float64        `json:"averageRating"`
}
