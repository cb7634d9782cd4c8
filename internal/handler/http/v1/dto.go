package v1

import (
	"time"

	"github.com/google/uuid"
)

// MarkerRequest DTO перемещения маркера на карте
// @Description DTO перемещения маркера на карте
type MarkerRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// MarkerCheckResponse DTO результата проверки позиции
// @Description DTO результата проверки позиции
type MarkerCheckResponse struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Messages  []string `json:"messages"`
	Safe      bool     `json:"safe"`
}

// MarkerResponse DTO последней позиции маркера
// @Description DTO последней позиции маркера
type MarkerResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SOSActivateRequest DTO открытия слайдера SOS. Координаты передаются обе или ни одной.
// @Description DTO открытия слайдера SOS
type SOSActivateRequest struct {
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// PointerRequest DTO события указателя слайдера
// @Description DTO события указателя слайдера
type PointerRequest struct {
	Kind string   `json:"kind" validate:"required,oneof=down move up"`
	X    *float64 `json:"x" validate:"required"`
}

// EmergencyLogRequest DTO записи экстренного обращения
// @Description DTO записи экстренного обращения
type EmergencyLogRequest struct {
	Description string `json:"description,omitempty" validate:"max=2000"`
}

// ResponderResponse DTO точки на карте ожидания помощи
type ResponderResponse struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Color     string  `json:"color"`
}

// SOSStateResponse DTO состояния экрана SOS
// @Description DTO состояния экрана SOS
type SOSStateResponse struct {
	State             string              `json:"state"`
	Progress          float64             `json:"progress"`
	Dragging          bool                `json:"dragging"`
	HelpFormAvailable bool                `json:"help_form_available"`
	Responders        []ResponderResponse `json:"responders,omitempty"`
	LastReportID      string              `json:"last_report_id,omitempty"`
}

// CancelComplaintRequest DTO отмены обращения
type CancelComplaintRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

// CommunicationRequest DTO сообщения в переписке по обращению
type CommunicationRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

// FeedbackRequest DTO оценки обращения
type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty" validate:"max=1000"`
}

// EmergencyLogResponse DTO зарегистрированного экстренного обращения
type EmergencyLogResponse struct {
	ComplaintID uuid.UUID `json:"complaint_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// UnreadCountResponse DTO количества непрочитанных уведомлений
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// MarkAllReadResponse DTO массовой отметки уведомлений
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount     int `json:"user_count"`
	WindowMinutes int `json:"window_minutes"`
}

// ErrorResponse DTO ошибки, Errors заполняется при ошибке валидации
type ErrorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}
