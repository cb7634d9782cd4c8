package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationWarning   NotificationType = "warning"
	NotificationInfo      NotificationType = "info"
	NotificationSuccess   NotificationType = "success"
	NotificationEmergency NotificationType = "emergency"
	NotificationHealth    NotificationType = "health"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Notification - уведомление пользователя, в том числе об опасности на карте
type Notification struct {
	ID         uuid.UUID        `json:"id"`
	UserID     string           `json:"user_id"`
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Priority   Priority         `json:"priority"`
	IsRead     bool             `json:"is_read"`
	HazardType string           `json:"hazard_type,omitempty"`
	Location   *GeoLocation     `json:"location,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}
