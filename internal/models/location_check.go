package models

import (
	"time"
)

// LocationCheck представляет запись о проверке позиции маркера пользователя
type LocationCheck struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	IsDangerous bool      `json:"is_dangerous"`
	AlertCount  int       `json:"alert_count"`
	CheckedAt   time.Time `json:"checked_at"`
}

// MarkerPosition - текущая позиция перетаскиваемого маркера на карте
type MarkerPosition struct {
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}
