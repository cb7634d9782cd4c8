package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TripStatus string

const (
	TripPlanned   TripStatus = "planned"
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

// переходы жизненного цикла поездки
var tripTransitions = map[TripStatus][]TripStatus{
	TripPlanned: {TripActive, TripCancelled},
	TripActive:  {TripCompleted, TripCancelled},
}

// CanTransition сообщает, допустим ли переход из s в to
func (s TripStatus) CanTransition(to TripStatus) bool {
	for _, next := range tripTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Editable - поездку еще можно менять
func (s TripStatus) Editable() bool {
	return s == TripPlanned || s == TripActive
}

// TripDateLayout - формат дат поездки в запросах
const TripDateLayout = time.DateOnly

// ParseTripDate принимает YYYY-MM-DD или RFC 3339, результат - полночь UTC
func ParseTripDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(TripDateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse trip date %q: %w", s, err)
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

type PhoneNumber struct {
	ID     string `json:"id"`
	Number string `json:"number" validate:"notblank"`
	Type   string `json:"type" validate:"omitempty,oneof=primary emergency other"`
	Label  string `json:"label,omitempty"`
}

// TripMember - участник поездки
type TripMember struct {
	ID               string        `json:"id"`
	Name             string        `json:"name" validate:"notblank"`
	Age              int           `json:"age" validate:"gte=0,lte=120"`
	DocumentType     string        `json:"documentType" validate:"omitempty,oneof=aadhar passport"`
	DocumentNumber   string        `json:"documentNumber" validate:"notblank"`
	PhoneNumbers     []PhoneNumber `json:"phoneNumbers" validate:"dive"`
	SpeciallyAbled   bool          `json:"speciallyAbled"`
	SpecialNeeds     string        `json:"specialNeeds,omitempty"`
	EmergencyContact string        `json:"emergencyContact,omitempty"`
	Relation         string        `json:"relation,omitempty"`
}

// ItineraryDay - день маршрута
type ItineraryDay struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"`
	Location   string   `json:"location"`
	Activities []string `json:"activities"`
	Notes      string   `json:"notes,omitempty"`
}

// TripInput - форма создания поездки.
// Порядок полей определяет порядок сообщений валидации.
type TripInput struct {
	Name        string         `json:"name" validate:"notblank,max=200"`
	Destination string         `json:"destination" validate:"notblank,max=200"`
	StartDate   string         `json:"startDate" validate:"notblank"`
	EndDate     string         `json:"endDate" validate:"notblank"`
	Description string         `json:"description,omitempty" validate:"max=2000"`
	Members     []TripMember   `json:"members" validate:"dive"`
	Itinerary   []ItineraryDay `json:"itinerary"`
}

// TripUpdate - частичное обновление, nil поля не меняются
type TripUpdate struct {
	Name        *string         `json:"name,omitempty"`
	Destination *string         `json:"destination,omitempty"`
	StartDate   *string         `json:"startDate,omitempty"`
	EndDate     *string         `json:"endDate,omitempty"`
	Description *string         `json:"description,omitempty"`
	Members     *[]TripMember   `json:"members,omitempty"`
	Itinerary   *[]ItineraryDay `json:"itinerary,omitempty"`
}

type Trip struct {
	ID          uuid.UUID      `json:"id"`
	UserID      string         `json:"userId"`
	Name        string         `json:"name"`
	Destination string         `json:"destination"`
	Description string         `json:"description,omitempty"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     time.Time      `json:"endDate"`
	Members     []TripMember   `json:"members"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Status      TripStatus     `json:"status"`
	IsArchived  bool           `json:"isArchived"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Input возвращает форму с текущими данными поездки, на нее накладывается TripUpdate
func (t *Trip) Input() TripInput {
	return TripInput{
		Name:        t.Name,
		Destination: t.Destination,
		StartDate:   t.StartDate.Format(TripDateLayout),
		EndDate:     t.EndDate.Format(TripDateLayout),
		Description: t.Description,
		Members:     t.Members,
		Itinerary:   t.Itinerary,
	}
}

// Apply накладывает заданные поля обновления на форму
func (u TripUpdate) Apply(in TripInput) TripInput {
	if u.Name != nil {
		in.Name = *u.Name
	}
	if u.Destination != nil {
		in.Destination = *u.Destination
	}
	if u.StartDate != nil {
		in.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		in.EndDate = *u.EndDate
	}
	if u.Description != nil {
		in.Description = *u.Description
	}
	if u.Members != nil {
		in.Members = *u.Members
	}
	if u.Itinerary != nil {
		in.Itinerary = *u.Itinerary
	}
	return in
}

type TripFilter struct {
	Status          string
	IncludeArchived bool
	Page            int
	Limit           int
}

type TripPage struct {
	Trips      []*Trip `json:"trips"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"totalPages"`
}

func NewTripPage(items []*Trip, total, page, limit int) *TripPage {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &TripPage{
		Trips:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

type TripStatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// TripStats - количество поездок пользователя по статусам
type TripStats struct {
	Total    int               `json:"total"`
	Statuses []TripStatusCount `json:"statuses"`
}

// ActiveTripStatus - ответ проверки активной поездки, отсутствие поездки не ошибка
type ActiveTripStatus struct {
	HasActiveTrip bool  `json:"hasActiveTrip"`
	ActiveTrip    *Trip `json:"activeTrip"`
}
