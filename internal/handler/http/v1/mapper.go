package v1

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/tourist_safety_system/internal/geofence"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/sos"
)

// ResultToMarkerResponse преобразует результат проверки позиции в DTO
func ResultToMarkerResponse(lat, lon float64, result geofence.Result) *MarkerCheckResponse {
	messages := result.Messages
	if messages == nil {
		messages = []string{}
	}
	return &MarkerCheckResponse{
		Latitude:  lat,
		Longitude: lon,
		Messages:  messages,
		Safe:      result.Safe,
	}
}

func ModelToMarkerResponse(position *models.MarkerPosition) *MarkerResponse {
	return &MarkerResponse{
		Latitude:  position.Latitude,
		Longitude: position.Longitude,
		UpdatedAt: position.UpdatedAt,
	}
}

// SnapshotToResponse преобразует снимок машины SOS, координаты точек раскладываются в lat/lon
func SnapshotToResponse(snap sos.Snapshot) *SOSStateResponse {
	resp := &SOSStateResponse{
		State:             string(snap.State),
		Progress:          snap.Progress,
		Dragging:          snap.Dragging,
		HelpFormAvailable: snap.HelpFormAvailable,
		LastReportID:      snap.LastReportID,
	}
	for _, m := range snap.Responders {
		resp.Responders = append(resp.Responders, ResponderResponse{
			Name:      m.Name,
			Latitude:  m.Location.Lat(),
			Longitude: m.Location.Lon(),
			Color:     m.Color,
		})
	}
	return resp
}

func ComplaintToEmergencyResponse(c *models.Complaint) *EmergencyLogResponse {
	return &EmergencyLogResponse{
		ComplaintID: c.ID,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
	}
}

// QueryToComplaintFilter разбирает параметры выборки обращений.
// Даты принимаются в RFC 3339 или как YYYY-MM-DD.
func QueryToComplaintFilter(c *gin.Context) (models.ComplaintFilter, error) {
	filter := models.ComplaintFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Urgency:  c.Query("urgency"),
	}

	var err error
	if filter.Page, err = queryInt(c, "page", 1); err != nil {
		return filter, err
	}
	if filter.Limit, err = queryInt(c, "limit", 10); err != nil {
		return filter, err
	}
	if filter.StartDate, err = queryTime(c, "startDate"); err != nil {
		return filter, err
	}
	if filter.EndDate, err = queryTime(c, "endDate"); err != nil {
		return filter, err
	}
	return filter, nil
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

func queryTime(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid %s: %q", key, raw)
}

// QueryToTripFilter разбирает параметры выборки поездок
func QueryToTripFilter(c *gin.Context) (models.TripFilter, error) {
	filter := models.TripFilter{Status: c.Query("status")}
	switch models.TripStatus(filter.Status) {
	case "", models.TripPlanned, models.TripActive, models.TripCompleted, models.TripCancelled:
	default:
		return filter, fmt.Errorf("invalid status: %q", filter.Status)
	}

	if raw := c.Query("includeArchived"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid includeArchived: %q", raw)
		}
		filter.IncludeArchived = v
	}

	var err error
	if filter.Page, err = queryInt(c, "page", 1); err != nil {
		return filter, err
	}
	if filter.Limit, err = queryInt(c, "limit", 10); err != nil {
		return filter, err
	}
	return filter, nil
}
