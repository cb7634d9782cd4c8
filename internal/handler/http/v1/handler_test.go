package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/geofence"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/shenikar/tourist_safety_system/internal/sos"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = "user-1"

type testServices struct {
	notifications *mocks.MockNotificationService
	complaints    *mocks.MockComplaintService
	maps          *mocks.MockMapService
	sos           *mocks.MockSOSService
	trips         *mocks.MockTripService
}

// newTestHandler создает роутер с мокированными сервисами
func newTestHandler(t *testing.T) (*testServices, *gin.Engine) {
	ctrl := gomock.NewController(t)
	svc := &testServices{
		notifications: mocks.NewMockNotificationService(ctrl),
		complaints:    mocks.NewMockComplaintService(ctrl),
		maps:          mocks.NewMockMapService(ctrl),
		sos:           mocks.NewMockSOSService(ctrl),
		trips:         mocks.NewMockTripService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(svc.notifications, svc.complaints, svc.maps, svc.sos, svc.trips, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return svc, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func userHeader() map[string]string {
	return map[string]string{"X-User-ID": testUserID}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestUserRoutes_MissingUserID(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.maps.EXPECT().MoveMarker(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/map/marker", bytes.NewBufferString(`{"latitude":1,"longitude":1}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "X-User-ID header required")
}

func TestMoveMarker_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	lat, lon := 25.2, 55.3

	svc.maps.EXPECT().
		MoveMarker(gomock.Any(), testUserID, orb.Point{lon, lat}).
		Return(geofence.Result{Messages: []string{"Restricted area: Zone A"}, Safe: false}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/map/marker", jsonBody(t, MarkerRequest{Latitude: &lat, Longitude: &lon}), userHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp MarkerCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Safe)
	assert.Equal(t, []string{"Restricted area: Zone A"}, resp.Messages)
	assert.Equal(t, lat, resp.Latitude)
}

func TestMoveMarker_SafeReturnsEmptyList(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.maps.EXPECT().MoveMarker(gomock.Any(), testUserID, gomock.Any()).Return(geofence.Result{Safe: true}, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/map/marker", bytes.NewBufferString(`{"latitude":0,"longitude":0}`), userHeader())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"messages":[]`)
}

func TestMoveMarker_ValidationError(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.maps.EXPECT().MoveMarker(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/map/marker", bytes.NewBufferString(`{"latitude":95}`), userHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMarker_NotFound(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.maps.EXPECT().LastMarker(gomock.Any(), testUserID).Return(nil, fmt.Errorf("wrap: %w", models.ErrNotFound)).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/map/marker", nil, userHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetHazardZones_Scale(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.maps.EXPECT().HazardZones(2.5).Return(geofence.ZonesCollection(nil, 2.5)).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/map/hazard-zones?scale=2.5", nil, userHeader())
	bad := makeRequest(router, http.MethodGet, "/api/v1/map/hazard-zones?scale=big", nil, userHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "FeatureCollection")
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestActivateSOS_WithoutBody(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.sos.EXPECT().
		Activate(gomock.Any(), testUserID, (*orb.Point)(nil)).
		Return(sos.Snapshot{State: sos.StateSwipe}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/activate", nil, userHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp SOSStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "swipe", resp.State)
}

func TestActivateSOS_WithLocation(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.sos.EXPECT().
		Activate(gomock.Any(), testUserID, &orb.Point{55.27, 25.2}).
		Return(sos.Snapshot{State: sos.StateSwipe}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/activate", bytes.NewBufferString(`{"latitude":25.2,"longitude":55.27}`), userHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestActivateSOS_PartialLocation(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.sos.EXPECT().Activate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/activate", bytes.NewBufferString(`{"latitude":25.2}`), userHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivateSOS_AlreadyRunning(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.sos.EXPECT().
		Activate(gomock.Any(), testUserID, gomock.Any()).
		Return(sos.Snapshot{State: sos.StateSent}, fmt.Errorf("service: %w", sos.ErrInvalidTransition)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/activate", nil, userHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSOSInput_CompletesSwipe(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.sos.EXPECT().
		Input(testUserID, sos.PointerEvent{Kind: sos.PointerMove, X: 260}).
		Return(sos.Snapshot{State: sos.StateSending, Progress: 92.8}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/input", bytes.NewBufferString(`{"kind":"move","x":260}`), userHeader())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"sending"`)
}

func TestSOSInput_InvalidKind(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.sos.EXPECT().Input(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/input", bytes.NewBufferString(`{"kind":"tap","x":1}`), userHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSOSInput_NotDragging(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.sos.EXPECT().Input(testUserID, gomock.Any()).Return(sos.Snapshot{State: sos.StateSwipe}, sos.ErrNotDragging).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/input", bytes.NewBufferString(`{"kind":"up","x":0}`), userHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetSOSState_WaitingWithResponders(t *testing.T) {
	svc, router := newTestHandler(t)
	snap := sos.Snapshot{
		State:             sos.StateWaiting,
		HelpFormAvailable: true,
		Responders: []sos.Marker{
			{Name: "You", Location: orb.Point{55.27, 25.2}, Color: "#ef4444"},
		},
	}

	svc.sos.EXPECT().State(testUserID).Return(snap).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos/state", nil, userHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp SOSStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Responders, 1)
	assert.Equal(t, 25.2, resp.Responders[0].Latitude)
	assert.Equal(t, 55.27, resp.Responders[0].Longitude)
	assert.True(t, resp.HelpFormAvailable)
}

func TestCloseSOS(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.sos.EXPECT().Close(testUserID).Return(sos.Snapshot{State: sos.StateInactive}).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/close", nil, userHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"inactive"`)
}

func TestLogEmergency_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	complaintID := uuid.New()

	svc.sos.EXPECT().
		LogEmergency(gomock.Any(), testUserID, "").
		Return(&models.Complaint{ID: complaintID, Status: models.StatusSubmitted, CreatedAt: time.Now()}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/emergency-log", nil, userHeader())

	require.Equal(t, http.StatusCreated, w.Code)
	var resp EmergencyLogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, complaintID, resp.ComplaintID)
	assert.Equal(t, "submitted", resp.Status)
}

func TestLogEmergency_ServiceError(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.sos.EXPECT().LogEmergency(gomock.Any(), testUserID, "help").Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/emergency-log", bytes.NewBufferString(`{"description":"help"}`), userHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestSubmitHelpRequest_ValidationErrors(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.complaints.EXPECT().
		SubmitHelpRequest(gomock.Any(), testUserID, gomock.Any()).
		Return(nil, &models.ValidationError{Messages: []string{"Category is required", "Title is required"}}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/complaints", bytes.NewBufferString(`{}`), userHeader())

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Category is required", "Title is required"}, resp.Errors)
}

func TestSubmitHelpRequest_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	complaintID := uuid.New()

	svc.complaints.EXPECT().
		SubmitHelpRequest(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, userID string, req *models.HelpRequest) (*models.Complaint, error) {
			assert.Equal(t, "accident", req.Category)
			assert.Equal(t, "Near the bridge", req.Location.Address)
			return &models.Complaint{ID: complaintID, UserID: userID, Category: req.Category}, nil
		}).Times(1)

	body := `{"category":"accident","title":"Crash","description":"Two cars","contactInfo":"+100","location":{"address":"Near the bridge"}}`
	w := makeRequest(router, http.MethodPost, "/api/v1/complaints", bytes.NewBufferString(body), userHeader())

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), complaintID.String())
}

func TestListComplaints_Filter(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.complaints.EXPECT().
		ListComplaints(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, filter models.ComplaintFilter) (*models.ComplaintPage, error) {
			assert.Equal(t, "submitted", filter.Status)
			assert.Equal(t, 2, filter.Page)
			assert.Equal(t, 5, filter.Limit)
			require.NotNil(t, filter.StartDate)
			assert.Equal(t, 2025, filter.StartDate.Year())
			return models.NewComplaintPage(nil, 7, 2, 5), nil
		}).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/complaints?status=submitted&page=2&limit=5&startDate=2025-01-01", nil, userHeader())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPages":2`)
}

func TestListComplaints_InvalidDate(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.complaints.EXPECT().ListComplaints(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/complaints?endDate=yesterday", nil, userHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "endDate")
}

func TestGetComplaint_InvalidID(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/complaints/not-a-uuid", nil, userHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid complaint ID")
}

func TestGetComplaint_Forbidden(t *testing.T) {
	svc, router := newTestHandler(t)
	id := uuid.New()

	svc.complaints.EXPECT().GetComplaint(gomock.Any(), testUserID, id).Return(nil, models.ErrForbidden).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/complaints/"+id.String(), nil, userHeader())

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetComplaintStats_RoutedBeforeID(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.complaints.EXPECT().GetStats(gomock.Any(), testUserID).Return(&models.ComplaintStats{Total: 3}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/complaints/stats", nil, userHeader())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":3`)
}

func TestCancelComplaint_AlreadyResolved(t *testing.T) {
	svc, router := newTestHandler(t)
	id := uuid.New()

	svc.complaints.EXPECT().
		CancelComplaint(gomock.Any(), testUserID, id, "").
		Return(nil, fmt.Errorf("service: %w", models.ErrInvalidState)).
		Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/v1/complaints/"+id.String()+"/cancel", nil, userHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddCommunication_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	id := uuid.New()

	svc.complaints.EXPECT().
		AddCommunication(gomock.Any(), testUserID, id, "Any update?").
		Return(&models.Communication{From: "user", Message: "Any update?"}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/complaints/"+id.String()+"/communication",
		bytes.NewBufferString(`{"message":"Any update?"}`), userHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubmitFeedback_InvalidRating(t *testing.T) {
	svc, router := newTestHandler(t)
	id := uuid.New()

	svc.complaints.EXPECT().
		SubmitFeedback(gomock.Any(), testUserID, id, 7, "").
		Return(nil, &models.ValidationError{Messages: []string{"Rating must be between 1 and 5"}}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/complaints/"+id.String()+"/feedback",
		bytes.NewBufferString(`{"rating":7}`), userHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Rating must be between 1 and 5")
}

func TestListNotifications_Paging(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.notifications.EXPECT().
		List(gomock.Any(), testUserID, true, 2, 10).
		Return([]*models.Notification{{ID: uuid.New(), Title: "sachet Alert"}}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/notifications?unread_only=true&page=2&pageSize=10", nil, userHeader())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sachet Alert")
}

func TestUnreadCount(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.notifications.EXPECT().UnreadCount(gomock.Any(), testUserID).Return(4, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/notifications/unread-count", nil, userHeader())

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":4}`, w.Body.String())
}

func TestMarkRead_NotFound(t *testing.T) {
	svc, router := newTestHandler(t)
	id := uuid.New()

	svc.notifications.EXPECT().MarkRead(gomock.Any(), testUserID, id).Return(models.ErrNotFound).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/notifications/"+id.String()+"/read", nil, userHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkAllRead(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.notifications.EXPECT().MarkAllRead(gomock.Any(), testUserID).Return(int64(3), nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/notifications/mark-all-read", nil, userHeader())

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":3}`, w.Body.String())
}

func TestDeleteNotification(t *testing.T) {
	svc, router := newTestHandler(t)
	id := uuid.New()

	svc.notifications.EXPECT().Delete(gomock.Any(), testUserID, id).Return(nil).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/notifications/"+id.String(), nil, userHeader())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetStats_Unauthorized(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.maps.EXPECT().GetStats(gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/admin/stats", nil)
	wrong := makeRequest(router, http.MethodGet, "/api/v1/admin/stats", nil, map[string]string{"X-API-Key": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Contains(t, wrong.Body.String(), "Invalid API key")
}

func TestGetStats_Success(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.maps.EXPECT().GetStats(gomock.Any()).Return(12, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/admin/stats", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_count":12,"window_minutes":60}`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
