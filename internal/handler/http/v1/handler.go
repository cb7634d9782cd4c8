package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/shenikar/tourist_safety_system/internal/sos"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	notificationService service.NotificationService
	complaintService    service.ComplaintService
	mapService          service.MapService
	sosService          service.SOSService
	tripService         service.TripService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(
	notificationService service.NotificationService,
	complaintService service.ComplaintService,
	mapService service.MapService,
	sosService service.SOSService,
	tripService service.TripService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		notificationService: notificationService,
		complaintService:    complaintService,
		mapService:          mapService,
		sosService:          sosService,
		tripService:         tripService,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// bindJSON разбирает и проверяет тело запроса. При ошибке ответ уже отправлен.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	return h.bind(c, log, dst, false)
}

// bindOptionalJSON то же, что bindJSON, но пустое тело допустимо
func (h *Handler) bindOptionalJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	return h.bind(c, log, dst, true)
}

func (h *Handler) bind(c *gin.Context, log *logrus.Entry, dst any, optional bool) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !(optional && errors.Is(err, io.EOF)) {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// parseID разбирает UUID из пути. При ошибке ответ уже отправлен.
func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + what + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Warn("Request rejected by validation")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Errors: validationErr.Messages})
	case errors.Is(err, sos.ErrUnknownPointer):
		log.WithError(err).Warn("Unknown pointer event")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown pointer event"})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, models.ErrForbidden):
		log.WithError(err).Warn("Access denied")
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})
	case errors.Is(err, models.ErrInvalidState),
		errors.Is(err, sos.ErrInvalidTransition),
		errors.Is(err, sos.ErrNotDragging):
		log.WithError(err).Warn("Operation not allowed in current state")
		c.JSON(http.StatusConflict, ErrorResponse{Error: "operation not allowed in current state"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// @Summary Get location check statistics
// @Description Get the number of unique users that checked their position within the stats window. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	userCount, err := h.mapService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount, WindowMinutes: h.cfg.StatsTimeWindowMinutes})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
