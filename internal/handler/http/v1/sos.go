package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/shenikar/tourist_safety_system/internal/sos"
	"github.com/sirupsen/logrus"
)

// @Summary Open the SOS slider
// @Description Moves the SOS screen from inactive to swipe. Without coordinates the last marker position is used.
// @Tags SOS
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param position body SOSActivateRequest false "User position"
// @Success 200 {object} SOSStateResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "SOS already in progress"
// @Router /sos/activate [post]
func (h *Handler) activateSOS(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "activateSOS", "user_id": userID})

	var input SOSActivateRequest
	if !h.bindOptionalJSON(c, log, &input) {
		return
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "latitude and longitude must be provided together"})
		return
	}

	var location *orb.Point
	if input.Latitude != nil {
		location = &orb.Point{*input.Longitude, *input.Latitude}
	}

	snap, err := h.sosService.Activate(c.Request.Context(), userID, location)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SnapshotToResponse(snap))
}

// @Summary Send a slider pointer event
// @Description Feeds down/move/up events to the swipe gesture. Reaching 90% progress sends the SOS.
// @Tags SOS
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param event body PointerRequest true "Pointer event"
// @Success 200 {object} SOSStateResponse
// @Failure 400 {object} ErrorResponse "Invalid event"
// @Failure 409 {object} ErrorResponse "Slider is not active"
// @Router /sos/input [post]
func (h *Handler) sosInput(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "sosInput", "user_id": userID})

	var input PointerRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	snap, err := h.sosService.Input(userID, sos.PointerEvent{Kind: sos.PointerKind(input.Kind), X: *input.X})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SnapshotToResponse(snap))
}

// @Summary Close the SOS screen
// @Description Returns to inactive from any state and cancels pending transitions
// @Tags SOS
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} SOSStateResponse
// @Router /sos/close [post]
func (h *Handler) closeSOS(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotToResponse(h.sosService.Close(currentUserID(c))))
}

// @Summary Get the SOS screen state
// @Tags SOS
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} SOSStateResponse
// @Router /sos/state [get]
func (h *Handler) getSOSState(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotToResponse(h.sosService.State(currentUserID(c))))
}

// @Summary Log the emergency report
// @Description Registers a critical emergency complaint from the sent or waiting state
// @Tags SOS
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param report body EmergencyLogRequest false "Emergency description"
// @Success 201 {object} EmergencyLogResponse
// @Failure 409 {object} ErrorResponse "SOS not sent yet"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sos/emergency-log [post]
func (h *Handler) logEmergency(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "logEmergency", "user_id": userID})

	var input EmergencyLogRequest
	if !h.bindOptionalJSON(c, log, &input) {
		return
	}

	complaint, err := h.sosService.LogEmergency(c.Request.Context(), userID, input.Description)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ComplaintToEmergencyResponse(complaint))
}

// @Summary Help request categories
// @Tags SOS
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {array} models.HelpCategory
// @Router /sos/categories [get]
func (h *Handler) getHelpCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.sosService.HelpCategories())
}
