package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// @Summary Plan a trip
// @Description Creates a trip in status planned. Validation errors are returned as a list.
// @Tags Trips
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body models.TripInput true "Trip"
// @Success 201 {object} models.Trip
// @Failure 400 {object} ErrorResponse "Validation errors"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /trips [post]
func (h *Handler) createTrip(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "createTrip", "user_id": userID})

	var input models.TripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), userID, &input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// @Summary List trips
// @Tags Trips
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param status query string false "Status filter" Enums(planned, active, completed, cancelled)
// @Param includeArchived query bool false "Include archived trips"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.TripPage
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Router /trips [get]
func (h *Handler) listTrips(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "listTrips", "user_id": userID})

	filter, err := QueryToTripFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	page, err := h.tripService.ListTrips(c.Request.Context(), userID, filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Get the active trip
// @Tags Trips
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} models.Trip
// @Failure 404 {object} ErrorResponse "No active trip"
// @Router /trips/active [get]
func (h *Handler) getActiveTrip(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "getActiveTrip", "user_id": userID})

	trip, err := h.tripService.GetActiveTrip(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// @Summary Get the trip running today
// @Tags Trips
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} models.Trip
// @Failure 404 {object} ErrorResponse "No trip today"
// @Router /trips/current [get]
func (h *Handler) getCurrentTrip(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "getCurrentTrip", "user_id": userID})

	trip, err := h.tripService.GetCurrentTrip(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// @Summary Check whether the user has an active trip
// @Tags Trips
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} models.ActiveTripStatus
// @Router /trips/check-active [get]
func (h *Handler) checkActiveTrip(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "checkActiveTrip", "user_id": userID})

	status, err := h.tripService.CheckActiveTrip(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary Trip statistics
// @Tags Trips
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} models.TripStats
// @Router /trips/stats [get]
func (h *Handler) getTripStats(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "getTripStats", "user_id": userID})

	stats, err := h.tripService.GetStats(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get trip by ID
// @Tags Trips
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Trip ID"
// @Success 200 {object} models.Trip
// @Failure 400 {object} ErrorResponse "Invalid trip ID"
// @Failure 403 {object} ErrorResponse "Trip of another user"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Router /trips/{id} [get]
func (h *Handler) getTrip(c *gin.Context) {
	id, ok := parseID(c, "trip")
	if !ok {
		return
	}
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "getTrip", "user_id": userID, "id": id})

	trip, err := h.tripService.GetTrip(c.Request.Context(), userID, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// @Summary Update a trip
// @Description Only the given fields change. Completed, cancelled and archived trips cannot be edited.
// @Tags Trips
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Trip ID"
// @Param request body models.TripUpdate true "Changed fields"
// @Success 200 {object} models.Trip
// @Failure 400 {object} ErrorResponse "Validation errors"
// @Failure 409 {object} ErrorResponse "Trip is not editable"
// @Router /trips/{id} [put]
func (h *Handler) updateTrip(c *gin.Context) {
	id, ok := parseID(c, "trip")
	if !ok {
		return
	}
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "updateTrip", "user_id": userID, "id": id})

	var input models.TripUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), userID, id, input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// @Summary Delete a trip
// @Tags Trips
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Trip ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 409 {object} ErrorResponse "Active trip cannot be deleted"
// @Router /trips/{id} [delete]
func (h *Handler) deleteTrip(c *gin.Context) {
	id, ok := parseID(c, "trip")
	if !ok {
		return
	}
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "deleteTrip", "user_id": userID, "id": id})

	if err := h.tripService.DeleteTrip(c.Request.Context(), userID, id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Archive a trip
// @Tags Trips
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Trip ID"
// @Success 200 {object} models.Trip
// @Failure 409 {object} ErrorResponse "Trip is active or already archived"
// @Router /trips/{id}/archive [patch]
func (h *Handler) archiveTrip(c *gin.Context) {
	h.changeTrip(c, "archiveTrip", h.tripService.ArchiveTrip)
}

// @Summary Start a planned trip
// @Tags Trips
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Trip ID"
// @Success 200 {object} models.Trip
// @Failure 409 {object} ErrorResponse "Trip is not planned or another trip is active"
// @Router /trips/{id}/activate [patch]
func (h *Handler) activateTrip(c *gin.Context) {
	h.changeTrip(c, "activateTrip", h.tripService.ActivateTrip)
}

// @Summary Complete an active trip
// @Tags Trips
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Trip ID"
// @Success 200 {object} models.Trip
// @Failure 409 {object} ErrorResponse "Trip is not active"
// @Router /trips/{id}/complete [patch]
func (h *Handler) completeTrip(c *gin.Context) {
	h.changeTrip(c, "completeTrip", h.tripService.CompleteTrip)
}

// @Summary Cancel a planned or active trip
// @Tags Trips
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Trip ID"
// @Success 200 {object} models.Trip
// @Failure 409 {object} ErrorResponse "Trip already finished"
// @Router /trips/{id}/cancel [patch]
func (h *Handler) cancelTrip(c *gin.Context) {
	h.changeTrip(c, "cancelTrip", h.tripService.CancelTrip)
}

type tripChange func(ctx context.Context, userID string, id uuid.UUID) (*models.Trip, error)

// changeTrip - общий обработчик смены статуса или архивации поездки
func (h *Handler) changeTrip(c *gin.Context, method string, change tripChange) {
	id, ok := parseID(c, "trip")
	if !ok {
		return
	}
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": method, "user_id": userID, "id": id})

	trip, err := change(c.Request.Context(), userID, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}
