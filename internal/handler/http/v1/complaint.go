package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// @Summary Submit a help request
// @Description Creates a complaint from the help form. Validation errors are returned as a list.
// @Tags Complaints
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body models.HelpRequest true "Help request"
// @Success 201 {object} models.Complaint
// @Failure 400 {object} ErrorResponse "Validation errors"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /complaints [post]
func (h *Handler) submitHelpRequest(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "submitHelpRequest", "user_id": userID})

	// форма проверяется в сервисе, чтобы сохранить порядок сообщений
	var input models.HelpRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	complaint, err := h.complaintService.SubmitHelpRequest(c.Request.Context(), userID, &input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, complaint)
}

// @Summary List complaints
// @Tags Complaints
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param status query string false "Status filter"
// @Param category query string false "Category filter"
// @Param urgency query string false "Urgency filter"
// @Param startDate query string false "Created at or after (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Created at or before (RFC 3339 or YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ComplaintPage
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Router /complaints [get]
func (h *Handler) listComplaints(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "listComplaints", "user_id": userID})

	filter, err := QueryToComplaintFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	page, err := h.complaintService.ListComplaints(c.Request.Context(), userID, filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Complaint statistics
// @Tags Complaints
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} models.ComplaintStats
// @Router /complaints/stats [get]
func (h *Handler) getComplaintStats(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "getComplaintStats", "user_id": userID})

	stats, err := h.complaintService.GetStats(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get complaint by ID
// @Tags Complaints
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Complaint ID"
// @Success 200 {object} models.Complaint
// @Failure 400 {object} ErrorResponse "Invalid complaint ID"
// @Failure 403 {object} ErrorResponse "Complaint of another user"
// @Failure 404 {object} ErrorResponse "Complaint not found"
// @Router /complaints/{id} [get]
func (h *Handler) getComplaint(c *gin.Context) {
	id, ok := parseID(c, "complaint")
	if !ok {
		return
	}
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "getComplaint", "user_id": userID, "id": id})

	complaint, err := h.complaintService.GetComplaint(c.Request.Context(), userID, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// @Summary Cancel a complaint
// @Tags Complaints
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Complaint ID"
// @Param request body CancelComplaintRequest false "Cancel reason"
// @Success 200 {object} models.Complaint
// @Failure 404 {object} ErrorResponse "Complaint not found"
// @Failure 409 {object} ErrorResponse "Complaint already finished"
// @Router /complaints/{id}/cancel [patch]
func (h *Handler) cancelComplaint(c *gin.Context) {
	id, ok := parseID(c, "complaint")
	if !ok {
		return
	}
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "cancelComplaint", "user_id": userID, "id": id})

	var input CancelComplaintRequest
	if !h.bindOptionalJSON(c, log, &input) {
		return
	}

	complaint, err := h.complaintService.CancelComplaint(c.Request.Context(), userID, id, input.Reason)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// @Summary Add a message to the complaint thread
// @Tags Complaints
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Complaint ID"
// @Param request body CommunicationRequest true "Message"
// @Success 201 {object} models.Communication
// @Failure 400 {object} ErrorResponse "Empty message"
// @Failure 404 {object} ErrorResponse "Complaint not found"
// @Router /complaints/{id}/communication [post]
func (h *Handler) addCommunication(c *gin.Context) {
	id, ok := parseID(c, "complaint")
	if !ok {
		return
	}
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "addCommunication", "user_id": userID, "id": id})

	var input CommunicationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	communication, err := h.complaintService.AddCommunication(c.Request.Context(), userID, id, input.Message)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, communication)
}

// @Summary Rate a resolved complaint
// @Tags Complaints
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Complaint ID"
// @Param request body FeedbackRequest true "Rating 1-5 and comment"
// @Success 201 {object} models.Feedback
// @Failure 400 {object} ErrorResponse "Invalid rating"
// @Failure 409 {object} ErrorResponse "Complaint not resolved or already rated"
// @Router /complaints/{id}/feedback [post]
func (h *Handler) submitFeedback(c *gin.Context) {
	id, ok := parseID(c, "complaint")
	if !ok {
		return
	}
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "submitFeedback", "user_id": userID, "id": id})

	var input FeedbackRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	feedback, err := h.complaintService.SubmitFeedback(c.Request.Context(), userID, id, input.Rating, input.Comment)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, feedback)
}
