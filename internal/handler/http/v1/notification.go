package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @Summary List notifications
// @Tags Notifications
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param unread_only query bool false "Only unread"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "listNotifications", "user_id": userID})

	unreadOnly, _ := strconv.ParseBool(c.DefaultQuery("unread_only", "false"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	notifications, err := h.notificationService.List(c.Request.Context(), userID, unreadOnly, page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// @Summary Count unread notifications
// @Tags Notifications
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} UnreadCountResponse
// @Router /notifications/unread-count [get]
func (h *Handler) unreadCount(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "unreadCount", "user_id": userID})

	count, err := h.notificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, UnreadCountResponse{Count: count})
}

// @Summary Mark a notification as read
// @Tags Notifications
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Router /notifications/{id}/read [post]
func (h *Handler) markRead(c *gin.Context) {
	id, ok := parseID(c, "notification")
	if !ok {
		return
	}
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "markRead", "user_id": userID, "id": id})

	if err := h.notificationService.MarkRead(c.Request.Context(), userID, id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications as read
// @Tags Notifications
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} MarkAllReadResponse
// @Router /notifications/mark-all-read [post]
func (h *Handler) markAllRead(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "markAllRead", "user_id": userID})

	updated, err := h.notificationService.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MarkAllReadResponse{Updated: updated})
}

// @Summary Delete a notification
// @Tags Notifications
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Router /notifications/{id} [delete]
func (h *Handler) deleteNotification(c *gin.Context) {
	id, ok := parseID(c, "notification")
	if !ok {
		return
	}
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "deleteNotification", "user_id": userID, "id": id})

	if err := h.notificationService.Delete(c.Request.Context(), userID, id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
