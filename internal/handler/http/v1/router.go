package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты пользователя, идентификатор приходит в X-User-ID
	user := api.Group("", UserIDMiddleware(h.logger))

	mapGroup := user.Group("/map")
	{
		mapGroup.POST("/marker", h.moveMarker)
		mapGroup.GET("/marker", h.getMarker)
		mapGroup.GET("/restricted-areas", h.getRestrictedAreas)
		mapGroup.GET("/hazards", h.getHazards)
		mapGroup.GET("/hazard-zones", h.getHazardZones)
	}

	sosGroup := user.Group("/sos")
	{
		sosGroup.POST("/activate", h.activateSOS)
		sosGroup.POST("/input", h.sosInput)
		sosGroup.POST("/close", h.closeSOS)
		sosGroup.GET("/state", h.getSOSState)
		sosGroup.POST("/emergency-log", h.logEmergency)
		sosGroup.GET("/categories", h.getHelpCategories)
	}

	complaints := user.Group("/complaints")
	{
		complaints.POST("", h.submitHelpRequest)
		complaints.GET("", h.listComplaints)
		complaints.GET("/stats", h.getComplaintStats)
		complaints.GET("/:id", h.getComplaint)
		complaints.PATCH("/:id/cancel", h.cancelComplaint)
		complaints.POST("/:id/communication", h.addCommunication)
		complaints.POST("/:id/feedback", h.submitFeedback)
	}

	trips := user.Group("/trips")
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
		trips.GET("/active", h.getActiveTrip)
		trips.GET("/current", h.getCurrentTrip)
		trips.GET("/check-active", h.checkActiveTrip)
		trips.GET("/stats", h.getTripStats)
		trips.GET("/:id", h.getTrip)
		trips.PUT("/:id", h.updateTrip)
		trips.DELETE("/:id", h.deleteTrip)
		trips.PATCH("/:id/archive", h.archiveTrip)
		trips.PATCH("/:id/activate", h.activateTrip)
		trips.PATCH("/:id/complete", h.completeTrip)
		trips.PATCH("/:id/cancel", h.cancelTrip)
	}

	notifications := user.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/unread-count", h.unreadCount)
		notifications.POST("/mark-all-read", h.markAllRead)
		notifications.POST("/:id/read", h.markRead)
		notifications.DELETE("/:id", h.deleteNotification)
	}

	admin := api.Group("/admin", APIKeyAuthMiddleware(h.cfg, h.logger))
	admin.GET("/stats", h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
