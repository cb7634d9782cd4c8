package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
)

// @Summary Move the user marker
// @Description Check the final marker position against restricted areas and hazards. Notifications are created for every alert.
// @Tags Map
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param marker body MarkerRequest true "Marker position"
// @Success 200 {object} MarkerCheckResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Missing user ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /map/marker [post]
func (h *Handler) moveMarker(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "moveMarker", "user_id": userID})

	var input MarkerRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	result, err := h.mapService.MoveMarker(c.Request.Context(), userID, orb.Point{*input.Longitude, *input.Latitude})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ResultToMarkerResponse(*input.Latitude, *input.Longitude, result))
}

// @Summary Get the last marker position
// @Tags Map
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} MarkerResponse
// @Failure 401 {object} ErrorResponse "Missing user ID"
// @Failure 404 {object} ErrorResponse "No marker position yet"
// @Router /map/marker [get]
func (h *Handler) getMarker(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithFields(logrus.Fields{"method": "getMarker", "user_id": userID})

	position, err := h.mapService.LastMarker(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToMarkerResponse(position))
}

// @Summary Restricted areas layer
// @Description GeoJSON FeatureCollection of restricted area polygons
// @Tags Map
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Router /map/restricted-areas [get]
func (h *Handler) getRestrictedAreas(c *gin.Context) {
	c.JSON(http.StatusOK, h.mapService.RestrictedAreas())
}

// @Summary Hazard points layer
// @Description GeoJSON FeatureCollection of hazard points with map symbols
// @Tags Map
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Router /map/hazards [get]
func (h *Handler) getHazards(c *gin.Context) {
	c.JSON(http.StatusOK, h.mapService.Hazards())
}

// @Summary Hazard zone circles
// @Description GeoJSON circles around hazards. scale multiplies the base 2 km radius for the pulse animation.
// @Tags Map
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param scale query number false "Radius multiplier" default(1)
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} ErrorResponse "Invalid scale"
// @Router /map/hazard-zones [get]
func (h *Handler) getHazardZones(c *gin.Context) {
	scale := 1.0
	if raw := c.Query("scale"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid scale"})
			return
		}
		scale = v
	}
	c.JSON(http.StatusOK, h.mapService.HazardZones(scale))
}
