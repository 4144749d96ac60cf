package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

type LocationController struct {
	locationService services.LocationServiceInterface
}

func NewLocationController(locationService services.LocationServiceInterface) *LocationController {
	return &LocationController{
		locationService: locationService,
	}
}

// Geocode godoc
// @Summary Resolve an address to coordinates
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body request_models.GeocodeRequest true "Geocode payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /locations/geocode [post]
func (l *LocationController) Geocode(c *gin.Context) {
	var req request_models.GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := l.locationService.Geocode(c.Request.Context(), req.Address)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Address resolved successfully")
}

// ReverseGeocode godoc
// @Summary Resolve coordinates to an address
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body request_models.ReverseGeocodeRequest true "Reverse geocode payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /locations/reverse-geocode [post]
func (l *LocationController) ReverseGeocode(c *gin.Context) {
	var req request_models.ReverseGeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := l.locationService.ReverseGeocode(c.Request.Context(), req.Lat, req.Lng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Coordinates resolved successfully")
}
