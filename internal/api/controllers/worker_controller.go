package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

type WorkerController struct {
	workerService services.WorkerServiceInterface
}

func NewWorkerController(workerService services.WorkerServiceInterface) *WorkerController {
	return &WorkerController{
		workerService: workerService,
	}
}

// Onboard godoc
// @Summary Create a worker profile for the current account
// @Tags Workers
// @Accept json
// @Produce json
// @Param request body request_models.OnboardWorkerRequest true "Worker profile payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workers [post]
func (w *WorkerController) Onboard(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.OnboardWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	worker, err := w.workerService.Onboard(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, worker, "Worker profile created successfully")
}

// GetWorker godoc
// @Summary Get a worker by id
// @Tags Workers
// @Produce json
// @Param id path string true "Worker id"
// @Success 200 {object} utils.APIResponse
// @Router /workers/{id} [get]
func (w *WorkerController) GetWorker(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	worker, err := w.workerService.GetWorkerByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, worker, "Worker fetched successfully")
}

// ListWorkers godoc
// @Summary List approved, available workers
// @Tags Workers
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /workers [get]
func (w *WorkerController) ListWorkers(c *gin.Context) {
	workers, err := w.workerService.ListBookable(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workers, "Workers fetched successfully")
}

// Nearby godoc
// @Summary Find bookable workers within a radius
// @Tags Workers
// @Produce json
// @Param lat query number true "Origin latitude"
// @Param lng query number true "Origin longitude"
// @Param radius_km query number false "Search radius in kilometers (default 10)"
// @Success 200 {object} utils.APIResponse
// @Router /workers/nearby [get]
func (w *WorkerController) Nearby(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lng query parameters are required")
		return
	}
	radius, _ := strconv.ParseFloat(c.DefaultQuery("radius_km", "10"), 64)

	origin := db_models.Coordinates{Lat: lat, Lng: lng}
	nearby, err := w.workerService.FindNearby(c.Request.Context(), origin, radius)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nearby, "Nearby workers fetched successfully")
}

// UpdateStatus godoc
// @Summary Update a worker's approval status
// @Description Admin-only approval, suspension and rejection
// @Tags Workers
// @Accept json
// @Produce json
// @Param id path string true "Worker id"
// @Param request body request_models.UpdateWorkerStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workers/{id}/status [patch]
func (w *WorkerController) UpdateStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateWorkerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := w.workerService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Worker status updated successfully")
}

// UpdateAvailability toggles the current worker's availability flag.
// @Summary Update availability
// @Tags Workers
// @Accept json
// @Produce json
// @Param request body request_models.UpdateAvailabilityRequest true "Availability payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workers/availability [patch]
func (w *WorkerController) UpdateAvailability(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := w.workerService.UpdateAvailability(c.Request.Context(), accountID, *req.IsAvailable); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Availability updated successfully")
}

// AssignServices replaces the current worker's offered service set.
// @Summary Assign catalog services to the current worker
// @Tags Workers
// @Accept json
// @Produce json
// @Param request body request_models.AssignServicesRequest true "Service ids payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workers/services [put]
func (w *WorkerController) AssignServices(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.AssignServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	worker, err := w.workerService.AssignServices(c.Request.Context(), accountID, req.ServiceIDs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, worker, "Services assigned successfully")
}
