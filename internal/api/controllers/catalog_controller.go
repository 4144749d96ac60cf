package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// CreateService godoc
// @Summary Create a catalog service
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request_models.UpsertCatalogServiceRequest true "Service payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /services [post]
func (s *CatalogController) CreateService(c *gin.Context) {
	var req request_models.UpsertCatalogServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	service, err := s.catalogService.CreateService(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, service, "Service created successfully")
}

// ListServices godoc
// @Summary List active catalog services
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /services [get]
func (s *CatalogController) ListServices(c *gin.Context) {
	services, err := s.catalogService.ListActiveServices(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, services, "Services fetched successfully")
}

// GetService godoc
// @Summary Get a catalog service by id
// @Tags Catalog
// @Produce json
// @Param id path string true "Service id"
// @Success 200 {object} utils.APIResponse
// @Router /services/{id} [get]
func (s *CatalogController) GetService(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	service, err := s.catalogService.GetServiceByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, service, "Service fetched successfully")
}

// UpdateService godoc
// @Summary Update a catalog service
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Service id"
// @Param request body request_models.UpsertCatalogServiceRequest true "Service payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /services/{id} [put]
func (s *CatalogController) UpdateService(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpsertCatalogServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	service, err := s.catalogService.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, service, "Service updated successfully")
}

// DeactivateService godoc
// @Summary Deactivate a catalog service
// @Tags Catalog
// @Produce json
// @Param id path string true "Service id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /services/{id} [delete]
func (s *CatalogController) DeactivateService(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := s.catalogService.DeactivateService(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Service deactivated successfully")
}
