package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// CreateReview godoc
// @Summary Review a completed booking
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews [post]
func (r *ReviewController) CreateReview(c *gin.Context) {
	reviewerID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := r.reviewService.CreateReview(c.Request.Context(), reviewerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review created successfully")
}

// ListWorkerReviews godoc
// @Summary List reviews for a worker
// @Tags Reviews
// @Produce json
// @Param id path string true "Worker id"
// @Success 200 {object} utils.APIResponse
// @Router /workers/{id}/reviews [get]
func (r *ReviewController) ListWorkerReviews(c *gin.Context) {
	workerID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	reviews, err := r.reviewService.ListWorkerReviews(c.Request.Context(), workerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}
