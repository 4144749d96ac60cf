package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreateIntent godoc
// @Summary Create a payment intent for a booking
// @Description Opens a processor payment intent for the booking's total and returns the client secret
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreatePaymentIntentRequest true "Payment intent payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/intent [post]
func (p *PaymentController) CreateIntent(c *gin.Context) {
	var req request_models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	intent, err := p.paymentService.CreateIntent(c.Request.Context(), bookingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, intent, "Payment intent created successfully")
}

// HandleWebhook receives processor callbacks. The raw body is needed for
// signature verification, so it is read before any binding.
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unable to read webhook payload")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := p.paymentService.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Webhook processed")
}
