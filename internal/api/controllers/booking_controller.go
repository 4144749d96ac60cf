package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
// @Summary Create a booking
// @Description Book a worker for a catalog service at a scheduled time
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	customerID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), customerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, booking, "Booking created successfully")
}

// ListBookings godoc
// @Summary List the caller's bookings
// @Description Customers see bookings they placed; workers see bookings assigned to them
// @Tags Bookings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [get]
func (b *BookingController) ListBookings(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	role := db_models.AccountRole(c.GetString("role"))
	bookings, err := b.bookingService.ListBookings(c.Request.Context(), accountID, role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

// GetBooking godoc
// @Summary Get a booking by id
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (b *BookingController) GetBooking(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	booking, err := b.bookingService.GetBookingByID(c.Request.Context(), id, accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking fetched successfully")
}

// UpdateStatus godoc
// @Summary Advance a booking through its lifecycle
// @Description pending -> confirmed -> in_progress -> completed, with cancellation from pending or confirmed
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking id"
// @Param request body request_models.UpdateBookingStatusRequest true "Target status payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{id}/status [patch]
func (b *BookingController) UpdateStatus(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.UpdateBookingStatus(c.Request.Context(), id, accountID, req.Status, req.Reason)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking status updated successfully")
}

// Cancel godoc
// @Summary Cancel a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking id"
// @Param request body request_models.CancelBookingRequest false "Cancellation payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{id}/cancel [post]
func (b *BookingController) Cancel(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.CancelBookingRequest
	// The reason body is optional.
	_ = c.ShouldBindJSON(&req)

	booking, err := b.bookingService.CancelBooking(c.Request.Context(), id, accountID, req.Reason)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking cancelled successfully")
}
