package request_models

type CreatePaymentIntentRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
}
