package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/response_models"
	"github.com/dinesh3456/essential-workers-booking/internal/repositories"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

type PaymentServiceInterface interface {
	CreateIntent(ctx context.Context, bookingID uuid.UUID) (*response_models.PaymentIntentResponse, error)
	Capture(ctx context.Context, bookingID uuid.UUID) error
	Refund(ctx context.Context, paymentID uuid.UUID) error
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type PaymentService struct {
	payments repositories.PaymentRepository
	bookings repositories.BookingRepository
	gateway  PaymentGateway
	currency string
	logger   *zap.Logger
}

func NewPaymentService(
	payments repositories.PaymentRepository,
	bookings repositories.BookingRepository,
	gateway PaymentGateway,
	currency string,
	logger *zap.Logger,
) PaymentServiceInterface {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{
		payments: payments,
		bookings: bookings,
		gateway:  gateway,
		currency: currency,
		logger:   logger,
	}
}

// CreateIntent opens a payment intent for the booking's frozen total and
// records a pending Payment row keyed to the intent id. One row is created
// per call; callers are expected to check for an existing payment first.
func (s *PaymentService) CreateIntent(ctx context.Context, bookingID uuid.UUID) (*response_models.PaymentIntentResponse, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.BadRequestError("Booking not found")
	}

	metadata := map[string]string{
		"booking_id":  booking.ID.String(),
		"customer_id": booking.CustomerID.String(),
		"worker_id":   booking.WorkerID.String(),
	}

	intentID, clientSecret, err := s.gateway.CreateIntent(
		utils.ToMinorUnits(booking.TotalAmount), s.currency, metadata)
	if err != nil {
		return nil, utils.BadRequestWrap("Payment intent creation failed", err)
	}

	payment := &db_models.Payment{
		BookingID:             booking.ID,
		StripePaymentIntentID: intentID,
		Amount:                booking.TotalAmount,
		Currency:              s.currency,
		Status:                db_models.PaymentStatusPending,
	}
	if err := s.payments.Insert(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PaymentIntentResponse{
		ClientSecret:    clientSecret,
		PaymentIntentID: intentID,
	}, nil
}

// Capture settles the booking's payment by checking the intent's status at
// the processor. Any non-succeeded outcome marks the Payment failed and
// fails the call.
func (s *PaymentService) Capture(ctx context.Context, bookingID uuid.UUID) error {
	payment, err := s.payments.FindByBookingID(ctx, bookingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if payment == nil {
		return utils.BadRequestError("Payment not found for booking")
	}

	status, err := s.gateway.IntentStatus(payment.StripePaymentIntentID)
	if err != nil {
		s.markFailed(ctx, payment.ID)
		return utils.BadRequestWrap("Payment processing failed", err)
	}

	if status != IntentStatusSucceeded {
		s.markFailed(ctx, payment.ID)
		return utils.BadRequestError("Payment not completed")
	}

	now := time.Now()
	if err := s.payments.UpdateStatus(ctx, payment.ID, map[string]interface{}{
		"status":       db_models.PaymentStatusCompleted,
		"processed_at": &now,
	}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// Refund reverses a completed payment against the stored intent id.
func (s *PaymentService) Refund(ctx context.Context, paymentID uuid.UUID) error {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if payment == nil || payment.Status != db_models.PaymentStatusCompleted {
		return utils.BadRequestError("Invalid payment for refund")
	}

	refundID, err := s.gateway.CreateRefund(payment.StripePaymentIntentID)
	if err != nil {
		return utils.BadRequestWrap("Refund processing failed", err)
	}

	now := time.Now()
	if err := s.payments.UpdateStatus(ctx, payment.ID, map[string]interface{}{
		"status":      db_models.PaymentStatusRefunded,
		"refunded_at": &now,
	}); err != nil {
		return utils.ErrDatabaseError
	}

	s.logger.Info("payment refunded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("refund_id", refundID))
	return nil
}

// HandleWebhook verifies the processor's signature before any database
// mutation, then applies the event to the matching local Payment.
// Unrecognized event types are accepted and ignored.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		return utils.BadRequestWrap("Webhook signature verification failed", err)
	}

	switch event.Type {
	case WebhookIntentSucceeded:
		return s.applyWebhookStatus(ctx, event.IntentID, db_models.PaymentStatusCompleted)
	case WebhookIntentFailed:
		return s.applyWebhookStatus(ctx, event.IntentID, db_models.PaymentStatusFailed)
	default:
		s.logger.Debug("ignoring webhook event", zap.String("type", event.Type))
		return nil
	}
}

func (s *PaymentService) applyWebhookStatus(ctx context.Context, intentID string, status db_models.PaymentStatus) error {
	payment, err := s.payments.FindByIntentID(ctx, intentID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if payment == nil {
		// Nothing local to update; ack so the processor stops retrying.
		s.logger.Warn("webhook for unknown intent", zap.String("intent_id", intentID))
		return nil
	}

	updates := map[string]interface{}{"status": status}
	if status == db_models.PaymentStatusCompleted {
		now := time.Now()
		updates["processed_at"] = &now
	}
	if err := s.payments.UpdateStatus(ctx, payment.ID, updates); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *PaymentService) markFailed(ctx context.Context, paymentID uuid.UUID) {
	if err := s.payments.UpdateStatus(ctx, paymentID, map[string]interface{}{
		"status": db_models.PaymentStatusFailed,
	}); err != nil {
		s.logger.Error("failed to mark payment failed",
			zap.String("payment_id", paymentID.String()),
			zap.Error(err))
	}
}
