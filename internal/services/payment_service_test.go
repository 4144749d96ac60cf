package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

type paymentFixture struct {
	svc      PaymentServiceInterface
	payments *fakePaymentRepo
	bookings *fakeBookingRepo
	gateway  *fakeGateway

	booking *db_models.Booking
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	payments := newFakePaymentRepo()
	bookings := newFakeBookingRepo(nil)
	gateway := &fakeGateway{
		intentID:     "pi_test_123",
		clientSecret: "pi_test_123_secret",
		status:       IntentStatusSucceeded,
	}

	booking := &db_models.Booking{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		CustomerID:  uuid.New(),
		WorkerID:    uuid.New(),
		TotalAmount: 90.00,
		Status:      db_models.BookingStatusPending,
	}
	require.NoError(t, bookings.Insert(context.Background(), booking))

	return &paymentFixture{
		svc:      NewPaymentService(payments, bookings, gateway, "usd", zap.NewNop()),
		payments: payments,
		bookings: bookings,
		gateway:  gateway,
		booking:  booking,
	}
}

func TestCreateIntentRecordsPendingPayment(t *testing.T) {
	f := newPaymentFixture(t)

	resp, err := f.svc.CreateIntent(context.Background(), f.booking.ID)
	require.NoError(t, err)

	assert.Equal(t, "pi_test_123", resp.PaymentIntentID)
	assert.Equal(t, "pi_test_123_secret", resp.ClientSecret)

	stored, _ := f.payments.FindByBookingID(context.Background(), f.booking.ID)
	require.NotNil(t, stored)
	assert.Equal(t, db_models.PaymentStatusPending, stored.Status)
	assert.Equal(t, 90.00, stored.Amount)
	assert.Equal(t, "usd", stored.Currency)
}

func TestCreateIntentUnknownBooking(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.CreateIntent(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
}

func TestCreateIntentGatewayFailureWrapped(t *testing.T) {
	f := newPaymentFixture(t)
	f.gateway.createErr = errors.New("card network down")

	_, err := f.svc.CreateIntent(context.Background(), f.booking.ID)
	require.Error(t, err)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
	assert.Contains(t, err.Error(), "Payment intent creation failed")
}

func TestCaptureMarksCompleted(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.CreateIntent(context.Background(), f.booking.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Capture(context.Background(), f.booking.ID))

	stored, _ := f.payments.FindByBookingID(context.Background(), f.booking.ID)
	assert.Equal(t, db_models.PaymentStatusCompleted, stored.Status)
	assert.NotNil(t, stored.ProcessedAt)
}

func TestCaptureNonSucceededIntentMarksFailed(t *testing.T) {
	f := newPaymentFixture(t)
	f.gateway.status = "requires_payment_method"

	_, err := f.svc.CreateIntent(context.Background(), f.booking.ID)
	require.NoError(t, err)

	err = f.svc.Capture(context.Background(), f.booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Payment not completed")

	stored, _ := f.payments.FindByBookingID(context.Background(), f.booking.ID)
	assert.Equal(t, db_models.PaymentStatusFailed, stored.Status)
}

func TestCaptureWithoutPayment(t *testing.T) {
	f := newPaymentFixture(t)

	err := f.svc.Capture(context.Background(), f.booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Payment not found for booking")
}

func TestRefundOnlyFromCompleted(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.CreateIntent(context.Background(), f.booking.ID)
	require.NoError(t, err)
	pending, _ := f.payments.FindByBookingID(context.Background(), f.booking.ID)

	err = f.svc.Refund(context.Background(), pending.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid payment for refund")
	assert.Zero(t, f.gateway.refundCalls)

	require.NoError(t, f.svc.Capture(context.Background(), f.booking.ID))
	require.NoError(t, f.svc.Refund(context.Background(), pending.ID))

	stored, _ := f.payments.FindByID(context.Background(), pending.ID)
	assert.Equal(t, db_models.PaymentStatusRefunded, stored.Status)
	assert.NotNil(t, stored.RefundedAt)
	assert.Equal(t, 1, f.gateway.refundCalls)
}

func TestWebhookInvalidSignatureMutatesNothing(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.CreateIntent(context.Background(), f.booking.ID)
	require.NoError(t, err)

	f.gateway.webhookErr = errors.New("signature mismatch")
	err = f.svc.HandleWebhook(context.Background(), []byte(`{}`), "t=1,v1=bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Webhook signature verification failed")

	stored, _ := f.payments.FindByBookingID(context.Background(), f.booking.ID)
	assert.Equal(t, db_models.PaymentStatusPending, stored.Status)
}

func TestWebhookSucceededCompletesPayment(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.CreateIntent(context.Background(), f.booking.ID)
	require.NoError(t, err)

	f.gateway.webhookEvent = &WebhookEvent{Type: WebhookIntentSucceeded, IntentID: "pi_test_123"}
	require.NoError(t, f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))

	stored, _ := f.payments.FindByIntentID(context.Background(), "pi_test_123")
	assert.Equal(t, db_models.PaymentStatusCompleted, stored.Status)
}

func TestWebhookFailedMarksPaymentFailed(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.CreateIntent(context.Background(), f.booking.ID)
	require.NoError(t, err)

	f.gateway.webhookEvent = &WebhookEvent{Type: WebhookIntentFailed, IntentID: "pi_test_123"}
	require.NoError(t, f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))

	stored, _ := f.payments.FindByIntentID(context.Background(), "pi_test_123")
	assert.Equal(t, db_models.PaymentStatusFailed, stored.Status)
}

func TestWebhookUnknownEventAcknowledged(t *testing.T) {
	f := newPaymentFixture(t)

	f.gateway.webhookEvent = &WebhookEvent{Type: "charge.updated", IntentID: "pi_other"}
	require.NoError(t, f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))
}

func TestWebhookUnknownIntentAcknowledged(t *testing.T) {
	f := newPaymentFixture(t)

	f.gateway.webhookEvent = &WebhookEvent{Type: WebhookIntentSucceeded, IntentID: "pi_missing"}
	require.NoError(t, f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))
}
