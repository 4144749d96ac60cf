package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

type notificationFixture struct {
	svc           *NotificationService
	notifications *fakeNotificationRepo
	bookings      *fakeBookingRepo
	mail          *fakeEmailSender
	sms           *fakeSMSSender
	push          *fakePushSender

	booking *db_models.Booking
}

func newNotificationFixture(t *testing.T) *notificationFixture {
	t.Helper()

	notifications := &fakeNotificationRepo{}
	bookings := newFakeBookingRepo(nil)
	mail := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	push := &fakePushSender{}

	customer := db_models.Account{
		BaseModel:       db_models.BaseModel{ID: uuid.New()},
		Email:           "customer@example.com",
		PhoneNumber:     "+15550100",
		IsPhoneVerified: true,
		FCMToken:        "customer-device",
	}
	workerAccount := db_models.Account{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Email:     "worker@example.com",
	}

	booking := &db_models.Booking{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		CustomerID:  customer.ID,
		ScheduledAt: time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		Customer:    customer,
		Worker: db_models.Worker{
			BaseModel: db_models.BaseModel{ID: uuid.New()},
			AccountID: workerAccount.ID,
			Account:   workerAccount,
		},
		Service: db_models.CatalogService{Name: "Deep Cleaning"},
	}
	require.NoError(t, bookings.Insert(context.Background(), booking))

	return &notificationFixture{
		svc:           NewNotificationService(notifications, bookings, mail, sms, push, zap.NewNop()),
		notifications: notifications,
		bookings:      bookings,
		mail:          mail,
		sms:           sms,
		push:          push,
		booking:       booking,
	}
}

func TestSendBookingNotificationPersistsForBothParties(t *testing.T) {
	f := newNotificationFixture(t)

	err := f.svc.SendBookingNotification(context.Background(), f.booking.ID, EventBookingConfirmed)
	require.NoError(t, err)

	require.Len(t, f.notifications.inserted, 2)
	assert.Equal(t, f.booking.CustomerID, f.notifications.inserted[0].AccountID)
	assert.Equal(t, f.booking.Worker.AccountID, f.notifications.inserted[1].AccountID)
	assert.Equal(t, "Booking Confirmed", f.notifications.inserted[0].Title)
	assert.Contains(t, f.notifications.inserted[0].Message, "Deep Cleaning")
}

func TestChannelFailuresAreAbsorbed(t *testing.T) {
	f := newNotificationFixture(t)
	f.mail.err = assert.AnError
	f.sms.err = assert.AnError
	f.push.err = assert.AnError

	err := f.svc.SendBookingNotification(context.Background(), f.booking.ID, EventBookingCompleted)
	require.NoError(t, err)

	// The persisted record is the source of truth even when every channel
	// fails.
	assert.Len(t, f.notifications.inserted, 2)
}

func TestPersistFailureStopsDispatch(t *testing.T) {
	f := newNotificationFixture(t)
	f.notifications.insertErr = assert.AnError

	err := f.svc.SendBookingNotification(context.Background(), f.booking.ID, EventBookingCreated)
	require.Error(t, err)
	assert.Empty(t, f.mail.sent)
}

func TestSMSRequiresVerifiedPhone(t *testing.T) {
	f := newNotificationFixture(t)

	err := f.svc.SendBookingNotification(context.Background(), f.booking.ID, EventBookingCreated)
	require.NoError(t, err)

	// Customer has a verified phone, worker has none.
	assert.Equal(t, []string{"+15550100"}, f.sms.sent)

	f.sms.sent = nil
	f.booking.Customer.IsPhoneVerified = false
	err = f.svc.SendBookingNotification(context.Background(), f.booking.ID, EventBookingCreated)
	require.NoError(t, err)
	assert.Empty(t, f.sms.sent)
}

func TestPushOnlyWithDeviceToken(t *testing.T) {
	f := newNotificationFixture(t)

	err := f.svc.SendBookingNotification(context.Background(), f.booking.ID, EventBookingCreated)
	require.NoError(t, err)
	assert.Equal(t, []string{"customer-device"}, f.push.sent)
}

func TestUnknownEventFallsBackToCreatedTemplates(t *testing.T) {
	f := newNotificationFixture(t)

	err := f.svc.SendBookingNotification(context.Background(), f.booking.ID, NotificationEvent("booking_exploded"))
	require.NoError(t, err)

	require.Len(t, f.notifications.inserted, 2)
	assert.Equal(t, "Booking Created", f.notifications.inserted[0].Title)
	assert.Equal(t, "New Booking Request", f.notifications.inserted[1].Title)
}

func TestEventForStatusMatchesConstants(t *testing.T) {
	assert.Equal(t, EventBookingConfirmed, EventForStatus(db_models.BookingStatusConfirmed))
	assert.Equal(t, EventBookingInProgress, EventForStatus(db_models.BookingStatusInProgress))
	assert.Equal(t, EventBookingCompleted, EventForStatus(db_models.BookingStatusCompleted))
	assert.Equal(t, EventBookingCancelled, EventForStatus(db_models.BookingStatusCancelled))
}

func TestSendBookingNotificationUnknownBooking(t *testing.T) {
	f := newNotificationFixture(t)

	err := f.svc.SendBookingNotification(context.Background(), uuid.New(), EventBookingCreated)
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}
