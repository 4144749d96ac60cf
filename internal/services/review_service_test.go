package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

type reviewFixture struct {
	svc      ReviewServiceInterface
	reviews  *fakeReviewRepo
	bookings *fakeBookingRepo
	workers  *fakeWorkerRepo

	customerID uuid.UUID
	worker     *db_models.Worker
	booking    *db_models.Booking
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	reviews := &fakeReviewRepo{}
	workers := newFakeWorkerRepo()
	bookings := newFakeBookingRepo(workers)

	worker := workers.add(&db_models.Worker{
		AccountID: uuid.New(),
		Status:    db_models.WorkerStatusApproved,
	})

	customerID := uuid.New()
	booking := &db_models.Booking{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		CustomerID: customerID,
		WorkerID:   worker.ID,
		ServiceID:  uuid.New(),
		Status:     db_models.BookingStatusCompleted,
	}
	require.NoError(t, bookings.Insert(context.Background(), booking))

	return &reviewFixture{
		svc:        NewReviewService(reviews, bookings, workers, zap.NewNop()),
		reviews:    reviews,
		bookings:   bookings,
		workers:    workers,
		customerID: customerID,
		worker:     worker,
		booking:    booking,
	}
}

func TestCreateReviewUpdatesWorkerAggregate(t *testing.T) {
	f := newReviewFixture(t)

	review, err := f.svc.CreateReview(context.Background(), f.customerID, request_models.CreateReviewRequest{
		BookingID: f.booking.ID.String(),
		Rating:    4,
		Comment:   "Solid work, arrived on time.",
	})
	require.NoError(t, err)

	assert.Equal(t, f.worker.ID, review.WorkerID)
	assert.Equal(t, 4.0, f.workers.ratings[f.worker.ID])
	assert.Equal(t, 1, f.worker.TotalReviews)
}

func TestCreateReviewOnlyByBookingCustomer(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.svc.CreateReview(context.Background(), uuid.New(), request_models.CreateReviewRequest{
		BookingID: f.booking.ID.String(),
		Rating:    5,
	})
	require.Error(t, err)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
}

func TestCreateReviewRequiresCompletedBooking(t *testing.T) {
	f := newReviewFixture(t)
	f.booking.Status = db_models.BookingStatusInProgress

	_, err := f.svc.CreateReview(context.Background(), f.customerID, request_models.CreateReviewRequest{
		BookingID: f.booking.ID.String(),
		Rating:    5,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completed")
}

func TestCreateReviewOncePerBooking(t *testing.T) {
	f := newReviewFixture(t)

	req := request_models.CreateReviewRequest{BookingID: f.booking.ID.String(), Rating: 5}
	_, err := f.svc.CreateReview(context.Background(), f.customerID, req)
	require.NoError(t, err)

	_, err = f.svc.CreateReview(context.Background(), f.customerID, req)
	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestListWorkerReviewsUnknownWorker(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.svc.ListWorkerReviews(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}
