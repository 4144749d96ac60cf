package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/internal/repositories"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, reviewerID uuid.UUID, req request_models.CreateReviewRequest) (*db_models.Review, error)
	ListWorkerReviews(ctx context.Context, workerID uuid.UUID) ([]db_models.Review, error)
}

type ReviewService struct {
	reviews  repositories.ReviewRepository
	bookings repositories.BookingRepository
	workers  repositories.WorkerRepository
	logger   *zap.Logger
}

func NewReviewService(
	reviews repositories.ReviewRepository,
	bookings repositories.BookingRepository,
	workers repositories.WorkerRepository,
	logger *zap.Logger,
) ReviewServiceInterface {
	return &ReviewService{
		reviews:  reviews,
		bookings: bookings,
		workers:  workers,
		logger:   logger,
	}
}

// CreateReview records a rating for a completed booking. Only the booking's
// customer may review it, and each booking takes at most one review. The
// single-review rule is enforced here by lookup, not by a storage constraint.
func (s *ReviewService) CreateReview(ctx context.Context, reviewerID uuid.UUID, req request_models.CreateReviewRequest) (*db_models.Review, error) {
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, utils.BadRequestError("Invalid booking id")
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.NotFoundError("Booking not found")
	}
	if booking.CustomerID != reviewerID {
		return nil, utils.ForbiddenError("Only the booking customer can leave a review")
	}
	if booking.Status != db_models.BookingStatusCompleted {
		return nil, utils.BadRequestError("Only completed bookings can be reviewed")
	}

	existing, err := s.reviews.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ConflictError("Booking has already been reviewed")
	}

	review := &db_models.Review{
		ReviewerID: reviewerID,
		WorkerID:   booking.WorkerID,
		ServiceID:  booking.ServiceID,
		BookingID:  bookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviews.Insert(ctx, review); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.refreshWorkerRating(ctx, booking.WorkerID)
	return review, nil
}

func (s *ReviewService) ListWorkerReviews(ctx context.Context, workerID uuid.UUID) ([]db_models.Review, error) {
	worker, err := s.workers.FindByID(ctx, workerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if worker == nil {
		return nil, utils.NotFoundError("Worker not found")
	}

	reviews, err := s.reviews.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return reviews, nil
}

// refreshWorkerRating recomputes the worker's aggregate from stored reviews.
// The review itself is already persisted; aggregate refresh failures are
// logged and absorbed.
func (s *ReviewService) refreshWorkerRating(ctx context.Context, workerID uuid.UUID) {
	avg, count, err := s.reviews.AverageRating(ctx, workerID)
	if err != nil {
		s.logger.Warn("failed to recompute worker rating",
			zap.String("worker_id", workerID.String()),
			zap.Error(err))
		return
	}
	if err := s.workers.UpdateRating(ctx, workerID, utils.RoundMoney(avg), count); err != nil {
		s.logger.Warn("failed to store worker rating",
			zap.String("worker_id", workerID.String()),
			zap.Error(err))
	}
}
