package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
)

type ReviewRepository interface {
	Insert(ctx context.Context, review *db_models.Review) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*db_models.Review, error)
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]db_models.Review, error)
	AverageRating(ctx context.Context, workerID uuid.UUID) (float64, int, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).First(&review, "booking_id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) AverageRating(ctx context.Context, workerID uuid.UUID) (float64, int, error) {
	var result struct {
		Avg   float64
		Count int
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("worker_id = ?", workerID).
		Scan(&result).Error
	return result.Avg, result.Count, err
}
