package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *db_models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Booking, error)
	// HasConflict reports whether any booking for the worker at the exact
	// scheduled timestamp holds a non-terminal status.
	HasConflict(ctx context.Context, workerID uuid.UUID, scheduledAt time.Time) (bool, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]db_models.Booking, error)
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]db_models.Booking, error)
	Save(ctx context.Context, booking *db_models.Booking) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Worker").
		Preload("Worker.Account").
		Preload("Service").
		Preload("Payment").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) HasConflict(ctx context.Context, workerID uuid.UUID, scheduledAt time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("worker_id = ? AND scheduled_at = ? AND status IN ?",
			workerID, scheduledAt,
			[]db_models.BookingStatus{
				db_models.BookingStatusPending,
				db_models.BookingStatusConfirmed,
				db_models.BookingStatusInProgress,
			}).
		Count(&count).Error
	return count > 0, err
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Worker.Account").
		Preload("Service").
		Preload("Payment").
		Where("customer_id = ?", customerID).
		Order("scheduled_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Payment").
		Where("worker_id = ?", workerID).
		Order("scheduled_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) Save(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}
