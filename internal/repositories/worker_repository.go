package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
)

type WorkerRepository interface {
	Insert(ctx context.Context, worker *db_models.Worker) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Worker, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Worker, error)
	ListBookable(ctx context.Context) ([]db_models.Worker, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.WorkerStatus) error
	UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error
	ReplaceServices(ctx context.Context, worker *db_models.Worker, services []db_models.CatalogService) error
	OffersService(ctx context.Context, workerID, serviceID uuid.UUID) (bool, error)
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64, totalReviews int) error
	IncrementCompletedJobs(ctx context.Context, id uuid.UUID) error
}

type workerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &workerRepository{db: db}
}

func (w *workerRepository) Insert(ctx context.Context, worker *db_models.Worker) error {
	return w.db.WithContext(ctx).Create(worker).Error
}

func (w *workerRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Worker, error) {
	var worker db_models.Worker
	err := w.db.WithContext(ctx).
		Preload("Account").
		Preload("Services").
		First(&worker, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &worker, nil
}

func (w *workerRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Worker, error) {
	var worker db_models.Worker
	err := w.db.WithContext(ctx).
		Preload("Services").
		First(&worker, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &worker, nil
}

func (w *workerRepository) ListBookable(ctx context.Context) ([]db_models.Worker, error) {
	var workers []db_models.Worker
	err := w.db.WithContext(ctx).
		Preload("Account").
		Preload("Services").
		Where("status = ? AND is_available = TRUE", db_models.WorkerStatusApproved).
		Find(&workers).Error
	return workers, err
}

func (w *workerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.WorkerStatus) error {
	return w.db.WithContext(ctx).
		Model(&db_models.Worker{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (w *workerRepository) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	return w.db.WithContext(ctx).
		Model(&db_models.Worker{}).
		Where("id = ?", id).
		Update("is_available", available).Error
}

func (w *workerRepository) ReplaceServices(ctx context.Context, worker *db_models.Worker, services []db_models.CatalogService) error {
	return w.db.WithContext(ctx).Model(worker).Association("Services").Replace(services)
}

// OffersService is a membership check against the worker_services join
// table; it does not verify ownership of the service row.
func (w *workerRepository) OffersService(ctx context.Context, workerID, serviceID uuid.UUID) (bool, error) {
	var count int64
	err := w.db.WithContext(ctx).
		Table("worker_services").
		Where("worker_id = ? AND catalog_service_id = ?", workerID, serviceID).
		Count(&count).Error
	return count > 0, err
}

func (w *workerRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, totalReviews int) error {
	return w.db.WithContext(ctx).
		Model(&db_models.Worker{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "total_reviews": totalReviews}).Error
}

func (w *workerRepository) IncrementCompletedJobs(ctx context.Context, id uuid.UUID) error {
	return w.db.WithContext(ctx).
		Model(&db_models.Worker{}).
		Where("id = ?", id).
		Update("completed_jobs", gorm.Expr("completed_jobs + 1")).Error
}
