package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
)

type CatalogRepository interface {
	Insert(ctx context.Context, service *db_models.CatalogService) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.CatalogService, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.CatalogService, error)
	ListActive(ctx context.Context) ([]db_models.CatalogService, error)
	Save(ctx context.Context, service *db_models.CatalogService) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Insert(ctx context.Context, service *db_models.CatalogService) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *catalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.CatalogService, error) {
	var service db_models.CatalogService
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *catalogRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.CatalogService, error) {
	var services []db_models.CatalogService
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&services).Error
	return services, err
}

func (r *catalogRepository) ListActive(ctx context.Context) ([]db_models.CatalogService, error) {
	var services []db_models.CatalogService
	err := r.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("name ASC").
		Find(&services).Error
	return services, err
}

func (r *catalogRepository) Save(ctx context.Context, service *db_models.CatalogService) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *catalogRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.CatalogService{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
