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

type CatalogServiceInterface interface {
	CreateService(ctx context.Context, req request_models.UpsertCatalogServiceRequest) (*db_models.CatalogService, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*db_models.CatalogService, error)
	ListActiveServices(ctx context.Context) ([]db_models.CatalogService, error)
	UpdateService(ctx context.Context, id uuid.UUID, req request_models.UpsertCatalogServiceRequest) (*db_models.CatalogService, error)
	DeactivateService(ctx context.Context, id uuid.UUID) error
}

type CatalogService struct {
	catalog repositories.CatalogRepository
	logger  *zap.Logger
}

func NewCatalogService(catalog repositories.CatalogRepository, logger *zap.Logger) CatalogServiceInterface {
	return &CatalogService{catalog: catalog, logger: logger}
}

func (s *CatalogService) CreateService(ctx context.Context, req request_models.UpsertCatalogServiceRequest) (*db_models.CatalogService, error) {
	service := &db_models.CatalogService{
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		Price:             req.Price,
		EstimatedDuration: req.EstimatedDuration,
		IsActive:          true,
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	if err := s.catalog.Insert(ctx, service); err != nil {
		return nil, utils.ErrDatabaseError
	}
	s.logger.Info("catalog service created",
		zap.String("service_id", service.ID.String()),
		zap.String("name", service.Name))
	return service, nil
}

func (s *CatalogService) GetServiceByID(ctx context.Context, id uuid.UUID) (*db_models.CatalogService, error) {
	service, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if service == nil {
		return nil, utils.NotFoundError("Service not found")
	}
	return service, nil
}

func (s *CatalogService) ListActiveServices(ctx context.Context) ([]db_models.CatalogService, error) {
	services, err := s.catalog.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return services, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, req request_models.UpsertCatalogServiceRequest) (*db_models.CatalogService, error) {
	service, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if service == nil {
		return nil, utils.NotFoundError("Service not found")
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Category = req.Category
	service.Price = req.Price
	service.EstimatedDuration = req.EstimatedDuration
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := s.catalog.Save(ctx, service); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return service, nil
}

// DeactivateService soft-disables a service. Existing bookings keep their
// frozen price and duration.
func (s *CatalogService) DeactivateService(ctx context.Context, id uuid.UUID) error {
	service, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if service == nil {
		return utils.NotFoundError("Service not found")
	}
	if err := s.catalog.Deactivate(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
