package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/response_models"
	"github.com/dinesh3456/essential-workers-booking/internal/repositories"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

// DistanceCalculator computes the distance in kilometers between two points.
type DistanceCalculator interface {
	Distance(p1, p2 db_models.Coordinates) float64
}

type WorkerServiceInterface interface {
	Onboard(ctx context.Context, accountID uuid.UUID, req request_models.OnboardWorkerRequest) (*db_models.Worker, error)
	GetWorkerByID(ctx context.Context, id uuid.UUID) (*db_models.Worker, error)
	ListBookable(ctx context.Context) ([]db_models.Worker, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.WorkerStatus) error
	UpdateAvailability(ctx context.Context, accountID uuid.UUID, available bool) error
	AssignServices(ctx context.Context, accountID uuid.UUID, serviceIDs []string) (*db_models.Worker, error)
	FindNearby(ctx context.Context, origin db_models.Coordinates, radiusKm float64) ([]response_models.NearbyWorkerResponse, error)
}

type WorkerService struct {
	workers  repositories.WorkerRepository
	accounts repositories.AccountRepository
	catalog  repositories.CatalogRepository
	distance DistanceCalculator
	logger   *zap.Logger
}

func NewWorkerService(
	workers repositories.WorkerRepository,
	accounts repositories.AccountRepository,
	catalog repositories.CatalogRepository,
	distance DistanceCalculator,
	logger *zap.Logger,
) WorkerServiceInterface {
	return &WorkerService{
		workers:  workers,
		accounts: accounts,
		catalog:  catalog,
		distance: distance,
		logger:   logger,
	}
}

// Onboard creates a worker profile for the account, pending approval. An
// account holds at most one profile; registering again is a conflict.
func (s *WorkerService) Onboard(ctx context.Context, accountID uuid.UUID, req request_models.OnboardWorkerRequest) (*db_models.Worker, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.NotFoundError("Account not found")
	}

	existing, err := s.workers.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ConflictError("Worker profile already exists for this account")
	}

	services, err := s.resolveServices(ctx, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	worker := &db_models.Worker{
		AccountID:      accountID,
		Bio:            req.Bio,
		HourlyRate:     req.HourlyRate,
		Location:       datatypes.NewJSONType(req.Location),
		Availability:   datatypes.NewJSONType(req.Availability),
		Certifications: datatypes.NewJSONType(req.Certifications),
		Status:         db_models.WorkerStatusPending,
		IsAvailable:    true,
		Services:       services,
	}
	if err := s.workers.Insert(ctx, worker); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if account.Role == db_models.RoleCustomer {
		if err := s.accounts.UpdateRole(ctx, accountID, db_models.RoleWorker); err != nil {
			s.logger.Warn("failed to promote account role",
				zap.String("account_id", accountID.String()),
				zap.Error(err))
		}
	}

	s.logger.Info("worker profile created",
		zap.String("worker_id", worker.ID.String()),
		zap.String("account_id", accountID.String()))
	return worker, nil
}

func (s *WorkerService) GetWorkerByID(ctx context.Context, id uuid.UUID) (*db_models.Worker, error) {
	worker, err := s.workers.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if worker == nil {
		return nil, utils.NotFoundError("Worker not found")
	}
	return worker, nil
}

func (s *WorkerService) ListBookable(ctx context.Context) ([]db_models.Worker, error) {
	workers, err := s.workers.ListBookable(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return workers, nil
}

// UpdateStatus is the admin approval lever. Any of the defined statuses may
// be set at any time.
func (s *WorkerService) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.WorkerStatus) error {
	switch status {
	case db_models.WorkerStatusPending, db_models.WorkerStatusApproved,
		db_models.WorkerStatusSuspended, db_models.WorkerStatusRejected:
	default:
		return utils.BadRequestError("Invalid worker status")
	}

	worker, err := s.workers.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if worker == nil {
		return utils.NotFoundError("Worker not found")
	}

	if err := s.workers.UpdateStatus(ctx, id, status); err != nil {
		return utils.ErrDatabaseError
	}
	s.logger.Info("worker status updated",
		zap.String("worker_id", id.String()),
		zap.String("status", string(status)))
	return nil
}

func (s *WorkerService) UpdateAvailability(ctx context.Context, accountID uuid.UUID, available bool) error {
	worker, err := s.workers.FindByAccountID(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if worker == nil {
		return utils.NotFoundError("Worker profile not found")
	}
	if err := s.workers.UpdateAvailability(ctx, worker.ID, available); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// AssignServices replaces the worker's offered services with the given set.
func (s *WorkerService) AssignServices(ctx context.Context, accountID uuid.UUID, serviceIDs []string) (*db_models.Worker, error) {
	worker, err := s.workers.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if worker == nil {
		return nil, utils.NotFoundError("Worker profile not found")
	}

	services, err := s.resolveServices(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	if err := s.workers.ReplaceServices(ctx, worker, services); err != nil {
		return nil, utils.ErrDatabaseError
	}
	worker.Services = services
	return worker, nil
}

// FindNearby filters bookable workers by haversine distance from origin and
// returns them sorted nearest first. Workers without stored coordinates are
// skipped.
func (s *WorkerService) FindNearby(ctx context.Context, origin db_models.Coordinates, radiusKm float64) ([]response_models.NearbyWorkerResponse, error) {
	if radiusKm <= 0 {
		radiusKm = 10
	}

	workers, err := s.workers.ListBookable(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	nearby := make([]response_models.NearbyWorkerResponse, 0, len(workers))
	for i := range workers {
		loc := workers[i].Location.Data()
		if loc.Coordinates.Lat == 0 && loc.Coordinates.Lng == 0 {
			continue
		}
		d := s.distance.Distance(origin, loc.Coordinates)
		if d <= radiusKm {
			nearby = append(nearby, response_models.NearbyWorkerResponse{
				Worker:     &workers[i],
				DistanceKm: d,
			})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby, nil
}

func (s *WorkerService) resolveServices(ctx context.Context, rawIDs []string) ([]db_models.CatalogService, error) {
	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, utils.BadRequestError("Invalid service id")
		}
		ids = append(ids, id)
	}

	services, err := s.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(services) != len(ids) {
		return nil, utils.BadRequestError("One or more services do not exist")
	}
	return services, nil
}
