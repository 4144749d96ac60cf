package workerfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/dinesh3456/essential-workers-booking/internal/api/controllers"
	"github.com/dinesh3456/essential-workers-booking/internal/repositories"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
	"github.com/dinesh3456/essential-workers-booking/pkg/logger"
)

var Module = fx.Provide(
	provideWorkerRepo, provideWorkerService, provideWorkerController)

func provideWorkerRepo(db *gorm.DB) repositories.WorkerRepository {
	return repositories.NewWorkerRepository(db)
}

func provideWorkerService(
	workerRepo repositories.WorkerRepository,
	accountRepo repositories.AccountRepository,
	catalogRepo repositories.CatalogRepository,
	distance services.DistanceCalculator,
) services.WorkerServiceInterface {
	return services.NewWorkerService(workerRepo, accountRepo, catalogRepo, distance, logger.GetLogger())
}

func provideWorkerController(workerService services.WorkerServiceInterface) *controllers.WorkerController {
	return controllers.NewWorkerController(workerService)
}
