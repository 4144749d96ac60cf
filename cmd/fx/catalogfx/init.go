package catalogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/dinesh3456/essential-workers-booking/internal/api/controllers"
	"github.com/dinesh3456/essential-workers-booking/internal/repositories"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
	"github.com/dinesh3456/essential-workers-booking/pkg/logger"
)

var Module = fx.Provide(
	provideCatalogRepo, provideCatalogService, provideCatalogController)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideCatalogService(catalogRepo repositories.CatalogRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(catalogRepo, logger.GetLogger())
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}
