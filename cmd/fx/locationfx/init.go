package locationfx

import (
	"go.uber.org/fx"

	"github.com/dinesh3456/essential-workers-booking/config"
	"github.com/dinesh3456/essential-workers-booking/internal/api/controllers"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
)

var Module = fx.Provide(
	provideLocationService, provideLocationInterface, provideDistanceCalculator, provideLocationController)

func provideLocationService() *services.LocationService {
	return services.NewLocationService(config.AppConfig.GoogleMapsAPIKey)
}

func provideLocationInterface(svc *services.LocationService) services.LocationServiceInterface {
	return svc
}

func provideDistanceCalculator(svc *services.LocationService) services.DistanceCalculator {
	return svc
}

func provideLocationController(locationService services.LocationServiceInterface) *controllers.LocationController {
	return controllers.NewLocationController(locationService)
}
