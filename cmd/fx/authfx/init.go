package authfx

import (
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/dinesh3456/essential-workers-booking/config"
	"github.com/dinesh3456/essential-workers-booking/internal/api/controllers"
	"github.com/dinesh3456/essential-workers-booking/internal/repositories"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
	"github.com/dinesh3456/essential-workers-booking/pkg/logger"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

var Module = fx.Provide(
	provideAccountRepo, provideTokenManager, provideAuthService, provideAuthController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenManager() *utils.TokenManager {
	ttl := time.Duration(config.AppConfig.TokenTTLMinutes) * time.Minute
	return utils.NewTokenManager(config.AppConfig.JWTSecret, ttl)
}

func provideAuthService(accountRepo repositories.AccountRepository, tokens *utils.TokenManager) services.AuthServiceInterface {
	return services.NewAuthService(accountRepo, tokens, logger.GetLogger())
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}
