package paymentfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/dinesh3456/essential-workers-booking/config"
	"github.com/dinesh3456/essential-workers-booking/internal/api/controllers"
	"github.com/dinesh3456/essential-workers-booking/internal/repositories"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
	"github.com/dinesh3456/essential-workers-booking/pkg/logger"
)

var Module = fx.Provide(
	providePaymentRepo, provideGateway, providePaymentService, providePaymentController)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func provideGateway() services.PaymentGateway {
	return services.NewStripeGateway(
		config.AppConfig.StripeSecretKey,
		config.AppConfig.StripeWebhookSecret)
}

func providePaymentService(
	paymentRepo repositories.PaymentRepository,
	bookingRepo repositories.BookingRepository,
	gateway services.PaymentGateway,
) services.PaymentServiceInterface {
	return services.NewPaymentService(paymentRepo, bookingRepo, gateway, config.AppConfig.Currency, logger.GetLogger())
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
