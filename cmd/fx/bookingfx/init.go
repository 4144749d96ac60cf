package bookingfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/dinesh3456/essential-workers-booking/internal/api/controllers"
	"github.com/dinesh3456/essential-workers-booking/internal/repositories"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
	"github.com/dinesh3456/essential-workers-booking/pkg/logger"
)

var Module = fx.Provide(
	provideBookingRepo, providePaymentProcessor, provideBookingNotifier,
	provideBookingService, provideBookingController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func providePaymentProcessor(paymentService services.PaymentServiceInterface) services.PaymentProcessor {
	return paymentService
}

func provideBookingNotifier(notificationService services.NotificationServiceInterface) services.BookingNotifier {
	return notificationService
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	workerRepo repositories.WorkerRepository,
	catalogRepo repositories.CatalogRepository,
	payments services.PaymentProcessor,
	notifier services.BookingNotifier,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, workerRepo, catalogRepo, payments, notifier, logger.GetLogger())
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
