package notificationfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dinesh3456/essential-workers-booking/config"
	"github.com/dinesh3456/essential-workers-booking/internal/api/controllers"
	"github.com/dinesh3456/essential-workers-booking/internal/repositories"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
	"github.com/dinesh3456/essential-workers-booking/pkg/logger"
)

var Module = fx.Provide(
	provideNotificationRepo, provideSMSSender, providePushSender,
	provideNotificationService, provideNotificationController)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideSMSSender() services.SMSSender {
	sender, err := services.NewTwilioSMSSender(
		config.AppConfig.TwilioAccountSID,
		config.AppConfig.TwilioAuthToken,
		config.AppConfig.TwilioPhoneNumber)
	if err != nil {
		logger.GetLogger().Warn("sms sender unavailable", zap.Error(err))
		return services.NewNoopSMSSender(logger.GetLogger())
	}
	return sender
}

func providePushSender() services.PushSender {
	sender, err := services.NewFCMPushSender(context.Background(), config.AppConfig.FirebaseCredentialsFile)
	if err != nil {
		logger.GetLogger().Warn("push sender unavailable", zap.Error(err))
		return services.NewNoopPushSender(logger.GetLogger())
	}
	return sender
}

func provideNotificationService(
	notificationRepo repositories.NotificationRepository,
	bookingRepo repositories.BookingRepository,
	mail services.EmailSender,
	sms services.SMSSender,
	push services.PushSender,
) services.NotificationServiceInterface {
	return services.NewNotificationService(notificationRepo, bookingRepo, mail, sms, push, logger.GetLogger())
}

func provideNotificationController(notificationService services.NotificationServiceInterface) *controllers.NotificationController {
	return controllers.NewNotificationController(notificationService)
}
