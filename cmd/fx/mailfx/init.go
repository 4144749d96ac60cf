package mailfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/dinesh3456/essential-workers-booking/config"
	"github.com/dinesh3456/essential-workers-booking/internal/services"
	"github.com/dinesh3456/essential-workers-booking/pkg/logger"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.EmailSender {
	cfg := services.SMTPConfig{
		Host:     config.AppConfig.SMTPHost,
		Port:     config.AppConfig.SMTPPort, // 587 for STARTTLS; use 465 with UseSSL=true for SMTPS
		Username: config.AppConfig.SMTPUsername,
		Password: config.AppConfig.SMTPPassword,
		From:     config.AppConfig.FromEmail,
		FromName: config.AppConfig.FromName,
		UseSSL:   config.AppConfig.SMTPPort == 465,

		AppName: config.AppConfig.FromName,
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		logger.GetLogger().Warn("mail sender unavailable", zap.Error(err))
		return services.NewNoopEmailSender(logger.GetLogger())
	}
	return mailService
}
