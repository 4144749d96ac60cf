package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/internal/repositories"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

// EmailSender delivers one rendered message over email.
type EmailSender interface {
	SendMail(to, subject, body string) error
}

// SMSSender delivers one short message to a phone number.
type SMSSender interface {
	SendSMS(to, body string) error
}

// PushSender delivers a push notification to a device token.
type PushSender interface {
	SendPush(ctx context.Context, token, title, body string, data map[string]string) error
}

type NotificationServiceInterface interface {
	SendBookingNotification(ctx context.Context, bookingID uuid.UUID, event NotificationEvent) error
	ListNotifications(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Notification, error)
	MarkRead(ctx context.Context, id, accountID uuid.UUID) error
}

type NotificationService struct {
	notifications repositories.NotificationRepository
	bookings      repositories.BookingRepository
	mail          EmailSender
	sms           SMSSender
	push          PushSender
	logger        *zap.Logger
}

func NewNotificationService(
	notifications repositories.NotificationRepository,
	bookings repositories.BookingRepository,
	mail EmailSender,
	sms SMSSender,
	push PushSender,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		bookings:      bookings,
		mail:          mail,
		sms:           sms,
		push:          push,
		logger:        logger,
	}
}

// SendBookingNotification fans one lifecycle event out to both parties.
// For each recipient the Notification row is persisted first; channel sends
// are best-effort and their failures are logged, never propagated.
func (s *NotificationService) SendBookingNotification(ctx context.Context, bookingID uuid.UUID, event NotificationEvent) error {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil {
		return utils.NotFoundError("Booking not found")
	}

	pair := templatesFor(event, booking)

	if err := s.notifyRecipient(ctx, &booking.Customer, pair.Customer, booking); err != nil {
		return err
	}
	return s.notifyRecipient(ctx, &booking.Worker.Account, pair.Worker, booking)
}

func (s *NotificationService) notifyRecipient(ctx context.Context, recipient *db_models.Account, content messageContent, booking *db_models.Booking) error {
	record := &db_models.Notification{
		AccountID: recipient.ID,
		Title:     content.Title,
		Message:   content.Message,
		Type:      db_models.NotificationTypeBookingUpdate,
	}
	if err := s.notifications.Insert(ctx, record); err != nil {
		return utils.ErrDatabaseError
	}

	if recipient.Email != "" {
		if err := s.mail.SendMail(recipient.Email, content.Title, s.emailBody(content, booking)); err != nil {
			s.logger.Warn("email sending failed",
				zap.String("account_id", recipient.ID.String()),
				zap.Error(err))
		}
	}

	if recipient.PhoneNumber != "" && recipient.IsPhoneVerified {
		if err := s.sms.SendSMS(recipient.PhoneNumber, content.Message); err != nil {
			s.logger.Warn("sms sending failed",
				zap.String("account_id", recipient.ID.String()),
				zap.Error(err))
		}
	}

	if recipient.FCMToken != "" {
		data := map[string]string{
			"booking_id": booking.ID.String(),
			"type":       string(db_models.NotificationTypeBookingUpdate),
		}
		if err := s.push.SendPush(ctx, recipient.FCMToken, content.Title, content.Message, data); err != nil {
			s.logger.Warn("push sending failed",
				zap.String("account_id", recipient.ID.String()),
				zap.Error(err))
		}
	}

	return nil
}

func (s *NotificationService) emailBody(content messageContent, booking *db_models.Booking) string {
	loc := booking.CustomerLocation.Data()
	return fmt.Sprintf(
		"%s\n\nService: %s\nScheduled: %s\nDuration: %d minutes\nAmount: %.2f\nLocation: %s",
		content.Message,
		booking.Service.Name,
		booking.ScheduledAt.Format("Mon, 02 Jan 2006 15:04"),
		booking.EstimatedDuration,
		booking.TotalAmount,
		loc.Address,
	)
}

func (s *NotificationService) ListNotifications(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Notification, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	notifications, err := s.notifications.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, accountID uuid.UUID) error {
	if err := s.notifications.MarkRead(ctx, id, accountID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
