package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/internal/repositories"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

// bookingTransitions is the allowed-successor set per status. completed and
// cancelled are terminal.
var bookingTransitions = map[db_models.BookingStatus][]db_models.BookingStatus{
	db_models.BookingStatusPending:    {db_models.BookingStatusConfirmed, db_models.BookingStatusCancelled},
	db_models.BookingStatusConfirmed:  {db_models.BookingStatusInProgress, db_models.BookingStatusCancelled},
	db_models.BookingStatusInProgress: {db_models.BookingStatusCompleted},
}

func canTransition(from, to db_models.BookingStatus) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// PaymentProcessor is the slice of the payment orchestrator the booking
// lifecycle needs.
type PaymentProcessor interface {
	Capture(ctx context.Context, bookingID uuid.UUID) error
	Refund(ctx context.Context, paymentID uuid.UUID) error
}

// BookingNotifier fans one lifecycle event out to both booking parties.
type BookingNotifier interface {
	SendBookingNotification(ctx context.Context, bookingID uuid.UUID, event NotificationEvent) error
}

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, customerID uuid.UUID, req request_models.CreateBookingRequest) (*db_models.Booking, error)
	GetBookingByID(ctx context.Context, id, actorID uuid.UUID) (*db_models.Booking, error)
	ListBookings(ctx context.Context, actorID uuid.UUID, role db_models.AccountRole) ([]db_models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id, actorID uuid.UUID, target db_models.BookingStatus, reason string) (*db_models.Booking, error)
	CancelBooking(ctx context.Context, id, actorID uuid.UUID, reason string) (*db_models.Booking, error)
}

type BookingService struct {
	bookings repositories.BookingRepository
	workers  repositories.WorkerRepository
	catalog  repositories.CatalogRepository
	payments PaymentProcessor
	notifier BookingNotifier
	logger   *zap.Logger
}

func NewBookingService(
	bookings repositories.BookingRepository,
	workers repositories.WorkerRepository,
	catalog repositories.CatalogRepository,
	payments PaymentProcessor,
	notifier BookingNotifier,
	logger *zap.Logger,
) BookingServiceInterface {
	return &BookingService{
		bookings: bookings,
		workers:  workers,
		catalog:  catalog,
		payments: payments,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateBooking validates worker, service, membership and schedule, freezes
// the price, and persists the booking in pending state.
//
// The conflict check is a read followed by an insert with no transactional
// guard spanning both; two concurrent requests for the same worker and
// timestamp can both pass the check. Known limitation carried from the
// original design.
func (s *BookingService) CreateBooking(ctx context.Context, customerID uuid.UUID, req request_models.CreateBookingRequest) (*db_models.Booking, error) {
	workerID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		return nil, utils.BadRequestError("Invalid worker id")
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, utils.BadRequestError("Invalid service id")
	}

	worker, err := s.workers.FindByID(ctx, workerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if worker == nil || !worker.Bookable() {
		return nil, utils.NotFoundError("Worker not found or not available")
	}

	service, err := s.catalog.FindByID(ctx, serviceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if service == nil {
		return nil, utils.NotFoundError("Service not found")
	}

	offers, err := s.workers.OffersService(ctx, workerID, serviceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !offers {
		return nil, utils.BadRequestError("Worker does not provide this service")
	}

	conflict, err := s.bookings.HasConflict(ctx, workerID, req.ScheduledAt)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if conflict {
		return nil, utils.BadRequestError("Worker is not available at the requested time")
	}

	totalAmount := utils.RoundMoney(worker.HourlyRate * float64(service.EstimatedDuration) / 60)

	booking := &db_models.Booking{
		CustomerID:             customerID,
		WorkerID:               workerID,
		ServiceID:              serviceID,
		Description:            req.Description,
		ScheduledAt:            req.ScheduledAt,
		Status:                 db_models.BookingStatusPending,
		EstimatedDuration:      service.EstimatedDuration,
		TotalAmount:            totalAmount,
		CustomerLocation:       datatypes.NewJSONType(req.CustomerLocation),
		AdditionalRequirements: datatypes.NewJSONType(req.AdditionalRequirements),
	}

	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.dispatch(ctx, booking.ID, EventBookingCreated)

	return booking, nil
}

func (s *BookingService) GetBookingByID(ctx context.Context, id, actorID uuid.UUID) (*db_models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.NotFoundError("Booking not found")
	}
	if booking.CustomerID != actorID && booking.Worker.AccountID != actorID {
		return nil, utils.ForbiddenError("Access denied")
	}
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context, actorID uuid.UUID, role db_models.AccountRole) ([]db_models.Booking, error) {
	if role == db_models.RoleWorker {
		worker, err := s.workers.FindByAccountID(ctx, actorID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if worker == nil {
			return nil, utils.NotFoundError("Worker profile not found")
		}
		bookings, err := s.bookings.ListByWorker(ctx, worker.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		return bookings, nil
	}

	bookings, err := s.bookings.ListByCustomer(ctx, actorID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

// UpdateBookingStatus applies one transition from the allowed-successor
// table. A cancelled target goes through CancelBooking so the reason is
// recorded and any captured payment refunded. Ordering is deliberate: the
// new state is persisted first, then side effects run; a notification
// failure never rolls the state back. A capture failure on completion
// leaves the booking completed with the payment failed, a documented
// terminal inconsistency requiring manual reconciliation.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, id, actorID uuid.UUID, target db_models.BookingStatus, reason string) (*db_models.Booking, error) {
	if target == db_models.BookingStatusCancelled {
		return s.CancelBooking(ctx, id, actorID, reason)
	}

	booking, err := s.GetBookingByID(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if !canTransition(booking.Status, target) {
		return nil, utils.BadRequestError(
			fmt.Sprintf("Cannot change status from %s to %s", booking.Status, target))
	}

	now := time.Now()
	booking.Status = target
	switch target {
	case db_models.BookingStatusInProgress:
		booking.StartedAt = &now
	case db_models.BookingStatusCompleted:
		booking.CompletedAt = &now
	}

	if err := s.bookings.Save(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if target == db_models.BookingStatusCompleted {
		if err := s.workers.IncrementCompletedJobs(ctx, booking.WorkerID); err != nil {
			s.logger.Warn("failed to bump completed jobs", zap.Error(err))
		}
		if err := s.payments.Capture(ctx, booking.ID); err != nil {
			return nil, err
		}
	}

	s.dispatch(ctx, booking.ID, EventForStatus(target))

	return booking, nil
}

// CancelBooking is the cancellation path of the transition operation: only
// pending and confirmed bookings may be cancelled, a reason is recorded, and
// a completed payment is refunded.
func (s *BookingService) CancelBooking(ctx context.Context, id, actorID uuid.UUID, reason string) (*db_models.Booking, error) {
	booking, err := s.GetBookingByID(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if !canTransition(booking.Status, db_models.BookingStatusCancelled) {
		return nil, utils.BadRequestError("Cannot cancel booking in current status")
	}

	booking.Status = db_models.BookingStatusCancelled
	booking.CancellationReason = reason

	if err := s.bookings.Save(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := s.refundIfCompleted(ctx, booking); err != nil {
		return nil, err
	}
	s.dispatch(ctx, booking.ID, EventBookingCancelled)

	return booking, nil
}

// refundIfCompleted issues a refund when a captured payment exists. The
// booking is already persisted as cancelled at this point; a refund failure
// surfaces to the caller without rolling that back.
func (s *BookingService) refundIfCompleted(ctx context.Context, booking *db_models.Booking) error {
	if booking.Payment == nil || booking.Payment.Status != db_models.PaymentStatusCompleted {
		return nil
	}
	return s.payments.Refund(ctx, booking.Payment.ID)
}

func (s *BookingService) dispatch(ctx context.Context, bookingID uuid.UUID, event NotificationEvent) {
	if err := s.notifier.SendBookingNotification(ctx, bookingID, event); err != nil {
		s.logger.Warn("booking notification dispatch failed",
			zap.String("booking_id", bookingID.String()),
			zap.String("event", string(event)),
			zap.Error(err))
	}
}
