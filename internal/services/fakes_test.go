package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
)

// In-memory repository fakes shared by the service tests.

type fakeBookingRepo struct {
	bookings  map[uuid.UUID]*db_models.Booking
	workers   *fakeWorkerRepo
	insertErr error
}

func newFakeBookingRepo(workers *fakeWorkerRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uuid.UUID]*db_models.Booking),
		workers:  workers,
	}
}

func (f *fakeBookingRepo) Insert(_ context.Context, booking *db_models.Booking) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	f.bookings[booking.ID] = booking
	return nil
}

// FindByID mirrors the real repository's worker preload so ownership checks
// against Worker.AccountID behave the same.
func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	if f.workers != nil {
		if w := f.workers.workers[booking.WorkerID]; w != nil {
			booking.Worker = *w
		}
	}
	return booking, nil
}

func (f *fakeBookingRepo) HasConflict(_ context.Context, workerID uuid.UUID, scheduledAt time.Time) (bool, error) {
	for _, b := range f.bookings {
		if b.WorkerID != workerID || !b.ScheduledAt.Equal(scheduledAt) {
			continue
		}
		switch b.Status {
		case db_models.BookingStatusPending, db_models.BookingStatusConfirmed, db_models.BookingStatusInProgress:
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByWorker(_ context.Context, workerID uuid.UUID) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, b := range f.bookings {
		if b.WorkerID == workerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Save(_ context.Context, booking *db_models.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

type fakeWorkerRepo struct {
	workers       map[uuid.UUID]*db_models.Worker
	offers        map[string]bool
	completedJobs map[uuid.UUID]int
	ratings       map[uuid.UUID]float64
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{
		workers:       make(map[uuid.UUID]*db_models.Worker),
		offers:        make(map[string]bool),
		completedJobs: make(map[uuid.UUID]int),
		ratings:       make(map[uuid.UUID]float64),
	}
}

func offersKey(workerID, serviceID uuid.UUID) string {
	return fmt.Sprintf("%s/%s", workerID, serviceID)
}

func (f *fakeWorkerRepo) add(worker *db_models.Worker) *db_models.Worker {
	if worker.ID == uuid.Nil {
		worker.ID = uuid.New()
	}
	f.workers[worker.ID] = worker
	return worker
}

func (f *fakeWorkerRepo) Insert(_ context.Context, worker *db_models.Worker) error {
	f.add(worker)
	return nil
}

func (f *fakeWorkerRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Worker, error) {
	return f.workers[id], nil
}

func (f *fakeWorkerRepo) FindByAccountID(_ context.Context, accountID uuid.UUID) (*db_models.Worker, error) {
	for _, w := range f.workers {
		if w.AccountID == accountID {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkerRepo) ListBookable(_ context.Context) ([]db_models.Worker, error) {
	var out []db_models.Worker
	for _, w := range f.workers {
		if w.Bookable() {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeWorkerRepo) UpdateStatus(_ context.Context, id uuid.UUID, status db_models.WorkerStatus) error {
	if w, ok := f.workers[id]; ok {
		w.Status = status
	}
	return nil
}

func (f *fakeWorkerRepo) UpdateAvailability(_ context.Context, id uuid.UUID, available bool) error {
	if w, ok := f.workers[id]; ok {
		w.IsAvailable = available
	}
	return nil
}

func (f *fakeWorkerRepo) ReplaceServices(_ context.Context, worker *db_models.Worker, services []db_models.CatalogService) error {
	for k := range f.offers {
		delete(f.offers, k)
	}
	for _, s := range services {
		f.offers[offersKey(worker.ID, s.ID)] = true
	}
	return nil
}

func (f *fakeWorkerRepo) OffersService(_ context.Context, workerID, serviceID uuid.UUID) (bool, error) {
	return f.offers[offersKey(workerID, serviceID)], nil
}

func (f *fakeWorkerRepo) UpdateRating(_ context.Context, id uuid.UUID, rating float64, totalReviews int) error {
	f.ratings[id] = rating
	if w, ok := f.workers[id]; ok {
		w.Rating = rating
		w.TotalReviews = totalReviews
	}
	return nil
}

func (f *fakeWorkerRepo) IncrementCompletedJobs(_ context.Context, id uuid.UUID) error {
	f.completedJobs[id]++
	return nil
}

type fakeCatalogRepo struct {
	services map[uuid.UUID]*db_models.CatalogService
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{services: make(map[uuid.UUID]*db_models.CatalogService)}
}

func (f *fakeCatalogRepo) add(service *db_models.CatalogService) *db_models.CatalogService {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	f.services[service.ID] = service
	return service
}

func (f *fakeCatalogRepo) Insert(_ context.Context, service *db_models.CatalogService) error {
	f.add(service)
	return nil
}

func (f *fakeCatalogRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.CatalogService, error) {
	return f.services[id], nil
}

func (f *fakeCatalogRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]db_models.CatalogService, error) {
	var out []db_models.CatalogService
	for _, id := range ids {
		if s, ok := f.services[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) ListActive(_ context.Context) ([]db_models.CatalogService, error) {
	var out []db_models.CatalogService
	for _, s := range f.services {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) Save(_ context.Context, service *db_models.CatalogService) error {
	f.services[service.ID] = service
	return nil
}

func (f *fakeCatalogRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	if s, ok := f.services[id]; ok {
		s.IsActive = false
	}
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*db_models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*db_models.Payment)}
}

func (f *fakePaymentRepo) Insert(_ context.Context, payment *db_models.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*db_models.Payment, error) {
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByIntentID(_ context.Context, intentID string) (*db_models.Payment, error) {
	for _, p := range f.payments {
		if p.StripePaymentIntentID == intentID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, id uuid.UUID, updates map[string]interface{}) error {
	p, ok := f.payments[id]
	if !ok {
		return nil
	}
	if status, ok := updates["status"]; ok {
		p.Status = status.(db_models.PaymentStatus)
	}
	if at, ok := updates["processed_at"]; ok {
		p.ProcessedAt = at.(*time.Time)
	}
	if at, ok := updates["refunded_at"]; ok {
		p.RefundedAt = at.(*time.Time)
	}
	return nil
}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*db_models.Account)}
}

func (f *fakeAccountRepo) add(account *db_models.Account) *db_models.Account {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.ID] = account
	return account
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	f.add(account)
	return nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	if a, ok := f.accounts[id]; ok {
		a.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeAccountRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	if a, ok := f.accounts[id]; ok {
		a.LastLoginAt = &at
	}
	return nil
}

func (f *fakeAccountRepo) UpdateRole(_ context.Context, id uuid.UUID, role db_models.AccountRole) error {
	if a, ok := f.accounts[id]; ok {
		a.Role = role
	}
	return nil
}

type fakeNotificationRepo struct {
	inserted  []*db_models.Notification
	insertErr error
}

func (f *fakeNotificationRepo) Insert(_ context.Context, notification *db_models.Notification) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	f.inserted = append(f.inserted, notification)
	return nil
}

func (f *fakeNotificationRepo) ListByAccount(_ context.Context, accountID uuid.UUID, _, _ int) ([]db_models.Notification, error) {
	var out []db_models.Notification
	for _, n := range f.inserted {
		if n.AccountID == accountID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id, accountID uuid.UUID) error {
	for _, n := range f.inserted {
		if n.ID == id && n.AccountID == accountID {
			n.IsRead = true
		}
	}
	return nil
}

type fakeReviewRepo struct {
	reviews []*db_models.Review
}

func (f *fakeReviewRepo) Insert(_ context.Context, review *db_models.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*db_models.Review, error) {
	for _, r := range f.reviews {
		if r.BookingID == bookingID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) ListByWorker(_ context.Context, workerID uuid.UUID) ([]db_models.Review, error) {
	var out []db_models.Review
	for _, r := range f.reviews {
		if r.WorkerID == workerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) AverageRating(_ context.Context, workerID uuid.UUID) (float64, int, error) {
	var sum float64
	var count int
	for _, r := range f.reviews {
		if r.WorkerID == workerID {
			sum += float64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}

// Side-effect fakes.

type fakePaymentProcessor struct {
	captureCalls []uuid.UUID
	refundCalls  []uuid.UUID
	captureErr   error
	refundErr    error
}

func (f *fakePaymentProcessor) Capture(_ context.Context, bookingID uuid.UUID) error {
	f.captureCalls = append(f.captureCalls, bookingID)
	return f.captureErr
}

func (f *fakePaymentProcessor) Refund(_ context.Context, paymentID uuid.UUID) error {
	f.refundCalls = append(f.refundCalls, paymentID)
	return f.refundErr
}

type fakeNotifier struct {
	events []NotificationEvent
	err    error
}

func (f *fakeNotifier) SendBookingNotification(_ context.Context, _ uuid.UUID, event NotificationEvent) error {
	f.events = append(f.events, event)
	return f.err
}

type fakeGateway struct {
	intentID     string
	clientSecret string
	status       string
	createErr    error
	statusErr    error
	refundErr    error

	webhookEvent *WebhookEvent
	webhookErr   error

	createCalls int
	refundCalls int
}

func (f *fakeGateway) CreateIntent(_ int64, _ string, _ map[string]string) (string, string, error) {
	f.createCalls++
	if f.createErr != nil {
		return "", "", f.createErr
	}
	return f.intentID, f.clientSecret, nil
}

func (f *fakeGateway) IntentStatus(_ string) (string, error) {
	if f.statusErr != nil {
		return "", f.statusErr
	}
	return f.status, nil
}

func (f *fakeGateway) CreateRefund(_ string) (string, error) {
	f.refundCalls++
	if f.refundErr != nil {
		return "", f.refundErr
	}
	return "re_test", nil
}

func (f *fakeGateway) VerifyWebhook(_ []byte, _ string) (*WebhookEvent, error) {
	if f.webhookErr != nil {
		return nil, f.webhookErr
	}
	return f.webhookEvent, nil
}

type fakeEmailSender struct {
	sent []string
	err  error
}

func (f *fakeEmailSender) SendMail(to, _, _ string) error {
	f.sent = append(f.sent, to)
	return f.err
}

type fakeSMSSender struct {
	sent []string
	err  error
}

func (f *fakeSMSSender) SendSMS(to, _ string) error {
	f.sent = append(f.sent, to)
	return f.err
}

type fakePushSender struct {
	sent []string
	err  error
}

func (f *fakePushSender) SendPush(_ context.Context, token, _, _ string, _ map[string]string) error {
	f.sent = append(f.sent, token)
	return f.err
}
