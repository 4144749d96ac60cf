package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/response_models"
)

// AuthState is the only slice of client state that survives restarts.
type AuthState struct {
	Token   string             `json:"token"`
	Account *db_models.Account `json:"account,omitempty"`
}

// Store holds client-side state behind a mutex. Auth is persisted to a JSON
// file; bookings, workers and services are session-scoped caches that are
// dropped on restart and refilled from the API. Nothing is loaded implicitly:
// callers decide when Hydrate runs.
type Store struct {
	mu   sync.RWMutex
	path string

	auth     AuthState
	bookings []db_models.Booking
	workers  []db_models.Worker
	services []db_models.CatalogService
	nearby   []response_models.NearbyWorkerResponse
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Hydrate loads the persisted auth slice from disk. A missing file is not an
// error; it just means a fresh session.
func (s *Store) Hydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, &s.auth)
}

// SetAuth stores the session and writes it through to disk.
func (s *Store) SetAuth(auth AuthState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = auth
	return s.persist()
}

// ClearAuth drops the session, both in memory and on disk.
func (s *Store) ClearAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = AuthState{}
	return s.persist()
}

func (s *Store) Auth() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth
}

func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth.Token != ""
}

func (s *Store) SetBookings(bookings []db_models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = bookings
}

func (s *Store) Bookings() []db_models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]db_models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// UpsertBooking replaces a cached booking by id, or appends it.
func (s *Store) UpsertBooking(booking db_models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == booking.ID {
			s.bookings[i] = booking
			return
		}
	}
	s.bookings = append(s.bookings, booking)
}

func (s *Store) SetWorkers(workers []db_models.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workers = workers
}

func (s *Store) Workers() []db_models.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]db_models.Worker, len(s.workers))
	copy(out, s.workers)
	return out
}

func (s *Store) SetServices(services []db_models.CatalogService) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = services
}

func (s *Store) Services() []db_models.CatalogService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]db_models.CatalogService, len(s.services))
	copy(out, s.services)
	return out
}

func (s *Store) SetNearby(nearby []response_models.NearbyWorkerResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nearby = nearby
}

func (s *Store) Nearby() []response_models.NearbyWorkerResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]response_models.NearbyWorkerResponse, len(s.nearby))
	copy(out, s.nearby)
	return out
}

// persist writes only the auth slice; callers hold the lock.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.auth, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o600)
}
