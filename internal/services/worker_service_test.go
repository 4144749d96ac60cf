package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

type workerFixture struct {
	svc      WorkerServiceInterface
	workers  *fakeWorkerRepo
	accounts *fakeAccountRepo
	catalog  *fakeCatalogRepo

	account *db_models.Account
	service *db_models.CatalogService
}

func newWorkerFixture(t *testing.T) *workerFixture {
	t.Helper()

	workers := newFakeWorkerRepo()
	accounts := newFakeAccountRepo()
	catalog := newFakeCatalogRepo()

	account := accounts.add(&db_models.Account{
		Email: "worker@example.com",
		Role:  db_models.RoleCustomer,
	})
	service := catalog.add(&db_models.CatalogService{
		Name:              "Lawn Mowing",
		EstimatedDuration: 60,
		IsActive:          true,
	})

	location := NewLocationService("unused")
	return &workerFixture{
		svc:      NewWorkerService(workers, accounts, catalog, location, zap.NewNop()),
		workers:  workers,
		accounts: accounts,
		catalog:  catalog,
		account:  account,
		service:  service,
	}
}

func TestOnboardCreatesPendingProfileAndPromotesRole(t *testing.T) {
	f := newWorkerFixture(t)

	worker, err := f.svc.Onboard(context.Background(), f.account.ID, request_models.OnboardWorkerRequest{
		Bio:        "Ten years of landscaping",
		HourlyRate: 45,
		ServiceIDs: []string{f.service.ID.String()},
	})
	require.NoError(t, err)

	assert.Equal(t, db_models.WorkerStatusPending, worker.Status)
	assert.True(t, worker.IsAvailable)
	assert.False(t, worker.Bookable(), "pending workers are not bookable")
	assert.Equal(t, db_models.RoleWorker, f.account.Role)
}

func TestOnboardSecondProfileConflicts(t *testing.T) {
	f := newWorkerFixture(t)

	req := request_models.OnboardWorkerRequest{
		HourlyRate: 45,
		ServiceIDs: []string{f.service.ID.String()},
	}
	_, err := f.svc.Onboard(context.Background(), f.account.ID, req)
	require.NoError(t, err)

	_, err = f.svc.Onboard(context.Background(), f.account.ID, req)
	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestOnboardUnknownServiceRejected(t *testing.T) {
	f := newWorkerFixture(t)

	_, err := f.svc.Onboard(context.Background(), f.account.ID, request_models.OnboardWorkerRequest{
		HourlyRate: 45,
		ServiceIDs: []string{uuid.NewString()},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not exist")
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	f := newWorkerFixture(t)

	worker, err := f.svc.Onboard(context.Background(), f.account.ID, request_models.OnboardWorkerRequest{
		HourlyRate: 45,
		ServiceIDs: []string{f.service.ID.String()},
	})
	require.NoError(t, err)

	err = f.svc.UpdateStatus(context.Background(), worker.ID, db_models.WorkerStatus("vanished"))
	require.Error(t, err)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))

	require.NoError(t, f.svc.UpdateStatus(context.Background(), worker.ID, db_models.WorkerStatusApproved))
	assert.True(t, worker.Bookable())
}

func TestUpdateAvailability(t *testing.T) {
	f := newWorkerFixture(t)

	worker, err := f.svc.Onboard(context.Background(), f.account.ID, request_models.OnboardWorkerRequest{
		HourlyRate: 45,
		ServiceIDs: []string{f.service.ID.String()},
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateAvailability(context.Background(), f.account.ID, false))
	assert.False(t, worker.IsAvailable)
}

func TestFindNearbyFiltersAndSorts(t *testing.T) {
	f := newWorkerFixture(t)

	addWorker := func(lat, lng float64) *db_models.Worker {
		return f.workers.add(&db_models.Worker{
			AccountID:   uuid.New(),
			Status:      db_models.WorkerStatusApproved,
			IsAvailable: true,
			Location: datatypes.NewJSONType(db_models.Location{
				Coordinates: db_models.Coordinates{Lat: lat, Lng: lng},
			}),
		})
	}

	origin := db_models.Coordinates{Lat: 40.7128, Lng: -74.0060}
	near := addWorker(40.7138, -74.0070)   // a few blocks away
	farther := addWorker(40.7600, -73.9800) // ~6 km away
	addWorker(41.8781, -87.6298)            // Chicago, out of range

	// No stored coordinates: skipped.
	f.workers.add(&db_models.Worker{
		AccountID:   uuid.New(),
		Status:      db_models.WorkerStatusApproved,
		IsAvailable: true,
	})

	results, err := f.svc.FindNearby(context.Background(), origin, 10)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, near.ID, results[0].Worker.ID)
	assert.Equal(t, farther.ID, results[1].Worker.ID)
	assert.Less(t, results[0].DistanceKm, results[1].DistanceKm)
}
