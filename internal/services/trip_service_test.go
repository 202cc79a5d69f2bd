package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	rm "tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type fakeTripRepo struct {
	trips   map[string]*db_models.Trip
	failAll bool
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[string]*db_models.Trip)}
}

func (f *fakeTripRepo) Save(ctx context.Context, trip *db_models.Trip) error {
	if f.failAll {
		return errors.New("db down")
	}
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	f.trips[trip.ID.String()] = trip
	return nil
}

func (f *fakeTripRepo) ListByAccountId(ctx context.Context, accountId string, page int, pageSize int) ([]db_models.Trip, error) {
	if f.failAll {
		return nil, errors.New("db down")
	}
	var out []db_models.Trip
	for _, trip := range f.trips {
		if trip.AccountID.String() == accountId {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) FindById(ctx context.Context, tripId string) (*db_models.Trip, error) {
	if f.failAll {
		return nil, errors.New("db down")
	}
	return f.trips[tripId], nil
}

func (f *fakeTripRepo) DeleteById(ctx context.Context, tripId string, accountId string) error {
	if f.failAll {
		return errors.New("db down")
	}
	delete(f.trips, tripId)
	return nil
}

func testAccountId() string {
	return "5bb41a6f-9f30-4f0b-8f35-3a7e5d9b1c01"
}

func testSaveRequest() request_models.SaveTripRequest {
	planner := newTestPlanner()
	return request_models.SaveTripRequest{
		Title: "Long weekend",
		Plan:  planner.BuildPlan("paris", 3, "balanced", seedOf(8)),
	}
}

func TestSaveAndGetTripRoundTrip(t *testing.T) {
	repo := newFakeTripRepo()
	svc := NewTripService(repo)
	owner := testAccountId()

	tripId, err := svc.SaveTrip(context.Background(), owner, testSaveRequest())
	require.NoError(t, err)
	require.NotEmpty(t, tripId)

	stored := repo.trips[tripId]
	require.NotNil(t, stored)
	assert.Equal(t, "Paris", stored.Destination)
	assert.Equal(t, 3, stored.Days)
	assert.Equal(t, "balanced", stored.Pace)

	plan, err := svc.GetTrip(context.Background(), owner, tripId)
	require.NoError(t, err)
	assert.Equal(t, "Paris", plan.Destination)
	assert.Len(t, plan.Itinerary, 3)
}

func TestSaveTripRejectsBadAccountId(t *testing.T) {
	svc := NewTripService(newFakeTripRepo())

	_, err := svc.SaveTrip(context.Background(), "not-a-uuid", testSaveRequest())
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetTripOwnershipEnforced(t *testing.T) {
	repo := newFakeTripRepo()
	svc := NewTripService(repo)

	tripId, err := svc.SaveTrip(context.Background(), testAccountId(), testSaveRequest())
	require.NoError(t, err)

	stranger := uuid.New().String()
	_, err = svc.GetTrip(context.Background(), stranger, tripId)
	assert.ErrorIs(t, err, utils.ErrNotTripOwner)
}

func TestGetTripNotFound(t *testing.T) {
	svc := NewTripService(newFakeTripRepo())

	_, err := svc.GetTrip(context.Background(), testAccountId(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestDeleteTrip(t *testing.T) {
	repo := newFakeTripRepo()
	svc := NewTripService(repo)
	owner := testAccountId()

	tripId, err := svc.SaveTrip(context.Background(), owner, testSaveRequest())
	require.NoError(t, err)

	t.Run("stranger cannot delete", func(t *testing.T) {
		err := svc.DeleteTrip(context.Background(), uuid.New().String(), tripId)
		assert.ErrorIs(t, err, utils.ErrNotTripOwner)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, svc.DeleteTrip(context.Background(), owner, tripId))
		assert.Empty(t, repo.trips)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		err := svc.DeleteTrip(context.Background(), owner, tripId)
		assert.ErrorIs(t, err, utils.ErrTripNotFound)
	})
}

func TestListTripsClampsPaging(t *testing.T) {
	repo := newFakeTripRepo()
	svc := NewTripService(repo)
	owner := testAccountId()

	_, err := svc.SaveTrip(context.Background(), owner, testSaveRequest())
	require.NoError(t, err)

	trips, err := svc.ListTrips(context.Background(), owner, -1, 0)
	require.NoError(t, err)
	assert.Len(t, trips, 1)

	var p rm.Plan
	require.NoError(t, json.Unmarshal(trips[0].PlanJSON, &p))
	assert.Equal(t, "Paris", p.Destination)
}
