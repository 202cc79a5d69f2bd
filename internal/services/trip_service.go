package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	rm "tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, accountId string, request request_models.SaveTripRequest) (string, error)
	ListTrips(ctx context.Context, accountId string, page int, pageSize int) ([]db_models.Trip, error)
	GetTrip(ctx context.Context, accountId string, tripId string) (*rm.Plan, error)
	DeleteTrip(ctx context.Context, accountId string, tripId string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (t *TripService) SaveTrip(ctx context.Context, accountId string, request request_models.SaveTripRequest) (string, error) {
	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	planJSON, err := json.Marshal(request.Plan)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	trip := &db_models.Trip{
		AccountID:   accountUUID,
		Title:       request.Title,
		Destination: request.Plan.Destination,
		Days:        request.Plan.Days,
		Pace:        request.Plan.Pace,
		PlanJSON:    planJSON,
	}

	if err := t.tripRepo.Save(ctx, trip); err != nil {
		log.Printf("Saving trip failed: %v", err)
		return "", utils.ErrDatabaseError
	}

	return trip.ID.String(), nil
}

func (t *TripService) ListTrips(ctx context.Context, accountId string, page int, pageSize int) ([]db_models.Trip, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	trips, err := t.tripRepo.ListByAccountId(ctx, accountId, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (t *TripService) GetTrip(ctx context.Context, accountId string, tripId string) (*rm.Plan, error) {
	trip, err := t.tripRepo.FindById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.AccountID.String() != accountId {
		return nil, utils.ErrNotTripOwner
	}

	var plan rm.Plan
	if err := json.Unmarshal(trip.PlanJSON, &plan); err != nil {
		log.Printf("Stored plan %s is unreadable: %v", tripId, err)
		return nil, utils.ErrDatabaseError
	}
	return &plan, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, accountId string, tripId string) error {
	trip, err := t.tripRepo.FindById(ctx, tripId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if trip.AccountID.String() != accountId {
		return utils.ErrNotTripOwner
	}

	if err := t.tripRepo.DeleteById(ctx, tripId, accountId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
