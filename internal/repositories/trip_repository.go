package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

// TripRepository is the opaque save contract the planning core delegates
// persistence to. The planner and chat services never touch it; only the
// trips endpoints do.
type TripRepository interface {
	Save(ctx context.Context, trip *db_models.Trip) error
	ListByAccountId(ctx context.Context, accountId string, page int, pageSize int) ([]db_models.Trip, error)
	FindById(ctx context.Context, tripId string) (*db_models.Trip, error)
	DeleteById(ctx context.Context, tripId string, accountId string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Save(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListByAccountId(ctx context.Context, accountId string, page int, pageSize int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountId).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error

	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepository) FindById(ctx context.Context, tripId string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", tripId).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) DeleteById(ctx context.Context, tripId string, accountId string) error {
	tripUUID, err := uuid.Parse(tripId)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", tripUUID, accountId).
		Delete(&db_models.Trip{}).Error
}
