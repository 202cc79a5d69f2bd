package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Trip is a saved itinerary snapshot. Destination, days and pace are
// denormalized for listing; the full plan lives in PlanJSON.
type Trip struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Destination string
	Days        int
	Pace        string
	PlanJSON    datatypes.JSON `gorm:"type:jsonb"`
}
