package models

import (
	"time"

	"github.com/google/uuid"
)

// CamperBunkAssignment links a camper to a bunk for a date interval. Closed
// rows are kept so unit-level staff retain visibility into campers who have
// since moved bunks.
type CamperBunkAssignment struct {
	BaseModel
	CamperID  uuid.UUID  `json:"camper_id" gorm:"type:uuid;not null;index" validate:"required"`
	BunkID    uuid.UUID  `json:"bunk_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate time.Time  `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate   *time.Time `json:"end_date" gorm:"type:date"`

	// Relationships
	Camper Camper `json:"camper,omitempty" gorm:"foreignKey:CamperID;constraint:OnDelete:CASCADE"`
	Bunk   Bunk   `json:"bunk,omitempty" gorm:"foreignKey:BunkID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CamperBunkAssignment
func (CamperBunkAssignment) TableName() string {
	return "camper_bunk_assignments"
}
