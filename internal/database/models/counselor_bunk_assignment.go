package models

import (
	"time"

	"github.com/google/uuid"
)

// CounselorBunkAssignment represents a time-bounded assignment of a counselor
// to a single bunk. Same interval shape as StaffAssignment but scoped to a
// bunk rather than a unit.
type CounselorBunkAssignment struct {
	BaseModel
	CounselorID uuid.UUID  `json:"counselor_id" gorm:"type:uuid;not null;index" validate:"required"`
	BunkID      uuid.UUID  `json:"bunk_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsPrimary   bool       `json:"is_primary" gorm:"default:false"`
	StartDate   time.Time  `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate     *time.Time `json:"end_date" gorm:"type:date"`

	// Relationships
	Counselor StaffMember `json:"counselor,omitempty" gorm:"foreignKey:CounselorID;constraint:OnDelete:CASCADE"`
	Bunk      Bunk        `json:"bunk,omitempty" gorm:"foreignKey:BunkID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CounselorBunkAssignment
func (CounselorBunkAssignment) TableName() string {
	return "counselor_bunk_assignments"
}
