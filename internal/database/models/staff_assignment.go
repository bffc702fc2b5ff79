package models

import (
	"time"

	"github.com/google/uuid"
)

// StaffAssignment represents a time-bounded assignment of a staff member to
// a unit in a unit-level role. At most one row may exist per
// (unit, staff_member, role) tuple. A null end date means the assignment is
// open-ended; end_date is inclusive. Assignments are closed by setting
// end_date, never hard-deleted, so history survives for auditing.
type StaffAssignment struct {
	BaseModel
	UnitID        uuid.UUID  `json:"unit_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_unit_staff_role" validate:"required"`
	StaffMemberID uuid.UUID  `json:"staff_member_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_unit_staff_role" validate:"required"`
	Role          StaffRole  `json:"role" gorm:"type:varchar(20);not null;uniqueIndex:idx_unit_staff_role" validate:"required"`
	IsPrimary     bool       `json:"is_primary" gorm:"default:false"`
	StartDate     time.Time  `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate       *time.Time `json:"end_date" gorm:"type:date"`

	// Relationships
	Unit        Unit        `json:"unit,omitempty" gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`
	StaffMember StaffMember `json:"staff_member,omitempty" gorm:"foreignKey:StaffMemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for StaffAssignment
func (StaffAssignment) TableName() string {
	return "staff_assignments"
}
