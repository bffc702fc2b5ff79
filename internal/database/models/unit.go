package models

import (
	"github.com/google/uuid"
)

// Unit represents an organizational unit (an age division of the camp).
// The legacy_* columns are a deprecated single-assignment fallback kept for
// pre-migration data; they are consulted only when a unit has no
// StaffAssignment rows for the matching role.
type Unit struct {
	BaseModel
	Name               string     `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Description        string     `json:"description" gorm:"size:200" validate:"max=200"`
	LegacyUnitHeadID   *uuid.UUID `json:"legacy_unit_head_id" gorm:"type:uuid"`
	LegacyCamperCareID *uuid.UUID `json:"legacy_camper_care_id" gorm:"type:uuid"`

	// Relationships
	LegacyUnitHead   *StaffMember      `json:"legacy_unit_head,omitempty" gorm:"foreignKey:LegacyUnitHeadID"`
	LegacyCamperCare *StaffMember      `json:"legacy_camper_care,omitempty" gorm:"foreignKey:LegacyCamperCareID"`
	Bunks            []Bunk            `json:"bunks,omitempty" gorm:"foreignKey:UnitID"`
	StaffAssignments []StaffAssignment `json:"staff_assignments,omitempty" gorm:"foreignKey:UnitID"`
}

// TableName returns the table name for Unit
func (Unit) TableName() string {
	return "units"
}
