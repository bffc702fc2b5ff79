package models

import (
	"time"
)

// Camper represents a child enrolled at the camp. Campers are visible to
// staff only transitively, through bunk assignments.
type Camper struct {
	BaseModel
	FirstName string     `json:"first_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	LastName  string     `json:"last_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	BirthDate *time.Time `json:"birth_date" gorm:"type:date"`
	Notes     string     `json:"notes" gorm:"type:text"`

	// Relationships
	BunkAssignments []CamperBunkAssignment `json:"bunk_assignments,omitempty" gorm:"foreignKey:CamperID"`
}

// TableName returns the table name for Camper
func (Camper) TableName() string {
	return "campers"
}
