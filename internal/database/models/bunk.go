package models

import (
	"github.com/google/uuid"
)

// Bunk represents a group of campers living together for a session.
// Unit, cabin and session links are nullable to tolerate transition data
// imported from the previous system.
type Bunk struct {
	BaseModel
	Name      string     `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	UnitID    *uuid.UUID `json:"unit_id" gorm:"type:uuid;index"`
	CabinID   *uuid.UUID `json:"cabin_id" gorm:"type:uuid;index"`
	SessionID *uuid.UUID `json:"session_id" gorm:"type:uuid;index"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`

	// Relationships
	Unit                     *Unit                     `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
	Cabin                    *Cabin                    `json:"cabin,omitempty" gorm:"foreignKey:CabinID"`
	Session                  *Session                  `json:"session,omitempty" gorm:"foreignKey:SessionID"`
	CamperBunkAssignments    []CamperBunkAssignment    `json:"camper_bunk_assignments,omitempty" gorm:"foreignKey:BunkID"`
	CounselorBunkAssignments []CounselorBunkAssignment `json:"counselor_bunk_assignments,omitempty" gorm:"foreignKey:BunkID"`
}

// TableName returns the table name for Bunk
func (Bunk) TableName() string {
	return "bunks"
}
