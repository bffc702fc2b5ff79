package models

import (
	"time"
)

// Session represents a camp session (a contiguous block of the summer)
type Session struct {
	BaseModel
	Name      string    `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	StartDate time.Time `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate   time.Time `json:"end_date" gorm:"type:date;not null" validate:"required"`

	// Relationships
	Bunks []Bunk `json:"bunks,omitempty" gorm:"foreignKey:SessionID"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}
