package models

import (
	"time"

	"github.com/google/uuid"
)

// CounselorLog is a counselor's personal end-of-day log. The subject is the
// counselor; the bunk link carries the visibility scope for unit-level roles.
// One log may exist per (counselor, date); the date is server-assigned.
type CounselorLog struct {
	BaseModel
	CounselorID uuid.UUID `json:"counselor_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_counselor_log_date" validate:"required"`
	AuthorID    uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index" validate:"required"`
	BunkID      uuid.UUID `json:"bunk_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date        time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_counselor_log_date"`
	Highlights  string    `json:"highlights" gorm:"type:text"`
	Concerns    string    `json:"concerns" gorm:"type:text"`
	HoursSlept  float64   `json:"hours_slept" gorm:"default:0" validate:"min=0,max=24"`

	// Relationships
	Counselor StaffMember `json:"counselor,omitempty" gorm:"foreignKey:CounselorID;constraint:OnDelete:CASCADE"`
	Author    StaffMember `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Bunk      Bunk        `json:"bunk,omitempty" gorm:"foreignKey:BunkID"`
}

// TableName returns the table name for CounselorLog
func (CounselorLog) TableName() string {
	return "counselor_logs"
}
