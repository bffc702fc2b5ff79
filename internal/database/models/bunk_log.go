package models

import (
	"time"

	"github.com/google/uuid"
)

// BunkLog is a counselor's daily report for a bunk. The date column is
// derived from created_at in the author's timezone at creation time and is
// never accepted from clients; one log may exist per (bunk, date).
type BunkLog struct {
	BaseModel
	BunkID        uuid.UUID `json:"bunk_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_bunk_log_date" validate:"required"`
	AuthorID      uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date          time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_bunk_log_date"`
	Summary       string    `json:"summary" gorm:"type:text;not null" validate:"required"`
	MoodScore     int       `json:"mood_score" gorm:"default:0" validate:"min=0,max=5"`
	HealthNotes   string    `json:"health_notes" gorm:"type:text"`
	RequestItems  string    `json:"request_items" gorm:"type:text"`
	FlagForFollow bool      `json:"flag_for_follow" gorm:"default:false"`

	// Relationships
	Bunk   Bunk        `json:"bunk,omitempty" gorm:"foreignKey:BunkID;constraint:OnDelete:CASCADE"`
	Author StaffMember `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for BunkLog
func (BunkLog) TableName() string {
	return "bunk_logs"
}
