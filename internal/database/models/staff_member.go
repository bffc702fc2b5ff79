package models

// StaffMember represents a person employed by the camp organization
type StaffMember struct {
	BaseModel
	Name      string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email     string    `json:"email" gorm:"size:255;not null;uniqueIndex" validate:"required,email"`
	Role      StaffRole `json:"role" gorm:"type:varchar(20);not null;default:'counselor'" validate:"required"`
	IsStaff   bool      `json:"is_staff" gorm:"default:false"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	Timezone  string    `json:"timezone" gorm:"size:64;not null;default:'America/New_York'"`
	Phone     string    `json:"phone" gorm:"size:40"`
	AvatarURL string    `json:"avatar_url" gorm:"size:500"`

	// Relationships
	StaffAssignments         []StaffAssignment         `json:"staff_assignments,omitempty" gorm:"foreignKey:StaffMemberID"`
	CounselorBunkAssignments []CounselorBunkAssignment `json:"counselor_bunk_assignments,omitempty" gorm:"foreignKey:CounselorID"`
}

// TableName returns the table name for StaffMember
func (StaffMember) TableName() string {
	return "staff_members"
}
