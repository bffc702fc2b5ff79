package models

// Cabin represents a physical cabin building on the campgrounds
type Cabin struct {
	BaseModel
	Name     string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Capacity int    `json:"capacity" gorm:"not null;default:0" validate:"min=0"`

	// Relationships
	Bunks []Bunk `json:"bunks,omitempty" gorm:"foreignKey:CabinID"`
}

// TableName returns the table name for Cabin
func (Cabin) TableName() string {
	return "cabins"
}
