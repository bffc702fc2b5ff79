package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// SupplyOrder represents a request for supplies, scoped to a unit
type SupplyOrder struct {
	BaseModel
	UnitID      uuid.UUID         `json:"unit_id" gorm:"type:uuid;not null;index" validate:"required"`
	RequestedBy uuid.UUID         `json:"requested_by" gorm:"type:uuid;not null;index" validate:"required"`
	Status      SupplyOrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Items       json.RawMessage   `json:"items" gorm:"type:jsonb"`
	Notes       string            `json:"notes" gorm:"type:text"`

	// Relationships
	Unit      Unit        `json:"unit,omitempty" gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`
	Requester StaffMember `json:"requester,omitempty" gorm:"foreignKey:RequestedBy"`
}

// TableName returns the table name for SupplyOrder
func (SupplyOrder) TableName() string {
	return "supply_orders"
}
