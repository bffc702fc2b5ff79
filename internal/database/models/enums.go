package models

// StaffRole represents the role a staff member holds in the organization
type StaffRole string

const (
	StaffRoleAdmin      StaffRole = "admin"
	StaffRoleUnitHead   StaffRole = "unit_head"
	StaffRoleCamperCare StaffRole = "camper_care"
	StaffRoleCounselor  StaffRole = "counselor"
)

// IsValid checks if the staff role is valid
func (r StaffRole) IsValid() bool {
	switch r {
	case StaffRoleAdmin, StaffRoleUnitHead, StaffRoleCamperCare, StaffRoleCounselor:
		return true
	}
	return false
}

// IsUnitRole reports whether the role can be the subject of a unit-level
// staff assignment. Admin and counselor roles are never assigned at unit level.
func (r StaffRole) IsUnitRole() bool {
	return r == StaffRoleUnitHead || r == StaffRoleCamperCare
}

// SupplyOrderStatus represents the lifecycle state of a supply order
type SupplyOrderStatus string

const (
	SupplyOrderStatusPending   SupplyOrderStatus = "pending"
	SupplyOrderStatusApproved  SupplyOrderStatus = "approved"
	SupplyOrderStatusOrdered   SupplyOrderStatus = "ordered"
	SupplyOrderStatusDelivered SupplyOrderStatus = "delivered"
	SupplyOrderStatusCancelled SupplyOrderStatus = "cancelled"
)

// IsValid checks if the supply order status is valid
func (s SupplyOrderStatus) IsValid() bool {
	switch s {
	case SupplyOrderStatusPending, SupplyOrderStatusApproved, SupplyOrderStatusOrdered,
		SupplyOrderStatusDelivered, SupplyOrderStatusCancelled:
		return true
	}
	return false
}
