// Package authz implements the temporal staff-assignment authorization and
// visibility-scoping engine. It is pure: all storage access goes through the
// narrow directory interfaces in interfaces.go, the current time comes from
// an injected Clock, and per-user timezones from a LocaleProvider, so every
// decision is reproducible from (actor, action, resource, asOf) alone.
package authz

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of staff roles the engine understands. Values match
// the staff_members.role column.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUnitHead   Role = "unit_head"
	RoleCamperCare Role = "camper_care"
	RoleCounselor  Role = "counselor"
)

// Action represents an operation on a resource
type Action string

const (
	ActionRead   Action = "read"
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ResourceKind identifies the kind of resource a decision is about
type ResourceKind string

const (
	ResourceUnit         ResourceKind = "unit"
	ResourceBunk         ResourceKind = "bunk"
	ResourceCamper       ResourceKind = "camper"
	ResourceBunkLog      ResourceKind = "bunk_log"
	ResourceCounselorLog ResourceKind = "counselor_log"
	ResourceSupplyOrder  ResourceKind = "supply_order"
)

// ReasonCode classifies why a request was denied
type ReasonCode string

const (
	// ReasonOutOfScope means the resource exists but the actor cannot see it.
	// Surfaced as 404 so unauthorized actors cannot confirm existence.
	ReasonOutOfScope ReasonCode = "out_of_scope"
	// ReasonWindowClosed means the author-local edit window has elapsed.
	ReasonWindowClosed ReasonCode = "window_closed"
	// ReasonNotAuthor means a counselor tried to edit someone else's record.
	ReasonNotAuthor ReasonCode = "not_author"
	// ReasonRoleForbidden means the actor's role structurally cannot perform
	// the action, regardless of scope.
	ReasonRoleForbidden ReasonCode = "role_forbidden"
	// ReasonInvalidDate means the caller supplied a malformed as-of date.
	// Handled entirely at the API boundary; never produced by the core.
	ReasonInvalidDate ReasonCode = "invalid_date"
)

// HTTPStatus maps a reason code to the status the API layer should return
func (r ReasonCode) HTTPStatus() int {
	switch r {
	case ReasonOutOfScope:
		return http.StatusNotFound
	case ReasonInvalidDate:
		return http.StatusBadRequest
	default:
		return http.StatusForbidden
	}
}

// Decision is the outcome of an authorization check. A denied decision
// carries exactly one reason code.
type Decision struct {
	Allowed bool       `json:"allowed"`
	Reason  ReasonCode `json:"reason,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Allow returns an allowing decision
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision with a reason code and message
func Deny(reason ReasonCode, message string) Decision {
	return Decision{Allowed: false, Reason: reason, Message: message}
}

// Actor is the authenticated staff member a request runs as
type Actor struct {
	ID       uuid.UUID
	Role     Role
	IsStaff  bool
	Timezone string
}

// ResourceRef identifies a target resource for a decision. The scoping keys
// (UnitID, BunkID, CamperID) are filled by the caller with whichever apply to
// the resource kind; AuthorID and CreatedAt are needed only for record
// mutation checks.
type ResourceRef struct {
	ID        uuid.UUID
	UnitID    uuid.UUID
	BunkID    uuid.UUID
	CamperID  uuid.UUID
	AuthorID  uuid.UUID
	CreatedAt time.Time
}

// RecordRef describes an authored daily record for mutation-window checks
type RecordRef struct {
	ID        uuid.UUID
	Kind      ResourceKind
	AuthorID  uuid.UUID
	BunkID    uuid.UUID
	CreatedAt time.Time
}
