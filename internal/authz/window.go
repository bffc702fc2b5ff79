package authz

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WindowEnforcer decides whether an authored daily record may still be
// mutated. A counselor's edit window closes permanently at local midnight
// following creation, in the author's timezone; it never extends and is not
// reopened by later edits.
type WindowEnforcer struct {
	locales LocaleProvider
}

// NewWindowEnforcer creates a mutation window enforcer
func NewWindowEnforcer(locales LocaleProvider) *WindowEnforcer {
	return &WindowEnforcer{locales: locales}
}

// CanMutate decides whether the actor may update the record at asOf.
//
// Admins always may. Unit-level roles may update any record whose bunk is in
// their scope; they can never create or delete counselor-authored records.
// Counselors may update only their own records and only while asOf falls on
// the record's creation calendar date in the author's timezone.
func (e *WindowEnforcer) CanMutate(actor Actor, scope *Scope, record RecordRef, asOf time.Time) Decision {
	if actor.Role == RoleAdmin || actor.IsStaff {
		return Allow()
	}

	switch actor.Role {
	case RoleUnitHead, RoleCamperCare:
		if !scope.HasBunk(record.BunkID) {
			return Deny(ReasonOutOfScope, "record is not in your scope")
		}
		return Allow()

	case RoleCounselor:
		if record.AuthorID != actor.ID {
			return Deny(ReasonNotAuthor, "only the author may edit this record")
		}
		loc := e.authorLocation(record.AuthorID)
		created := record.CreatedAt.In(loc)
		now := asOf.In(loc)
		if !sameCalendarDate(created, now) {
			return Deny(ReasonWindowClosed, fmt.Sprintf(
				"edit window closed at midnight after %s", created.Format("2006-01-02")))
		}
		return Allow()

	default:
		return Deny(ReasonRoleForbidden, "role cannot mutate records")
	}
}

// LocalDate returns the staff member's local calendar date for the instant,
// truncated to midnight in their timezone. Used to server-assign record dates.
func (e *WindowEnforcer) LocalDate(staffMemberID uuid.UUID, at time.Time) time.Time {
	loc := e.authorLocation(staffMemberID)
	local := at.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// authorLocation falls back to UTC when the provider cannot resolve a
// timezone; a messy locale row must not make decisions unavailable.
func (e *WindowEnforcer) authorLocation(staffMemberID uuid.UUID) *time.Location {
	loc, err := e.locales.Location(staffMemberID)
	if err != nil || loc == nil {
		return time.UTC
	}
	return loc
}

func sameCalendarDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
