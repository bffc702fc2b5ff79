package authz

import (
	"time"

	"github.com/google/uuid"
)

// Assignment is the engine's view of a unit-level staff assignment. Legacy is
// true for assignments synthesized from a unit's deprecated single-holder
// columns; those have a zero StartDate and a nil EndDate.
type Assignment struct {
	ID            uuid.UUID
	UnitID        uuid.UUID
	StaffMemberID uuid.UUID
	Role          Role
	IsPrimary     bool
	StartDate     time.Time
	EndDate       *time.Time
	Legacy        bool
}

// BunkAssignment is the engine's view of a counselor-to-bunk assignment
type BunkAssignment struct {
	ID          uuid.UUID
	CounselorID uuid.UUID
	BunkID      uuid.UUID
	IsPrimary   bool
	StartDate   time.Time
	EndDate     *time.Time
}

// BunkRef pairs a bunk with its owning unit
type BunkRef struct {
	ID     uuid.UUID
	UnitID uuid.UUID
}

// AssignmentDirectory answers temporal assignment queries. Implementations
// apply the date-window filter (start_date <= asOf <= end_date, end date
// inclusive, null end date open) in a single round trip per call; the
// resolver handles ordering, tie-breaks and the legacy fallback. Empty
// results are valid answers, never errors.
type AssignmentDirectory interface {
	// ActiveAssignmentsForUnit returns assignments active on asOf for the
	// given unit and role, in no particular order.
	ActiveAssignmentsForUnit(unitID uuid.UUID, role Role, asOf time.Time) ([]Assignment, error)

	// ActiveAssignmentsForStaff returns assignments active on asOf held by
	// the given staff member in the given role.
	ActiveAssignmentsForStaff(staffMemberID uuid.UUID, role Role, asOf time.Time) ([]Assignment, error)

	// LegacyHolderForUnit returns the unit's deprecated single-holder column
	// for the role, or nil when unset.
	LegacyHolderForUnit(unitID uuid.UUID, role Role) (*uuid.UUID, error)

	// LegacyUnitsForStaff returns units whose deprecated single-holder column
	// for the role names the staff member AND which have no assignment rows
	// active on asOf for that role.
	LegacyUnitsForStaff(staffMemberID uuid.UUID, role Role, asOf time.Time) ([]uuid.UUID, error)

	// ActiveBunkAssignmentsForCounselor returns the counselor's bunk
	// assignments active on asOf.
	ActiveBunkAssignmentsForCounselor(counselorID uuid.UUID, asOf time.Time) ([]BunkAssignment, error)
}

// ResourceDirectory answers batched resource-topology lookups needed to
// expand unit scope into bunk and camper scope.
type ResourceDirectory interface {
	// BunksForUnits returns the bunks belonging to any of the given units.
	BunksForUnits(unitIDs []uuid.UUID) ([]BunkRef, error)

	// UnitsForBunks maps each given bunk to its owning unit. Bunks without a
	// unit (transition data) are absent from the result.
	UnitsForBunks(bunkIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)

	// CampersForBunks returns campers with a bunk assignment in any of the
	// given bunks. When activeOnly is true, only assignments active on asOf
	// count; otherwise historical assignments grant visibility too.
	CampersForBunks(bunkIDs []uuid.UUID, activeOnly bool, asOf time.Time) ([]uuid.UUID, error)
}

// Clock supplies the current time. Inject FixedClock in tests so asOf is
// fully deterministic; core logic never calls time.Now directly.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock
type SystemClock struct{}

// Now returns the current wall-clock time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return c.Time
}

// LocaleProvider resolves a staff member's timezone, used to compute local
// calendar dates for the mutation window and server-assigned record dates.
type LocaleProvider interface {
	Location(staffMemberID uuid.UUID) (*time.Location, error)
}
