package authz

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Resolver answers "who holds role R in unit U on date D" and the inverse
// "which units does this person hold role R in". It owns the deterministic
// tie-break order and the legacy single-holder fallback, so the question has
// one answer regardless of migration state.
type Resolver struct {
	assignments AssignmentDirectory
}

// NewResolver creates a resolver over an assignment directory
func NewResolver(assignments AssignmentDirectory) *Resolver {
	return &Resolver{assignments: assignments}
}

// ActiveForUnit returns the assignments active on asOf for (unit, role) in
// resolution order: primary flag first, then earliest start date, then lowest
// assignment ID. When no rows are active and the unit carries a legacy holder
// for the role, a single virtual assignment is synthesized from it. An empty
// result is a valid answer, not an error.
func (r *Resolver) ActiveForUnit(unitID uuid.UUID, role Role, asOf time.Time) ([]Assignment, error) {
	active, err := r.assignments.ActiveAssignmentsForUnit(unitID, role, asOf)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		holder, err := r.assignments.LegacyHolderForUnit(unitID, role)
		if err != nil {
			return nil, err
		}
		if holder == nil {
			return nil, nil
		}
		return []Assignment{{
			UnitID:        unitID,
			StaffMemberID: *holder,
			Role:          role,
			IsPrimary:     true,
			Legacy:        true,
		}}, nil
	}
	sortAssignments(active)
	return active, nil
}

// PrimaryForUnit returns the single authoritative holder of (unit, role) on
// asOf, or nil when nobody holds it. Data-quality states with zero or several
// primary flags are tolerated: the tie-break picks the same assignment every
// time.
func (r *Resolver) PrimaryForUnit(unitID uuid.UUID, role Role, asOf time.Time) (*Assignment, error) {
	active, err := r.ActiveForUnit(unitID, role, asOf)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, nil
	}
	return &active[0], nil
}

// UnitsForStaff returns the units in which the staff member holds the role on
// asOf, including units granted only through the legacy fallback columns.
func (r *Resolver) UnitsForStaff(staffMemberID uuid.UUID, role Role, asOf time.Time) ([]uuid.UUID, error) {
	active, err := r.assignments.ActiveAssignmentsForStaff(staffMemberID, role, asOf)
	if err != nil {
		return nil, err
	}
	legacy, err := r.assignments.LegacyUnitsForStaff(staffMemberID, role, asOf)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(active)+len(legacy))
	units := make([]uuid.UUID, 0, len(active)+len(legacy))
	for _, a := range active {
		if _, ok := seen[a.UnitID]; !ok {
			seen[a.UnitID] = struct{}{}
			units = append(units, a.UnitID)
		}
	}
	for _, id := range legacy {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			units = append(units, id)
		}
	}
	return units, nil
}

// sortAssignments orders candidates by the resolution total order:
// is_primary desc, start_date asc, id asc. The ID comparison makes the order
// stable even when several rows share a primary flag and a start date.
func sortAssignments(assignments []Assignment) {
	sort.Slice(assignments, func(i, j int) bool {
		a, b := assignments[i], assignments[j]
		if a.IsPrimary != b.IsPrimary {
			return a.IsPrimary
		}
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		return bytes.Compare(a.ID[:], b.ID[:]) < 0
	})
}
