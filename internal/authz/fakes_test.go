package authz_test

import (
	"time"

	"camp-records-backend/internal/authz"

	"github.com/google/uuid"
)

// date builds a UTC calendar date, the granularity assignments work at
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func activeOn(start time.Time, end *time.Time, asOf time.Time) bool {
	if start.After(asOf) {
		return false
	}
	return end == nil || !end.Before(asOf)
}

type legacyKey struct {
	unitID uuid.UUID
	role   authz.Role
}

// fakeDirectory is an in-memory AssignmentDirectory
type fakeDirectory struct {
	assignments     []authz.Assignment
	legacyHolders   map[legacyKey]uuid.UUID
	bunkAssignments []authz.BunkAssignment
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{legacyHolders: make(map[legacyKey]uuid.UUID)}
}

func (d *fakeDirectory) ActiveAssignmentsForUnit(unitID uuid.UUID, role authz.Role, asOf time.Time) ([]authz.Assignment, error) {
	var out []authz.Assignment
	for _, a := range d.assignments {
		if a.UnitID == unitID && a.Role == role && activeOn(a.StartDate, a.EndDate, asOf) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (d *fakeDirectory) ActiveAssignmentsForStaff(staffMemberID uuid.UUID, role authz.Role, asOf time.Time) ([]authz.Assignment, error) {
	var out []authz.Assignment
	for _, a := range d.assignments {
		if a.StaffMemberID == staffMemberID && a.Role == role && activeOn(a.StartDate, a.EndDate, asOf) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (d *fakeDirectory) LegacyHolderForUnit(unitID uuid.UUID, role authz.Role) (*uuid.UUID, error) {
	if holder, ok := d.legacyHolders[legacyKey{unitID: unitID, role: role}]; ok {
		h := holder
		return &h, nil
	}
	return nil, nil
}

func (d *fakeDirectory) LegacyUnitsForStaff(staffMemberID uuid.UUID, role authz.Role, asOf time.Time) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for key, holder := range d.legacyHolders {
		if key.role != role || holder != staffMemberID {
			continue
		}
		active, _ := d.ActiveAssignmentsForUnit(key.unitID, role, asOf)
		if len(active) == 0 {
			out = append(out, key.unitID)
		}
	}
	return out, nil
}

func (d *fakeDirectory) ActiveBunkAssignmentsForCounselor(counselorID uuid.UUID, asOf time.Time) ([]authz.BunkAssignment, error) {
	var out []authz.BunkAssignment
	for _, ba := range d.bunkAssignments {
		if ba.CounselorID == counselorID && activeOn(ba.StartDate, ba.EndDate, asOf) {
			out = append(out, ba)
		}
	}
	return out, nil
}

type camperStay struct {
	CamperID  uuid.UUID
	BunkID    uuid.UUID
	StartDate time.Time
	EndDate   *time.Time
}

// fakeResources is an in-memory ResourceDirectory
type fakeResources struct {
	bunks []authz.BunkRef
	stays []camperStay
}

func (r *fakeResources) BunksForUnits(unitIDs []uuid.UUID) ([]authz.BunkRef, error) {
	want := make(map[uuid.UUID]struct{}, len(unitIDs))
	for _, id := range unitIDs {
		want[id] = struct{}{}
	}
	var out []authz.BunkRef
	for _, b := range r.bunks {
		if _, ok := want[b.UnitID]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeResources) UnitsForBunks(bunkIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	want := make(map[uuid.UUID]struct{}, len(bunkIDs))
	for _, id := range bunkIDs {
		want[id] = struct{}{}
	}
	out := make(map[uuid.UUID]uuid.UUID)
	for _, b := range r.bunks {
		if _, ok := want[b.ID]; ok {
			out[b.ID] = b.UnitID
		}
	}
	return out, nil
}

func (r *fakeResources) CampersForBunks(bunkIDs []uuid.UUID, activeOnly bool, asOf time.Time) ([]uuid.UUID, error) {
	want := make(map[uuid.UUID]struct{}, len(bunkIDs))
	for _, id := range bunkIDs {
		want[id] = struct{}{}
	}
	seen := make(map[uuid.UUID]struct{})
	var out []uuid.UUID
	for _, s := range r.stays {
		if _, ok := want[s.BunkID]; !ok {
			continue
		}
		if activeOnly && !activeOn(s.StartDate, s.EndDate, asOf) {
			continue
		}
		if _, ok := seen[s.CamperID]; !ok {
			seen[s.CamperID] = struct{}{}
			out = append(out, s.CamperID)
		}
	}
	return out, nil
}

// fakeLocales is an in-memory LocaleProvider
type fakeLocales struct {
	zones map[uuid.UUID]string
}

func (l *fakeLocales) Location(staffMemberID uuid.UUID) (*time.Location, error) {
	if l.zones != nil {
		if name, ok := l.zones[staffMemberID]; ok {
			return time.LoadLocation(name)
		}
	}
	return time.UTC, nil
}
