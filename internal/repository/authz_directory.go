package repository

import (
	"time"

	"camp-records-backend/internal/authz"
	"camp-records-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthzDirectory adapts the gorm repositories to the authorization engine's
// directory interfaces. Every method is a single batched query so scope
// computation stays at a fixed number of round trips per request.
type AuthzDirectory struct {
	db               *gorm.DB
	staffAssignments *StaffAssignmentRepository
	bunkAssignments  *CounselorBunkAssignmentRepository
	camperStays      *CamperBunkAssignmentRepository
	staffMembers     *StaffMemberRepository
}

// NewAuthzDirectory creates a directory backed by the given database
func NewAuthzDirectory(db *gorm.DB) *AuthzDirectory {
	return &AuthzDirectory{
		db:               db,
		staffAssignments: NewStaffAssignmentRepository(db),
		bunkAssignments:  NewCounselorBunkAssignmentRepository(db),
		camperStays:      NewCamperBunkAssignmentRepository(db),
		staffMembers:     NewStaffMemberRepository(db),
	}
}

var (
	_ authz.AssignmentDirectory = (*AuthzDirectory)(nil)
	_ authz.ResourceDirectory   = (*AuthzDirectory)(nil)
	_ authz.LocaleProvider      = (*AuthzDirectory)(nil)
)

// ActiveAssignmentsForUnit returns assignments active on asOf for (unit, role)
func (d *AuthzDirectory) ActiveAssignmentsForUnit(unitID uuid.UUID, role authz.Role, asOf time.Time) ([]authz.Assignment, error) {
	rows, err := d.staffAssignments.ActiveForUnit(unitID, models.StaffRole(role), asOf)
	if err != nil {
		return nil, err
	}
	return toAuthzAssignments(rows), nil
}

// ActiveAssignmentsForStaff returns assignments active on asOf held by the
// staff member in the given role
func (d *AuthzDirectory) ActiveAssignmentsForStaff(staffMemberID uuid.UUID, role authz.Role, asOf time.Time) ([]authz.Assignment, error) {
	rows, err := d.staffAssignments.ActiveForStaff(staffMemberID, models.StaffRole(role), asOf)
	if err != nil {
		return nil, err
	}
	return toAuthzAssignments(rows), nil
}

// LegacyHolderForUnit returns the unit's deprecated single-holder column for
// the role, or nil when unset
func (d *AuthzDirectory) LegacyHolderForUnit(unitID uuid.UUID, role authz.Role) (*uuid.UUID, error) {
	var unit models.Unit
	err := d.db.Select("legacy_unit_head_id", "legacy_camper_care_id").
		First(&unit, "id = ?", unitID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	if role == authz.RoleCamperCare {
		return unit.LegacyCamperCareID, nil
	}
	return unit.LegacyUnitHeadID, nil
}

// LegacyUnitsForStaff returns units whose deprecated holder column names the
// staff member and which have no active assignment rows for the role
func (d *AuthzDirectory) LegacyUnitsForStaff(staffMemberID uuid.UUID, role authz.Role, asOf time.Time) ([]uuid.UUID, error) {
	return d.staffAssignments.LegacyUnitIDsForStaff(staffMemberID, models.StaffRole(role), asOf)
}

// ActiveBunkAssignmentsForCounselor returns the counselor's bunk assignments
// active on asOf
func (d *AuthzDirectory) ActiveBunkAssignmentsForCounselor(counselorID uuid.UUID, asOf time.Time) ([]authz.BunkAssignment, error) {
	rows, err := d.bunkAssignments.ActiveForCounselor(counselorID, asOf)
	if err != nil {
		return nil, err
	}
	out := make([]authz.BunkAssignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, authz.BunkAssignment{
			ID:          row.ID,
			CounselorID: row.CounselorID,
			BunkID:      row.BunkID,
			IsPrimary:   row.IsPrimary,
			StartDate:   row.StartDate,
			EndDate:     row.EndDate,
		})
	}
	return out, nil
}

// BunksForUnits returns the bunks belonging to any of the given units
func (d *AuthzDirectory) BunksForUnits(unitIDs []uuid.UUID) ([]authz.BunkRef, error) {
	if len(unitIDs) == 0 {
		return nil, nil
	}
	var bunks []models.Bunk
	err := d.db.Select("id", "unit_id").Where("unit_id IN ?", unitIDs).Find(&bunks).Error
	if err != nil {
		return nil, err
	}
	refs := make([]authz.BunkRef, 0, len(bunks))
	for _, bunk := range bunks {
		if bunk.UnitID == nil {
			continue
		}
		refs = append(refs, authz.BunkRef{ID: bunk.ID, UnitID: *bunk.UnitID})
	}
	return refs, nil
}

// UnitsForBunks maps each given bunk to its owning unit. Bunks without a unit
// are absent from the result.
func (d *AuthzDirectory) UnitsForBunks(bunkIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	if len(bunkIDs) == 0 {
		return map[uuid.UUID]uuid.UUID{}, nil
	}
	var bunks []models.Bunk
	err := d.db.Select("id", "unit_id").Where("id IN ?", bunkIDs).Find(&bunks).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]uuid.UUID, len(bunks))
	for _, bunk := range bunks {
		if bunk.UnitID == nil {
			continue
		}
		out[bunk.ID] = *bunk.UnitID
	}
	return out, nil
}

// CampersForBunks returns campers with a bunk assignment in any of the given
// bunks, active-only or including history
func (d *AuthzDirectory) CampersForBunks(bunkIDs []uuid.UUID, activeOnly bool, asOf time.Time) ([]uuid.UUID, error) {
	return d.camperStays.CamperIDsForBunks(bunkIDs, activeOnly, asOf)
}

// Location resolves a staff member's timezone. Unknown members and bad
// timezone strings fall back to UTC so window checks never fail hard.
func (d *AuthzDirectory) Location(staffMemberID uuid.UUID) (*time.Location, error) {
	member, err := d.staffMembers.GetByID(staffMemberID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return time.UTC, nil
		}
		return nil, err
	}
	loc, err := time.LoadLocation(member.Timezone)
	if err != nil {
		return time.UTC, nil
	}
	return loc, nil
}

func toAuthzAssignments(rows []models.StaffAssignment) []authz.Assignment {
	out := make([]authz.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, authz.Assignment{
			ID:            row.ID,
			UnitID:        row.UnitID,
			StaffMemberID: row.StaffMemberID,
			Role:          authz.Role(row.Role),
			IsPrimary:     row.IsPrimary,
			StartDate:     row.StartDate,
			EndDate:       row.EndDate,
		})
	}
	return out
}
