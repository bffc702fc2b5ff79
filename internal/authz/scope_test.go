package authz_test

import (
	"testing"
	"time"

	"camp-records-backend/internal/authz"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ScopeTestSuite tests the scope calculator
type ScopeTestSuite struct {
	suite.Suite
	directory  *fakeDirectory
	resources  *fakeResources
	calculator *authz.Calculator
}

func (suite *ScopeTestSuite) SetupTest() {
	suite.directory = newFakeDirectory()
	suite.resources = &fakeResources{}
	suite.calculator = authz.NewCalculator(suite.directory, suite.resources)
}

// TestAdminScopeIsUnrestricted tests that admins skip scope computation
func (suite *ScopeTestSuite) TestAdminScopeIsUnrestricted() {
	scope, err := suite.calculator.ComputeScope(authz.Actor{ID: uuid.New(), Role: authz.RoleAdmin}, date(2025, time.July, 1))
	suite.NoError(err)
	suite.Equal(authz.ScopeUnrestricted, scope.Kind)
	suite.True(scope.HasUnit(uuid.New()))
	suite.True(scope.HasBunk(uuid.New()))
	suite.True(scope.HasCamper(uuid.New()))
}

// TestIsStaffFlagGrantsUnrestricted tests that the is_staff flag short-circuits
// like the admin role regardless of the role column
func (suite *ScopeTestSuite) TestIsStaffFlagGrantsUnrestricted() {
	scope, err := suite.calculator.ComputeScope(authz.Actor{ID: uuid.New(), Role: authz.RoleCounselor, IsStaff: true}, date(2025, time.July, 1))
	suite.NoError(err)
	suite.Equal(authz.ScopeUnrestricted, scope.Kind)
}

// TestUnknownRoleScopeIsEmpty tests that unrecognized roles see nothing
func (suite *ScopeTestSuite) TestUnknownRoleScopeIsEmpty() {
	scope, err := suite.calculator.ComputeScope(authz.Actor{ID: uuid.New(), Role: "visitor"}, date(2025, time.July, 1))
	suite.NoError(err)
	suite.Equal(authz.ScopeEmpty, scope.Kind)
	suite.False(scope.HasBunk(uuid.New()))
}

// TestUnitHeadHistoryGrant covers Scenario A: a unit head keeps visibility
// into a camper who moved out of the unit mid-season, while a counselor with
// the same facts does not
func (suite *ScopeTestSuite) TestUnitHeadHistoryGrant() {
	head := uuid.New()
	counselor := uuid.New()
	unitU := uuid.New()
	outsideUnit := uuid.New()
	bunkInU := uuid.New()
	bunkOutside := uuid.New()
	camperC := uuid.New()

	suite.directory.assignments = []authz.Assignment{{
		ID:            uuid.New(),
		UnitID:        unitU,
		StaffMemberID: head,
		Role:          authz.RoleUnitHead,
		StartDate:     date(2025, time.June, 1),
	}}
	suite.directory.bunkAssignments = []authz.BunkAssignment{{
		ID:          uuid.New(),
		CounselorID: counselor,
		BunkID:      bunkInU,
		StartDate:   date(2025, time.June, 1),
	}}
	suite.resources.bunks = []authz.BunkRef{
		{ID: bunkInU, UnitID: unitU},
		{ID: bunkOutside, UnitID: outsideUnit},
	}
	// Camper C left bunkInU on June 15 and moved outside the unit.
	suite.resources.stays = []camperStay{
		{CamperID: camperC, BunkID: bunkInU, StartDate: date(2025, time.June, 1), EndDate: datePtr(2025, time.June, 15)},
		{CamperID: camperC, BunkID: bunkOutside, StartDate: date(2025, time.June, 16)},
	}

	asOf := date(2025, time.July, 1)

	headScope, err := suite.calculator.ComputeScope(authz.Actor{ID: head, Role: authz.RoleUnitHead}, asOf)
	suite.NoError(err)
	suite.True(headScope.HasUnit(unitU))
	suite.True(headScope.HasBunk(bunkInU))
	suite.True(headScope.HasCamper(camperC), "history grant keeps the moved camper visible")

	counselorScope, err := suite.calculator.ComputeScope(authz.Actor{ID: counselor, Role: authz.RoleCounselor}, asOf)
	suite.NoError(err)
	suite.True(counselorScope.HasBunk(bunkInU))
	suite.False(counselorScope.HasCamper(camperC), "counselors get no history grant")
}

// TestCamperCareUsesLegacyFallback tests that a camper-care scope picks up
// units granted only through the deprecated legacy column
func (suite *ScopeTestSuite) TestCamperCareUsesLegacyFallback() {
	care := uuid.New()
	unitID := uuid.New()
	bunkID := uuid.New()
	camperID := uuid.New()

	suite.directory.legacyHolders[legacyKey{unitID: unitID, role: authz.RoleCamperCare}] = care
	suite.resources.bunks = []authz.BunkRef{{ID: bunkID, UnitID: unitID}}
	suite.resources.stays = []camperStay{{CamperID: camperID, BunkID: bunkID, StartDate: date(2025, time.June, 1)}}

	scope, err := suite.calculator.ComputeScope(authz.Actor{ID: care, Role: authz.RoleCamperCare}, date(2025, time.July, 1))
	suite.NoError(err)
	suite.True(scope.HasUnit(unitID))
	suite.True(scope.HasBunk(bunkID))
	suite.True(scope.HasCamper(camperID))
}

// TestCounselorScopeDerivesUnits tests that counselor unit scope comes from
// the owning units of actively assigned bunks
func (suite *ScopeTestSuite) TestCounselorScopeDerivesUnits() {
	counselor := uuid.New()
	unitID := uuid.New()
	bunkID := uuid.New()
	camperID := uuid.New()

	suite.directory.bunkAssignments = []authz.BunkAssignment{{
		ID:          uuid.New(),
		CounselorID: counselor,
		BunkID:      bunkID,
		StartDate:   date(2025, time.June, 1),
	}}
	suite.resources.bunks = []authz.BunkRef{{ID: bunkID, UnitID: unitID}}
	suite.resources.stays = []camperStay{{CamperID: camperID, BunkID: bunkID, StartDate: date(2025, time.June, 1)}}

	scope, err := suite.calculator.ComputeScope(authz.Actor{ID: counselor, Role: authz.RoleCounselor}, date(2025, time.July, 1))
	suite.NoError(err)
	suite.Equal(authz.ScopeScoped, scope.Kind)
	suite.True(scope.HasUnit(unitID))
	suite.True(scope.HasBunk(bunkID))
	suite.True(scope.HasCamper(camperID))
}

// TestExpiredCounselorAssignmentGrantsNothing tests that a closed bunk
// assignment leaves the counselor with an empty scoped set
func (suite *ScopeTestSuite) TestExpiredCounselorAssignmentGrantsNothing() {
	counselor := uuid.New()
	bunkID := uuid.New()

	suite.directory.bunkAssignments = []authz.BunkAssignment{{
		ID:          uuid.New(),
		CounselorID: counselor,
		BunkID:      bunkID,
		StartDate:   date(2025, time.June, 1),
		EndDate:     datePtr(2025, time.June, 20),
	}}

	scope, err := suite.calculator.ComputeScope(authz.Actor{ID: counselor, Role: authz.RoleCounselor}, date(2025, time.July, 1))
	suite.NoError(err)
	suite.Equal(authz.ScopeScoped, scope.Kind)
	suite.False(scope.HasBunk(bunkID))
}

// TestComputeScopeIsIdempotent tests that identical inputs with no
// intervening writes yield identical scopes
func (suite *ScopeTestSuite) TestComputeScopeIsIdempotent() {
	head := uuid.New()
	unitID := uuid.New()
	bunkID := uuid.New()
	camperID := uuid.New()

	suite.directory.assignments = []authz.Assignment{{
		ID:            uuid.New(),
		UnitID:        unitID,
		StaffMemberID: head,
		Role:          authz.RoleUnitHead,
		StartDate:     date(2025, time.June, 1),
	}}
	suite.resources.bunks = []authz.BunkRef{{ID: bunkID, UnitID: unitID}}
	suite.resources.stays = []camperStay{{CamperID: camperID, BunkID: bunkID, StartDate: date(2025, time.June, 1)}}

	actor := authz.Actor{ID: head, Role: authz.RoleUnitHead}
	asOf := date(2025, time.July, 1)

	first, err := suite.calculator.ComputeScope(actor, asOf)
	suite.NoError(err)
	second, err := suite.calculator.ComputeScope(actor, asOf)
	suite.NoError(err)

	suite.Equal(first.Kind, second.Kind)
	suite.Equal(first.UnitIDs, second.UnitIDs)
	suite.Equal(first.BunkIDs, second.BunkIDs)
	suite.Equal(first.CamperIDs, second.CamperIDs)
}

func TestScopeTestSuite(t *testing.T) {
	suite.Run(t, new(ScopeTestSuite))
}
