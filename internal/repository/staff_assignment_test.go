//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"camp-records-backend/internal/database/models"
	apperrors "camp-records-backend/internal/errors"
	"camp-records-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// StaffAssignmentRepositoryTestSuite tests the StaffAssignmentRepository
type StaffAssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *StaffAssignmentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *StaffAssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewStaffAssignmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *StaffAssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *StaffAssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *StaffAssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createUnitAndStaff persists a unit and a staff member for assignment rows
func (suite *StaffAssignmentRepositoryTestSuite) createUnitAndStaff(role models.StaffRole) (*models.Unit, *models.StaffMember) {
	unit := suite.factories.Unit.Create()
	err := NewUnitRepository(suite.baseTestSuite.DB).Create(unit)
	suite.NoError(err)

	member := suite.factories.StaffMember.WithRole(role)
	err = NewStaffMemberRepository(suite.baseTestSuite.DB).Create(member)
	suite.NoError(err)

	return unit, member
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestCreate tests creating a new staff assignment
func (suite *StaffAssignmentRepositoryTestSuite) TestCreate() {
	unit, member := suite.createUnitAndStaff(models.StaffRoleUnitHead)

	assignment := suite.factories.StaffAssignment.Create()
	assignment.UnitID = unit.ID
	assignment.StaffMemberID = member.ID

	err := suite.repo.Create(assignment)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, assignment.ID)
	suite.NotZero(assignment.CreatedAt)
}

// TestCreateDuplicateTuple tests the unique (unit, staff, role) constraint
func (suite *StaffAssignmentRepositoryTestSuite) TestCreateDuplicateTuple() {
	unit, member := suite.createUnitAndStaff(models.StaffRoleUnitHead)

	first := suite.factories.StaffAssignment.Create()
	first.UnitID = unit.ID
	first.StaffMemberID = member.ID
	err := suite.repo.Create(first)
	suite.NoError(err)

	second := suite.factories.StaffAssignment.Create()
	second.UnitID = unit.ID
	second.StaffMemberID = member.ID

	err = suite.repo.Create(second)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestActiveForUnitWindow tests the inclusive date-window filter
func (suite *StaffAssignmentRepositoryTestSuite) TestActiveForUnitWindow() {
	unit, member := suite.createUnitAndStaff(models.StaffRoleUnitHead)

	end := date(2025, 7, 20)
	assignment := suite.factories.StaffAssignment.WithWindow(date(2025, 7, 1), &end)
	assignment.UnitID = unit.ID
	assignment.StaffMemberID = member.ID
	err := suite.repo.Create(assignment)
	suite.NoError(err)

	// Day before start: not active
	rows, err := suite.repo.ActiveForUnit(unit.ID, models.StaffRoleUnitHead, date(2025, 6, 30))
	suite.NoError(err)
	suite.Empty(rows)

	// On start date: active
	rows, err = suite.repo.ActiveForUnit(unit.ID, models.StaffRoleUnitHead, date(2025, 7, 1))
	suite.NoError(err)
	suite.Len(rows, 1)

	// On end date: still active (inclusive)
	rows, err = suite.repo.ActiveForUnit(unit.ID, models.StaffRoleUnitHead, date(2025, 7, 20))
	suite.NoError(err)
	suite.Len(rows, 1)

	// Day after end: expired
	rows, err = suite.repo.ActiveForUnit(unit.ID, models.StaffRoleUnitHead, date(2025, 7, 21))
	suite.NoError(err)
	suite.Empty(rows)
}

// TestActiveForUnitOpenEnded tests that a null end date never expires
func (suite *StaffAssignmentRepositoryTestSuite) TestActiveForUnitOpenEnded() {
	unit, member := suite.createUnitAndStaff(models.StaffRoleCamperCare)

	assignment := suite.factories.StaffAssignment.WithWindow(date(2025, 6, 1), nil)
	assignment.UnitID = unit.ID
	assignment.StaffMemberID = member.ID
	assignment.Role = models.StaffRoleCamperCare
	err := suite.repo.Create(assignment)
	suite.NoError(err)

	rows, err := suite.repo.ActiveForUnit(unit.ID, models.StaffRoleCamperCare, date(2026, 1, 1))
	suite.NoError(err)
	suite.Len(rows, 1)
}

// TestSetPrimaryClearsSiblings tests that promoting one assignment atomically
// demotes every other primary sharing its unit and role
func (suite *StaffAssignmentRepositoryTestSuite) TestSetPrimaryClearsSiblings() {
	unit, memberA := suite.createUnitAndStaff(models.StaffRoleUnitHead)
	memberB := suite.factories.StaffMember.WithRole(models.StaffRoleUnitHead)
	err := NewStaffMemberRepository(suite.baseTestSuite.DB).Create(memberB)
	suite.NoError(err)

	assignmentA := suite.factories.StaffAssignment.Create()
	assignmentA.UnitID = unit.ID
	assignmentA.StaffMemberID = memberA.ID
	assignmentA.IsPrimary = true
	err = suite.repo.Create(assignmentA)
	suite.NoError(err)

	assignmentB := suite.factories.StaffAssignment.Create()
	assignmentB.UnitID = unit.ID
	assignmentB.StaffMemberID = memberB.ID
	err = suite.repo.Create(assignmentB)
	suite.NoError(err)

	// Promote B; A must lose its flag in the same transaction
	err = suite.repo.SetPrimary(assignmentB.ID)
	suite.NoError(err)

	rows, err := suite.repo.ActiveForUnit(unit.ID, models.StaffRoleUnitHead, date(2025, 7, 1))
	suite.NoError(err)
	suite.Len(rows, 2)

	var primaries []uuid.UUID
	for _, row := range rows {
		if row.IsPrimary {
			primaries = append(primaries, row.ID)
		}
	}
	suite.Len(primaries, 1)
	suite.Equal(assignmentB.ID, primaries[0])
}

// TestSetPrimaryNotFound tests promoting a non-existent assignment
func (suite *StaffAssignmentRepositoryTestSuite) TestSetPrimaryNotFound() {
	err := suite.repo.SetPrimary(uuid.New())
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestClose tests closing an open-ended assignment
func (suite *StaffAssignmentRepositoryTestSuite) TestClose() {
	unit, member := suite.createUnitAndStaff(models.StaffRoleUnitHead)

	assignment := suite.factories.StaffAssignment.WithWindow(date(2025, 6, 1), nil)
	assignment.UnitID = unit.ID
	assignment.StaffMemberID = member.ID
	err := suite.repo.Create(assignment)
	suite.NoError(err)

	err = suite.repo.Close(assignment.ID, date(2025, 7, 15))
	suite.NoError(err)

	// Still active on the end date itself
	rows, err := suite.repo.ActiveForUnit(unit.ID, models.StaffRoleUnitHead, date(2025, 7, 15))
	suite.NoError(err)
	suite.Len(rows, 1)

	// Expired the next day
	rows, err = suite.repo.ActiveForUnit(unit.ID, models.StaffRoleUnitHead, date(2025, 7, 16))
	suite.NoError(err)
	suite.Empty(rows)
}

// TestCloseAlreadyClosed tests closing an assignment twice
func (suite *StaffAssignmentRepositoryTestSuite) TestCloseAlreadyClosed() {
	unit, member := suite.createUnitAndStaff(models.StaffRoleUnitHead)

	end := date(2025, 7, 15)
	assignment := suite.factories.StaffAssignment.WithWindow(date(2025, 6, 1), &end)
	assignment.UnitID = unit.ID
	assignment.StaffMemberID = member.ID
	err := suite.repo.Create(assignment)
	suite.NoError(err)

	err = suite.repo.Close(assignment.ID, date(2025, 8, 1))
	suite.Error(err)
	suite.Equal(apperrors.ErrAssignmentAlreadyClosed, err)
}

// TestLegacyUnitIDsForStaff tests the deprecated single-holder fallback query
func (suite *StaffAssignmentRepositoryTestSuite) TestLegacyUnitIDsForStaff() {
	member := suite.factories.StaffMember.WithRole(models.StaffRoleUnitHead)
	err := NewStaffMemberRepository(suite.baseTestSuite.DB).Create(member)
	suite.NoError(err)

	unitRepo := NewUnitRepository(suite.baseTestSuite.DB)
	legacyUnit := suite.factories.Unit.WithLegacyUnitHead(member.ID)
	err = unitRepo.Create(legacyUnit)
	suite.NoError(err)

	// Legacy column set and no assignment rows: fallback applies
	ids, err := suite.repo.LegacyUnitIDsForStaff(member.ID, models.StaffRoleUnitHead, date(2025, 7, 1))
	suite.NoError(err)
	suite.Equal([]uuid.UUID{legacyUnit.ID}, ids)

	// An active assignment row for the role suppresses the fallback, even
	// when it names a different staff member
	other := suite.factories.StaffMember.WithRole(models.StaffRoleUnitHead)
	err = NewStaffMemberRepository(suite.baseTestSuite.DB).Create(other)
	suite.NoError(err)

	assignment := suite.factories.StaffAssignment.WithWindow(date(2025, 6, 1), nil)
	assignment.UnitID = legacyUnit.ID
	assignment.StaffMemberID = other.ID
	err = suite.repo.Create(assignment)
	suite.NoError(err)

	ids, err = suite.repo.LegacyUnitIDsForStaff(member.ID, models.StaffRoleUnitHead, date(2025, 7, 1))
	suite.NoError(err)
	suite.Empty(ids)
}

// TestExistsForTuple tests the tuple existence check
func (suite *StaffAssignmentRepositoryTestSuite) TestExistsForTuple() {
	unit, member := suite.createUnitAndStaff(models.StaffRoleUnitHead)

	exists, err := suite.repo.ExistsForTuple(unit.ID, member.ID, models.StaffRoleUnitHead)
	suite.NoError(err)
	suite.False(exists)

	assignment := suite.factories.StaffAssignment.Create()
	assignment.UnitID = unit.ID
	assignment.StaffMemberID = member.ID
	err = suite.repo.Create(assignment)
	suite.NoError(err)

	exists, err = suite.repo.ExistsForTuple(unit.ID, member.ID, models.StaffRoleUnitHead)
	suite.NoError(err)
	suite.True(exists)
}

// Run the test suite
func TestStaffAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StaffAssignmentRepositoryTestSuite))
}
