package service_test

import (
	"testing"
	"time"

	"camp-records-backend/internal/authz"
	"camp-records-backend/internal/database/models"
	apperrors "camp-records-backend/internal/errors"
	"camp-records-backend/internal/mocks"
	"camp-records-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// stubAssignmentDirectory is a minimal in-memory assignment directory backing
// the resolver in service tests
type stubAssignmentDirectory struct {
	active map[uuid.UUID][]authz.Assignment
	legacy map[uuid.UUID]*uuid.UUID
}

func newStubAssignmentDirectory() *stubAssignmentDirectory {
	return &stubAssignmentDirectory{
		active: make(map[uuid.UUID][]authz.Assignment),
		legacy: make(map[uuid.UUID]*uuid.UUID),
	}
}

func (d *stubAssignmentDirectory) ActiveAssignmentsForUnit(unitID uuid.UUID, role authz.Role, asOf time.Time) ([]authz.Assignment, error) {
	var out []authz.Assignment
	for _, a := range d.active[unitID] {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out, nil
}

func (d *stubAssignmentDirectory) ActiveAssignmentsForStaff(staffMemberID uuid.UUID, role authz.Role, asOf time.Time) ([]authz.Assignment, error) {
	return nil, nil
}

func (d *stubAssignmentDirectory) LegacyHolderForUnit(unitID uuid.UUID, role authz.Role) (*uuid.UUID, error) {
	return d.legacy[unitID], nil
}

func (d *stubAssignmentDirectory) LegacyUnitsForStaff(staffMemberID uuid.UUID, role authz.Role, asOf time.Time) ([]uuid.UUID, error) {
	return nil, nil
}

func (d *stubAssignmentDirectory) ActiveBunkAssignmentsForCounselor(counselorID uuid.UUID, asOf time.Time) ([]authz.BunkAssignment, error) {
	return nil, nil
}

// StaffAssignmentServiceTestSuite defines the test suite for StaffAssignmentService
type StaffAssignmentServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockStaffAssignmentRepositoryInterface
	mockUnitRepo  *mocks.MockUnitRepositoryInterface
	mockStaffRepo *mocks.MockStaffMemberRepositoryInterface
	directory     *stubAssignmentDirectory
	svc           *service.StaffAssignmentService
	validator     *validator.Validate
}

// SetupTest sets up the test suite
func (suite *StaffAssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockStaffAssignmentRepositoryInterface(suite.ctrl)
	suite.mockUnitRepo = mocks.NewMockUnitRepositoryInterface(suite.ctrl)
	suite.mockStaffRepo = mocks.NewMockStaffMemberRepositoryInterface(suite.ctrl)
	suite.directory = newStubAssignmentDirectory()
	suite.validator = validator.New()

	suite.svc = service.NewStaffAssignmentService(
		suite.mockRepo,
		suite.mockUnitRepo,
		suite.mockStaffRepo,
		authz.NewResolver(suite.directory),
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *StaffAssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateStaffAssignment tests creating a staff assignment
func (suite *StaffAssignmentServiceTestSuite) TestCreateStaffAssignment() {
	req := &service.CreateStaffAssignmentRequest{
		UnitID:        uuid.New(),
		StaffMemberID: uuid.New(),
		Role:          "unit_head",
		IsPrimary:     true,
		StartDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockUnitRepo.EXPECT().
		GetByID(req.UnitID).
		Return(&models.Unit{}, nil).
		Times(1)
	suite.mockStaffRepo.EXPECT().
		GetByID(req.StaffMemberID).
		Return(&models.StaffMember{}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		ExistsForTuple(req.UnitID, req.StaffMemberID, models.StaffRoleUnitHead).
		Return(false, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.svc.CreateStaffAssignment(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.UnitID, response.UnitID)
	assert.Equal(suite.T(), "unit_head", response.Role)
	assert.True(suite.T(), response.IsPrimary)
	assert.Equal(suite.T(), "2025-06-01", response.StartDate)
}

// TestCreateStaffAssignmentRejectsNonUnitRole tests that admin and counselor
// roles cannot be assigned at unit level
func (suite *StaffAssignmentServiceTestSuite) TestCreateStaffAssignmentRejectsNonUnitRole() {
	for _, role := range []string{"admin", "counselor", "bogus"} {
		req := &service.CreateStaffAssignmentRequest{
			UnitID:        uuid.New(),
			StaffMemberID: uuid.New(),
			Role:          role,
			StartDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		}

		response, err := suite.svc.CreateStaffAssignment(req)

		assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
		assert.Nil(suite.T(), response)
	}
}

// TestCreateStaffAssignmentInvalidDateRange tests that an end date before the
// start date is rejected
func (suite *StaffAssignmentServiceTestSuite) TestCreateStaffAssignmentInvalidDateRange() {
	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	req := &service.CreateStaffAssignmentRequest{
		UnitID:        uuid.New(),
		StaffMemberID: uuid.New(),
		Role:          "camper_care",
		StartDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       &end,
	}

	response, err := suite.svc.CreateStaffAssignment(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDateRange)
	assert.Nil(suite.T(), response)
}

// TestCreateStaffAssignmentDuplicateTuple tests the one-row-per-tuple rule
func (suite *StaffAssignmentServiceTestSuite) TestCreateStaffAssignmentDuplicateTuple() {
	req := &service.CreateStaffAssignmentRequest{
		UnitID:        uuid.New(),
		StaffMemberID: uuid.New(),
		Role:          "unit_head",
		StartDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockUnitRepo.EXPECT().
		GetByID(req.UnitID).
		Return(&models.Unit{}, nil).
		Times(1)
	suite.mockStaffRepo.EXPECT().
		GetByID(req.StaffMemberID).
		Return(&models.StaffMember{}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		ExistsForTuple(req.UnitID, req.StaffMemberID, models.StaffRoleUnitHead).
		Return(true, nil).
		Times(1)

	response, err := suite.svc.CreateStaffAssignment(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrStaffAssignmentExists)
	assert.Nil(suite.T(), response)
}

// TestCreateStaffAssignmentUnitNotFound tests creating against a missing unit
func (suite *StaffAssignmentServiceTestSuite) TestCreateStaffAssignmentUnitNotFound() {
	req := &service.CreateStaffAssignmentRequest{
		UnitID:        uuid.New(),
		StaffMemberID: uuid.New(),
		Role:          "unit_head",
		StartDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockUnitRepo.EXPECT().
		GetByID(req.UnitID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.svc.CreateStaffAssignment(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnitNotFound)
	assert.Nil(suite.T(), response)
}

// TestGetActiveForUnitOrdersPrimaryFirst tests the resolution order of active
// assignments
func (suite *StaffAssignmentServiceTestSuite) TestGetActiveForUnitOrdersPrimaryFirst() {
	unitID := uuid.New()
	asOf := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	secondary := authz.Assignment{
		ID:            uuid.New(),
		UnitID:        unitID,
		StaffMemberID: uuid.New(),
		Role:          authz.RoleUnitHead,
		StartDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	primary := authz.Assignment{
		ID:            uuid.New(),
		UnitID:        unitID,
		StaffMemberID: uuid.New(),
		Role:          authz.RoleUnitHead,
		IsPrimary:     true,
		StartDate:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	suite.directory.active[unitID] = []authz.Assignment{secondary, primary}

	suite.mockUnitRepo.EXPECT().
		GetByID(unitID).
		Return(&models.Unit{}, nil).
		Times(1)

	responses, err := suite.svc.GetActiveForUnit(unitID, models.StaffRoleUnitHead, asOf)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), primary.ID, responses[0].ID)
	assert.True(suite.T(), responses[0].IsPrimary)
	assert.Equal(suite.T(), secondary.ID, responses[1].ID)
}

// TestGetPrimaryForUnitFallsBackToLegacyHolder tests the legacy synthesis when
// a unit has no active assignment rows
func (suite *StaffAssignmentServiceTestSuite) TestGetPrimaryForUnitFallsBackToLegacyHolder() {
	unitID := uuid.New()
	holderID := uuid.New()
	suite.directory.legacy[unitID] = &holderID

	suite.mockUnitRepo.EXPECT().
		GetByID(unitID).
		Return(&models.Unit{}, nil).
		Times(1)

	response, err := suite.svc.GetPrimaryForUnit(unitID, models.StaffRoleCamperCare, time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), holderID, response.StaffMemberID)
	assert.True(suite.T(), response.Legacy)
	assert.True(suite.T(), response.IsPrimary)
	assert.Empty(suite.T(), response.StartDate)
}

// TestGetPrimaryForUnitNoHolder tests that a unit with no rows and no legacy
// holder resolves to nothing
func (suite *StaffAssignmentServiceTestSuite) TestGetPrimaryForUnitNoHolder() {
	unitID := uuid.New()

	suite.mockUnitRepo.EXPECT().
		GetByID(unitID).
		Return(&models.Unit{}, nil).
		Times(1)

	response, err := suite.svc.GetPrimaryForUnit(unitID, models.StaffRoleUnitHead, time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), response)
}

// TestSetPrimary tests promoting an assignment to primary
func (suite *StaffAssignmentServiceTestSuite) TestSetPrimary() {
	id := uuid.New()
	assignment := &models.StaffAssignment{
		UnitID:        uuid.New(),
		StaffMemberID: uuid.New(),
		Role:          models.StaffRoleUnitHead,
		IsPrimary:     true,
		StartDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	assignment.ID = id

	suite.mockRepo.EXPECT().SetPrimary(id).Return(nil).Times(1)
	suite.mockRepo.EXPECT().GetByID(id).Return(assignment, nil).Times(1)

	response, err := suite.svc.SetPrimary(id)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.IsPrimary)
}

// TestCloseStaffAssignmentBeforeStart tests that closing before the start date
// is rejected
func (suite *StaffAssignmentServiceTestSuite) TestCloseStaffAssignmentBeforeStart() {
	id := uuid.New()
	assignment := &models.StaffAssignment{
		UnitID:        uuid.New(),
		StaffMemberID: uuid.New(),
		Role:          models.StaffRoleUnitHead,
		StartDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	assignment.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(assignment, nil).Times(1)

	response, err := suite.svc.CloseStaffAssignment(id, &service.CloseStaffAssignmentRequest{
		EndDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDateRange)
	assert.Nil(suite.T(), response)
}

// TestStaffAssignmentServiceTestSuite runs the test suite
func TestStaffAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StaffAssignmentServiceTestSuite))
}
