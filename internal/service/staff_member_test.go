package service_test

import (
	"testing"

	"camp-records-backend/internal/database/models"
	apperrors "camp-records-backend/internal/errors"
	"camp-records-backend/internal/mocks"
	"camp-records-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StaffMemberServiceTestSuite defines the test suite for StaffMemberService
type StaffMemberServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *mocks.MockStaffMemberRepositoryInterface
	svc       *service.StaffMemberService
	validator *validator.Validate
}

// SetupTest sets up the test suite
func (suite *StaffMemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockStaffMemberRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.svc = service.NewStaffMemberService(suite.mockRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *StaffMemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateStaffMember tests creating a staff member with defaults
func (suite *StaffMemberServiceTestSuite) TestCreateStaffMember() {
	req := &service.CreateStaffMemberRequest{
		Name:  "Dana Levi",
		Email: "dana@camp.test",
	}

	suite.mockRepo.EXPECT().
		CheckEmailExists(req.Email, gomock.Nil()).
		Return(false, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.svc.CreateStaffMember(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Dana Levi", response.Name)
	assert.Equal(suite.T(), "counselor", response.Role)
	assert.Equal(suite.T(), "America/New_York", response.Timezone)
	assert.True(suite.T(), response.IsActive)
	assert.False(suite.T(), response.IsStaff)
}

// TestCreateStaffMemberWithRole tests creating a staff member with an explicit role
func (suite *StaffMemberServiceTestSuite) TestCreateStaffMemberWithRole() {
	role := "unit_head"
	tz := "Asia/Jerusalem"
	req := &service.CreateStaffMemberRequest{
		Name:     "Noa Katz",
		Email:    "noa@camp.test",
		Role:     &role,
		Timezone: &tz,
	}

	suite.mockRepo.EXPECT().
		CheckEmailExists(req.Email, gomock.Nil()).
		Return(false, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.svc.CreateStaffMember(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "unit_head", response.Role)
	assert.Equal(suite.T(), "Asia/Jerusalem", response.Timezone)
}

// TestCreateStaffMemberInvalidRole tests that an unknown role is rejected
func (suite *StaffMemberServiceTestSuite) TestCreateStaffMemberInvalidRole() {
	role := "director"
	req := &service.CreateStaffMemberRequest{
		Name:  "Bad Role",
		Email: "bad@camp.test",
		Role:  &role,
	}

	suite.mockRepo.EXPECT().
		CheckEmailExists(req.Email, gomock.Nil()).
		Return(false, nil).
		Times(1)

	response, err := suite.svc.CreateStaffMember(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
	assert.Nil(suite.T(), response)
}

// TestCreateStaffMemberInvalidTimezone tests that an unknown timezone name is rejected
func (suite *StaffMemberServiceTestSuite) TestCreateStaffMemberInvalidTimezone() {
	tz := "Mars/Olympus_Mons"
	req := &service.CreateStaffMemberRequest{
		Name:     "Bad Zone",
		Email:    "zone@camp.test",
		Timezone: &tz,
	}

	suite.mockRepo.EXPECT().
		CheckEmailExists(req.Email, gomock.Nil()).
		Return(false, nil).
		Times(1)

	response, err := suite.svc.CreateStaffMember(req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), response)
}

// TestCreateStaffMemberDuplicateEmail tests the unique email rule
func (suite *StaffMemberServiceTestSuite) TestCreateStaffMemberDuplicateEmail() {
	req := &service.CreateStaffMemberRequest{
		Name:  "Dup Email",
		Email: "dup@camp.test",
	}

	suite.mockRepo.EXPECT().
		CheckEmailExists(req.Email, gomock.Nil()).
		Return(true, nil).
		Times(1)

	response, err := suite.svc.CreateStaffMember(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrStaffMemberExists)
	assert.Nil(suite.T(), response)
}

// TestUpdateStaffMemberDeactivate tests deactivating a staff member
func (suite *StaffMemberServiceTestSuite) TestUpdateStaffMemberDeactivate() {
	id := uuid.New()
	member := &models.StaffMember{
		Name:     "Active Member",
		Email:    "active@camp.test",
		Role:     models.StaffRoleCounselor,
		IsActive: true,
		Timezone: "America/New_York",
	}
	member.ID = id

	inactive := false

	suite.mockRepo.EXPECT().GetByID(id).Return(member, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.svc.UpdateStaffMember(id, &service.UpdateStaffMemberRequest{
		IsActive: &inactive,
	})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response.IsActive)
}

// TestGetStaffMemberByIDNotFound tests retrieval of a missing staff member
func (suite *StaffMemberServiceTestSuite) TestGetStaffMemberByIDNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, apperrors.ErrStaffMemberNotFound).Times(1)

	response, err := suite.svc.GetStaffMemberByID(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrStaffMemberNotFound)
	assert.Nil(suite.T(), response)
}

// TestStaffMemberServiceTestSuite runs the test suite
func TestStaffMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StaffMemberServiceTestSuite))
}
