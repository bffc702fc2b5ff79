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
)

// CounselorLogServiceTestSuite defines the test suite for CounselorLogService
type CounselorLogServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockCounselorLogRepositoryInterface
	mockStaffRepo *mocks.MockStaffMemberRepositoryInterface
	mockBunkRepo  *mocks.MockBunkRepositoryInterface
	validator     *validator.Validate
}

// SetupTest sets up the test suite
func (suite *CounselorLogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCounselorLogRepositoryInterface(suite.ctrl)
	suite.mockStaffRepo = mocks.NewMockStaffMemberRepositoryInterface(suite.ctrl)
	suite.mockBunkRepo = mocks.NewMockBunkRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
}

// TearDownTest cleans up after each test
func (suite *CounselorLogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CounselorLogServiceTestSuite) newService(now time.Time, loc *time.Location) *service.CounselorLogService {
	return service.NewCounselorLogService(
		suite.mockRepo,
		suite.mockStaffRepo,
		suite.mockBunkRepo,
		authz.FixedClock{Time: now},
		fixedLocale{loc: loc},
		suite.validator,
	)
}

// TestCreateCounselorLog tests creating a counselor log
func (suite *CounselorLogServiceTestSuite) TestCreateCounselorLog() {
	now := time.Date(2025, 7, 6, 21, 0, 0, 0, time.UTC)
	svc := suite.newService(now, time.UTC)

	authorID := uuid.New()
	req := &service.CreateCounselorLogRequest{
		CounselorID: uuid.New(),
		BunkID:      uuid.New(),
		Highlights:  "Led the canoe trip",
		HoursSlept:  7.5,
	}
	wantDate := time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC)

	suite.mockStaffRepo.EXPECT().
		GetByID(req.CounselorID).
		Return(&models.StaffMember{Role: models.StaffRoleCounselor}, nil).
		Times(1)
	suite.mockBunkRepo.EXPECT().
		GetByID(req.BunkID).
		Return(&models.Bunk{}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		ExistsForCounselorDate(req.CounselorID, wantDate, gomock.Nil()).
		Return(false, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.CounselorLog) error {
			assert.Equal(suite.T(), wantDate, log.Date)
			assert.Equal(suite.T(), authorID, log.AuthorID)
			return nil
		}).
		Times(1)

	response, err := svc.CreateCounselorLog(authorID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2025-07-06", response.Date)
	assert.Equal(suite.T(), 7.5, response.HoursSlept)
}

// TestCreateCounselorLogRejectsNonCounselorSubject tests that the subject of a
// counselor log must hold the counselor role
func (suite *CounselorLogServiceTestSuite) TestCreateCounselorLogRejectsNonCounselorSubject() {
	now := time.Date(2025, 7, 6, 21, 0, 0, 0, time.UTC)
	svc := suite.newService(now, time.UTC)

	req := &service.CreateCounselorLogRequest{
		CounselorID: uuid.New(),
		BunkID:      uuid.New(),
	}

	suite.mockStaffRepo.EXPECT().
		GetByID(req.CounselorID).
		Return(&models.StaffMember{Role: models.StaffRoleUnitHead}, nil).
		Times(1)

	response, err := svc.CreateCounselorLog(uuid.New(), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
	assert.Nil(suite.T(), response)
}

// TestCreateCounselorLogDuplicateDate tests the one-log-per-counselor-per-date rule
func (suite *CounselorLogServiceTestSuite) TestCreateCounselorLogDuplicateDate() {
	now := time.Date(2025, 7, 6, 21, 0, 0, 0, time.UTC)
	svc := suite.newService(now, time.UTC)

	req := &service.CreateCounselorLogRequest{
		CounselorID: uuid.New(),
		BunkID:      uuid.New(),
	}

	suite.mockStaffRepo.EXPECT().
		GetByID(req.CounselorID).
		Return(&models.StaffMember{Role: models.StaffRoleCounselor}, nil).
		Times(1)
	suite.mockBunkRepo.EXPECT().
		GetByID(req.BunkID).
		Return(&models.Bunk{}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		ExistsForCounselorDate(req.CounselorID, gomock.Any(), gomock.Nil()).
		Return(true, nil).
		Times(1)

	response, err := svc.CreateCounselorLog(uuid.New(), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCounselorLogExists)
	assert.Nil(suite.T(), response)
}

// TestCreateCounselorLogHoursSleptOutOfRange tests the hours slept bounds
func (suite *CounselorLogServiceTestSuite) TestCreateCounselorLogHoursSleptOutOfRange() {
	now := time.Date(2025, 7, 6, 21, 0, 0, 0, time.UTC)
	svc := suite.newService(now, time.UTC)

	req := &service.CreateCounselorLogRequest{
		CounselorID: uuid.New(),
		BunkID:      uuid.New(),
		HoursSlept:  25,
	}

	response, err := svc.CreateCounselorLog(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
	assert.Nil(suite.T(), response)
}

// TestUpdateCounselorLogPreservesSubject tests that updates cannot move the
// log to a different counselor or day
func (suite *CounselorLogServiceTestSuite) TestUpdateCounselorLogPreservesSubject() {
	now := time.Date(2025, 7, 8, 12, 0, 0, 0, time.UTC)
	svc := suite.newService(now, time.UTC)

	id := uuid.New()
	counselorID := uuid.New()
	storedDate := time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC)
	stored := &models.CounselorLog{
		CounselorID: counselorID,
		AuthorID:    counselorID,
		BunkID:      uuid.New(),
		Date:        storedDate,
		Highlights:  "Original",
	}
	stored.ID = id

	concerns := "Homesick camper in bunk 3"

	suite.mockRepo.EXPECT().GetByID(id).Return(stored, nil).Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(log *models.CounselorLog) error {
			assert.Equal(suite.T(), counselorID, log.CounselorID)
			assert.Equal(suite.T(), storedDate, log.Date)
			assert.Equal(suite.T(), concerns, log.Concerns)
			return nil
		}).
		Times(1)

	response, err := svc.UpdateCounselorLog(id, &service.UpdateCounselorLogRequest{
		Concerns: &concerns,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), counselorID, response.CounselorID)
	assert.Equal(suite.T(), "2025-07-06", response.Date)
}

// TestCounselorLogServiceTestSuite runs the test suite
func TestCounselorLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CounselorLogServiceTestSuite))
}
