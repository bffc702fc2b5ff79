//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"camp-records-backend/internal/database/models"
	"camp-records-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BunkLogRepositoryTestSuite tests the BunkLogRepository
type BunkLogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BunkLogRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BunkLogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewBunkLogRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BunkLogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BunkLogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BunkLogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createBunkAndAuthor persists a bunk and a counselor for log rows
func (suite *BunkLogRepositoryTestSuite) createBunkAndAuthor() (*models.Bunk, *models.StaffMember) {
	bunk := suite.factories.Bunk.Create()
	err := NewBunkRepository(suite.baseTestSuite.DB).Create(bunk)
	suite.NoError(err)

	author := suite.factories.StaffMember.WithRole(models.StaffRoleCounselor)
	err = NewStaffMemberRepository(suite.baseTestSuite.DB).Create(author)
	suite.NoError(err)

	return bunk, author
}

// TestCreate tests creating a new bunk log
func (suite *BunkLogRepositoryTestSuite) TestCreate() {
	bunk, author := suite.createBunkAndAuthor()

	log := suite.factories.BunkLog.Create()
	log.BunkID = bunk.ID
	log.AuthorID = author.ID

	err := suite.repo.Create(log)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, log.ID)
	suite.NotZero(log.CreatedAt)
}

// TestCreateDuplicateDate tests the unique (bunk, date) constraint
func (suite *BunkLogRepositoryTestSuite) TestCreateDuplicateDate() {
	bunk, author := suite.createBunkAndAuthor()

	first := suite.factories.BunkLog.Create()
	first.BunkID = bunk.ID
	first.AuthorID = author.ID
	err := suite.repo.Create(first)
	suite.NoError(err)

	second := suite.factories.BunkLog.Create()
	second.BunkID = bunk.ID
	second.AuthorID = author.ID
	second.Summary = "A second take on the same day"

	err = suite.repo.Create(second)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestExistsForBunkDate tests the duplicate pre-check
func (suite *BunkLogRepositoryTestSuite) TestExistsForBunkDate() {
	bunk, author := suite.createBunkAndAuthor()

	log := suite.factories.BunkLog.Create()
	log.BunkID = bunk.ID
	log.AuthorID = author.ID
	err := suite.repo.Create(log)
	suite.NoError(err)

	exists, err := suite.repo.ExistsForBunkDate(bunk.ID, log.Date, nil)
	suite.NoError(err)
	suite.True(exists)

	// Excluding the log itself reports no conflict, so updates do not trip
	// over their own row
	exists, err = suite.repo.ExistsForBunkDate(bunk.ID, log.Date, &log.ID)
	suite.NoError(err)
	suite.False(exists)

	exists, err = suite.repo.ExistsForBunkDate(bunk.ID, log.Date.AddDate(0, 0, 1), nil)
	suite.NoError(err)
	suite.False(exists)
}

// TestListByBunks tests scoped listing across multiple bunks
func (suite *BunkLogRepositoryTestSuite) TestListByBunks() {
	bunkA, author := suite.createBunkAndAuthor()
	bunkB := suite.factories.Bunk.Create()
	err := NewBunkRepository(suite.baseTestSuite.DB).Create(bunkB)
	suite.NoError(err)
	bunkC := suite.factories.Bunk.Create()
	err = NewBunkRepository(suite.baseTestSuite.DB).Create(bunkC)
	suite.NoError(err)

	for i, bunk := range []*models.Bunk{bunkA, bunkB, bunkC} {
		log := suite.factories.BunkLog.Create()
		log.BunkID = bunk.ID
		log.AuthorID = author.ID
		log.Date = time.Date(2025, 7, 6+i, 0, 0, 0, 0, time.UTC)
		err := suite.repo.Create(log)
		suite.NoError(err)
	}

	// Only logs in the requested bunks come back
	logs, total, err := suite.repo.ListByBunks([]uuid.UUID{bunkA.ID, bunkB.ID}, 10, 0)
	suite.NoError(err)
	suite.Len(logs, 2)
	suite.Equal(int64(2), total)
	for _, log := range logs {
		suite.NotEqual(bunkC.ID, log.BunkID)
	}

	// An empty scope yields no rows rather than all rows
	logs, total, err = suite.repo.ListByBunks(nil, 10, 0)
	suite.NoError(err)
	suite.Empty(logs)
	suite.Equal(int64(0), total)
}

// TestGetByIDNotFound tests retrieving a non-existent log
func (suite *BunkLogRepositoryTestSuite) TestGetByIDNotFound() {
	log, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(log)
}

// TestRedate tests moving a log to a new date
func (suite *BunkLogRepositoryTestSuite) TestRedate() {
	bunk, author := suite.createBunkAndAuthor()

	log := suite.factories.BunkLog.Create()
	log.BunkID = bunk.ID
	log.AuthorID = author.ID
	err := suite.repo.Create(log)
	suite.NoError(err)

	newDate := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	err = suite.repo.Redate(log.ID, newDate)
	suite.NoError(err)

	moved, err := suite.repo.GetByBunkAndDate(bunk.ID, newDate)
	suite.NoError(err)
	suite.Equal(log.ID, moved.ID)
}

// TestDelete tests deleting a bunk log
func (suite *BunkLogRepositoryTestSuite) TestDelete() {
	bunk, author := suite.createBunkAndAuthor()

	log := suite.factories.BunkLog.Create()
	log.BunkID = bunk.ID
	log.AuthorID = author.ID
	err := suite.repo.Create(log)
	suite.NoError(err)

	err = suite.repo.Delete(log.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(log.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestBunkLogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BunkLogRepositoryTestSuite))
}
