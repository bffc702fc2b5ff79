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
)

// CamperBunkAssignmentRepositoryTestSuite tests the CamperBunkAssignmentRepository
type CamperBunkAssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CamperBunkAssignmentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CamperBunkAssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCamperBunkAssignmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CamperBunkAssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CamperBunkAssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CamperBunkAssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createStay persists a camper with an assignment in the given bunk
func (suite *CamperBunkAssignmentRepositoryTestSuite) createStay(bunkID uuid.UUID, start time.Time, end *time.Time) *models.Camper {
	camper := suite.factories.Camper.Create()
	err := NewCamperRepository(suite.baseTestSuite.DB).Create(camper)
	suite.NoError(err)

	stay := suite.factories.CamperBunkAssignment.Create()
	stay.CamperID = camper.ID
	stay.BunkID = bunkID
	stay.StartDate = start
	stay.EndDate = end
	err = suite.repo.Create(stay)
	suite.NoError(err)

	return camper
}

// TestCamperIDsForBunksActiveOnly tests the active-window filter used for
// counselor visibility
func (suite *CamperBunkAssignmentRepositoryTestSuite) TestCamperIDsForBunksActiveOnly() {
	bunk := suite.factories.Bunk.Create()
	err := NewBunkRepository(suite.baseTestSuite.DB).Create(bunk)
	suite.NoError(err)

	moveOut := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	departed := suite.createStay(bunk.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), &moveOut)
	current := suite.createStay(bunk.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), nil)

	asOf := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	ids, err := suite.repo.CamperIDsForBunks([]uuid.UUID{bunk.ID}, true, asOf)
	suite.NoError(err)
	suite.Len(ids, 1)
	suite.Equal(current.ID, ids[0])

	// History included: the departed camper is visible again
	ids, err = suite.repo.CamperIDsForBunks([]uuid.UUID{bunk.ID}, false, asOf)
	suite.NoError(err)
	suite.Len(ids, 2)
	suite.Contains(ids, departed.ID)
	suite.Contains(ids, current.ID)
}

// TestCamperIDsForBunksDeduplicates tests that a camper with several stays in
// scoped bunks appears once
func (suite *CamperBunkAssignmentRepositoryTestSuite) TestCamperIDsForBunksDeduplicates() {
	bunkRepo := NewBunkRepository(suite.baseTestSuite.DB)
	bunkA := suite.factories.Bunk.Create()
	suite.NoError(bunkRepo.Create(bunkA))
	bunkB := suite.factories.Bunk.Create()
	suite.NoError(bunkRepo.Create(bunkB))

	moveOut := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	camper := suite.createStay(bunkA.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), &moveOut)

	// Second stay for the same camper in another bunk
	stay := suite.factories.CamperBunkAssignment.Create()
	stay.CamperID = camper.ID
	stay.BunkID = bunkB.ID
	stay.StartDate = time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.Create(stay))

	ids, err := suite.repo.CamperIDsForBunks([]uuid.UUID{bunkA.ID, bunkB.ID}, false, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	suite.NoError(err)
	suite.Len(ids, 1)
	suite.Equal(camper.ID, ids[0])
}

// TestCamperIDsForBunksEmptyScope tests that an empty bunk set yields nothing
func (suite *CamperBunkAssignmentRepositoryTestSuite) TestCamperIDsForBunksEmptyScope() {
	ids, err := suite.repo.CamperIDsForBunks(nil, false, time.Now())
	suite.NoError(err)
	suite.Empty(ids)
}

// TestClose tests closing a stay at a move-out date
func (suite *CamperBunkAssignmentRepositoryTestSuite) TestClose() {
	bunk := suite.factories.Bunk.Create()
	err := NewBunkRepository(suite.baseTestSuite.DB).Create(bunk)
	suite.NoError(err)

	camper := suite.createStay(bunk.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), nil)

	stays, err := suite.repo.GetByCamperID(camper.ID)
	suite.NoError(err)
	suite.Len(stays, 1)

	err = suite.repo.Close(stays[0].ID, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC))
	suite.NoError(err)

	active, err := suite.repo.ActiveForCamper(camper.ID, time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC))
	suite.NoError(err)
	suite.Empty(active)
}

// Run the test suite
func TestCamperBunkAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CamperBunkAssignmentRepositoryTestSuite))
}
