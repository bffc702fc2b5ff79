package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"camp-records-backend/internal/api/handlers"
	"camp-records-backend/internal/authz"
	"camp-records-backend/internal/database/models"
	"camp-records-backend/internal/mocks"
	"camp-records-backend/internal/service"
	"camp-records-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubAuthzData backs the guard with fixed in-memory answers so decisions
// are deterministic without a database.
type stubAuthzData struct{}

func (stubAuthzData) ActiveAssignmentsForUnit(uuid.UUID, authz.Role, time.Time) ([]authz.Assignment, error) {
	return nil, nil
}

func (stubAuthzData) ActiveAssignmentsForStaff(uuid.UUID, authz.Role, time.Time) ([]authz.Assignment, error) {
	return nil, nil
}

func (stubAuthzData) LegacyHolderForUnit(uuid.UUID, authz.Role) (*uuid.UUID, error) {
	return nil, nil
}

func (stubAuthzData) LegacyUnitsForStaff(uuid.UUID, authz.Role, time.Time) ([]uuid.UUID, error) {
	return nil, nil
}

func (stubAuthzData) ActiveBunkAssignmentsForCounselor(uuid.UUID, time.Time) ([]authz.BunkAssignment, error) {
	return nil, nil
}

func (stubAuthzData) BunksForUnits([]uuid.UUID) ([]authz.BunkRef, error) {
	return nil, nil
}

func (stubAuthzData) UnitsForBunks([]uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	return map[uuid.UUID]uuid.UUID{}, nil
}

func (stubAuthzData) CampersForBunks([]uuid.UUID, bool, time.Time) ([]uuid.UUID, error) {
	return nil, nil
}

func (stubAuthzData) Location(uuid.UUID) (*time.Location, error) {
	return time.UTC, nil
}

func scopedToBunks(bunkIDs ...uuid.UUID) *authz.Scope {
	scope := &authz.Scope{
		Kind:      authz.ScopeScoped,
		UnitIDs:   map[uuid.UUID]struct{}{},
		BunkIDs:   map[uuid.UUID]struct{}{},
		CamperIDs: map[uuid.UUID]struct{}{},
	}
	for _, id := range bunkIDs {
		scope.BunkIDs[id] = struct{}{}
	}
	return scope
}

func unrestrictedScope() *authz.Scope {
	return &authz.Scope{Kind: authz.ScopeUnrestricted}
}

// BunkLogHandlerTestSuite defines the test suite for BunkLogHandler
type BunkLogHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockLogRepo  *mocks.MockBunkLogRepositoryInterface
	mockBunkRepo *mocks.MockBunkRepositoryInterface
	handler      *handlers.BunkLogHandler
	httpSuite    *testutils.HTTPTestSuite
	clock        authz.FixedClock

	// Set per test before making requests; the injected middleware reads
	// these the way the scope middleware would have.
	actor authz.Actor
	scope *authz.Scope
}

// SetupTest sets up the test suite
func (suite *BunkLogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLogRepo = mocks.NewMockBunkLogRepositoryInterface(suite.ctrl)
	suite.mockBunkRepo = mocks.NewMockBunkRepositoryInterface(suite.ctrl)

	suite.clock = authz.FixedClock{Time: time.Date(2026, 7, 10, 15, 0, 0, 0, time.UTC)}

	stub := stubAuthzData{}
	guard := authz.NewGuard(stub, stub, stub, suite.clock)

	logService := service.NewBunkLogService(suite.mockLogRepo, suite.mockBunkRepo, suite.clock, stub, validator.New())
	suite.handler = handlers.NewBunkLogHandler(logService, guard)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes behind a middleware that injects the actor and scope
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		c.Set("actor", suite.actor)
		c.Set("scope", suite.scope)
		c.Next()
	})
	bunkLogs := v1.Group("/bunk-logs")
	{
		bunkLogs.GET("", suite.handler.ListBunkLogs)
		bunkLogs.POST("", suite.handler.CreateBunkLog)
		bunkLogs.GET("/:id", suite.handler.GetBunkLog)
		bunkLogs.PUT("/:id", suite.handler.UpdateBunkLog)
		bunkLogs.DELETE("/:id", suite.handler.DeleteBunkLog)
		bunkLogs.POST("/:id/redate", suite.handler.RedateBunkLog)
	}
}

// TearDownTest cleans up after each test
func (suite *BunkLogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BunkLogHandlerTestSuite) asCounselor(id uuid.UUID, bunkIDs ...uuid.UUID) {
	suite.actor = authz.Actor{ID: id, Role: authz.RoleCounselor, Timezone: "UTC"}
	suite.scope = scopedToBunks(bunkIDs...)
}

func (suite *BunkLogHandlerTestSuite) asAdmin() {
	suite.actor = authz.Actor{ID: uuid.New(), Role: authz.RoleAdmin, Timezone: "UTC"}
	suite.scope = unrestrictedScope()
}

// TestCreateBunkLog tests the CreateBunkLog handler
func (suite *BunkLogHandlerTestSuite) TestCreateBunkLog() {
	suite.T().Run("Success", func(t *testing.T) {
		counselorID := uuid.New()
		bunkID := uuid.New()
		suite.asCounselor(counselorID, bunkID)

		requestBody := map[string]interface{}{
			"bunk_id":    bunkID.String(),
			"summary":    "Quiet day, swim lessons in the morning",
			"mood_score": 4,
		}

		suite.mockBunkRepo.EXPECT().
			GetByID(bunkID).
			Return(&models.Bunk{Name: "Bunk 1"}, nil).
			Times(1)

		suite.mockLogRepo.EXPECT().
			ExistsForBunkDate(bunkID, time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC), gomock.Nil()).
			Return(false, nil).
			Times(1)

		suite.mockLogRepo.EXPECT().
			Create(gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/bunk-logs", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.BunkLogResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, bunkID, response.BunkID)
		assert.Equal(t, counselorID, response.AuthorID)
		assert.Equal(t, "2026-07-10", response.Date)
	})

	suite.T().Run("Bunk Out Of Scope", func(t *testing.T) {
		suite.asCounselor(uuid.New(), uuid.New())

		requestBody := map[string]interface{}{
			"bunk_id": uuid.New().String(),
			"summary": "Should never be written",
		}

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/bunk-logs", requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Backdated As Of Does Not Restore Former Bunk", func(t *testing.T) {
		formerBunkID := uuid.New()
		suite.asCounselor(uuid.New(), uuid.New()) // current scope no longer has the bunk

		requestBody := map[string]interface{}{
			"bunk_id": formerBunkID.String(),
			"summary": "Should never be written",
		}

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/bunk-logs?as_of=2026-06-20", requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Unit Role Is View Only", func(t *testing.T) {
		bunkID := uuid.New()
		suite.actor = authz.Actor{ID: uuid.New(), Role: authz.RoleUnitHead, Timezone: "UTC"}
		suite.scope = scopedToBunks(bunkID)

		requestBody := map[string]interface{}{
			"bunk_id": bunkID.String(),
			"summary": "Unit heads cannot author logs",
		}

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/bunk-logs", requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestGetBunkLog tests the GetBunkLog handler
func (suite *BunkLogHandlerTestSuite) TestGetBunkLog() {
	suite.T().Run("Success", func(t *testing.T) {
		counselorID := uuid.New()
		bunkID := uuid.New()
		logID := uuid.New()
		suite.asCounselor(counselorID, bunkID)

		log := &models.BunkLog{
			BunkID:   bunkID,
			AuthorID: counselorID,
			Date:     time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			Summary:  "Campfire night",
		}
		log.ID = logID

		suite.mockLogRepo.EXPECT().
			GetByID(logID).
			Return(log, nil).
			Times(2)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/bunk-logs/"+logID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.BunkLogResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Campfire night", response.Summary)
	})

	suite.T().Run("Out Of Scope Reads As Not Found", func(t *testing.T) {
		logID := uuid.New()
		suite.asCounselor(uuid.New(), uuid.New())

		log := &models.BunkLog{
			BunkID:   uuid.New(), // not in the caller's scope
			AuthorID: uuid.New(),
			Date:     time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		}
		log.ID = logID

		suite.mockLogRepo.EXPECT().
			GetByID(logID).
			Return(log, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/bunk-logs/"+logID.String(), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		suite.asAdmin()

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/bunk-logs/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestUpdateBunkLog tests the UpdateBunkLog handler and the edit window
func (suite *BunkLogHandlerTestSuite) TestUpdateBunkLog() {
	newSummary := "Updated after dinner"
	requestBody := map[string]interface{}{"summary": newSummary}

	suite.T().Run("Author Within Window", func(t *testing.T) {
		counselorID := uuid.New()
		bunkID := uuid.New()
		logID := uuid.New()
		suite.asCounselor(counselorID, bunkID)

		log := &models.BunkLog{
			BunkID:   bunkID,
			AuthorID: counselorID,
			Date:     time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			Summary:  "Original",
		}
		log.ID = logID
		log.CreatedAt = time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC) // same local day as the clock

		suite.mockLogRepo.EXPECT().
			GetByID(logID).
			Return(log, nil).
			Times(2)

		suite.mockLogRepo.EXPECT().
			Update(gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/bunk-logs/"+logID.String(), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.BunkLogResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, newSummary, response.Summary)
	})

	suite.T().Run("Window Closed", func(t *testing.T) {
		counselorID := uuid.New()
		bunkID := uuid.New()
		logID := uuid.New()
		suite.asCounselor(counselorID, bunkID)

		log := &models.BunkLog{
			BunkID:   bunkID,
			AuthorID: counselorID,
			Date:     time.Date(2026, 7, 8, 0, 0, 0, 0, time.UTC),
		}
		log.ID = logID
		log.CreatedAt = time.Date(2026, 7, 8, 21, 0, 0, 0, time.UTC) // two days before the clock

		suite.mockLogRepo.EXPECT().
			GetByID(logID).
			Return(log, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/bunk-logs/"+logID.String(), requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), string(authz.ReasonWindowClosed))
	})

	suite.T().Run("Backdated As Of Does Not Reopen Window", func(t *testing.T) {
		counselorID := uuid.New()
		bunkID := uuid.New()
		logID := uuid.New()
		suite.asCounselor(counselorID, bunkID)

		log := &models.BunkLog{
			BunkID:   bunkID,
			AuthorID: counselorID,
			Date:     time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC),
		}
		log.ID = logID
		log.CreatedAt = time.Date(2026, 7, 6, 18, 0, 0, 0, time.UTC)

		suite.mockLogRepo.EXPECT().
			GetByID(logID).
			Return(log, nil).
			Times(1)

		// The window is judged against the server clock, so asking for the
		// creation date as a snapshot must not make the dates line up again.
		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/bunk-logs/"+logID.String()+"?as_of=2026-07-06", requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), string(authz.ReasonWindowClosed))
	})

	suite.T().Run("Not The Author", func(t *testing.T) {
		bunkID := uuid.New()
		logID := uuid.New()
		suite.asCounselor(uuid.New(), bunkID)

		log := &models.BunkLog{
			BunkID:   bunkID,
			AuthorID: uuid.New(), // someone else's log
			Date:     time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		}
		log.ID = logID
		log.CreatedAt = time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC)

		suite.mockLogRepo.EXPECT().
			GetByID(logID).
			Return(log, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/bunk-logs/"+logID.String(), requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), string(authz.ReasonNotAuthor))
	})

	suite.T().Run("Admin Exempt From Window", func(t *testing.T) {
		logID := uuid.New()
		suite.asAdmin()

		log := &models.BunkLog{
			BunkID:   uuid.New(),
			AuthorID: uuid.New(),
			Date:     time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		}
		log.ID = logID
		log.CreatedAt = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC) // long past the window

		suite.mockLogRepo.EXPECT().
			GetByID(logID).
			Return(log, nil).
			Times(2)

		suite.mockLogRepo.EXPECT().
			Update(gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/bunk-logs/"+logID.String(), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestListBunkLogs tests the ListBunkLogs handler
func (suite *BunkLogHandlerTestSuite) TestListBunkLogs() {
	suite.T().Run("Scoped Caller Lists Own Bunks", func(t *testing.T) {
		bunkID := uuid.New()
		suite.asCounselor(uuid.New(), bunkID)

		suite.mockLogRepo.EXPECT().
			ListByBunks([]uuid.UUID{bunkID}, 20, 0).
			Return([]models.BunkLog{}, int64(0), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/bunk-logs", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Admin Lists Everything", func(t *testing.T) {
		suite.asAdmin()

		suite.mockLogRepo.EXPECT().
			ListAll(20, 0).
			Return([]models.BunkLog{}, int64(0), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/bunk-logs", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestDeleteBunkLog tests the DeleteBunkLog handler
func (suite *BunkLogHandlerTestSuite) TestDeleteBunkLog() {
	suite.T().Run("Admin Deletes", func(t *testing.T) {
		logID := uuid.New()
		suite.asAdmin()

		log := &models.BunkLog{BunkID: uuid.New(), AuthorID: uuid.New()}
		log.ID = logID

		suite.mockLogRepo.EXPECT().
			GetByID(logID).
			Return(log, nil).
			Times(2)

		suite.mockLogRepo.EXPECT().
			Delete(logID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/bunk-logs/"+logID.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Counselor Cannot Delete", func(t *testing.T) {
		counselorID := uuid.New()
		bunkID := uuid.New()
		logID := uuid.New()
		suite.asCounselor(counselorID, bunkID)

		log := &models.BunkLog{BunkID: bunkID, AuthorID: counselorID}
		log.ID = logID

		suite.mockLogRepo.EXPECT().
			GetByID(logID).
			Return(log, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/bunk-logs/"+logID.String(), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestBunkLogHandlerTestSuite runs the test suite
func TestBunkLogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BunkLogHandlerTestSuite))
}
