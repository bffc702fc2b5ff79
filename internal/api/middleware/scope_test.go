package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"camp-records-backend/internal/api/middleware"
	"camp-records-backend/internal/authz"
	"camp-records-backend/internal/database/models"
	apperrors "camp-records-backend/internal/errors"
	"camp-records-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type emptyDirectory struct{}

func (emptyDirectory) ActiveAssignmentsForUnit(uuid.UUID, authz.Role, time.Time) ([]authz.Assignment, error) {
	return nil, nil
}

func (emptyDirectory) ActiveAssignmentsForStaff(uuid.UUID, authz.Role, time.Time) ([]authz.Assignment, error) {
	return nil, nil
}

func (emptyDirectory) LegacyHolderForUnit(uuid.UUID, authz.Role) (*uuid.UUID, error) {
	return nil, nil
}

func (emptyDirectory) LegacyUnitsForStaff(uuid.UUID, authz.Role, time.Time) ([]uuid.UUID, error) {
	return nil, nil
}

func (emptyDirectory) ActiveBunkAssignmentsForCounselor(uuid.UUID, time.Time) ([]authz.BunkAssignment, error) {
	return nil, nil
}

func (emptyDirectory) BunksForUnits([]uuid.UUID) ([]authz.BunkRef, error) {
	return nil, nil
}

func (emptyDirectory) UnitsForBunks([]uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	return map[uuid.UUID]uuid.UUID{}, nil
}

func (emptyDirectory) CampersForBunks([]uuid.UUID, bool, time.Time) ([]uuid.UUID, error) {
	return nil, nil
}

func (emptyDirectory) Location(uuid.UUID) (*time.Location, error) {
	return time.UTC, nil
}

// scopeDirectory is the directory surface a guard needs; test stubs implement
// all three provider interfaces in one type.
type scopeDirectory interface {
	authz.AssignmentDirectory
	authz.ResourceDirectory
	authz.LocaleProvider
}

// formerBunkDirectory reports a counselor bunk assignment only for instants
// before its end date, modelling a counselor who has since left the bunk.
type formerBunkDirectory struct {
	emptyDirectory
	counselorID uuid.UUID
	bunkID      uuid.UUID
	endDate     time.Time
}

func (d formerBunkDirectory) ActiveBunkAssignmentsForCounselor(id uuid.UUID, asOf time.Time) ([]authz.BunkAssignment, error) {
	if id != d.counselorID || !asOf.Before(d.endDate) {
		return nil, nil
	}
	return []authz.BunkAssignment{{
		ID:          uuid.New(),
		CounselorID: id,
		BunkID:      d.bunkID,
		StartDate:   d.endDate.AddDate(0, 0, -14),
		EndDate:     &d.endDate,
	}}, nil
}

func setupScopeRouter(t *testing.T, staffRepo *mocks.MockStaffMemberRepositoryInterface, staffID string, dir scopeDirectory) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	guard := authz.NewGuard(dir, dir, dir, authz.FixedClock{Time: time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)})
	scopeMw := middleware.NewScopeMiddleware(staffRepo, guard)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if staffID != "" {
			c.Set("staff_id", staffID)
		}
		c.Next()
	})
	router.Use(scopeMw.Resolve())
	probe := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		assert.True(t, ok)
		scope, ok := middleware.GetScope(c)
		assert.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"actor_id":   actor.ID,
			"scope_kind": scope.Kind,
			"bunk_count": len(scope.BunkIDList()),
			"as_of_set":  !middleware.GetAsOf(c).IsZero(),
		})
	}
	router.GET("/probe", probe)
	router.POST("/probe", probe)
	return router
}

func activeAdmin(id uuid.UUID) *models.StaffMember {
	member := &models.StaffMember{
		Name:     "Dana Whitfield",
		Email:    "dana@camp.example.com",
		Role:     models.StaffRoleAdmin,
		IsActive: true,
		Timezone: "America/New_York",
	}
	member.ID = id
	return member
}

func activeCounselor(id uuid.UUID) *models.StaffMember {
	member := &models.StaffMember{
		Name:     "Jordan Okafor",
		Email:    "jordan@camp.example.com",
		Role:     models.StaffRoleCounselor,
		IsActive: true,
		Timezone: "America/New_York",
	}
	member.ID = id
	return member
}

func TestScopeMiddlewareResolvesActorAndScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	staffID := uuid.New()
	staffRepo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
	staffRepo.EXPECT().GetByID(staffID).Return(activeAdmin(staffID), nil)

	router := setupScopeRouter(t, staffRepo, staffID.String(), emptyDirectory{})

	req, _ := http.NewRequest("GET", "/probe", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), string(authz.ScopeUnrestricted))
	assert.Contains(t, recorder.Body.String(), `"as_of_set":false`)
}

func TestScopeMiddlewareParsesAsOf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	staffID := uuid.New()
	staffRepo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
	staffRepo.EXPECT().GetByID(staffID).Return(activeAdmin(staffID), nil)

	router := setupScopeRouter(t, staffRepo, staffID.String(), emptyDirectory{})

	req, _ := http.NewRequest("GET", "/probe?as_of=2026-07-01", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"as_of_set":true`)
}

func TestScopeMiddlewareRejectsMalformedAsOf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	staffRepo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
	router := setupScopeRouter(t, staffRepo, uuid.New().String(), emptyDirectory{})

	req, _ := http.NewRequest("GET", "/probe?as_of=July+1st", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), string(authz.ReasonInvalidDate))
}

func TestScopeMiddlewareIgnoresAsOfForMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	staffID := uuid.New()
	staffRepo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
	staffRepo.EXPECT().GetByID(staffID).Return(activeCounselor(staffID), nil).Times(2)

	// The counselor's bunk assignment ended July 5; the router's clock sits at
	// July 10, so only a historical snapshot still contains the bunk.
	dir := formerBunkDirectory{
		counselorID: staffID,
		bunkID:      uuid.New(),
		endDate:     time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
	}
	router := setupScopeRouter(t, staffRepo, staffID.String(), dir)

	req, _ := http.NewRequest("GET", "/probe?as_of=2026-07-01", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"bunk_count":1`)
	assert.Contains(t, recorder.Body.String(), `"as_of_set":true`)

	// The same snapshot on a mutating request must not bring the bunk back.
	req, _ = http.NewRequest("POST", "/probe?as_of=2026-07-01", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"bunk_count":0`)
	assert.Contains(t, recorder.Body.String(), `"as_of_set":false`)
}

func TestScopeMiddlewareRejectsUnlinkedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	staffRepo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
	router := setupScopeRouter(t, staffRepo, "", emptyDirectory{})

	req, _ := http.NewRequest("GET", "/probe", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "No staff member is linked to this account")
}

func TestScopeMiddlewareRejectsUnknownStaffMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	staffID := uuid.New()
	staffRepo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
	staffRepo.EXPECT().GetByID(staffID).Return(nil, apperrors.ErrStaffMemberNotFound)

	router := setupScopeRouter(t, staffRepo, staffID.String(), emptyDirectory{})

	req, _ := http.NewRequest("GET", "/probe", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestScopeMiddlewareRejectsDeactivatedStaffMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	staffID := uuid.New()
	member := activeAdmin(staffID)
	member.IsActive = false

	staffRepo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
	staffRepo.EXPECT().GetByID(staffID).Return(member, nil)

	router := setupScopeRouter(t, staffRepo, staffID.String(), emptyDirectory{})

	req, _ := http.NewRequest("GET", "/probe", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Staff member is deactivated")
}
