package authz_test

import (
	"testing"
	"time"

	"camp-records-backend/internal/authz"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// WindowTestSuite tests the mutation window enforcer
type WindowTestSuite struct {
	suite.Suite
	locales  *fakeLocales
	enforcer *authz.WindowEnforcer
}

func (suite *WindowTestSuite) SetupTest() {
	suite.locales = &fakeLocales{zones: make(map[uuid.UUID]string)}
	suite.enforcer = authz.NewWindowEnforcer(suite.locales)
}

func scopedWithBunk(bunkID uuid.UUID) *authz.Scope {
	return &authz.Scope{
		Kind:    authz.ScopeScoped,
		BunkIDs: map[uuid.UUID]struct{}{bunkID: {}},
	}
}

// TestAdminAlwaysAllowed tests that admins bypass the window entirely
func (suite *WindowTestSuite) TestAdminAlwaysAllowed() {
	record := authz.RecordRef{
		AuthorID:  uuid.New(),
		BunkID:    uuid.New(),
		CreatedAt: date(2025, time.June, 1),
	}
	decision := suite.enforcer.CanMutate(
		authz.Actor{ID: uuid.New(), Role: authz.RoleAdmin},
		&authz.Scope{Kind: authz.ScopeUnrestricted},
		record,
		date(2026, time.June, 1),
	)
	suite.True(decision.Allowed)
}

// TestCounselorSameLocalDayAllowed tests the happy path inside the window
func (suite *WindowTestSuite) TestCounselorSameLocalDayAllowed() {
	author := uuid.New()
	bunkID := uuid.New()
	record := authz.RecordRef{
		AuthorID:  author,
		BunkID:    bunkID,
		CreatedAt: time.Date(2025, time.July, 6, 9, 0, 0, 0, time.UTC),
	}
	decision := suite.enforcer.CanMutate(
		authz.Actor{ID: author, Role: authz.RoleCounselor},
		scopedWithBunk(bunkID),
		record,
		time.Date(2025, time.July, 6, 23, 0, 0, 0, time.UTC),
	)
	suite.True(decision.Allowed)
}

// TestWindowClosesAtLocalMidnight covers Scenario B: a log created at 23:59
// local is frozen two minutes later because the local calendar date changed
func (suite *WindowTestSuite) TestWindowClosesAtLocalMidnight() {
	author := uuid.New()
	bunkID := uuid.New()
	suite.locales.zones[author] = "America/New_York"

	eastern, err := time.LoadLocation("America/New_York")
	suite.NoError(err)

	record := authz.RecordRef{
		AuthorID:  author,
		BunkID:    bunkID,
		CreatedAt: time.Date(2025, time.July, 6, 23, 59, 0, 0, eastern),
	}
	decision := suite.enforcer.CanMutate(
		authz.Actor{ID: author, Role: authz.RoleCounselor},
		scopedWithBunk(bunkID),
		record,
		time.Date(2025, time.July, 7, 0, 1, 0, 0, eastern),
	)
	suite.False(decision.Allowed)
	suite.Equal(authz.ReasonWindowClosed, decision.Reason)
	suite.Contains(decision.Message, "2025-07-06")
}

// TestWindowUsesAuthorTimezone tests that the author's local date governs
// even when the instant crosses midnight UTC
func (suite *WindowTestSuite) TestWindowUsesAuthorTimezone() {
	author := uuid.New()
	bunkID := uuid.New()
	suite.locales.zones[author] = "America/Los_Angeles"

	// 03:00 UTC July 7 is 20:00 July 6 in Los Angeles; created 18:00 July 6
	// local, so the window is still open for this author.
	record := authz.RecordRef{
		AuthorID:  author,
		BunkID:    bunkID,
		CreatedAt: time.Date(2025, time.July, 7, 1, 0, 0, 0, time.UTC),
	}
	decision := suite.enforcer.CanMutate(
		authz.Actor{ID: author, Role: authz.RoleCounselor},
		scopedWithBunk(bunkID),
		record,
		time.Date(2025, time.July, 7, 3, 0, 0, 0, time.UTC),
	)
	suite.True(decision.Allowed)
}

// TestNonAuthorCounselorDenied tests that counselors cannot edit records they
// did not author, even inside the window
func (suite *WindowTestSuite) TestNonAuthorCounselorDenied() {
	author := uuid.New()
	other := uuid.New()
	bunkID := uuid.New()
	record := authz.RecordRef{
		AuthorID:  author,
		BunkID:    bunkID,
		CreatedAt: time.Date(2025, time.July, 6, 9, 0, 0, 0, time.UTC),
	}
	decision := suite.enforcer.CanMutate(
		authz.Actor{ID: other, Role: authz.RoleCounselor},
		scopedWithBunk(bunkID),
		record,
		time.Date(2025, time.July, 6, 10, 0, 0, 0, time.UTC),
	)
	suite.False(decision.Allowed)
	suite.Equal(authz.ReasonNotAuthor, decision.Reason)
}

// TestUnitHeadScopeBound tests that unit-level roles may update records whose
// bunk is in scope and are denied out-of-scope records as not found
func (suite *WindowTestSuite) TestUnitHeadScopeBound() {
	bunkInScope := uuid.New()
	bunkOutside := uuid.New()
	actor := authz.Actor{ID: uuid.New(), Role: authz.RoleUnitHead}
	scope := scopedWithBunk(bunkInScope)

	inScope := authz.RecordRef{AuthorID: uuid.New(), BunkID: bunkInScope, CreatedAt: date(2025, time.June, 1)}
	decision := suite.enforcer.CanMutate(actor, scope, inScope, date(2025, time.July, 1))
	suite.True(decision.Allowed, "unit heads are not bound by the author window")

	outside := authz.RecordRef{AuthorID: uuid.New(), BunkID: bunkOutside, CreatedAt: date(2025, time.June, 1)}
	decision = suite.enforcer.CanMutate(actor, scope, outside, date(2025, time.July, 1))
	suite.False(decision.Allowed)
	suite.Equal(authz.ReasonOutOfScope, decision.Reason)
}

// TestLocalDateAssignment tests server-side date derivation in the author's
// timezone
func (suite *WindowTestSuite) TestLocalDateAssignment() {
	author := uuid.New()
	suite.locales.zones[author] = "America/New_York"

	// 02:30 UTC on July 7 is still July 6 in New York.
	at := time.Date(2025, time.July, 7, 2, 30, 0, 0, time.UTC)
	localDate := suite.enforcer.LocalDate(author, at)
	suite.Equal(date(2025, time.July, 6), localDate)
}

func TestWindowTestSuite(t *testing.T) {
	suite.Run(t, new(WindowTestSuite))
}
