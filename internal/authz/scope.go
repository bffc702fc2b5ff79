package authz

import (
	"time"

	"github.com/google/uuid"
)

// ScopeKind classifies a computed scope
type ScopeKind string

const (
	// ScopeUnrestricted short-circuits every downstream check to allow.
	ScopeUnrestricted ScopeKind = "unrestricted"
	// ScopeScoped limits visibility to the listed unit/bunk/camper IDs.
	ScopeScoped ScopeKind = "scoped"
	// ScopeEmpty grants nothing (unknown role or unauthenticated actor).
	ScopeEmpty ScopeKind = "empty"
)

// Scope is the set of units, bunks and campers an actor may access for a
// given as-of date. It is computed once per request and must be treated as
// immutable for the duration of that request.
type Scope struct {
	Kind      ScopeKind
	UnitIDs   map[uuid.UUID]struct{}
	BunkIDs   map[uuid.UUID]struct{}
	CamperIDs map[uuid.UUID]struct{}
}

// HasUnit reports whether the unit is visible in this scope
func (s *Scope) HasUnit(id uuid.UUID) bool {
	if s.Kind == ScopeUnrestricted {
		return true
	}
	_, ok := s.UnitIDs[id]
	return ok
}

// HasBunk reports whether the bunk is visible in this scope
func (s *Scope) HasBunk(id uuid.UUID) bool {
	if s.Kind == ScopeUnrestricted {
		return true
	}
	_, ok := s.BunkIDs[id]
	return ok
}

// HasCamper reports whether the camper is visible in this scope
func (s *Scope) HasCamper(id uuid.UUID) bool {
	if s.Kind == ScopeUnrestricted {
		return true
	}
	_, ok := s.CamperIDs[id]
	return ok
}

// UnitIDList returns the visible unit IDs as a slice, for query filters
func (s *Scope) UnitIDList() []uuid.UUID {
	return idList(s.UnitIDs)
}

// BunkIDList returns the visible bunk IDs as a slice, for query filters
func (s *Scope) BunkIDList() []uuid.UUID {
	return idList(s.BunkIDs)
}

// CamperIDList returns the visible camper IDs as a slice, for query filters
func (s *Scope) CamperIDList() []uuid.UUID {
	return idList(s.CamperIDs)
}

func idList(set map[uuid.UUID]struct{}) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// Calculator computes actor scopes from the assignment and resource
// directories. It is pure: identical inputs with no intervening writes yield
// identical scopes.
type Calculator struct {
	resolver    *Resolver
	assignments AssignmentDirectory
	resources   ResourceDirectory
}

// NewCalculator creates a scope calculator
func NewCalculator(assignments AssignmentDirectory, resources ResourceDirectory) *Calculator {
	return &Calculator{
		resolver:    NewResolver(assignments),
		assignments: assignments,
		resources:   resources,
	}
}

// ComputeScope returns the actor's visibility scope as of the given date.
//
// Unit-level roles (unit head, camper care) see every bunk of their units and
// every camper with ANY bunk assignment there, historical ones included, so a
// unit head keeps visibility into a camper who has since moved bunks.
// Counselors see only their actively assigned bunks and only campers with an
// active assignment in them.
func (c *Calculator) ComputeScope(actor Actor, asOf time.Time) (*Scope, error) {
	if actor.Role == RoleAdmin || actor.IsStaff {
		return &Scope{Kind: ScopeUnrestricted}, nil
	}

	switch actor.Role {
	case RoleUnitHead, RoleCamperCare:
		return c.unitRoleScope(actor, actor.Role, asOf)
	case RoleCounselor:
		return c.counselorScope(actor, asOf)
	default:
		return &Scope{Kind: ScopeEmpty}, nil
	}
}

func (c *Calculator) unitRoleScope(actor Actor, role Role, asOf time.Time) (*Scope, error) {
	unitIDs, err := c.resolver.UnitsForStaff(actor.ID, role, asOf)
	if err != nil {
		return nil, err
	}

	scope := newScopedScope()
	for _, id := range unitIDs {
		scope.UnitIDs[id] = struct{}{}
	}
	if len(unitIDs) == 0 {
		return scope, nil
	}

	bunks, err := c.resources.BunksForUnits(unitIDs)
	if err != nil {
		return nil, err
	}
	bunkIDs := make([]uuid.UUID, 0, len(bunks))
	for _, b := range bunks {
		scope.BunkIDs[b.ID] = struct{}{}
		bunkIDs = append(bunkIDs, b.ID)
	}
	if len(bunkIDs) == 0 {
		return scope, nil
	}

	// History grant: closed camper assignments still count for unit roles.
	camperIDs, err := c.resources.CampersForBunks(bunkIDs, false, asOf)
	if err != nil {
		return nil, err
	}
	for _, id := range camperIDs {
		scope.CamperIDs[id] = struct{}{}
	}
	return scope, nil
}

func (c *Calculator) counselorScope(actor Actor, asOf time.Time) (*Scope, error) {
	bunkAssignments, err := c.assignments.ActiveBunkAssignmentsForCounselor(actor.ID, asOf)
	if err != nil {
		return nil, err
	}

	scope := newScopedScope()
	bunkIDs := make([]uuid.UUID, 0, len(bunkAssignments))
	for _, ba := range bunkAssignments {
		if _, ok := scope.BunkIDs[ba.BunkID]; !ok {
			scope.BunkIDs[ba.BunkID] = struct{}{}
			bunkIDs = append(bunkIDs, ba.BunkID)
		}
	}
	if len(bunkIDs) == 0 {
		return scope, nil
	}

	unitsByBunk, err := c.resources.UnitsForBunks(bunkIDs)
	if err != nil {
		return nil, err
	}
	for _, unitID := range unitsByBunk {
		scope.UnitIDs[unitID] = struct{}{}
	}

	// No history grant for counselors: active assignments only.
	camperIDs, err := c.resources.CampersForBunks(bunkIDs, true, asOf)
	if err != nil {
		return nil, err
	}
	for _, id := range camperIDs {
		scope.CamperIDs[id] = struct{}{}
	}
	return scope, nil
}

func newScopedScope() *Scope {
	return &Scope{
		Kind:      ScopeScoped,
		UnitIDs:   make(map[uuid.UUID]struct{}),
		BunkIDs:   make(map[uuid.UUID]struct{}),
		CamperIDs: make(map[uuid.UUID]struct{}),
	}
}
