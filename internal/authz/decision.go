package authz

import (
	"time"

	"github.com/google/uuid"
)

// Guard is the authorization decision point. It composes the scope calculator
// and the mutation window enforcer into a single allow/deny answer per
// (actor, action, resource, asOf). The API layer computes the actor's scope
// once per request and passes it to every Decide call in that request, so a
// concurrent assignment change cannot produce inconsistent sibling decisions.
type Guard struct {
	calculator *Calculator
	window     *WindowEnforcer
	clock      Clock
}

// NewGuard creates an authorization decision point
func NewGuard(assignments AssignmentDirectory, resources ResourceDirectory, locales LocaleProvider, clock Clock) *Guard {
	return &Guard{
		calculator: NewCalculator(assignments, resources),
		window:     NewWindowEnforcer(locales),
		clock:      clock,
	}
}

// ComputeScope computes the actor's scope for asOf. When asOf is the zero
// time, the injected clock supplies "now".
func (g *Guard) ComputeScope(actor Actor, asOf time.Time) (*Scope, error) {
	if asOf.IsZero() {
		asOf = g.clock.Now()
	}
	return g.calculator.ComputeScope(actor, asOf)
}

// Resolver exposes the temporal assignment resolver for primary-holder queries
func (g *Guard) Resolver() *Resolver {
	return g.calculator.resolver
}

// Window exposes the mutation window enforcer for record-authoring flows
func (g *Guard) Window() *WindowEnforcer {
	return g.window
}

// Now returns the injected clock's current time
func (g *Guard) Now() time.Time {
	return g.clock.Now()
}

// Decide produces an allow/deny decision for the action on the resource.
// Resources outside the actor's scope are denied OutOfScope for every action,
// including update and delete, so cross-unit IDs read as "not found" rather
// than confirming existence.
//
// Mutation windows are always judged at the injected clock's now. There is
// deliberately no way for a caller to supply the instant here: the window
// closes permanently at local midnight after creation, and a request must not
// be able to pick the moment its own edit is evaluated against.
func (g *Guard) Decide(actor Actor, scope *Scope, action Action, kind ResourceKind, ref ResourceRef) Decision {
	switch action {
	case ActionRead, ActionList:
		return g.checkVisible(scope, kind, ref)

	case ActionCreate:
		return g.decideCreate(actor, scope, kind, ref)

	case ActionUpdate:
		if d := g.checkVisible(scope, kind, ref); !d.Allowed {
			return d
		}
		return g.decideUpdate(actor, scope, kind, ref)

	case ActionDelete:
		if d := g.checkVisible(scope, kind, ref); !d.Allowed {
			return d
		}
		if actor.Role == RoleAdmin || actor.IsStaff {
			return Allow()
		}
		return Deny(ReasonRoleForbidden, "only admins may delete records")

	default:
		return Deny(ReasonRoleForbidden, "unknown action")
	}
}

// CanMutate is the direct entry point for record-authoring flows where a full
// Decide is unnecessary. Like Decide, it evaluates the window at the clock's
// now only.
func (g *Guard) CanMutate(actor Actor, scope *Scope, record RecordRef) Decision {
	return g.window.CanMutate(actor, scope, record, g.clock.Now())
}

func (g *Guard) checkVisible(scope *Scope, kind ResourceKind, ref ResourceRef) Decision {
	if scope.Kind == ScopeUnrestricted {
		return Allow()
	}
	visible := false
	switch kind {
	case ResourceUnit:
		visible = scope.HasUnit(refUnitID(ref))
	case ResourceBunk:
		visible = scope.HasBunk(refBunkID(ref))
	case ResourceCamper:
		visible = scope.HasCamper(refCamperID(ref))
	case ResourceBunkLog, ResourceCounselorLog:
		visible = scope.HasBunk(ref.BunkID)
	case ResourceSupplyOrder:
		visible = scope.HasUnit(ref.UnitID)
	}
	if !visible {
		return Deny(ReasonOutOfScope, "resource not found")
	}
	return Allow()
}

func (g *Guard) decideCreate(actor Actor, scope *Scope, kind ResourceKind, ref ResourceRef) Decision {
	if actor.Role == RoleAdmin || actor.IsStaff {
		return Allow()
	}

	switch kind {
	case ResourceBunkLog, ResourceCounselorLog:
		// Counselor-authored records: unit-level roles are view-only on them.
		if actor.Role != RoleCounselor {
			return Deny(ReasonRoleForbidden, "only counselors author daily logs")
		}
		if !scope.HasBunk(ref.BunkID) {
			return Deny(ReasonOutOfScope, "bunk not found")
		}
		return Allow()

	case ResourceSupplyOrder:
		if actor.Role == RoleUnitHead || actor.Role == RoleCamperCare {
			if !scope.HasUnit(ref.UnitID) {
				return Deny(ReasonOutOfScope, "unit not found")
			}
			return Allow()
		}
		return Deny(ReasonRoleForbidden, "role cannot create supply orders")

	default:
		// Units, bunks, campers and assignments are administrative data.
		return Deny(ReasonRoleForbidden, "only admins may create this resource")
	}
}

func (g *Guard) decideUpdate(actor Actor, scope *Scope, kind ResourceKind, ref ResourceRef) Decision {
	switch kind {
	case ResourceBunkLog, ResourceCounselorLog:
		return g.window.CanMutate(actor, scope, RecordRef{
			ID:        ref.ID,
			Kind:      kind,
			AuthorID:  ref.AuthorID,
			BunkID:    ref.BunkID,
			CreatedAt: ref.CreatedAt,
		}, g.clock.Now())

	case ResourceSupplyOrder:
		if actor.Role == RoleAdmin || actor.IsStaff ||
			actor.Role == RoleUnitHead || actor.Role == RoleCamperCare {
			return Allow()
		}
		return Deny(ReasonRoleForbidden, "role cannot update supply orders")

	default:
		if actor.Role == RoleAdmin || actor.IsStaff {
			return Allow()
		}
		return Deny(ReasonRoleForbidden, "only admins may update this resource")
	}
}

func refUnitID(ref ResourceRef) uuid.UUID {
	if ref.UnitID != uuid.Nil {
		return ref.UnitID
	}
	return ref.ID
}

func refBunkID(ref ResourceRef) uuid.UUID {
	if ref.BunkID != uuid.Nil {
		return ref.BunkID
	}
	return ref.ID
}

func refCamperID(ref ResourceRef) uuid.UUID {
	if ref.CamperID != uuid.Nil {
		return ref.CamperID
	}
	return ref.ID
}
