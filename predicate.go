package permit

import (
	"github.com/dpup/permit/errors"

	"google.golang.org/grpc/codes"
)

// Predicate refines a catalog-granted permission with per-instance nuance.
// The catalog expresses only role-level, class-wide grants ("a developer may
// update projects"); a predicate adds conditions like "...but only projects
// assigned to one of their teams" without requiring a per-resource ACL.
//
// Predicates must be pure and total: no I/O, no panics, guaranteed
// termination. The engine recovers from a predicate that panics anyway and
// treats the outcome as a deny, but that is a programming bug, not a
// supported path. A deployment that needs I/O to decide (say, a remote
// membership lookup) should resolve that data before the check and bake it
// into the predicate via a closure, as ResourceTeam does.
//
// resourceID may be empty when the caller has no object context, e.g. a UI
// deciding whether to render a class-wide control. Each predicate defines
// its own semantics for that case and must still return deterministically;
// the combinators below document theirs individually.
type Predicate func(subject Subject, resourceID string) bool

// PredicateTable maps permissions to their predicates. A permission with no
// entry is decided purely by catalog membership. Tables are fixed at process
// start and never mutated afterwards.
type PredicateTable map[Permission]Predicate

// Validate checks every registered permission against the enumerations and
// rejects nil predicates. Startup-time configuration check, in the same
// spirit as Catalog.Validate.
func (t PredicateTable) Validate() error {
	for p, pred := range t {
		if err := p.Validate(); err != nil {
			return errors.WrapPrefix(err, "permit: invalid predicate registration", 0)
		}
		if pred == nil {
			return errors.Codef(codes.InvalidArgument, "permit: nil predicate registered for '%s'", p)
		}
	}
	return nil
}

// MinimumRole requires the subject's role to rank at or above min in the
// given hierarchy. Ignores resourceID. Subjects with a role outside the
// hierarchy are denied.
//
// Example:
//
//	WithPredicate(Perm(ActionUpdate, ResourceProjects), MinimumRole(h, RoleDeveloper))
func MinimumRole(h Hierarchy, min Role) Predicate {
	return func(subject Subject, _ string) bool {
		return h.IsAtLeast(subject.Role, min)
	}
}

// TeamMember requires the subject to belong to at least one team. This is a
// class-wide check: it ignores resourceID entirely, so it cannot tell
// whether the specific instance belongs to one of the subject's teams. Use
// ResourceTeam when an instance-to-team mapping is available.
func TeamMember() Predicate {
	return func(subject Subject, _ string) bool {
		return len(subject.Teams) > 0
	}
}

// ResourceTeam requires the subject to belong to the team that owns the
// identified resource instance, per the supplied instance-to-team table.
//
// Semantics by resourceID:
//   - known instance: subject must be in the owning team;
//   - unknown instance: deny (fail closed rather than guess);
//   - no object context (empty id): fall back to the class-wide "member of
//     any team" check, matching what a list-level UI control needs.
//
// The table is captured by value at registration and must not be mutated
// afterwards, keeping the predicate pure.
func ResourceTeam(teamByResource map[string]string) Predicate {
	return func(subject Subject, resourceID string) bool {
		if resourceID == "" {
			return len(subject.Teams) > 0
		}
		team, ok := teamByResource[resourceID]
		if !ok {
			return false
		}
		return subject.InTeam(team)
	}
}

// SelfOnly requires the resource instance to be the subject itself,
// comparing resourceID against Subject.ID. Denies when there is no object
// context, since "is this mine" is unanswerable without an instance.
func SelfOnly() Predicate {
	return func(subject Subject, resourceID string) bool {
		if resourceID == "" || subject.ID == "" {
			return false
		}
		return subject.ID == resourceID
	}
}

// AllOf grants only when every predicate grants. An empty list grants.
func AllOf(preds ...Predicate) Predicate {
	return func(subject Subject, resourceID string) bool {
		for _, p := range preds {
			if !p(subject, resourceID) {
				return false
			}
		}
		return true
	}
}

// AnyOf grants when at least one predicate grants. An empty list denies.
func AnyOf(preds ...Predicate) Predicate {
	return func(subject Subject, resourceID string) bool {
		for _, p := range preds {
			if p(subject, resourceID) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate. Note that a predicate can only restrict what the
// catalog granted; inverting one never widens access beyond the accumulated
// set.
func Not(p Predicate) Predicate {
	return func(subject Subject, resourceID string) bool {
		return !p(subject, resourceID)
	}
}
