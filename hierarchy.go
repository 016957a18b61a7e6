package permit

import (
	"github.com/dpup/permit/errors"

	"google.golang.org/grpc/codes"
)

// Hierarchy defines a strict total order over roles, from least to most
// privileged. A role's rank is its position in that order, with 0 being the
// least privileged. Hierarchies are immutable once constructed and safe for
// concurrent use.
type Hierarchy struct {
	order []Role
	ranks map[Role]int
}

// NewHierarchy constructs a hierarchy from roles listed least to most
// privileged. Duplicate or empty role names are configuration errors and
// fail construction.
func NewHierarchy(roles ...Role) (Hierarchy, error) {
	if len(roles) == 0 {
		return Hierarchy{}, errors.Codef(codes.InvalidArgument, "permit: hierarchy requires at least one role")
	}
	ranks := make(map[Role]int, len(roles))
	for i, r := range roles {
		if r == "" {
			return Hierarchy{}, errors.Codef(codes.InvalidArgument, "permit: hierarchy contains an empty role name at rank %d", i)
		}
		if _, exists := ranks[r]; exists {
			return Hierarchy{}, errors.Codef(codes.InvalidArgument, "permit: role '%s' appears twice in hierarchy", r)
		}
		ranks[r] = i
	}
	order := make([]Role, len(roles))
	copy(order, roles)
	return Hierarchy{order: order, ranks: ranks}, nil
}

// MustHierarchy is like NewHierarchy but panics on invalid input. Intended
// for static tables and tests.
func MustHierarchy(roles ...Role) Hierarchy {
	h, err := NewHierarchy(roles...)
	if err != nil {
		panic(err)
	}
	return h
}

// Rank returns a role's position in the order, 0 being least privileged.
// Asking for the rank of a role outside the hierarchy is a configuration
// error; callers on decision paths should use IsAtLeast, which fails closed.
func (h Hierarchy) Rank(r Role) (int, error) {
	rank, ok := h.ranks[r]
	if !ok {
		return 0, errors.Codef(codes.InvalidArgument, "permit: role '%s' is not in the hierarchy", r)
	}
	return rank, nil
}

// IsAtLeast reports whether role a ranks at or above role b. Comparison is
// reflexive: a role is at least itself. If either role is outside the
// hierarchy the answer is false; decision paths deny rather than error.
func (h Hierarchy) IsAtLeast(a, b Role) bool {
	ra, ok := h.ranks[a]
	if !ok {
		return false
	}
	rb, ok := h.ranks[b]
	if !ok {
		return false
	}
	return ra >= rb
}

// Contains reports whether r is one of the hierarchy's roles.
func (h Hierarchy) Contains(r Role) bool {
	_, ok := h.ranks[r]
	return ok
}

// Roles returns the roles in rank order, least privileged first.
func (h Hierarchy) Roles() []Role {
	out := make([]Role, len(h.order))
	copy(out, h.order)
	return out
}

// atOrBelow returns every role ranked at or below r, in rank order. Returns
// nil if r is not in the hierarchy.
func (h Hierarchy) atOrBelow(r Role) []Role {
	rank, ok := h.ranks[r]
	if !ok {
		return nil
	}
	return h.order[:rank+1]
}
