package permit

import (
	"github.com/dpup/permit/errors"

	"google.golang.org/grpc/codes"
)

// Catalog maps each role to the set of permissions it is explicitly granted.
// Entries list only direct grants; effective permissions accumulate down the
// hierarchy (see Accumulate). Catalogs are fixed at process start and never
// mutated afterwards, so concurrent reads need no synchronization.
type Catalog map[Role]PermissionSet

// Grants is a convenience constructor for catalog entries from canonical
// "action:resource" strings. It panics on malformed input and is intended
// for static tables; configuration loaded at runtime goes through Validate.
func Grants(perms ...string) PermissionSet {
	s := make(PermissionSet, len(perms))
	for _, p := range perms {
		s.Add(MustParsePermission(p))
	}
	return s
}

// PermissionsForRole returns the permissions explicitly assigned to the
// role, not yet accumulated across the hierarchy. The returned set is a
// copy; mutating it does not affect the catalog.
func (c Catalog) PermissionsForRole(r Role) PermissionSet {
	if s, ok := c[r]; ok {
		return s.Clone()
	}
	return PermissionSet{}
}

// Accumulate returns the union of direct grants for every role ranked at or
// below r. A higher role's effective set therefore includes everything
// granted to lower roles, even when its own entry does not restate them.
// Returns an empty set for roles outside the hierarchy.
func (c Catalog) Accumulate(h Hierarchy, r Role) PermissionSet {
	out := PermissionSet{}
	for _, role := range h.atOrBelow(r) {
		if s, ok := c[role]; ok {
			out.AddAll(s)
		}
	}
	return out
}

// Validate checks every catalog entry against the hierarchy and the action
// and resource enumerations. Bad entries are configuration errors that
// should be caught at process startup, not discovered mid-request.
func (c Catalog) Validate(h Hierarchy) error {
	for role, perms := range c {
		if !h.Contains(role) {
			return errors.Codef(codes.InvalidArgument, "permit: catalog entry for role '%s' which is not in the hierarchy", role)
		}
		for p := range perms {
			if err := p.Validate(); err != nil {
				return errors.WrapPrefix(err, "permit: invalid catalog entry for role '"+string(role)+"'", 0)
			}
		}
	}
	return nil
}
