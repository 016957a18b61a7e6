package permit

import (
	"sort"
	"strings"

	"github.com/dpup/permit/errors"

	"google.golang.org/grpc/codes"
)

// Role is a named privilege tier. Roles form a strict total order defined by
// a Hierarchy; a role on its own carries no rank.
type Role string

// Action is an operation that can be performed on a resource class.
type Action string

// Resource is a class of protectable objects.
type Resource string

// The fixed set of actions. Every permission referenced anywhere in the
// engine must be composed from these values.
const (
	ActionCreate    = Action("create")
	ActionRead      = Action("read")
	ActionUpdate    = Action("update")
	ActionDelete    = Action("delete")
	ActionApprove   = Action("approve")
	ActionAssign    = Action("assign")
	ActionExport    = Action("export")
	ActionImport    = Action("import")
	ActionConfigure = Action("configure")
)

// The fixed set of resource classes.
const (
	ResourceProjects   = Resource("projects")
	ResourceTasks      = Resource("tasks")
	ResourceClients    = Resource("clients")
	ResourceTeams      = Resource("teams")
	ResourceReports    = Resource("reports")
	ResourceCampaigns  = Resource("campaigns")
	ResourceContent    = Resource("content")
	ResourceAIInsights = Resource("ai_insights")
	ResourceSettings   = Resource("settings")
)

// Predefined roles used by the default catalog. Applications with a custom
// hierarchy are free to define their own.
const (
	RoleGuest     = Role("guest")
	RoleClient    = Role("client")
	RoleDeveloper = Role("developer")
	RoleManager   = Role("manager")
	RoleAdmin     = Role("admin")
)

var allActions = map[Action]bool{
	ActionCreate:    true,
	ActionRead:      true,
	ActionUpdate:    true,
	ActionDelete:    true,
	ActionApprove:   true,
	ActionAssign:    true,
	ActionExport:    true,
	ActionImport:    true,
	ActionConfigure: true,
}

var allResources = map[Resource]bool{
	ResourceProjects:   true,
	ResourceTasks:      true,
	ResourceClients:    true,
	ResourceTeams:      true,
	ResourceReports:    true,
	ResourceCampaigns:  true,
	ResourceContent:    true,
	ResourceAIInsights: true,
	ResourceSettings:   true,
}

// Actions returns all enumerated actions, sorted alphabetically.
func Actions() []Action {
	out := make([]Action, 0, len(allActions))
	for a := range allActions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Resources returns all enumerated resource classes, sorted alphabetically.
func Resources() []Resource {
	out := make([]Resource, 0, len(allResources))
	for r := range allResources {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidAction reports whether a is one of the enumerated actions.
func ValidAction(a Action) bool {
	return allActions[a]
}

// ValidResource reports whether r is one of the enumerated resource classes.
func ValidResource(r Resource) bool {
	return allResources[r]
}

// Permission denotes the capability to perform an Action on instances of a
// Resource. The canonical serialized form is "action:resource".
type Permission struct {
	Action   Action
	Resource Resource
}

// Perm composes a permission from an action and a resource class. The result
// is not validated; use Validate or ParsePermission when handling untrusted
// input.
func Perm(a Action, r Resource) Permission {
	return Permission{Action: a, Resource: r}
}

// String returns the canonical "action:resource" form.
func (p Permission) String() string {
	return string(p.Action) + ":" + string(p.Resource)
}

// Validate checks both halves of the permission against the enumerations.
func (p Permission) Validate() error {
	if !ValidAction(p.Action) {
		return errors.Codef(codes.InvalidArgument, "permit: '%s' is not a known action", p.Action)
	}
	if !ValidResource(p.Resource) {
		return errors.Codef(codes.InvalidArgument, "permit: '%s' is not a known resource", p.Resource)
	}
	return nil
}

// ParsePermission parses the canonical "action:resource" form, validating
// both halves against the enumerations.
func ParsePermission(s string) (Permission, error) {
	action, resource, ok := strings.Cut(s, ":")
	if !ok {
		return Permission{}, errors.Codef(codes.InvalidArgument, "permit: '%s' is not a valid permission, want 'action:resource'", s)
	}
	p := Permission{Action: Action(action), Resource: Resource(resource)}
	if err := p.Validate(); err != nil {
		return Permission{}, err
	}
	return p, nil
}

// MustParsePermission is like ParsePermission but panics on malformed input.
// Intended for static tables and tests.
func MustParsePermission(s string) Permission {
	p, err := ParsePermission(s)
	if err != nil {
		panic(err)
	}
	return p
}

// PermissionSet is an unordered set of permissions.
type PermissionSet map[Permission]struct{}

// NewPermissionSet returns a set containing the given permissions.
func NewPermissionSet(perms ...Permission) PermissionSet {
	s := make(PermissionSet, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is in the set.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// Add inserts p into the set.
func (s PermissionSet) Add(p Permission) {
	s[p] = struct{}{}
}

// AddAll inserts every permission from other into the set.
func (s PermissionSet) AddAll(other PermissionSet) {
	for p := range other {
		s[p] = struct{}{}
	}
}

// Clone returns an independent copy of the set.
func (s PermissionSet) Clone() PermissionSet {
	out := make(PermissionSet, len(s))
	for p := range s {
		out[p] = struct{}{}
	}
	return out
}

// Strings returns the canonical serialized forms, sorted alphabetically for
// stable logging and interop.
func (s PermissionSet) Strings() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p.String())
	}
	sort.Strings(out)
	return out
}

// Subject is the authenticated principal under evaluation. Subjects are
// produced by an external session provider and are read-only inputs to the
// engine; the engine never mutates or retains them.
type Subject struct {
	// Stable identifier for the principal.
	ID string

	// The subject's assigned role. The session provider guarantees this is
	// one of the hierarchy's roles; an out-of-hierarchy value results in a
	// runtime deny, never an error.
	Role Role

	// Explicit permission grants, independent of role. An override here
	// supersedes both catalog membership and predicate checks.
	Permissions PermissionSet

	// Team memberships, available to predicates.
	Teams []string
}

// InTeam reports whether the subject belongs to the named team.
func (s Subject) InTeam(team string) bool {
	for _, t := range s.Teams {
		if t == team {
			return true
		}
	}
	return false
}
