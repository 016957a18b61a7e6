package permit

import (
	"github.com/dpup/permit/errors"
	"github.com/dpup/permit/logging"
)

// Engine combines the role hierarchy, the permission catalog, and the
// predicate table into a single authorization decision function. Engines are
// immutable after construction and safe for concurrent use from any number
// of goroutines; no decision path locks, blocks, or performs I/O.
//
// All query methods are deny-by-default: malformed or unknown inputs yield
// false, never an error or a panic. Configuration problems surface once, at
// construction.
type Engine struct {
	hierarchy  Hierarchy
	catalog    Catalog
	predicates PredicateTable
	logger     logging.Logger
}

type engineConfig struct {
	roles      []Role
	catalog    Catalog
	predicates PredicateTable
	logger     logging.Logger
}

// Option configures an Engine during construction.
type Option func(*engineConfig)

// WithHierarchy sets the role order, least to most privileged.
func WithHierarchy(roles ...Role) Option {
	return func(c *engineConfig) {
		c.roles = roles
	}
}

// WithCatalog merges catalog entries into the engine's catalog. Grants for a
// role already present are unioned, so WithCatalog and WithGrant compose.
func WithCatalog(catalog Catalog) Option {
	return func(c *engineConfig) {
		for role, perms := range catalog {
			if c.catalog[role] == nil {
				c.catalog[role] = PermissionSet{}
			}
			c.catalog[role].AddAll(perms)
		}
	}
}

// WithGrant adds direct grants for a single role.
func WithGrant(role Role, perms ...Permission) Option {
	return func(c *engineConfig) {
		if c.catalog[role] == nil {
			c.catalog[role] = PermissionSet{}
		}
		for _, p := range perms {
			c.catalog[role].Add(p)
		}
	}
}

// WithPredicate registers a conditional predicate for a permission. At most
// one predicate may be registered per permission; a second registration
// replaces the first.
func WithPredicate(p Permission, pred Predicate) Option {
	return func(c *engineConfig) {
		c.predicates[p] = pred
	}
}

// WithLogger sets the logger used to report predicate bugs and decision
// traces. Defaults to a nop logger.
func WithLogger(l logging.Logger) Option {
	return func(c *engineConfig) {
		c.logger = l
	}
}

// New constructs an engine and validates the entire configuration against
// the role, action, and resource enumerations. Validation failures are
// returned here, at process startup, rather than discovered mid-request.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{
		catalog:    Catalog{},
		predicates: PredicateTable{},
		logger:     logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	hierarchy, err := NewHierarchy(cfg.roles...)
	if err != nil {
		return nil, err
	}
	if err := cfg.catalog.Validate(hierarchy); err != nil {
		return nil, err
	}
	if err := cfg.predicates.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		hierarchy:  hierarchy,
		catalog:    cfg.catalog,
		predicates: cfg.predicates,
		logger:     cfg.logger,
	}, nil
}

// Builder provides a fluent interface for configuring an engine.
type Builder struct {
	opts []Option
}

// NewBuilder creates a new engine builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithHierarchy sets the role order, least to most privileged.
func (b *Builder) WithHierarchy(roles ...Role) *Builder {
	b.opts = append(b.opts, WithHierarchy(roles...))
	return b
}

// WithCatalog merges catalog entries.
func (b *Builder) WithCatalog(catalog Catalog) *Builder {
	b.opts = append(b.opts, WithCatalog(catalog))
	return b
}

// WithGrant adds direct grants for a single role.
func (b *Builder) WithGrant(role Role, perms ...Permission) *Builder {
	b.opts = append(b.opts, WithGrant(role, perms...))
	return b
}

// WithPredicate registers a conditional predicate for a permission.
func (b *Builder) WithPredicate(p Permission, pred Predicate) *Builder {
	b.opts = append(b.opts, WithPredicate(p, pred))
	return b
}

// WithLogger sets the engine's logger.
func (b *Builder) WithLogger(l logging.Logger) *Builder {
	b.opts = append(b.opts, WithLogger(l))
	return b
}

// Build finalizes the builder, validating the configuration.
func (b *Builder) Build() (*Engine, error) {
	return New(b.opts...)
}

// Hierarchy returns the engine's role hierarchy.
func (e *Engine) Hierarchy() Hierarchy {
	return e.hierarchy
}

// HasPermission decides whether the subject holds the permission, optionally
// scoped to the resource instance identified by resourceID (empty means no
// object context). The decision, in order:
//
//  1. An explicit override in subject.Permissions grants immediately,
//     superseding role-derived bounds and predicate checks.
//  2. Effective permissions are accumulated: the union of catalog grants
//     for every role ranked at or below the subject's role.
//  3. A permission outside the accumulated set is denied.
//  4. If a predicate is registered for the permission, it makes the final
//     decision; otherwise the accumulation grant stands.
//
// Malformed permissions, subjects with no role, and roles outside the
// hierarchy all resolve to false. Permission checks sit on UI and
// authorization paths where failing closed beats throwing.
func (e *Engine) HasPermission(subject Subject, p Permission, resourceID string) bool {
	if p.Validate() != nil {
		return false
	}

	// Explicit overrides bypass both the catalog and any predicate.
	if subject.Permissions.Has(p) {
		return true
	}

	if !e.hierarchy.Contains(subject.Role) {
		return false
	}
	if !e.catalog.Accumulate(e.hierarchy, subject.Role).Has(p) {
		return false
	}

	if pred, ok := e.predicates[p]; ok {
		return e.runPredicate(pred, subject, p, resourceID)
	}
	return true
}

// CanAccess composes (action, resource) into a permission and delegates to
// HasPermission.
func (e *Engine) CanAccess(subject Subject, action Action, resource Resource, resourceID string) bool {
	return e.HasPermission(subject, Perm(action, resource), resourceID)
}

// HasRole reports whether the subject's role ranks at or above the required
// role. Reflexive: true when the roles are equal. False for subjects whose
// role is outside the hierarchy.
func (e *Engine) HasRole(subject Subject, role Role) bool {
	return e.hierarchy.IsAtLeast(subject.Role, role)
}

// UserPermissions returns the subject's accumulated catalog permissions
// unioned with their explicit overrides, deduplicated. Note this is the
// coarse, class-wide set: predicates are instance-level and are not
// consulted here.
func (e *Engine) UserPermissions(subject Subject) PermissionSet {
	out := e.catalog.Accumulate(e.hierarchy, subject.Role)
	out.AddAll(subject.Permissions)
	return out
}

// runPredicate evaluates a predicate, converting a panic into a deny. A
// throwing predicate is a programming bug and must never be interpreted as
// a grant.
func (e *Engine) runPredicate(pred Predicate, subject Subject, p Permission, resourceID string) (granted bool) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.Wrap(r, 2)
			e.logger.Errorw("permit: predicate panicked, denying",
				"permission", p.String(),
				"subject", subject.ID,
				"resourceID", resourceID,
				"error", err.Error(),
				"stack", string(err.Stack()),
			)
			granted = false
		}
	}()
	return pred(subject, resourceID)
}
