// Package permit implements a hierarchical role-based access control engine
// with instance-level conditional overrides. It decides whether a subject
// may perform an action on a resource class, optionally scoped to a single
// resource instance.
//
// # Getting Started
//
// The simplest way to get started is the default engine, which carries the
// product's standard hierarchy and catalog:
//
//	engine := permit.Default()
//
//	subject := permit.Subject{ID: "u123", Role: permit.RoleDeveloper}
//	if engine.CanAccess(subject, permit.ActionUpdate, permit.ResourceProjects, "p42") {
//	    // allowed
//	}
//
// Custom configurations are built with options or the fluent builder, and
// are validated in full at construction:
//
//	engine, err := permit.NewBuilder().
//	    WithHierarchy("viewer", "editor", "owner").
//	    WithGrant("viewer", permit.Perm(permit.ActionRead, permit.ResourceProjects)).
//	    WithGrant("editor", permit.Perm(permit.ActionUpdate, permit.ResourceProjects)).
//	    WithPredicate(permit.Perm(permit.ActionUpdate, permit.ResourceProjects),
//	        permit.ResourceTeam(projectTeams)).
//	    Build()
//
// # Core Concepts
//
// Roles form a strict total order, least to most privileged. A role's
// effective permissions are the union of its own catalog grants and those
// of every lower-ranked role, so catalog entries only list what each tier
// adds.
//
// Permissions are (action, resource) pairs drawn from fixed enumerations,
// with the canonical serialized form "action:resource". The catalog, the
// predicate table, and every call site are validated against the
// enumerations at engine construction, never mid-request.
//
// Predicates refine catalog grants with per-instance conditions: "a
// developer may update projects" becomes "...but only projects owned by one
// of their teams". Predicates are pure functions of the subject and an
// optional resource instance id; they can restrict what the catalog
// granted but never widen it.
//
// Subjects arrive from an external session provider (see the session
// subpackage for a JWT adapter) and may carry explicit permission
// overrides, which supersede both catalog membership and predicates.
//
// # Failure Semantics
//
// Every query method is deny-by-default and never returns an error: a
// malformed permission, a subject with no role, or a role outside the
// hierarchy all resolve to false. These checks sit on UI and authorization
// paths where failing closed beats throwing. Configuration mistakes, by
// contrast, fail loudly at construction time with coded errors.
//
// # Concurrency
//
// An engine is immutable after construction; any number of goroutines may
// query it concurrently with no synchronization. Decision paths never
// block, suspend, or perform I/O, which is also why predicates must not: a
// deployment that needs I/O to decide should resolve that data up front and
// close over it, or run the lookup outside the engine entirely.
package permit
