package permit

// DefaultHierarchy returns the standard role order used by the product:
// guest < client < developer < manager < admin.
func DefaultHierarchy() Hierarchy {
	return MustHierarchy(RoleGuest, RoleClient, RoleDeveloper, RoleManager, RoleAdmin)
}

// DefaultCatalog returns the standard role grants. Each entry lists only the
// role's direct grants; effective permissions accumulate down the hierarchy,
// so a manager also holds everything granted to guests, clients, and
// developers.
//
// Note that update:projects is granted at client rank but predicate-gated to
// developers and above (see DefaultPredicates); the catalog alone is not the
// full story for predicate-gated permissions.
func DefaultCatalog() Catalog {
	return Catalog{
		RoleGuest: Grants(
			"read:projects",
			"read:tasks",
			"read:content",
			"read:reports",
		),
		RoleClient: Grants(
			"update:tasks",
			"update:projects",
			"read:clients",
			"read:campaigns",
			"create:content",
			"approve:content",
		),
		RoleDeveloper: Grants(
			"create:tasks",
			"assign:tasks",
			"update:content",
			"update:campaigns",
		),
		RoleManager: Grants(
			"create:projects",
			"assign:projects",
			"approve:projects",
			"delete:tasks",
			"create:campaigns",
			"create:teams",
			"update:teams",
			"create:clients",
			"update:clients",
			"export:reports",
			"read:ai_insights",
		),
		RoleAdmin: Grants(
			"delete:projects",
			"delete:campaigns",
			"delete:content",
			"delete:clients",
			"delete:teams",
			"export:clients",
			"import:clients",
			"import:projects",
			"configure:settings",
			"configure:ai_insights",
		),
	}
}

// DefaultPredicates returns the standard instance-level refinements:
//
//   - update:projects requires developer rank or above, so the client-rank
//     catalog grant alone is not enough to edit a project;
//   - read:clients requires team membership. The default is the class-wide
//     TeamMember check because the engine ships with no instance-to-team
//     data; deployments that have that mapping should re-register the
//     permission with ResourceTeam to get true per-instance scoping.
func DefaultPredicates(h Hierarchy) PredicateTable {
	return PredicateTable{
		Perm(ActionUpdate, ResourceProjects): MinimumRole(h, RoleDeveloper),
		Perm(ActionRead, ResourceClients):    TeamMember(),
	}
}

// Default returns an engine wired with the standard hierarchy, catalog, and
// predicates. Panics on construction failure, which would indicate a bug in
// the static tables above.
func Default(opts ...Option) *Engine {
	h := DefaultHierarchy()
	base := []Option{
		WithHierarchy(h.Roles()...),
		WithCatalog(DefaultCatalog()),
	}
	for p, pred := range DefaultPredicates(h) {
		base = append(base, WithPredicate(p, pred))
	}
	e, err := New(append(base, opts...)...)
	if err != nil {
		panic(err)
	}
	return e
}
