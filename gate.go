package permit

// Gate is a thin, subject-bound view of the engine for capability-gated
// conditional rendering. UI code decides whether to show a control by asking
// the gate, keeping deny-by-default semantics: anything the gate cannot
// resolve is hidden.
//
//	gate := engine.GateFor(subject)
//	if gate.Show(permit.ActionCreate, permit.ResourceProjects) {
//	    // render the "new project" button
//	}
//
// A Gate advises rendering decisions only; it does not enforce anything. The
// same checks run again wherever the action is actually performed.
type Gate struct {
	engine  *Engine
	subject Subject
}

// GateFor binds a subject to the engine for repeated capability queries.
func (e *Engine) GateFor(subject Subject) Gate {
	return Gate{engine: e, subject: subject}
}

// Show reports whether a class-wide control for the action on the resource
// should render.
func (g Gate) Show(action Action, resource Resource) bool {
	return g.engine.CanAccess(g.subject, action, resource, "")
}

// ShowInstance reports whether a control scoped to one resource instance
// should render.
func (g Gate) ShowInstance(action Action, resource Resource, resourceID string) bool {
	return g.engine.CanAccess(g.subject, action, resource, resourceID)
}

// ShowForRole reports whether controls restricted to the given role tier and
// above should render.
func (g Gate) ShowForRole(role Role) bool {
	return g.engine.HasRole(g.subject, role)
}
