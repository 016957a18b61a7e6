package permit

import (
	"fmt"
	"net/http"
	"sort"
)

// DebugHandler renders the engine's configuration as plain text: the role
// hierarchy with ranks, each role's direct and accumulated grants, and the
// registered predicates. Introspection only; it performs no enforcement and
// exposes no subject data.
func (e *Engine) DebugHandler(resp http.ResponseWriter, req *http.Request) {
	resp.Header().Set("Content-Type", "text/plain; charset=utf-8")
	resp.Write([]byte("Permit Configuration\n"))
	resp.Write([]byte("====================\n\n\n"))

	resp.Write([]byte("Role Hierarchy\n"))
	resp.Write([]byte("--------------\n\n"))

	roles := e.hierarchy.Roles()
	for i := len(roles) - 1; i >= 0; i-- {
		fmt.Fprintf(resp, "  %d  %s\n", i, roles[i])
	}

	resp.Write([]byte("\n\nCatalog\n"))
	resp.Write([]byte("-------\n\n"))

	for _, role := range roles {
		direct := e.catalog.PermissionsForRole(role)
		accumulated := e.catalog.Accumulate(e.hierarchy, role)
		fmt.Fprintf(resp, "%s (%d direct, %d accumulated)\n", role, len(direct), len(accumulated))
		for _, p := range direct.Strings() {
			fmt.Fprintf(resp, "    %s\n", p)
		}
		resp.Write([]byte("\n"))
	}

	resp.Write([]byte("\nPredicates\n"))
	resp.Write([]byte("----------\n\n"))

	if len(e.predicates) == 0 {
		resp.Write([]byte("  (none registered)\n"))
		return
	}
	gated := make([]string, 0, len(e.predicates))
	for p := range e.predicates {
		gated = append(gated, p.String())
	}
	sort.Strings(gated)
	for _, p := range gated {
		fmt.Fprintf(resp, "  %s\n", p)
	}
}
