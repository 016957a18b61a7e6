package permit_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dpup/permit"
	"github.com/stretchr/testify/assert"
)

func TestDebugHandler(t *testing.T) {
	engine := permit.Default()

	req := httptest.NewRequest("GET", "/debug/permit", nil)
	resp := httptest.NewRecorder()
	engine.DebugHandler(resp, req)

	body := resp.Body.String()
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header().Get("Content-Type"))

	for _, role := range []string{"guest", "client", "developer", "manager", "admin"} {
		assert.Contains(t, body, role)
	}
	assert.Contains(t, body, "read:projects")
	assert.Contains(t, body, "update:projects")
	assert.Contains(t, body, "Predicates")
}

func TestDebugHandler_noPredicates(t *testing.T) {
	engine, err := permit.New(
		permit.WithHierarchy("viewer"),
		permit.WithGrant("viewer", permit.Perm(permit.ActionRead, permit.ResourceProjects)),
	)
	assert.NoError(t, err)

	resp := httptest.NewRecorder()
	engine.DebugHandler(resp, httptest.NewRequest("GET", "/debug/permit", nil))
	assert.Contains(t, resp.Body.String(), "(none registered)")
}
