package permit_test

import (
	"testing"

	"github.com/dpup/permit"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadKoanf(t *testing.T, conf map[string]interface{}) *koanf.Koanf {
	t.Helper()
	k := koanf.New(".")
	require.NoError(t, k.Load(confmap.Provider(conf, "."), nil))
	return k
}

func TestEngineFromKoanf(t *testing.T) {
	k := loadKoanf(t, map[string]interface{}{
		"rbac.hierarchy": []string{"viewer", "editor"},
		"rbac.catalog": map[string][]string{
			"viewer": {"read:projects", "read:reports"},
			"editor": {"update:projects"},
		},
	})

	engine, err := permit.EngineFromKoanf(k)
	require.NoError(t, err)

	editor := permit.Subject{ID: "u1", Role: "editor"}
	assert.True(t, engine.HasPermission(editor, permit.Perm(permit.ActionRead, permit.ResourceProjects), ""))
	assert.True(t, engine.HasPermission(editor, permit.Perm(permit.ActionUpdate, permit.ResourceProjects), ""))

	viewer := permit.Subject{ID: "u2", Role: "viewer"}
	assert.False(t, engine.HasPermission(viewer, permit.Perm(permit.ActionUpdate, permit.ResourceProjects), ""))
}

func TestEngineFromKoanf_normalizesNames(t *testing.T) {
	k := loadKoanf(t, map[string]interface{}{
		"rbac.hierarchy": []string{"viewer"},
		"rbac.catalog": map[string][]string{
			"viewer": {"Read:aiInsight", "read:Campaign"},
		},
	})

	engine, err := permit.EngineFromKoanf(k)
	require.NoError(t, err)

	viewer := permit.Subject{ID: "u1", Role: "viewer"}
	assert.True(t, engine.HasPermission(viewer, permit.Perm(permit.ActionRead, permit.ResourceAIInsights), ""))
	assert.True(t, engine.HasPermission(viewer, permit.Perm(permit.ActionRead, permit.ResourceCampaigns), ""))
}

func TestEngineFromKoanf_missingHierarchy(t *testing.T) {
	k := loadKoanf(t, map[string]interface{}{
		"rbac.catalog": map[string][]string{"viewer": {"read:projects"}},
	})

	_, err := permit.EngineFromKoanf(k)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rbac.hierarchy")
}

func TestEngineFromKoanf_suggestsForTypos(t *testing.T) {
	t.Run("misspelled action", func(t *testing.T) {
		k := loadKoanf(t, map[string]interface{}{
			"rbac.hierarchy": []string{"viewer"},
			"rbac.catalog":   map[string][]string{"viewer": {"raed:projects"}},
		})
		_, err := permit.EngineFromKoanf(k)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "raed")
		assert.Contains(t, err.Error(), "Did you mean")
		assert.Contains(t, err.Error(), "read")
	})

	t.Run("misspelled resource", func(t *testing.T) {
		k := loadKoanf(t, map[string]interface{}{
			"rbac.hierarchy": []string{"viewer"},
			"rbac.catalog":   map[string][]string{"viewer": {"read:prjects"}},
		})
		_, err := permit.EngineFromKoanf(k)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Did you mean")
		assert.Contains(t, err.Error(), "projects")
	})

	t.Run("no separator", func(t *testing.T) {
		k := loadKoanf(t, map[string]interface{}{
			"rbac.hierarchy": []string{"viewer"},
			"rbac.catalog":   map[string][]string{"viewer": {"readprojects"}},
		})
		_, err := permit.EngineFromKoanf(k)
		require.Error(t, err)
	})
}

func TestEngineFromKoanf_extraOptions(t *testing.T) {
	k := loadKoanf(t, map[string]interface{}{
		"rbac.hierarchy": []string{"viewer", "editor"},
		"rbac.catalog": map[string][]string{
			"viewer": {"read:clients"},
		},
	})

	engine, err := permit.EngineFromKoanf(k,
		permit.WithPredicate(permit.Perm(permit.ActionRead, permit.ResourceClients), permit.TeamMember()),
	)
	require.NoError(t, err)

	assert.False(t, engine.HasPermission(permit.Subject{ID: "u1", Role: "viewer"}, permit.Perm(permit.ActionRead, permit.ResourceClients), ""))
	assert.True(t, engine.HasPermission(permit.Subject{ID: "u1", Role: "viewer", Teams: []string{"growth"}}, permit.Perm(permit.ActionRead, permit.ResourceClients), ""))
}
