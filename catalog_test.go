package permit_test

import (
	"testing"

	"github.com/dpup/permit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Accumulate_monotonic(t *testing.T) {
	h := permit.DefaultHierarchy()
	catalog := permit.DefaultCatalog()

	// Every permission granted at a given rank must appear in the
	// accumulated set of every higher rank.
	roles := h.Roles()
	for i, lower := range roles {
		lowerSet := catalog.Accumulate(h, lower)
		for _, higher := range roles[i:] {
			higherSet := catalog.Accumulate(h, higher)
			for p := range lowerSet {
				assert.True(t, higherSet.Has(p), "%s accumulated for %s but missing for %s", p, lower, higher)
			}
		}
	}
}

func TestCatalog_Accumulate(t *testing.T) {
	h := permit.MustHierarchy("viewer", "editor", "owner")
	catalog := permit.Catalog{
		"viewer": permit.Grants("read:content"),
		"editor": permit.Grants("update:content"),
		"owner":  permit.Grants("delete:content"),
	}

	t.Run("middle rank", func(t *testing.T) {
		got := catalog.Accumulate(h, "editor")
		assert.ElementsMatch(t, []string{"read:content", "update:content"}, got.Strings())
	})

	t.Run("top rank", func(t *testing.T) {
		got := catalog.Accumulate(h, "owner")
		assert.ElementsMatch(t, []string{"read:content", "update:content", "delete:content"}, got.Strings())
	})

	t.Run("unknown role", func(t *testing.T) {
		assert.Empty(t, catalog.Accumulate(h, "ghost"))
	})

	t.Run("role with no entry still accumulates lower grants", func(t *testing.T) {
		sparse := permit.Catalog{"viewer": permit.Grants("read:content")}
		got := sparse.Accumulate(h, "owner")
		assert.ElementsMatch(t, []string{"read:content"}, got.Strings())
	})
}

func TestCatalog_PermissionsForRole(t *testing.T) {
	catalog := permit.Catalog{
		"viewer": permit.Grants("read:content", "read:reports"),
	}

	t.Run("returns direct grants only", func(t *testing.T) {
		got := catalog.PermissionsForRole("viewer")
		assert.ElementsMatch(t, []string{"read:content", "read:reports"}, got.Strings())
	})

	t.Run("unknown role is empty", func(t *testing.T) {
		assert.Empty(t, catalog.PermissionsForRole("ghost"))
	})

	t.Run("returned set is a copy", func(t *testing.T) {
		got := catalog.PermissionsForRole("viewer")
		got.Add(permit.Perm(permit.ActionDelete, permit.ResourceContent))
		assert.Len(t, catalog.PermissionsForRole("viewer"), 2)
	})
}

func TestCatalog_Validate(t *testing.T) {
	h := permit.MustHierarchy("viewer", "editor")

	t.Run("valid", func(t *testing.T) {
		catalog := permit.Catalog{"viewer": permit.Grants("read:content")}
		require.NoError(t, catalog.Validate(h))
	})

	t.Run("role outside hierarchy", func(t *testing.T) {
		catalog := permit.Catalog{"ghost": permit.Grants("read:content")}
		err := catalog.Validate(h)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("unknown action", func(t *testing.T) {
		catalog := permit.Catalog{
			"viewer": permit.NewPermissionSet(permit.Perm("browse", permit.ResourceContent)),
		}
		err := catalog.Validate(h)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "browse")
	})

	t.Run("unknown resource", func(t *testing.T) {
		catalog := permit.Catalog{
			"viewer": permit.NewPermissionSet(permit.Perm(permit.ActionRead, "widgets")),
		}
		err := catalog.Validate(h)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "widgets")
	})
}
