package permit_test

import (
	"testing"

	"github.com/dpup/permit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHierarchy(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		h, err := permit.NewHierarchy("viewer", "editor", "owner")
		require.NoError(t, err)
		assert.Equal(t, []permit.Role{"viewer", "editor", "owner"}, h.Roles())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := permit.NewHierarchy()
		require.Error(t, err)
	})

	t.Run("duplicate role", func(t *testing.T) {
		_, err := permit.NewHierarchy("viewer", "editor", "viewer")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "viewer")
	})

	t.Run("empty role name", func(t *testing.T) {
		_, err := permit.NewHierarchy("viewer", "")
		require.Error(t, err)
	})
}

func TestHierarchy_Rank(t *testing.T) {
	h := permit.MustHierarchy("viewer", "editor", "owner")

	rank, err := h.Rank("viewer")
	require.NoError(t, err)
	assert.Equal(t, 0, rank)

	rank, err = h.Rank("owner")
	require.NoError(t, err)
	assert.Equal(t, 2, rank)

	_, err = h.Rank("ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestHierarchy_IsAtLeast(t *testing.T) {
	h := permit.MustHierarchy("viewer", "editor", "owner")

	tests := []struct {
		name string
		a, b permit.Role
		want bool
	}{
		{"higher over lower", "owner", "viewer", true},
		{"reflexive", "editor", "editor", true},
		{"lower under higher", "viewer", "editor", false},
		{"unknown subject role", "ghost", "viewer", false},
		{"unknown required role", "owner", "ghost", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.IsAtLeast(tt.a, tt.b))
		})
	}
}

func TestHierarchy_RolesIsACopy(t *testing.T) {
	h := permit.MustHierarchy("viewer", "editor")
	roles := h.Roles()
	roles[0] = "mutated"
	assert.Equal(t, []permit.Role{"viewer", "editor"}, h.Roles())
}
