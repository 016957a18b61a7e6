package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var knownActions = []string{"create", "read", "update", "delete", "approve", "assign", "export", "import", "configure"}

func TestSimilarValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"transposition", "raed", []string{"read"}},
		{"missing letter", "updte", []string{"update"}},
		{"nothing close", "zzzzzzzzz", nil},
		{"exact match still suggested", "read", []string{"read"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimilarValues(tt.value, knownActions, 1)
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSimilarValues_ordering(t *testing.T) {
	got := SimilarValues("exprot", knownActions, 3)
	assert.NotEmpty(t, got)
	assert.Equal(t, "export", got[0])
}

func TestSuggestionText(t *testing.T) {
	assert.Equal(t, " Did you mean 'read'?", SuggestionText("raed", []string{"read"}))
	assert.Empty(t, SuggestionText("zzzzzzzzz", knownActions))

	multi := SuggestionText("creat", []string{"create", "cret"})
	assert.Contains(t, multi, "one of these")
	assert.Contains(t, multi, "'create'")
}
