package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeResource(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"projects", "projects"},
		{"project", "projects"},
		{"aiInsight", "ai_insights"},
		{"AiInsights", "ai_insights"},
		{"ai_insights", "ai_insights"},
		{"Campaign", "campaigns"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeResource(tt.in))
		})
	}
}

func TestNormalizeAction(t *testing.T) {
	assert.Equal(t, "read", NormalizeAction("Read"))
	assert.Equal(t, "configure", NormalizeAction("configure"))
}

func TestTransformEnv(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PERMIT__RBAC__HIERARCHY", "rbac.hierarchy"},
		{"PERMIT__RBAC__DEBUG_ADDRESS", "rbac.debugAddress"},
		{"PERMIT__NAME", "name"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TransformEnv(tt.in))
		})
	}
}
