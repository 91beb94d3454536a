package complete

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		candidate string
		expected  EmphasisClass
	}{
		{"administrator", Warning},
		{"breakglass-prod", Warning},
		{"prod-administratoraccess", Warning},
		{"team-breakglass", Warning},
		{"dev-readonly", Normal},
		{"Administrator", Normal},
		{"BREAKGLASS", Normal},
		{"admin", Normal},
		{"", Normal},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.candidate))
		})
	}
}

func TestPolicy_CustomPatterns(t *testing.T) {
	p := Policy{Patterns: []string{"root", ""}}

	assert.Equal(t, Warning, p.Classify("org-root"))
	assert.Equal(t, Normal, p.Classify("administrator"))
	assert.Equal(t, Normal, Policy{}.Classify("anything"))
}

func TestEmphasisClassString(t *testing.T) {
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, "warning", Warning.String())
}
