package gitlog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

func TestFaultClassifier_IsFaulty(t *testing.T) {
	c := NewFaultClassifier(schema.DefaultFaultKeywords)

	tests := []struct {
		message string
		want    bool
	}{
		{"fix: resolve test flakiness", true},
		{"bug: correct assertion logic", true},
		{"patch: security vulnerability", true},
		{"error handling improvement", true},
		{"Repair broken CI job", true},
		{"refactor: improve code quality", false},
		{"feature: add new test cases", false},
		{"docs: update readme", false},
		// The substring match is intentionally high-recall.
		{"add prefix to config keys", true}, // "prefix" contains "fix"
		{"fixup! earlier commit", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsFaulty(tt.message))
		})
	}
}

func TestFaultClassifier_CaseInsensitive(t *testing.T) {
	c := NewFaultClassifier(schema.DefaultFaultKeywords)

	assert.True(t, c.IsFaulty("FIX: SHOUTING COMMIT"))
	assert.True(t, c.IsFaulty("Resolve Issue #42"))
}

func TestFaultClassifier_CustomKeywords(t *testing.T) {
	c := NewFaultClassifier([]string{"hotfix", "  OOPS  ", ""})

	assert.True(t, c.IsFaulty("hotfix for prod"))
	assert.True(t, c.IsFaulty("oops, reverting"))
	assert.False(t, c.IsFaulty("fix things")) // not in the custom list
}
