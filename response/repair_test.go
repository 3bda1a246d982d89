package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid json unchanged",
			input:    `[{"id": "a", "isStackable": true}]`,
			expected: `[{"id": "a", "isStackable": true}]`,
		},
		{
			name:     "missing quote after brace",
			input:    `{id": "a"}`,
			expected: `{"id": "a"}`,
		},
		{
			name:     "missing quote after comma",
			input:    `{"id": "a", iconPath": "x.svg"}`,
			expected: `{"id": "a", "iconPath": "x.svg"}`,
		},
		{
			name:     "newline before key",
			input:    "{\n  skillType\": \"passive\"}",
			expected: "{\n  \"skillType\": \"passive\"}",
		},
		{
			name:     "bare literal values untouched",
			input:    `[true, false, null]`,
			expected: `[true, false, null]`,
		},
		{
			name:     "numeric suffix in key",
			input:    `{level2": 1}`,
			expected: `{"level2": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repairJSON(tt.input))
		})
	}
}
