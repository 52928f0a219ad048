package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain object passes through",
			input:    `{"a": ["b"]}`,
			expected: `{"a": ["b"]}`,
		},
		{
			name:     "json fence",
			input:    "```json\n{\"a\": [\"b\"]}\n```",
			expected: `{"a": ["b"]}`,
		},
		{
			name:     "bare fence",
			input:    "```\n{\"a\": [\"b\"]}\n```",
			expected: `{"a": ["b"]}`,
		},
		{
			name:     "object surrounded by prose",
			input:    "Sure! Here you go: {\"a\": [\"b\"]} — let me know.",
			expected: `{"a": ["b"]}`,
		},
		{
			name:     "nested braces inside strings",
			input:    `{"a": ["curly } brace"]}`,
			expected: `{"a": ["curly } brace"]}`,
		},
		{
			name:     "no json returns sanitized input",
			input:    "nothing here",
			expected: "nothing here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSON(tt.input))
		})
	}
}

func TestSanitizeJSON(t *testing.T) {
	input := "{\"a\": [\"line one\nline two\"]}"
	assert.Equal(t, `{"a": ["line one\nline two"]}`, sanitizeJSON(input))
}
