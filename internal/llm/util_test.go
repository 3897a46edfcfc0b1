package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"name": "Alice"}`,
			want:  `{"name": "Alice"}`,
		},
		{
			name:  "json fenced block",
			input: "```json\n{\"name\": \"Alice\"}\n```",
			want:  `{"name": "Alice"}`,
		},
		{
			name:  "generic fenced block",
			input: "```\n{\"name\": \"Alice\"}\n```",
			want:  `{"name": "Alice"}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n{\"a\": 1}\n  ",
			want:  `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}
