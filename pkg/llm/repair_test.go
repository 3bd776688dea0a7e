package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "clean object untouched",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "json fence stripped",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "bare fence stripped",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "prose around object dropped",
			input: `Here is the result: {"a": 1} hope that helps!`,
			want:  `{"a": 1}`,
		},
		{
			name:  "trailing comma removed",
			input: `{"a": 1,}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "trailing comma in array removed",
			input: `{"a": [1, 2,]}`,
			want:  `{"a": [1, 2]}`,
		},
		{
			name:  "braces inside strings do not truncate",
			input: `{"a": "value with } brace"}`,
			want:  `{"a": "value with } brace"}`,
		},
		{
			name:  "nested objects balanced",
			input: `{"a": {"b": {"c": 1}}}`,
			want:  `{"a": {"b": {"c": 1}}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RepairJSON(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, json.Valid([]byte(got)))
		})
	}
}

func TestRepairJSONLineComments(t *testing.T) {
	got, err := RepairJSON("{\n// model commentary\n\"a\": 1\n}")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(got)))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, 1, decoded["a"])
}

func TestRepairJSONNoObject(t *testing.T) {
	_, err := RepairJSON("no json here at all")
	assert.ErrorIs(t, err, ErrNoJSON)

	_, err = RepairJSON("unbalanced { forever")
	assert.ErrorIs(t, err, ErrNoJSON)
}
