package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bare object", `{"name":"rain","count":3}`},
		{"fenced", "```json\n{\"name\":\"rain\",\"count\":3}\n```"},
		{"surrounded by prose", "Here you go:\n{\"name\":\"rain\",\"count\":3}\nHope that helps!"},
		{"nested braces in string", `{"name":"ra{in}","count":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON[payload](tt.raw)
			require.NoError(t, err)
			assert.Equal(t, 3, got.Count)
		})
	}
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON[payload]("no json here")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONMalformed(t *testing.T) {
	_, err := ExtractJSON[payload](`{"name": "rain", "count": }`)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
