package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTableAlignment(t *testing.T) {
	out := RenderTable(
		[]string{"MONTH", "POSITIVE"},
		[][]string{
			{"2024-01", "12"},
			{"2024-02", "3"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "MONTH")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "2024-01")

	// Both data rows start their second column at the same offset.
	assert.Equal(t, strings.Index(lines[2], "12"), strings.Index(lines[3], "3"))
}

func TestRenderTableShortRows(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestRenderBoxTitle(t *testing.T) {
	out := RenderBox("digest", "hello")
	assert.Contains(t, out, "DIGEST")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "╭")
}
