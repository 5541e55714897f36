package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/pe51k/tagtally/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleRows() []domain.SunburstRow {
	return []domain.SunburstRow{
		{ID: "work", Label: "work", Parent: "", Value: 4 * time.Hour},
		{ID: "work > projA", Label: "projA", Parent: "work", Value: 3 * time.Hour},
		{ID: "work > projB", Label: "projB", Parent: "work", Value: time.Hour},
		{ID: "rest", Label: "rest", Parent: "", Value: 2 * time.Hour},
	}
}

func TestRenderTagTree_Connectors(t *testing.T) {
	out := RenderTagTree(sampleRows(), 6*time.Hour)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)

	assert.Contains(t, lines[1], "├─ ")
	assert.Contains(t, lines[1], "projA")
	assert.Contains(t, lines[2], "└─ ")
	assert.Contains(t, lines[2], "projB")
	assert.NotContains(t, lines[3], "─ ", "top-level rows have no connector")
}

func TestRenderTagTree_SharesOfParent(t *testing.T) {
	out := RenderTagTree(sampleRows(), 6*time.Hour)
	lines := strings.Split(out, "\n")

	assert.Contains(t, lines[1], "75%")
	assert.Contains(t, lines[2], "25%")
	// Top-level rows show share of the grand total.
	assert.Contains(t, lines[0], "67%")
}

func TestRenderTagTree_Empty(t *testing.T) {
	out := RenderTagTree(nil, 0)
	assert.Contains(t, out, "no tag data")
}
