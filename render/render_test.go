package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableAlignsColumns(t *testing.T) {
	out := Table(
		[]string{"Name", "Age"},
		[][]string{
			{"Alice", "30"},
			{"Bob", "25"},
		},
	)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Alice")
	assert.Contains(t, lines[2], "Bob")
}

func TestTableShortRow(t *testing.T) {
	// A row with fewer cells than headers must not panic.
	out := Table([]string{"A", "B", "C"}, [][]string{{"x"}})
	assert.Contains(t, out, "x")
}

func TestSparkline(t *testing.T) {
	out := Sparkline([]float64{0, 1, 2, 3})
	assert.Equal(t, 4, len([]rune(out)))
	assert.Equal(t, "", Sparkline(nil))
}

func TestSparklineFlatSeries(t *testing.T) {
	// All-equal values must not divide by zero.
	out := Sparkline([]float64{5, 5, 5})
	assert.Equal(t, 3, len([]rune(out)))
}

func TestBarChart(t *testing.T) {
	out := BarChart([]string{"A", "B"}, []float64{10, 20}, 10)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[1], "B")
}

func TestErrorMessageWithHint(t *testing.T) {
	out := ErrorMessage("Something failed.", "Try again later.")
	assert.Contains(t, out, "✗ Something failed.")
	assert.Contains(t, out, "Try again later.")

	assert.NotContains(t, ErrorMessage("Just the message.", ""), "\n")
}
