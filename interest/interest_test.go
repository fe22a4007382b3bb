package interest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateKnownValue(t *testing.T) {
	// $10,000 at 7% compounded monthly for 10 years.
	result, err := Calculate(10000, 0.07, 10, 12)
	require.NoError(t, err)

	assert.InDelta(t, 20096.61, result.FinalAmount, 0.01)
	assert.InDelta(t, 10096.61, result.TotalInterest, 0.01)
	require.Len(t, result.Breakdown, 10)

	first := result.Breakdown[0]
	assert.Equal(t, "1", first.Year)
	assert.InDelta(t, 10000.00, first.Principal, 0.01)
	assert.InDelta(t, 722.90, first.Interest, 0.01)
	assert.InDelta(t, 10722.90, first.Total, 0.01)

	// Each year's total feeds the next year's principal.
	for i := 1; i < len(result.Breakdown); i++ {
		assert.InDelta(t, result.Breakdown[i-1].Total, result.Breakdown[i].Principal, 0.01)
	}

	last := result.Breakdown[len(result.Breakdown)-1]
	assert.InDelta(t, result.FinalAmount, last.Total, 0.01)
}

func TestCalculateAnnualCompounding(t *testing.T) {
	// $1,000 at 10% compounded annually for 2 years: 1000 * 1.1^2 = 1210.
	result, err := Calculate(1000, 0.10, 2, 1)
	require.NoError(t, err)

	assert.InDelta(t, 1210.00, result.FinalAmount, 0.001)
	assert.InDelta(t, 210.00, result.TotalInterest, 0.001)
	require.Len(t, result.Breakdown, 2)
	assert.InDelta(t, 1100.00, result.Breakdown[0].Total, 0.001)
}

func TestCalculateZeroRate(t *testing.T) {
	result, err := Calculate(500, 0, 3, 12)
	require.NoError(t, err)

	assert.Equal(t, 500.00, result.FinalAmount)
	assert.Equal(t, 0.00, result.TotalInterest)
}

func TestCalculateFractionalYears(t *testing.T) {
	result, err := Calculate(1000, 0.12, 1.5, 12)
	require.NoError(t, err)

	require.Len(t, result.Breakdown, 2)
	assert.Equal(t, "1", result.Breakdown[0].Year)
	assert.Equal(t, "1.5", result.Breakdown[1].Year)
	assert.InDelta(t, result.FinalAmount, result.Breakdown[1].Total, 0.01)
}

func TestCalculateInvalidInputs(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     float64
		frequency int
	}{
		{"zero principal", 0, 0.05, 10, 12},
		{"negative principal", -100, 0.05, 10, 12},
		{"negative rate", 1000, -0.05, 10, 12},
		{"zero years", 1000, 0.05, 0, 12},
		{"zero frequency", 1000, 0.05, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.principal, tt.rate, tt.years, tt.frequency)
			assert.Error(t, err)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	result, err := Calculate(1000, 0.10, 2, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, result.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Year,Principal,Interest,Total", lines[0])
	assert.Equal(t, "1,1000.00,100.00,1100.00", lines[1])
	assert.Equal(t, "2,1100.00,110.00,1210.00", lines[2])
}
