// Package dashboard produces the sample metrics and series shown on the
// overview page. The data is deterministic sample content, not live
// telemetry.
package dashboard

import (
	"math/rand"

	"github.com/hellodash/hellodash/render"
)

// Metrics returns the headline sample metrics.
func Metrics() []render.Metric {
	return []render.Metric{
		{Label: "Total Users", Value: "1,234", Delta: "+12%"},
		{Label: "Active Sessions", Value: "567", Delta: "+8%"},
		{Label: "Page Views", Value: "9,876", Delta: "-3%"},
		{Label: "Conversion Rate", Value: "3.2%", Delta: "+1.5%"},
	}
}

// SampleSeries returns a deterministic random-walk time series of n points
// starting around 100, for the sample line chart.
func SampleSeries(n int) []float64 {
	rng := rand.New(rand.NewSource(42))

	series := make([]float64, n)
	value := 100.0
	for i := range series {
		value += rng.NormFloat64()
		series[i] = value
	}
	return series
}

// CategoryLabels returns the labels for the sample distribution chart.
func CategoryLabels() []string {
	return []string{"Category A", "Category B", "Category C", "Category D"}
}

// CategoryValues returns the values for the sample distribution chart.
func CategoryValues() []float64 {
	return []float64{42, 73, 19, 56}
}
