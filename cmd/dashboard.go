package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hellodash/hellodash/dashboard"
	"github.com/hellodash/hellodash/render"
)

var dashboardPoints int

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the sample-metrics dashboard",
	Long:  `Display headline metrics, a trend sparkline, and a category bar chart built from deterministic sample data.`,
	RunE:  runDashboard,
}

func init() {
	dashboardCmd.Flags().IntVar(&dashboardPoints, "points", 30, "number of points in the trend series")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if dashboardPoints < 2 {
		return fmt.Errorf("--points must be at least 2, got %d", dashboardPoints)
	}

	fmt.Println(render.Title("📊 Dashboard"))
	fmt.Println()
	fmt.Println(render.MetricCards(dashboard.Metrics()))
	fmt.Println()

	series := dashboard.SampleSeries(dashboardPoints)
	fmt.Println(render.Subtitle("Trend"))
	fmt.Println(render.Sparkline(series))
	fmt.Println()

	fmt.Println(render.Subtitle("Categories"))
	fmt.Println(render.BarChart(dashboard.CategoryLabels(), dashboard.CategoryValues(), 40))

	return nil
}
