package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hellodash/hellodash/interest"
	"github.com/hellodash/hellodash/render"
)

var (
	interestPrincipal float64
	interestRate      float64
	interestYears     float64
	interestFrequency int
	interestCSV       string
)

// interestCmd represents the interest command
var interestCmd = &cobra.Command{
	Use:   "interest",
	Short: "Calculate compound interest",
	Long: `Compute compound interest with A = P(1 + r/n)^(nt), show a year-by-year
breakdown, and optionally export it as CSV.`,
	RunE: runInterest,
}

func init() {
	interestCmd.Flags().Float64VarP(&interestPrincipal, "principal", "p", 10000, "initial principal")
	interestCmd.Flags().Float64VarP(&interestRate, "rate", "r", 7, "annual interest rate in percent")
	interestCmd.Flags().Float64VarP(&interestYears, "years", "y", 10, "investment period in years")
	interestCmd.Flags().IntVarP(&interestFrequency, "frequency", "n", 12, "compounding periods per year")
	interestCmd.Flags().StringVar(&interestCSV, "csv", "", "write the breakdown to a CSV file")
}

func runInterest(cmd *cobra.Command, args []string) error {
	result, err := interest.Calculate(interestPrincipal, interestRate/100, interestYears, interestFrequency)
	if err != nil {
		return err
	}

	fmt.Println(render.Title("💰 Compound Interest"))
	fmt.Println()
	fmt.Println(render.MetricCards([]render.Metric{
		{Label: "Principal", Value: fmt.Sprintf("$%.2f", interestPrincipal)},
		{Label: "Final Amount", Value: fmt.Sprintf("$%.2f", result.FinalAmount)},
		{Label: "Total Interest", Value: fmt.Sprintf("$%.2f", result.TotalInterest)},
	}))

	rows := make([][]string, 0, len(result.Breakdown))
	for _, yr := range result.Breakdown {
		rows = append(rows, []string{
			yr.Year,
			fmt.Sprintf("$%.2f", yr.Principal),
			fmt.Sprintf("$%.2f", yr.Interest),
			fmt.Sprintf("$%.2f", yr.Total),
		})
	}
	fmt.Println()
	fmt.Println(render.Subtitle("Yearly breakdown"))
	fmt.Println(render.Table([]string{"Year", "Principal", "Interest", "Total"}, rows))

	if interestCSV != "" {
		f, err := os.Create(interestCSV)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %w", err)
		}
		defer f.Close()
		if err := result.WriteCSV(f); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		fmt.Println()
		fmt.Println(render.Success("Breakdown written to " + interestCSV))
	}

	return nil
}
