// Package interest implements the compound-interest calculator:
// A = P(1 + r/n)^(nt), with a year-by-year breakdown and CSV export.
package interest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// YearRow is one row of the yearly breakdown. Amounts are rounded to cents.
type YearRow struct {
	Year      string
	Principal float64
	Interest  float64
	Total     float64
}

// Result is a computed compound-interest projection.
type Result struct {
	FinalAmount   float64
	TotalInterest float64
	Breakdown     []YearRow
}

// Calculate computes compound interest for an initial principal at the given
// annual rate (as a decimal) over years, compounding frequency times a year.
// A trailing fractional year produces one final partial row.
func Calculate(principal, rate, years float64, frequency int) (*Result, error) {
	if principal <= 0 {
		return nil, fmt.Errorf("principal must be positive")
	}
	if rate < 0 {
		return nil, fmt.Errorf("rate cannot be negative")
	}
	if years <= 0 {
		return nil, fmt.Errorf("time period must be positive")
	}
	if frequency < 1 {
		return nil, fmt.Errorf("compounding frequency must be at least 1")
	}

	n := float64(frequency)
	finalAmount := principal * math.Pow(1+rate/n, n*years)

	result := &Result{
		FinalAmount:   roundCents(finalAmount),
		TotalInterest: roundCents(finalAmount - principal),
	}

	current := principal
	wholeYears := int(years)
	for year := 1; year <= wholeYears; year++ {
		total := current * math.Pow(1+rate/n, n)
		result.Breakdown = append(result.Breakdown, YearRow{
			Year:      strconv.Itoa(year),
			Principal: roundCents(current),
			Interest:  roundCents(total - current),
			Total:     roundCents(total),
		})
		current = total
	}

	if years > float64(wholeYears) {
		remaining := years - float64(wholeYears)
		total := current * math.Pow(1+rate/n, n*remaining)
		result.Breakdown = append(result.Breakdown, YearRow{
			Year:      strconv.FormatFloat(years, 'f', -1, 64),
			Principal: roundCents(current),
			Interest:  roundCents(total - current),
			Total:     roundCents(total),
		})
	}

	return result, nil
}

// WriteCSV writes the yearly breakdown as CSV.
func (r *Result) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Year", "Principal", "Interest", "Total"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range r.Breakdown {
		record := []string{
			row.Year,
			strconv.FormatFloat(row.Principal, 'f', 2, 64),
			strconv.FormatFloat(row.Interest, 'f', 2, 64),
			strconv.FormatFloat(row.Total, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
