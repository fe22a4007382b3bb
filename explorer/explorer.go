// Package explorer loads CSV files and produces previews, summary statistics,
// and expression-filtered views over the rows.
package explorer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ColumnType is the inferred type of a CSV column.
type ColumnType int

const (
	// TypeText is the fallback column type.
	TypeText ColumnType = iota
	// TypeNumeric means every non-empty cell parses as a number.
	TypeNumeric
)

// String returns the display name of the type.
func (t ColumnType) String() string {
	if t == TypeNumeric {
		return "numeric"
	}
	return "text"
}

// Column is a named, typed CSV column.
type Column struct {
	Name string
	Type ColumnType
}

// Dataset is a parsed CSV file: a header plus string-valued rows.
type Dataset struct {
	Columns []Column
	Rows    [][]string
}

// ColumnStats summarizes one numeric column.
type ColumnStats struct {
	Name  string
	Count int
	Nulls int
	Min   float64
	Max   float64
	Mean  float64
}

// Summary describes a dataset: shape plus per-numeric-column statistics.
type Summary struct {
	Rows    int
	Columns int
	Numeric []ColumnStats
}

// LoadFile reads and parses the CSV file at path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses CSV data from r. The first record is the header; column types
// are inferred from the data (numeric when every non-empty cell parses as a
// number, text otherwise).
func Load(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	header := records[0]
	rows := records[1:]

	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i] = Column{Name: strings.TrimSpace(name), Type: inferType(rows, i)}
	}

	return &Dataset{Columns: columns, Rows: rows}, nil
}

// inferType decides a column's type from its cells. A column with no
// non-empty cells stays text.
func inferType(rows [][]string, col int) ColumnType {
	seen := false
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return TypeText
		}
		seen = true
	}
	if seen {
		return TypeNumeric
	}
	return TypeText
}

// NumRows returns the number of data rows.
func (d *Dataset) NumRows() int {
	return len(d.Rows)
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.Columns)
}

// Head returns up to n leading rows.
func (d *Dataset) Head(n int) [][]string {
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	return d.Rows[:n]
}

// Summarize computes the dataset summary: shape plus min/max/mean and null
// counts for every numeric column.
func (d *Dataset) Summarize() Summary {
	summary := Summary{
		Rows:    len(d.Rows),
		Columns: len(d.Columns),
	}

	for i, col := range d.Columns {
		if col.Type != TypeNumeric {
			continue
		}

		stats := ColumnStats{Name: col.Name}
		sum := 0.0
		for _, row := range d.Rows {
			if i >= len(row) || strings.TrimSpace(row[i]) == "" {
				stats.Nulls++
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				stats.Nulls++
				continue
			}
			if stats.Count == 0 || v < stats.Min {
				stats.Min = v
			}
			if stats.Count == 0 || v > stats.Max {
				stats.Max = v
			}
			sum += v
			stats.Count++
		}
		if stats.Count > 0 {
			stats.Mean = sum / float64(stats.Count)
		}
		summary.Numeric = append(summary.Numeric, stats)
	}

	return summary
}

// Sample returns the built-in example dataset shown when no file is given.
func Sample() *Dataset {
	return &Dataset{
		Columns: []Column{
			{Name: "Name", Type: TypeText},
			{Name: "Age", Type: TypeNumeric},
			{Name: "City", Type: TypeText},
			{Name: "Salary", Type: TypeNumeric},
		},
		Rows: [][]string{
			{"Alice", "25", "New York", "50000"},
			{"Bob", "30", "London", "60000"},
			{"Charlie", "35", "Tokyo", "70000"},
			{"Diana", "28", "Paris", "55000"},
			{"Eve", "32", "Sydney", "65000"},
		},
	}
}
