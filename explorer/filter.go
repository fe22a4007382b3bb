package explorer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// CompiledFilter is a row predicate compiled from an expression.
type CompiledFilter struct {
	expression string
	program    *vm.Program
}

// CompileFilter compiles a boolean expression over the dataset's columns,
// e.g. `Age > 30 and City == "Tokyo"`. Numeric columns are exposed as
// numbers, text columns as strings.
func CompileFilter(expression string) (*CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("filter expression cannot be empty")
	}

	program, err := expr.Compile(expression,
		expr.AllowUndefinedVariables(), // column names are only known per dataset
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	return &CompiledFilter{expression: expression, program: program}, nil
}

// Expression returns the source expression.
func (f *CompiledFilter) Expression() string {
	return f.expression
}

// Filter returns a new dataset containing only the rows the expression
// matches. Rows that fail to evaluate (e.g. a null cell in a compared
// column) are skipped.
func (d *Dataset) Filter(f *CompiledFilter) *Dataset {
	out := &Dataset{Columns: d.Columns}

	for _, row := range d.Rows {
		env := d.rowEnv(row)
		result, err := expr.Run(f.program, env)
		if err != nil {
			continue
		}
		if result.(bool) {
			out.Rows = append(out.Rows, row)
		}
	}

	return out
}

// rowEnv builds the expression environment for one row, typed per column.
func (d *Dataset) rowEnv(row []string) map[string]any {
	env := make(map[string]any, len(d.Columns))
	for i, col := range d.Columns {
		if i >= len(row) {
			env[col.Name] = nil
			continue
		}
		cell := strings.TrimSpace(row[i])
		if col.Type == TypeNumeric {
			if cell == "" {
				env[col.Name] = nil
				continue
			}
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				env[col.Name] = v
				continue
			}
			env[col.Name] = nil
			continue
		}
		env[col.Name] = row[i]
	}
	return env
}
