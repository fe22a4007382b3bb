package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hellodash/hellodash/explorer"
	"github.com/hellodash/hellodash/render"
)

var (
	exploreFile   string
	exploreFilter string
	exploreHead   int
)

// exploreCmd represents the explore command
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore a CSV file",
	Long: `Load a CSV file, show its shape and per-column statistics, and preview
rows. Without --file a built-in sample dataset is used. Rows can be
narrowed with a --filter expression over column names, e.g.
'age > 30 && city == "Boston"'.`,
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().StringVarP(&exploreFile, "file", "f", "", "CSV file to load (default: sample data)")
	exploreCmd.Flags().StringVar(&exploreFilter, "filter", "", "row filter expression")
	exploreCmd.Flags().IntVar(&exploreHead, "head", 10, "number of rows to preview")
}

func runExplore(cmd *cobra.Command, args []string) error {
	var (
		ds  *explorer.Dataset
		err error
	)
	if exploreFile != "" {
		ds, err = explorer.LoadFile(exploreFile)
		if err != nil {
			return fmt.Errorf("failed to load CSV: %w", err)
		}
		fmt.Println(render.Title("📂 " + exploreFile))
	} else {
		ds = explorer.Sample()
		fmt.Println(render.Title("📂 Sample data"))
	}

	if exploreFilter != "" {
		f, err := explorer.CompileFilter(exploreFilter)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		before := ds.NumRows()
		ds = ds.Filter(f)
		logger.Debug().
			Str("filter", exploreFilter).
			Int("before", before).
			Int("after", ds.NumRows()).
			Msg("Applied row filter")
	}

	summary := ds.Summarize()
	fmt.Println()
	fmt.Printf("%d rows × %d columns\n", summary.Rows, summary.Columns)

	if len(summary.Numeric) > 0 {
		fmt.Println()
		fmt.Println(render.Subtitle("Numeric columns"))
		rows := make([][]string, 0, len(summary.Numeric))
		for _, s := range summary.Numeric {
			rows = append(rows, []string{
				s.Name,
				strconv.Itoa(s.Count),
				strconv.Itoa(s.Nulls),
				strconv.FormatFloat(s.Min, 'f', -1, 64),
				strconv.FormatFloat(s.Max, 'f', -1, 64),
				fmt.Sprintf("%.2f", s.Mean),
			})
		}
		fmt.Println(render.Table([]string{"Column", "Count", "Nulls", "Min", "Max", "Mean"}, rows))
	}

	if ds.NumRows() == 0 {
		fmt.Println()
		fmt.Println("No rows to show.")
		return nil
	}

	headers := make([]string, 0, len(ds.Columns))
	for _, c := range ds.Columns {
		headers = append(headers, c.Name)
	}
	fmt.Println()
	fmt.Println(render.Subtitle(fmt.Sprintf("First %d rows", min(exploreHead, ds.NumRows()))))
	fmt.Println(render.Table(headers, ds.Head(exploreHead)))

	return nil
}
