package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"govista/adapters/ingest"
	"govista/adapters/stats/engine"
	"govista/adapters/viz"
	"govista/domain/core"
	"govista/domain/dataset"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "govista-cli",
		Short: "GoVista CLI for offline dataset profiling and metrics",
	}

	rootCmd.AddCommand(
		newProfileCmd(),
		newStatsCmd(),
		newMetricCmd(),
		newChartCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadTable(path string) (*dataset.Table, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") || strings.HasSuffix(strings.ToLower(path), ".xls") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()
		return ingest.ReadWorkbook(f)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	table := ingest.ParseCSV(string(raw))
	if table.IsEmpty() {
		return nil, fmt.Errorf("no data rows found in %s", path)
	}
	return table, nil
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile [data-file]",
		Short: "Profile the columns of a CSV or Excel file",
		Long: `Profile every column of a dataset: inferred type, semantic role,
missing and unique counts, and numeric summaries.

Example: govista-cli profile sales.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(args[0])
			if err != nil {
				return err
			}

			stats := engine.New().BuildStats(table, engine.BuildOptions{})
			fmt.Printf("Rows: %d (dropped: %d)\n\n", stats.RowCount, table.DroppedRows)
			for _, col := range stats.Columns {
				fmt.Printf("%s\n", col.Name)
				fmt.Printf("  Type: %s | Role: %s | Missing: %d | Unique: %d\n",
					col.Type, col.Role, col.MissingCount, col.UniqueCount)
				if col.Summary != nil {
					fmt.Printf("  Min: %.2f | Max: %.2f | Mean: %.2f | StdDev: %.2f\n",
						col.Summary.Min, col.Summary.Max, col.Summary.Mean, col.Summary.StdDev)
				}
			}
			return nil
		},
	}
	return cmd
}

func newStatsCmd() *cobra.Command {
	var seed int64
	var deepScan bool

	cmd := &cobra.Command{
		Use:   "stats [data-file]",
		Short: "Compute the full statistical profile as JSON",
		Long: `Compute the complete dataset profile: column profiles, outliers,
regression and Monte Carlo projections when the data supports them.

Example: govista-cli stats sales.csv --seed 42 --deep-scan`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(args[0])
			if err != nil {
				return err
			}

			eng := engine.NewWithSource(rand.NewSource(seed))
			stats := eng.BuildStats(table, engine.BuildOptions{DeepScan: deepScan})

			raw, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode stats: %w", err)
			}
			fmt.Println(string(raw))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for the Monte Carlo projection")
	cmd.Flags().BoolVar(&deepScan, "deep-scan", false, "Attach distribution markers to numeric columns")
	return cmd
}

func newMetricCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metric [data-file] [op] [column]",
		Short: "Compute a single display metric",
		Long: `Compute one metric over a column: sum, mean, max, min or count.
Count ignores the column argument.

Example: govista-cli metric sales.csv sum price`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(args[0])
			if err != nil {
				return err
			}

			column := ""
			if len(args) == 3 {
				column = args[2]
			}
			fmt.Println(viz.CalculateMetric(table, column, dataset.MetricOp(args[1])))
			return nil
		},
	}
	return cmd
}

func newChartCmd() *cobra.Command {
	var kind string
	var yAxes []string

	cmd := &cobra.Command{
		Use:   "chart [data-file] [x-axis]",
		Short: "Prepare chart-ready series as JSON",
		Long: `Shape a dataset into chart-ready series: scatter sampling, numeric
binning, category collapsing and per-group means all applied as the
chart kind requires.

Example: govista-cli chart sales.csv region --kind bar --y price,units`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(args[0])
			if err != nil {
				return err
			}

			config := dataset.ChartConfig{
				ID:    core.ChartID(core.NewID()),
				Kind:  dataset.ChartKind(kind),
				XAxis: args[1],
				YAxes: yAxes,
			}
			series := viz.Prepare(table, config)

			raw, err := json.MarshalIndent(series, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode series: %w", err)
			}
			fmt.Println(string(raw))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "bar", "Chart kind: bar|line|scatter|pie")
	cmd.Flags().StringSliceVar(&yAxes, "y", nil, "Y-axis columns")
	return cmd
}
