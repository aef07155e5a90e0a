// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kmatch/matching"
	"github.com/katalvlaran/kmatch/matrix"
)

type benchOpts struct {
	count    int
	rows     int
	cols     int
	maxValue int
	seed     int64
	workers  int
}

func newBenchCmd() *cobra.Command {
	opts := benchOpts{
		count:    100,
		rows:     32,
		cols:     32,
		maxValue: 100,
		seed:     1,
	}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve many random tables concurrently and report throughput",
		Long: `Bench generates --count random tables (seeds --seed, --seed+1, ...) and
solves them on a bounded worker pool. --workers 0 uses GOMAXPROCS.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.count, "count", opts.count, "number of tables")
	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "rows per table")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "columns per table")
	cmd.Flags().IntVar(&opts.maxValue, "max-value", opts.maxValue, "upper bound of random values (inclusive)")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "seed of the first table")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "concurrent solves (0 = GOMAXPROCS)")

	return cmd
}

func runBench(cmd *cobra.Command, opts benchOpts) error {
	logger := loggerFromContext(cmd.Context())
	if opts.count <= 0 {
		return fmt.Errorf("--count must be > 0, got %d", opts.count)
	}

	ws := make([]matrix.Matrix, opts.count)
	for i := range ws {
		m, err := randomTable(opts.rows, opts.cols, opts.maxValue, opts.seed+int64(i))
		if err != nil {
			return err
		}
		ws[i] = m
	}
	logger.Debug("tables ready", "count", opts.count, "rows", opts.rows, "cols", opts.cols)

	prog := newProgress(logger)
	results, err := matching.MaxWeightAll(cmd.Context(), ws, opts.workers)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	elapsed := prog.done("batch solved", "count", len(results), "workers", opts.workers)

	var total float64
	var matched int
	for _, r := range results {
		total += r.Total
		matched += r.Matched()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tables: %d (%dx%d)\n", len(results), opts.rows, opts.cols)
	fmt.Fprintf(out, "matched pairs: %d\n", matched)
	fmt.Fprintf(out, "total weight: %g\n", total)
	fmt.Fprintf(out, "time: %.6fs (%.1f tables/s)\n", elapsed.Seconds(), float64(len(results))/elapsed.Seconds())

	return nil
}
