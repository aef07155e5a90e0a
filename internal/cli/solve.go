// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kmatch/matching"
	"github.com/katalvlaran/kmatch/matrix"
)

// exampleTable is solved when neither --random nor --csv is given.
var exampleTable = [][]float64{
	{10, 2},
	{6, 2},
}

var (
	errConflictingSources = errors.New("--csv and --random are mutually exclusive")
	errBadShape           = errors.New("--rows and --cols must be > 0")
	errBadMaxValue        = errors.New("--max-value must be > 0")
)

type solveOpts struct {
	rows      int
	cols      int
	seed      int64
	random    bool
	maxValue  int
	csvPath   string
	minWeight float64
	epsilon   float64
	invert    bool
}

func newSolveCmd() *cobra.Command {
	opts := solveOpts{
		rows:     2,
		cols:     2,
		seed:     1,
		maxValue: 10,
		epsilon:  matching.DefaultEpsilon,
	}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one affinity table and print the assignment",
		Long: `Solve builds an affinity table, finds the assignment of rows to columns
with maximum total weight, and prints it as one row index per column.

The table is the built-in 2×2 example unless --random or --csv is given.`,
		Example: `  kmatch solve
  kmatch solve --random --rows 4 --cols 6 --seed 7
  kmatch solve --csv costs.csv --invert --min-weight 0.05`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "rows of the random table")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "columns of the random table")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "seed of the random table")
	cmd.Flags().BoolVar(&opts.random, "random", false, "solve a random integer table")
	cmd.Flags().IntVar(&opts.maxValue, "max-value", opts.maxValue, "upper bound of random values (inclusive)")
	cmd.Flags().StringVar(&opts.csvPath, "csv", "", "read the table from a CSV file (one row per line)")
	cmd.Flags().Float64Var(&opts.minWeight, "min-weight", 0, "report pairs lighter than this as unmatched")
	cmd.Flags().Float64Var(&opts.epsilon, "epsilon", opts.epsilon, "zero-gap tolerance of the solver")
	cmd.Flags().BoolVar(&opts.invert, "invert", false, "treat values as costs and solve on 1/value")

	return cmd
}

func runSolve(cmd *cobra.Command, opts solveOpts) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	if !(opts.minWeight >= 0) || math.IsInf(opts.minWeight, 0) {
		return fmt.Errorf("--min-weight must be finite and >= 0, got %g", opts.minWeight)
	}
	if !(opts.epsilon > 0) || math.IsInf(opts.epsilon, 0) {
		return fmt.Errorf("--epsilon must be finite and > 0, got %g", opts.epsilon)
	}

	w, err := buildTable(opts)
	if err != nil {
		return err
	}
	logger.Debug("table ready", "rows", w.Rows(), "cols", w.Cols(), "source", tableSource(opts))

	if opts.invert {
		if err = invert(w); err != nil {
			return err
		}
		logger.Debug("inverted costs into weights")
	}

	fmt.Fprintln(out, "weights:")
	fmt.Fprint(out, w)

	prog := newProgress(logger)
	res, err := matching.MaxWeight(w,
		matching.WithEpsilon(opts.epsilon),
		matching.WithMinWeight(opts.minWeight),
	)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	elapsed := prog.done("solved", "matched", res.Matched())

	printResult(out, res, elapsed.Seconds())

	return checkOneToOne(logger, res)
}

func tableSource(opts solveOpts) string {
	switch {
	case opts.csvPath != "":
		return opts.csvPath
	case opts.random:
		return "random"
	default:
		return "example"
	}
}

// buildTable returns the table selected by the source flags.
func buildTable(opts solveOpts) (*matrix.Dense, error) {
	switch {
	case opts.csvPath != "" && opts.random:
		return nil, errConflictingSources
	case opts.csvPath != "":
		f, err := os.Open(opts.csvPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return readCSV(f)
	case opts.random:
		return randomTable(opts.rows, opts.cols, opts.maxValue, opts.seed)
	default:
		return matrix.NewDenseFrom(exampleTable)
	}
}

// readCSV parses one table row per record. Lines starting with '#' are skipped.
func readCSV(r io.Reader) (*matrix.Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	cr.FieldsPerRecord = -1 // ragged rows are reported by NewDenseFrom
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, field := range rec {
			v, perr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if perr != nil {
				return nil, fmt.Errorf("csv: line %d field %d: %w", i+1, j+1, perr)
			}
			rows[i][j] = v
		}
	}

	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}

	return m, nil
}

// randomTable fills a rows×cols table with integers in [1, maxValue].
func randomTable(rows, cols, maxValue int, seed int64) (*matrix.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errBadShape
	}
	if maxValue <= 0 {
		return nil, errBadMaxValue
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	err = m.Apply(func(_, _ int, _ float64) float64 {
		return float64(1 + rng.Intn(maxValue))
	})

	return m, err
}

// invert replaces every value with its reciprocal, turning costs into
// affinities. Zero costs have no finite reciprocal and are rejected.
func invert(m *matrix.Dense) error {
	if err := m.Apply(func(_, _ int, v float64) float64 { return 1 / v }); err != nil {
		return fmt.Errorf("invert: zero cost has no finite weight: %w", err)
	}

	return nil
}

func printResult(out io.Writer, res *matching.Result, seconds float64) {
	fmt.Fprintf(out, "time: %.6fs\n", seconds)

	cells := make([]string, len(res.ColToRow))
	for j, r := range res.ColToRow {
		cells[j] = strconv.Itoa(r)
	}
	fmt.Fprintf(out, "assignment: [%s]\n", strings.Join(cells, ", "))

	for _, p := range res.Pairs() {
		fmt.Fprintf(out, "  row %d -> col %d  weight %g\n", p.Row, p.Col, p.Weight)
	}
	fmt.Fprintf(out, "total: %g\n", res.Total)
}

// checkOneToOne verifies via the result mask that no row or column is used
// twice, and logs rows and columns left without a partner.
func checkOneToOne(logger *log.Logger, res *matching.Result) error {
	mask, err := res.Mask()
	if err != nil {
		return err
	}

	var i, j, n int
	var v uint8
	for i = 0; i < mask.Rows(); i++ {
		n = 0
		for j = 0; j < mask.Cols(); j++ {
			if v, err = mask.At(i, j); err != nil {
				return err
			}
			n += int(v)
		}
		switch {
		case n > 1:
			return fmt.Errorf("row %d matched %d times", i, n)
		case n == 0:
			logger.Warn("row left unmatched", "row", i)
		}
	}
	for j = 0; j < mask.Cols(); j++ {
		n = 0
		for i = 0; i < mask.Rows(); i++ {
			if v, err = mask.At(i, j); err != nil {
				return err
			}
			n += int(v)
		}
		switch {
		case n > 1:
			return fmt.Errorf("column %d matched %d times", j, n)
		case n == 0:
			logger.Warn("column left unmatched", "col", j)
		}
	}

	return nil
}
