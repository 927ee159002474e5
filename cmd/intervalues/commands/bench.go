package commands

import (
	"fmt"
	"log/slog"
	"math/big"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/intervalues/pkg/config"
	"github.com/Sumatoshi-tech/intervalues/pkg/interval"
	"github.com/Sumatoshi-tech/intervalues/pkg/numeric"
	"github.com/Sumatoshi-tech/intervalues/pkg/plot"
	"github.com/Sumatoshi-tech/intervalues/pkg/stats"
)

// sweepParts is the layout of the --sweep flag value (from:to:step).
const sweepParts = 3

// benchOptions holds the bench command flags.
type benchOptions struct {
	configPath string
	count      int
	maxBound   int64
	maxWeight  int64
	seed       int64
	rounds     int
	backend    string
	sweep      string
	plotPath   string
}

// NewBenchCommand creates the bench command.
func NewBenchCommand() *cobra.Command {
	opts := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the combiner across numeric backends",
		Long: `Bench times the sweep-line combiner over random span batches and prints
a timing digest. A sweep benchmarks a series of batch sizes and can render
the curve as an HTML chart.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveBenchConfig(cmd, opts)
			if err != nil {
				return err
			}

			return runBench(cfg)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file path")
	cmd.Flags().IntVar(&opts.count, "count", 0, "spans per batch")
	cmd.Flags().Int64Var(&opts.maxBound, "max-bound", 0, "exclusive upper limit for random bounds")
	cmd.Flags().Int64Var(&opts.maxWeight, "max-weight", 0, "inclusive upper limit for random weights")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed")
	cmd.Flags().IntVar(&opts.rounds, "rounds", 0, "timing rounds per batch size")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "numeric backend: "+strings.Join(config.Backends, "|"))
	cmd.Flags().StringVar(&opts.sweep, "sweep", "", "sweep batch sizes as from:to:step")
	cmd.Flags().StringVar(&opts.plotPath, "plot", "", "write the sweep timing chart to this HTML file")

	return cmd
}

// resolveBenchConfig loads the config file and applies explicit flags over it.
func resolveBenchConfig(cmd *cobra.Command, opts *benchOptions) (config.BenchConfig, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return config.BenchConfig{}, err
	}

	bench := cfg.Bench

	if cmd.Flags().Changed("count") {
		bench.Count = opts.count
	}

	if cmd.Flags().Changed("max-bound") {
		bench.MaxBound = opts.maxBound
	}

	if cmd.Flags().Changed("max-weight") {
		bench.MaxWeight = opts.maxWeight
	}

	if cmd.Flags().Changed("seed") {
		bench.Seed = opts.seed
	}

	if cmd.Flags().Changed("rounds") {
		bench.Rounds = opts.rounds
	}

	if cmd.Flags().Changed("backend") {
		bench.Backend = opts.backend
	}

	if cmd.Flags().Changed("plot") {
		bench.Plot = opts.plotPath
	}

	if cmd.Flags().Changed("sweep") {
		sweep, sweepErr := parseSweep(opts.sweep)
		if sweepErr != nil {
			return config.BenchConfig{}, sweepErr
		}

		bench.Sweep = sweep
	}

	return bench, nil
}

// parseSweep parses a from:to:step flag value.
func parseSweep(value string) (config.SweepConfig, error) {
	parts := strings.Split(value, ":")
	if len(parts) != sweepParts {
		return config.SweepConfig{}, fmt.Errorf("%w: %q", config.ErrInvalidSweep, value)
	}

	numbers := make([]int, sweepParts)

	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return config.SweepConfig{}, fmt.Errorf("%w: %q: %w", config.ErrInvalidSweep, value, err)
		}

		numbers[i] = n
	}

	sweep := config.SweepConfig{From: numbers[0], To: numbers[1], Step: numbers[2]}
	if !sweep.Enabled() || sweep.Step <= 0 || sweep.From <= 0 || sweep.From > sweep.To {
		return config.SweepConfig{}, fmt.Errorf("%w: %q", config.ErrInvalidSweep, value)
	}

	return sweep, nil
}

// runner times one combine over a fresh random batch of n spans.
type runner func(n int, seed int64) (time.Duration, error)

// newRunner builds a runner bound to one algebra.
func newRunner[T, U any](alg interval.Algebra[T, U], cfg config.BenchConfig) runner {
	return func(n int, seed int64) (time.Duration, error) {
		rng := rand.New(rand.NewSource(seed))
		spans := randomSpans(alg, rng, n, cfg.MaxBound, cfg.MaxWeight)

		start := time.Now()

		_, err := interval.Combine(alg, spans)
		if err != nil {
			return 0, fmt.Errorf("combine: %w", err)
		}

		return time.Since(start), nil
	}
}

// randomSpans generates n random spans in the algebra's numeric domain.
func randomSpans[T, U any](alg interval.Algebra[T, U], rng *rand.Rand, n int, maxBound, maxWeight int64) []interval.Span[T, U] {
	bounds := alg.Bounds()
	weights := alg.Weights()

	spans := make([]interval.Span[T, U], 0, n)
	for i := 0; i < n; i++ {
		spans = append(spans, alg.NewSpan(
			bounds.FromInt64(rng.Int63n(maxBound)),
			bounds.FromInt64(rng.Int63n(maxBound)),
			weights.FromInt64(rng.Int63n(maxWeight)+1),
		))
	}

	return spans
}

// backendRunner selects the runner for the configured backend.
func backendRunner(cfg config.BenchConfig) (runner, error) {
	switch cfg.Backend {
	case "int":
		return newRunner(interval.Uniform[int64](numeric.Int[int64]{}), cfg), nil
	case "float":
		return newRunner(interval.Uniform[float64](numeric.Float[float64]{}), cfg), nil
	case "decimal":
		return newRunner(interval.Uniform[decimal.Decimal](numeric.Dec{}), cfg), nil
	case "fixed":
		return newRunner(interval.Uniform[numeric.Fixed](numeric.FixedPoint{}), cfg), nil
	case "rat":
		return newRunner(interval.Uniform[*big.Rat](numeric.BigRat{}), cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidBackend, cfg.Backend)
	}
}

// benchPoint is the digest of one batch size.
type benchPoint struct {
	spans   int
	summary stats.Summary
}

// runBench executes the bench command.
func runBench(cfg config.BenchConfig) error {
	run, err := backendRunner(cfg)
	if err != nil {
		return err
	}

	sizes := []int{cfg.Count}
	if cfg.Sweep.Enabled() {
		sizes = sizes[:0]
		for n := cfg.Sweep.From; n <= cfg.Sweep.To; n += cfg.Sweep.Step {
			sizes = append(sizes, n)
		}
	}

	slog.Debug("benchmark starting",
		"backend", cfg.Backend, "rounds", cfg.Rounds, "sizes", len(sizes))

	points := make([]benchPoint, 0, len(sizes))

	for _, n := range sizes {
		samples := make([]time.Duration, 0, cfg.Rounds)

		for round := 0; round < cfg.Rounds; round++ {
			elapsed, runErr := run(n, cfg.Seed+int64(round))
			if runErr != nil {
				return runErr
			}

			samples = append(samples, elapsed)
		}

		points = append(points, benchPoint{spans: n, summary: stats.Summarize(samples)})
	}

	printBenchTable(cfg, points)

	if cfg.Plot != "" {
		if plotErr := writeBenchPlot(cfg, points); plotErr != nil {
			return plotErr
		}

		slog.Info("plot written", "path", cfg.Plot)
	}

	return nil
}

// printBenchTable prints the timing digest as a table.
func printBenchTable(cfg config.BenchConfig, points []benchPoint) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"spans", "rounds", "mean", "median", "p95", "min", "max"})

	for _, p := range points {
		tbl.AppendRow(table.Row{
			humanize.Comma(int64(p.spans)),
			p.summary.Samples,
			p.summary.Mean.Round(time.Microsecond),
			p.summary.Median.Round(time.Microsecond),
			p.summary.P95.Round(time.Microsecond),
			p.summary.Min.Round(time.Microsecond),
			p.summary.Max.Round(time.Microsecond),
		})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("backend: %s", cfg.Backend)})
	tbl.Render()
}

// writeBenchPlot renders the sweep timing curves as an HTML chart.
func writeBenchPlot(cfg config.BenchConfig, points []benchPoint) error {
	labels := make([]string, len(points))
	mean := make([]float64, len(points))
	p95 := make([]float64, len(points))

	for i, p := range points {
		labels[i] = strconv.Itoa(p.spans)
		mean[i] = float64(p.summary.Mean.Microseconds())
		p95[i] = float64(p.summary.P95.Microseconds())
	}

	line := plot.BuildLineChart(
		fmt.Sprintf("combine timing (%s backend)", cfg.Backend),
		"µs/op",
		labels,
		[]plot.LineSeries{
			{Name: "mean", Values: mean},
			{Name: "p95", Values: p95},
		})

	return plot.WriteHTML(cfg.Plot, line)
}
