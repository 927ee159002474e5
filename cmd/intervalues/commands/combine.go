package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/intervalues/pkg/interval"
	"github.com/Sumatoshi-tech/intervalues/pkg/numeric"
)

// ErrInvalidSpanLiteral is returned for arguments not of the form
// lb:ub or lb:ub:weight.
var ErrInvalidSpanLiteral = errors.New("invalid span literal")

// Span literal layout.
const (
	literalPartsBare     = 2
	literalPartsWeighted = 3
)

// combineOptions holds the combine command flags.
type combineOptions struct {
	coverage bool
	counter  bool
	set      bool
	nocolor  bool
}

// NewCombineCommand creates the combine command.
func NewCombineCommand() *cobra.Command {
	opts := &combineOptions{}

	cmd := &cobra.Command{
		Use:   "combine lb:ub[:weight] [lb:ub[:weight]...]",
		Short: "Combine interval literals into a disjoint collection",
		Long: `Combine parses weighted interval literals, merges the overlaps, and
prints the resulting disjoint spans. Bare literals carry weight 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCombine(args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.coverage, "coverage", false, "print merged coverage instead of weighted spans")
	cmd.Flags().BoolVar(&opts.counter, "counter", false, "project weights to whole counts")
	cmd.Flags().BoolVar(&opts.set, "set", false, "print the positive-weight set view")
	cmd.Flags().BoolVar(&opts.nocolor, "no-color", false, "disable colored output")

	return cmd
}

// parseSpan parses one lb:ub[:weight] literal.
func parseSpan(alg interval.Algebra[float64, float64], literal string) (interval.Span[float64, float64], error) {
	var zero interval.Span[float64, float64]

	parts := strings.Split(literal, ":")
	if len(parts) != literalPartsBare && len(parts) != literalPartsWeighted {
		return zero, fmt.Errorf("%w: %q", ErrInvalidSpanLiteral, literal)
	}

	values := make([]float64, len(parts))

	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return zero, fmt.Errorf("%w: %q: %w", ErrInvalidSpanLiteral, literal, err)
		}

		values[i] = v
	}

	weight := 1.0
	if len(values) == literalPartsWeighted {
		weight = values[2]
	}

	return alg.NewSpan(values[0], values[1], weight), nil
}

// runCombine executes the combine command.
func runCombine(args []string, opts *combineOptions) error {
	if opts.nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	alg := interval.Uniform[float64](numeric.Float[float64]{})

	spans := make([]interval.Span[float64, float64], 0, len(args))

	for _, arg := range args {
		s, err := parseSpan(alg, arg)
		if err != nil {
			return err
		}

		spans = append(spans, s)
	}

	slog.Debug("combining spans", "count", len(spans))

	if opts.coverage {
		ranges, err := interval.CombineCoverage(alg, spans)
		if err != nil {
			return fmt.Errorf("combine coverage: %w", err)
		}

		color.New(color.FgGreen).Fprintf(os.Stdout, "coverage (%d ranges):\n", len(ranges))

		for _, r := range ranges {
			fmt.Fprintf(os.Stdout, "  %s\n", r)
		}

		return nil
	}

	combined, err := interval.Combine(alg, spans)
	if err != nil {
		return fmt.Errorf("combine: %w", err)
	}

	switch {
	case opts.counter:
		counter, counterErr := combined.CounterView()
		if counterErr != nil {
			return fmt.Errorf("counter view: %w", counterErr)
		}

		printSpans("counter", counter.Spans())
	case opts.set:
		ranges := combined.SetView()

		color.New(color.FgGreen).Fprintf(os.Stdout, "set (%d ranges):\n", len(ranges))

		for _, r := range ranges {
			fmt.Fprintf(os.Stdout, "  %s\n", r)
		}
	default:
		printSpans("combined", combined.Spans())
	}

	return nil
}

// printSpans prints a labeled span listing.
func printSpans(label string, spans []interval.Span[float64, float64]) {
	color.New(color.FgGreen).Fprintf(os.Stdout, "%s (%d spans):\n", label, len(spans))

	for _, s := range spans {
		fmt.Fprintf(os.Stdout, "  %s\n", s)
	}
}
