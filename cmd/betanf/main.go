package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/betanf/betanf/pkg/church"
	"github.com/betanf/betanf/pkg/lambda"
)

// Config holds the application configuration.
type Config struct {
	Debug     bool
	Expr      string
	Verbosity string
	MaxSteps  int
	Stats     bool
}

const (
	verbQuiet = iota
	verbSummary
	verbVerbose
)

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "betanf [flags] [name]",
		Short: "Beta-normal-form evaluator for lambda calculus terms",
		Long: `betanf reduces untyped lambda calculus terms to beta-normal form by
repeated rewriting, stopping when one more step leaves the canonical
rendering unchanged. Terms come from the built-in combinator catalogue
(by name) or from an expression, and catalogue names inside expressions
are expanded in place.`,
		Example: `  # Normalize a catalogue term
  betanf eval FACT --verbosity summary

  # Normalize an expression; upper-case catalogue names are expanded
  betanf eval -e 'FACT (SUCC (SUCC ONE))'

  # Start the interactive REPL
  betanf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg.Debug)
			return runREPL(cfg)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")

	evalCmd := &cobra.Command{
		Use:   "eval [flags] [name]",
		Short: "Reduce a term to beta-normal form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg.Debug)
			term, err := selectTerm(cfg, args)
			if err != nil {
				return err
			}
			return runEval(term, cfg)
		},
	}
	evalCmd.Flags().StringVarP(&cfg.Expr, "expr", "e", "", "Expression to evaluate instead of a catalogue name")
	evalCmd.Flags().StringVar(&cfg.Verbosity, "verbosity", "quiet", "Output detail: quiet, summary or verbose")
	evalCmd.Flags().IntVar(&cfg.MaxSteps, "max-steps", 0, "Stop after this many reduction steps (0 = unbounded)")
	evalCmd.Flags().BoolVar(&cfg.Stats, "stats", false, "Print an operation breakdown to stderr")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the combinator catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range church.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(evalCmd, listCmd)

	ctx := context.Background()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func selectTerm(cfg Config, args []string) (lambda.Term, error) {
	if cfg.Expr != "" {
		term, err := lambda.Parse(cfg.Expr)
		if err != nil {
			return nil, errors.Wrap(err, "parsing expression")
		}
		return church.Expand(term), nil
	}
	if len(args) == 0 {
		return nil, errors.New("a catalogue name or -e expression is required")
	}
	term, ok := church.Lookup(args[0])
	if !ok {
		return nil, errors.Errorf("unknown catalogue term %q (see betanf list)", args[0])
	}
	return term, nil
}

func parseVerbosity(s string) (int, error) {
	switch s {
	case "quiet":
		return verbQuiet, nil
	case "summary":
		return verbSummary, nil
	case "verbose":
		return verbVerbose, nil
	default:
		return 0, errors.Errorf("unknown verbosity %q", s)
	}
}

func runEval(start lambda.Term, cfg Config) error {
	verbosity, err := parseVerbosity(cfg.Verbosity)
	if err != nil {
		return err
	}

	// The summary log collects every form as reduction proceeds. Quiet
	// prints only the start and final forms; summary prints the full log
	// after the run; verbose streams each form live and then repeats the
	// log as a recap.
	var logger strings.Builder

	if verbosity != verbSummary {
		fmt.Printf("\nMAIN := %s\n", start.Render())
	}
	if verbosity >= verbSummary {
		fmt.Fprintf(&logger, "\nMAIN := %s\n", start.Render())
	}

	onStep := func(n int, t lambda.Term) {
		if verbosity >= verbSummary {
			if verbosity >= verbVerbose {
				fmt.Printf("\n= %s\n", t.Render())
			}
			fmt.Fprintf(&logger, "\n= %s\n", t.Render())
		}
	}

	began := time.Now()
	result, stats := lambda.Normalize(start,
		lambda.WithMaxSteps(cfg.MaxSteps),
		lambda.WithStepFunc(onStep),
	)
	elapsed := time.Since(began)

	if verbosity != verbSummary {
		fmt.Printf("\n= %s\n", result.Render())
	}
	if verbosity >= verbSummary {
		if verbosity >= verbVerbose {
			fmt.Println("\n\n\nSummary:")
		}
		fmt.Print(logger.String())
	}

	slog.Debug("normalization finished",
		"steps", stats.Steps,
		"ops", stats.TotalOps(),
		"elapsed", elapsed,
	)

	if cfg.Stats {
		printStats(stats, elapsed)
	}
	return nil
}

func printStats(stats lambda.Stats, elapsed time.Duration) {
	seconds := elapsed.Seconds()

	fmt.Fprintf(os.Stderr, "\nStats:\n")
	fmt.Fprintf(os.Stderr, "Time: %v\n", elapsed)
	fmt.Fprintf(os.Stderr, "Driver Steps: %d\n", stats.Steps)
	fmt.Fprintf(os.Stderr, "Total Operations: %d", stats.TotalOps())
	if seconds > 0 {
		fmt.Fprintf(os.Stderr, " (%.2f ops/sec)", float64(stats.TotalOps())/seconds)
	}
	fmt.Fprintf(os.Stderr, "\n")

	fmt.Fprintf(os.Stderr, "\nBreakdown:\n")
	fmt.Fprintf(os.Stderr, "  Reduce:     %8d", stats.Reduces)
	if seconds > 0 {
		fmt.Fprintf(os.Stderr, " (%.2f ops/sec)", float64(stats.Reduces)/seconds)
	}
	fmt.Fprintf(os.Stderr, "\n")

	fmt.Fprintf(os.Stderr, "  Apply:      %8d", stats.Applies)
	if seconds > 0 {
		fmt.Fprintf(os.Stderr, " (%.2f ops/sec)", float64(stats.Applies)/seconds)
	}
	fmt.Fprintf(os.Stderr, "\n")

	fmt.Fprintf(os.Stderr, "  Substitute: %8d", stats.Substitutions)
	if seconds > 0 {
		fmt.Fprintf(os.Stderr, " (%.2f ops/sec)", float64(stats.Substitutions)/seconds)
	}
	fmt.Fprintf(os.Stderr, "\n")
}
