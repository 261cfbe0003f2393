package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arrowgraph/fastbc"
	"github.com/arrowgraph/fastbc/bc"
	"github.com/arrowgraph/fastbc/graph"
	"github.com/arrowgraph/fastbc/louvain"
)

func newPartitioner(seeds []int64, precision float64) louvain.Partitioner {
	return louvain.New(louvain.WithSeeds(seeds...), louvain.WithPrecision(precision))
}

// exitCode classifies how main should terminate, matching spec §6.4:
// 0 success, -1 bad arguments / unreadable input, -2 output already
// exists.
type exitCode int

const (
	exitOK           exitCode = 0
	exitBadArgs      exitCode = -1
	exitOutputExists exitCode = -2
)

func newRootCommand() *cobra.Command {
	var (
		seeds     string
		instances int
		precision float64
		kFrac     float64
		exact     bool
		output    string
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:           "fastbc [input-file]",
		Short:         "Compute betweenness centrality on a directed weighted graph",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logLevel)
			if err != nil {
				return &cliError{code: exitBadArgs, err: err}
			}

			parsedSeeds, err := parseSeeds(seeds, instances)
			if err != nil {
				return &cliError{code: exitBadArgs, err: err}
			}

			if _, err := os.Stat(output); err == nil {
				return &cliError{code: exitOutputExists, err: fmt.Errorf("output %q already exists", output)}
			}

			in, err := os.Open(args[0])
			if err != nil {
				return &cliError{code: exitBadArgs, err: err}
			}
			defer in.Close()

			g, err := graph.ReadFrom(in)
			if err != nil {
				return &cliError{code: exitBadArgs, err: err}
			}

			opts := []bc.Option{
				bc.WithLogger(logger),
				bc.WithPartitioner(newPartitioner(parsedSeeds, precision)),
			}
			if exact {
				opts = append(opts, bc.WithExact())
			}
			if kFrac > 0 {
				opts = append(opts, bc.WithKFrac(kFrac))
			}

			result, err := bc.Compute(g, opts...)
			if err != nil {
				return &cliError{code: exitBadArgs, err: err}
			}

			out, err := os.Create(output)
			if err != nil {
				return &cliError{code: exitBadArgs, err: err}
			}
			defer out.Close()

			if err := bc.WriteBC(out, result); err != nil {
				return &cliError{code: exitBadArgs, err: err}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&seeds, "seeds", "s", "", "comma-separated Louvain seeds")
	cmd.Flags().IntVarP(&instances, "instances", "e", 4, "Louvain instance count, when --seeds is empty")
	cmd.Flags().Float64VarP(&precision, "precision", "p", 0.01, "Louvain modularity improvement precision")
	cmd.Flags().Float64VarP(&kFrac, "kfrac", "k", 0, "k-means++ pivot reduction fraction, (0,1)")
	cmd.Flags().BoolVar(&exact, "exact", false, "compute exact betweenness centrality, skipping clustering")
	cmd.Flags().StringVarP(&output, "output", "o", "bc.out", "output file path")
	cmd.Flags().StringVarP(&logLevel, "log-level", "d", "info", "log level: debug, info, warn, error")

	return cmd
}

// cliError carries the exit code a failure should produce.
type cliError struct {
	code exitCode
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func parseSeeds(raw string, instances int) ([]int64, error) {
	if raw == "" {
		if instances <= 0 {
			return nil, fastbc.NewError(fastbc.KindInvalidInput, fmt.Errorf("--instances must be positive, got %d", instances))
		}
		seeds := make([]int64, instances)
		for i := range seeds {
			seeds[i] = int64(i + 1)
		}
		return seeds, nil
	}

	parts := strings.Split(raw, ",")
	seeds := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fastbc.NewError(fastbc.KindInvalidInput, fmt.Errorf("bad seed %q: %w", p, err))
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fastbc.NewError(fastbc.KindInvalidInput, fmt.Errorf("unknown log level %q", level))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
