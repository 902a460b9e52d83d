package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nguyenvandai202/sodoku-solver/internal/ports"
	"github.com/nguyenvandai202/sodoku-solver/internal/solver"
)

var logLevel string

func main() {
	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Sudoku service built on constraint propagation with backtracking fallback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			lvl, err := zerolog.ParseLevel(strings.ToLower(logLevel))
			if err != nil {
				lvl = zerolog.InfoLevel
			}
			zerolog.SetGlobalLevel(lvl)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	root.AddCommand(newServeCommand(), newSolveCommand())

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// pickSolver selects the Solver implementation by name; the constraint
// solver is the default.
func pickSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	default:
		return solver.NewConstraintSolver()
	}
}
