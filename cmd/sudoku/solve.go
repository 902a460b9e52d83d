package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nguyenvandai202/sodoku-solver/internal/domain"
)

func newSolveCommand() *cobra.Command {
	var solverKind string
	cmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve one puzzle given as 81 digits (0 or . = blank); reads stdin if omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in string
			if len(args) == 1 {
				in = args[0]
			} else {
				sc := bufio.NewScanner(os.Stdin)
				var sb strings.Builder
				for sc.Scan() {
					sb.WriteString(sc.Text())
				}
				if err := sc.Err(); err != nil {
					return err
				}
				in = sb.String()
			}

			b, err := parseBoard(in)
			if err != nil {
				return err
			}

			s := pickSolver(solverKind)
			out, st, err := s.Solve(cmd.Context(), b)
			if err != nil {
				log.Info().
					Int("nodes", st.Nodes).
					Int("backtracks", st.Backtracks).
					Dur("dur", st.Duration).
					Msg("gave up")
				return err
			}

			w := cmd.OutOrStdout()
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					fmt.Fprintf(w, "%d", out.Values[r][c])
				}
				fmt.Fprintln(w)
			}
			log.Info().
				Int("nodes", st.Nodes).
				Int("assignments", st.Assignments).
				Int("backtracks", st.Backtracks).
				Dur("dur", st.Duration).
				Msg("solved")
			return nil
		},
	}
	cmd.Flags().StringVar(&solverKind, "solver", "constraint", "solver to use: constraint|backtrack")
	return cmd
}

// parseBoard accepts 81 cell characters, digit or blank marker, ignoring
// whitespace between them.
func parseBoard(s string) (*domain.Board, error) {
	var b domain.Board
	i := 0
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			continue
		case r == '.' || r == '0':
			// blank
		case r >= '1' && r <= '9':
			if i < 81 {
				b.Values[i/9][i%9] = uint8(r - '0')
				b.Fixed[i/9][i%9] = true
			}
		default:
			return nil, fmt.Errorf("unexpected character %q in puzzle", r)
		}
		i++
	}
	if i != 81 {
		return nil, fmt.Errorf("puzzle has %d cells, want 81", i)
	}
	return &b, nil
}
