package solver

import (
	"context"
	"time"

	"github.com/nguyenvandai202/sodoku-solver/internal/domain"
	"github.com/nguyenvandai202/sodoku-solver/internal/grid"
	"github.com/nguyenvandai202/sodoku-solver/internal/ports"
)

// BacktrackingSolver is the straightforward row-major recursive solver. It
// does no propagation and serves as the baseline the constraint solver's
// counters are compared against.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func allowed(g *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func nextEmpty(g *[9][9]uint8) (grid.Cell, bool) {
	for c := grid.Cell(0); c < grid.NumCells; c++ {
		if g[c.Row()][c.Col()] == 0 {
			return c, true
		}
	}
	return 0, false
}

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	g := b.Values
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		cell, open := nextEmpty(&g)
		if !open {
			return true
		}
		r, c := cell.Row(), cell.Col()
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if allowed(&g, r, c, v) {
				g[r][c] = v
				if dfs() {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrNoSolution
	}
	out := &domain.Board{Values: g, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	g := b.Values
	nodes := 0
	found := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || found >= 2 {
			return true // stop early
		}
		cell, open := nextEmpty(&g)
		if !open {
			found++
			return found >= 2
		}
		r, c := cell.Row(), cell.Col()
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if allowed(&g, r, c, v) {
				g[r][c] = v
				if dfs() {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return found == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
