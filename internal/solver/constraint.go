package solver

import (
	"context"
	"errors"
	"time"

	"github.com/nguyenvandai202/sodoku-solver/internal/domain"
	"github.com/nguyenvandai202/sodoku-solver/internal/grid"
	"github.com/nguyenvandai202/sodoku-solver/internal/ports"
)

// ErrNoSolution reports that neither propagation nor search could complete
// the board. It covers both contradictory clues and exhausted search.
var ErrNoSolution = errors.New("no solution")

// ConstraintSolver combines constraint propagation with depth-first search.
// Propagation enforces two rules until a fixed point: a cell reduced to a
// single candidate clears that digit from its 20 peers (naked single), and
// a unit with exactly one spot left for a digit forces it there (hidden
// single). When propagation leaves ambiguity, the search branches on the
// most-constrained cell, trying digits in ascending order.
type ConstraintSolver struct{}

func NewConstraintSolver() *ConstraintSolver { return &ConstraintSolver{} }

// searchState owns the per-call counters. Every Solve/Unique builds a fresh
// one, so calls never share mutable state.
type searchState struct {
	ctx         context.Context
	assignments int
	backtracks  int
}

func (st *searchState) stats(start time.Time) ports.Stats {
	return ports.Stats{
		Nodes:       st.assignments,
		Assignments: st.assignments,
		Backtracks:  st.backtracks,
		Duration:    time.Since(start),
	}
}

// assign commits digit d to cell c, expressed as eliminating every other
// candidate of c. Reports false on contradiction.
func (st *searchState) assign(b *candidates, c grid.Cell, d uint8) bool {
	st.assignments++
	for other := uint8(1); other <= 9; other++ {
		if other != d && b.cells[c].Has(other) {
			if !st.eliminate(b, c, other) {
				return false
			}
		}
	}
	return true
}

// eliminate removes digit d from cell c and chases the consequences until
// nothing more can be deduced from this removal.
func (st *searchState) eliminate(b *candidates, c grid.Cell, d uint8) bool {
	if !b.cells[c].Has(d) {
		return true // already eliminated
	}
	b.cells[c] = b.cells[c].Without(d)

	switch rest := b.cells[c]; rest.Count() {
	case 0:
		return false // no candidate left for c
	case 1:
		// naked single: the last candidate of c cannot appear in any peer
		sole := rest.Sole()
		for _, p := range grid.Peers[c] {
			if !st.eliminate(b, p, sole) {
				return false
			}
		}
	}

	// hidden single: in each of c's units, d must still fit somewhere;
	// if only one spot admits it, the assignment is forced
	for _, unit := range grid.Units[c] {
		spots := 0
		var last grid.Cell
		for _, uc := range unit {
			if b.cells[uc].Has(d) {
				spots++
				last = uc
			}
		}
		switch {
		case spots == 0:
			return false
		case spots == 1 && b.cells[last].Count() > 1:
			if !st.assign(b, last, d) {
				return false
			}
		}
	}
	return true
}

// seed assigns every clue of the input board, failing on the first
// contradiction (e.g. the same digit twice in one unit).
func (st *searchState) seed(b *candidates, in *domain.Board) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := in.Values[r][c]; v != 0 {
				if !st.assign(b, grid.At(r, c), v) {
					return false
				}
			}
		}
	}
	return true
}

// pick returns the first unsolved cell with the fewest candidates, or
// done=true when every cell is down to one.
func pick(b *candidates) (best grid.Cell, done bool) {
	bestN := 10
	done = true
	for c := grid.Cell(0); c < grid.NumCells; c++ {
		n := b.cells[c].Count()
		if n > 1 {
			done = false
			if n < bestN {
				best, bestN = c, n
				if n == 2 {
					// nothing beats a binary branch
					return best, false
				}
			}
		}
	}
	return best, done
}

// search runs depth-first over the picked cell's candidates. Each guess is
// assigned into an independent copy; the first completed board wins. A
// backtrack is counted once per guess that did not survive, whether the
// assignment itself contradicted or the subtree below it did.
func (st *searchState) search(b candidates) (candidates, bool) {
	cell, done := pick(&b)
	if done {
		return b, true
	}
	for d := uint8(1); d <= 9; d++ {
		if !b.cells[cell].Has(d) {
			continue
		}
		if st.ctx != nil && st.ctx.Err() != nil {
			return candidates{}, false
		}
		trial := b
		if st.assign(&trial, cell, d) {
			if sol, ok := st.search(trial); ok {
				return sol, true
			}
		}
		st.backtracks++
	}
	return candidates{}, false
}

// count explores like search but keeps going past the first solution,
// stopping once limit solutions have been seen.
func (st *searchState) count(b candidates, limit int) int {
	cell, done := pick(&b)
	if done {
		return 1
	}
	total := 0
	for d := uint8(1); d <= 9; d++ {
		if !b.cells[cell].Has(d) {
			continue
		}
		if st.ctx != nil && st.ctx.Err() != nil {
			break
		}
		trial := b
		if st.assign(&trial, cell, d) {
			total += st.count(trial, limit-total)
			if total >= limit {
				break
			}
		}
	}
	return total
}

func (s *ConstraintSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	st := &searchState{ctx: ctx}
	cb := newCandidates()
	if !st.seed(&cb, b) {
		return nil, st.stats(start), ErrNoSolution
	}
	sol, ok := st.search(cb)
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st.stats(start), err
		}
		return nil, st.stats(start), ErrNoSolution
	}
	return sol.board(b.Fixed), st.stats(start), nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *ConstraintSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	st := &searchState{ctx: ctx}
	cb := newCandidates()
	if !st.seed(&cb, b) {
		return false, st.stats(start), nil
	}
	n := st.count(cb, 2)
	if err := ctx.Err(); err != nil {
		return false, st.stats(start), err
	}
	return n == 1, st.stats(start), nil
}
