package solver

import (
	"github.com/nguyenvandai202/sodoku-solver/internal/domain"
	"github.com/nguyenvandai202/sodoku-solver/internal/grid"
)

// candidates tracks the remaining possible digits for every cell. It is a
// plain array so assignment copies the whole board: branching the search on
// a copy is what keeps sibling branches from seeing each other's mutations.
type candidates struct {
	cells [grid.NumCells]grid.DigitSet
}

// newCandidates returns a board where every cell may still hold any digit.
func newCandidates() candidates {
	var b candidates
	for i := range b.cells {
		b.cells[i] = grid.All
	}
	return b
}

// board converts a fully solved candidate board back to the domain shape,
// carrying over the caller's fixed mask.
func (b *candidates) board(fixed [9][9]bool) *domain.Board {
	out := &domain.Board{Fixed: fixed}
	for c := grid.Cell(0); c < grid.NumCells; c++ {
		out.Values[c.Row()][c.Col()] = b.cells[c].Sole()
	}
	return out
}
