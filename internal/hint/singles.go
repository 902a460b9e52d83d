package hint

import (
	"context"
	"fmt"

	"github.com/nguyenvandai202/sodoku-solver/internal/domain"
	"github.com/nguyenvandai202/sodoku-solver/internal/grid"
)

// Singles implements a Hinter for naked and hidden singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single, then falls back to the first hidden
// single, if the max tier allows singles at all.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}

	cand := candidateSets(b)

	for c := grid.Cell(0); c < grid.NumCells; c++ {
		if b.Values[c.Row()][c.Col()] != 0 {
			continue
		}
		if cand[c].Count() == 1 {
			v := cand[c].Sole()
			return domain.Hint{
				Message:  fmt.Sprintf("Single: only %d fits at %v", v, c),
				Cells:    []domain.CellCoord{{Row: c.Row(), Col: c.Col()}},
				Digit:    v,
				Strategy: domain.StrategySingles,
			}, true, nil
		}
	}

	for _, unit := range grid.UnitList {
		for v := uint8(1); v <= 9; v++ {
			spots := 0
			var last grid.Cell
			for _, c := range unit {
				if b.Values[c.Row()][c.Col()] == v {
					spots = 0 // already placed in this unit
					break
				}
				if b.Values[c.Row()][c.Col()] == 0 && cand[c].Has(v) {
					spots++
					last = c
				}
			}
			if spots == 1 {
				return domain.Hint{
					Message:  fmt.Sprintf("Hidden single: %d can only go at %v in its unit", v, last),
					Cells:    []domain.CellCoord{{Row: last.Row(), Col: last.Col()}},
					Digit:    v,
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

// candidateSets derives, for every blank cell, the digits not yet placed in
// any of its 20 peers.
func candidateSets(b *domain.Board) [grid.NumCells]grid.DigitSet {
	var cand [grid.NumCells]grid.DigitSet
	for c := grid.Cell(0); c < grid.NumCells; c++ {
		if b.Values[c.Row()][c.Col()] != 0 {
			cand[c] = grid.Only(b.Values[c.Row()][c.Col()])
			continue
		}
		s := grid.All
		for _, p := range grid.Peers[c] {
			if v := b.Values[p.Row()][p.Col()]; v != 0 {
				s = s.Without(v)
			}
		}
		cand[c] = s
	}
	return cand
}
