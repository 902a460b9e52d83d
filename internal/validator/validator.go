package validator

import (
	"context"

	"github.com/nguyenvandai202/sodoku-solver/internal/domain"
	"github.com/nguyenvandai202/sodoku-solver/internal/grid"
)

// FastValidator flags cells that repeat a digit within any row, column or
// box. Blanks are ignored; an empty board is valid.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for _, unit := range grid.UnitList {
		var seen grid.DigitSet
		for _, c := range unit {
			val := b.Values[c.Row()][c.Col()]
			if val == 0 {
				continue
			}
			if seen.Has(val) {
				conf = append(conf, domain.CellCoord{Row: c.Row(), Col: c.Col()})
				continue
			}
			seen |= grid.Only(val)
		}
	}
	return len(conf) == 0, conf, nil
}
