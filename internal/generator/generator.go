package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/nguyenvandai202/sodoku-solver/internal/domain"
	"github.com/nguyenvandai202/sodoku-solver/internal/grid"
	"github.com/nguyenvandai202/sodoku-solver/internal/ports"
)

// UniqueGenerator produces puzzles with a single solution: it fills a full
// grid from a seeded RNG, then removes clues one by one, keeping only the
// removals that leave the solution unique (checked through the injected
// Solver).
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a puzzle with a unique solution from seed at the target
// difficulty. Carving stops at the given-count target or after ~900ms.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full [9][9]uint8
	if !fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{}, context.Canceled
	}

	puz := full
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}

	order := rng.Perm(grid.NumCells)
	target := targetGivens(diff)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0

	for _, pos := range order {
		if time.Now().After(deadline) {
			break
		}
		work := domain.Board{Values: puz}
		if work.Givens() <= target {
			break
		}
		cell := grid.Cell(pos)
		r, c := cell.Row(), cell.Col()
		if puz[r][c] == 0 {
			continue
		}
		old := puz[r][c]
		puz[r][c] = 0
		fixed[r][c] = false
		unique, st, _ := g.Solver.Unique(ctx, &domain.Board{Values: puz})
		nodes += st.Nodes
		if !unique {
			puz[r][c] = old
			fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puz, Fixed: fixed},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom completes an empty grid into a full valid solution, trying
// digits in a per-cell random order.
func fillRandom(ctx context.Context, rng *rand.Rand, g *[9][9]uint8) bool {
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(grid.Cell) bool
	dfs = func(c grid.Cell) bool {
		if ctx.Err() != nil {
			return false
		}
		if c == grid.NumCells {
			return true
		}
		r, col := c.Row(), c.Col()
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if placeable(g, r, col, v) {
				g[r][col] = v
				if dfs(c + 1) {
					return true
				}
				g[r][col] = 0
			}
		}
		return false
	}
	return dfs(0)
}

func placeable(g *[9][9]uint8, r, c int, v uint8) bool {
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
