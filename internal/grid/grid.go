package grid

import "fmt"

// The classic 9x9 layout. Cells are numbered row-major so that iterating
// Cell(0)..Cell(80) walks A1..A9, B1..B9, ... I9.
const (
	Size     = 9
	NumCells = Size * Size
	NumUnits = 3 * Size
)

// Cell identifies one of the 81 board positions.
type Cell int

// At returns the cell at row r, column c (both 0-based).
func At(r, c int) Cell { return Cell(r*Size + c) }

func (c Cell) Row() int { return int(c) / Size }
func (c Cell) Col() int { return int(c) % Size }

// Box returns the 3x3 box index, 0..8, in reading order.
func (c Cell) Box() int { return (c.Row()/3)*3 + c.Col()/3 }

// String renders the conventional label: rows A..I, columns 1..9.
func (c Cell) String() string {
	return fmt.Sprintf("%c%d", 'A'+c.Row(), c.Col()+1)
}

var (
	// UnitList holds all 27 units: rows 0..8, columns 9..17, boxes 18..26.
	UnitList [NumUnits][Size]Cell

	// Units maps each cell to its three units, always [row, column, box].
	Units [NumCells][3][Size]Cell

	// Peers maps each cell to the 20 cells sharing a unit with it,
	// in ascending cell order.
	Peers [NumCells][20]Cell
)

func init() {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			UnitList[r][c] = At(r, c)
			UnitList[Size+c][r] = At(r, c)
		}
	}
	for b := 0; b < Size; b++ {
		br, bc := (b/3)*3, (b%3)*3
		for i := 0; i < Size; i++ {
			UnitList[2*Size+b][i] = At(br+i/3, bc+i%3)
		}
	}

	for c := Cell(0); c < NumCells; c++ {
		Units[c][0] = UnitList[c.Row()]
		Units[c][1] = UnitList[Size+c.Col()]
		Units[c][2] = UnitList[2*Size+c.Box()]

		n := 0
		for p := Cell(0); p < NumCells; p++ {
			if p != c && (p.Row() == c.Row() || p.Col() == c.Col() || p.Box() == c.Box()) {
				Peers[c][n] = p
				n++
			}
		}
	}
}
