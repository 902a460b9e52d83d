package grid

import "testing"

func TestTopologyInvariants(t *testing.T) {
	if len(UnitList) != 27 {
		t.Fatalf("want 27 units, got %d", len(UnitList))
	}
	// every unit has 9 distinct members; the union covers all 81 cells
	seen := [NumCells]int{}
	for u, unit := range UnitList {
		mem := map[Cell]bool{}
		for _, c := range unit {
			if mem[c] {
				t.Fatalf("unit %d contains %v twice", u, c)
			}
			mem[c] = true
			seen[c]++
		}
	}
	for c := Cell(0); c < NumCells; c++ {
		if seen[c] != 3 {
			t.Fatalf("cell %v belongs to %d units, want 3", c, seen[c])
		}
	}
}

func TestPeers(t *testing.T) {
	for c := Cell(0); c < NumCells; c++ {
		if len(Peers[c]) != 20 {
			t.Fatalf("cell %v: want 20 peers, got %d", c, len(Peers[c]))
		}
		for _, p := range Peers[c] {
			if p == c {
				t.Fatalf("cell %v is its own peer", c)
			}
			if p.Row() != c.Row() && p.Col() != c.Col() && p.Box() != c.Box() {
				t.Fatalf("cell %v: %v shares no unit", c, p)
			}
		}
	}
}

func TestUnitsOfCell(t *testing.T) {
	// A1: row A, column 1, top-left box
	a1 := At(0, 0)
	wantRow := [9]Cell{At(0, 0), At(0, 1), At(0, 2), At(0, 3), At(0, 4), At(0, 5), At(0, 6), At(0, 7), At(0, 8)}
	wantCol := [9]Cell{At(0, 0), At(1, 0), At(2, 0), At(3, 0), At(4, 0), At(5, 0), At(6, 0), At(7, 0), At(8, 0)}
	wantBox := [9]Cell{At(0, 0), At(0, 1), At(0, 2), At(1, 0), At(1, 1), At(1, 2), At(2, 0), At(2, 1), At(2, 2)}
	if Units[a1][0] != wantRow {
		t.Errorf("A1 row unit = %v", Units[a1][0])
	}
	if Units[a1][1] != wantCol {
		t.Errorf("A1 column unit = %v", Units[a1][1])
	}
	if Units[a1][2] != wantBox {
		t.Errorf("A1 box unit = %v", Units[a1][2])
	}

	// F5 sits mid-board in the central box
	f5 := At(5, 4)
	if got := Units[f5][2][0]; got != At(3, 3) {
		t.Errorf("F5 box unit starts at %v, want D4", got)
	}
}

func TestCellLabels(t *testing.T) {
	cases := []struct {
		c    Cell
		want string
	}{
		{At(0, 0), "A1"},
		{At(5, 4), "F5"},
		{At(8, 8), "I9"},
	}
	for _, tc := range cases {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", int(tc.c), got, tc.want)
		}
	}
}

func TestDigitSet(t *testing.T) {
	if All.Count() != 9 {
		t.Fatalf("All.Count() = %d", All.Count())
	}
	s := All
	for d := uint8(1); d <= 8; d++ {
		s = s.Without(d)
	}
	if s.Count() != 1 || s.Sole() != 9 {
		t.Fatalf("expected sole 9, got count=%d sole=%d", s.Count(), s.Sole())
	}
	if Only(5).Has(4) || !Only(5).Has(5) {
		t.Fatal("Only(5) membership wrong")
	}
}
