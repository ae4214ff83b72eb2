package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

// scriptedRand replays fixed values, reduced modulo n.
type scriptedRand struct {
	values []int
	pos    int
	calls  int
}

func (s *scriptedRand) Intn(n int) int {
	s.calls++
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

// checkFleet verifies the placement invariants for a generated grid.
func checkFleet(t *testing.T, g *core.Grid, ships []core.ShipDefinition) {
	t.Helper()

	if got, want := g.OccupiedCount(), core.TotalLength(ships); got != want {
		t.Errorf("occupied cells = %d, want %d", got, want)
	}

	occupied := make(map[core.Coord]core.ShipID)
	for _, cell := range g.Cells {
		if cell.Occupied != (cell.Ship != core.ShipNone) {
			t.Errorf("cell %v: occupied=%v but ship=%v", core.C(cell.Row, cell.Col), cell.Occupied, cell.Ship)
		}
		if cell.IsHit || cell.IsMissed {
			t.Errorf("cell %v: fresh board has shot markers", core.C(cell.Row, cell.Col))
		}
		if cell.Occupied {
			c := core.C(cell.Row, cell.Col)
			if prev, dup := occupied[c]; dup {
				t.Errorf("cell %v claimed by %v and %v", c, prev, cell.Ship)
			}
			occupied[c] = cell.Ship
		}
	}
	if len(occupied) != core.TotalLength(ships) {
		t.Errorf("distinct occupied coordinates = %d, want %d", len(occupied), core.TotalLength(ships))
	}

	for _, ship := range ships {
		cells := g.ShipCells(ship.ID)
		if len(cells) != ship.Length {
			t.Errorf("%v: %d cells, want %d", ship.ID, len(cells), ship.Length)
			continue
		}
		if !isStraightRun(cells) {
			t.Errorf("%v: cells %v are not a contiguous straight run", ship.ID, cells)
		}
	}
}

// isStraightRun expects cells in row-major order, as returned by ShipCells.
func isStraightRun(cells []core.Coord) bool {
	if len(cells) <= 1 {
		return true
	}
	sameRow, sameCol := true, true
	for i := 1; i < len(cells); i++ {
		if cells[i].Row != cells[0].Row || cells[i].Col != cells[0].Col+i {
			sameRow = false
		}
		if cells[i].Col != cells[0].Col || cells[i].Row != cells[0].Row+i {
			sameCol = false
		}
	}
	return sameRow || sameCol
}
