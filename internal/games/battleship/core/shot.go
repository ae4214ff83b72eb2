package core

// ShotResult is the outcome of firing at a cell.
type ShotResult uint8

const (
	ShotMiss   ShotResult = iota
	ShotHit               // Hit a ship that still has intact cells
	ShotSunk              // Hit the last intact cell of a ship
	ShotRepeat            // Cell was already hit or missed; nothing changed
)

// String returns the string representation of a shot result.
func (r ShotResult) String() string {
	switch r {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	case ShotRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Fire marks the cell at c as hit or missed.
// Firing at a cell that was already resolved is a no-op reported as
// ShotRepeat. Occupied and Ship are never modified.
func (g *Grid) Fire(c Coord) (ShotResult, error) {
	if !g.InBounds(c) {
		return ShotRepeat, &OutOfBoundsError{Coord: c, Rows: g.Rows, Cols: g.Cols}
	}

	cell := &g.Cells[g.index(c)]
	if cell.Revealed() {
		return ShotRepeat, nil
	}

	if !cell.Occupied {
		cell.IsMissed = true
		return ShotMiss, nil
	}

	cell.IsHit = true
	if g.IsSunk(cell.Ship) {
		return ShotSunk, nil
	}
	return ShotHit, nil
}
