package core

import "fmt"

// Coord addresses a cell by row and column, both zero-based.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Label returns the board notation for the coordinate, e.g. "C7".
// Columns past Z fall back to the numeric form.
func (c Coord) Label() string {
	if c.Col < 0 || c.Col >= 26 {
		return c.String()
	}
	return fmt.Sprintf("%c%d", 'A'+c.Col, c.Row+1)
}
