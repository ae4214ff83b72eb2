package core

// Grid is the game board.
// Cells are stored in row-major order: index = row*Cols + col.
type Grid struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// BuildEmptyGrid allocates a rows x cols grid with no ships and no shots.
// Non-positive dimensions produce a grid without cells.
func BuildEmptyGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Cells[r*cols+c] = Cell{Row: r, Col: c}
		}
	}
	return g
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Get returns the cell at the given coordinate.
// Returns a zero cell carrying the coordinate if out of bounds.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return Cell{Row: c.Row, Col: c.Col}
	}
	return g.Cells[g.index(c)]
}

// occupy assigns a cell to a ship. Callers check bounds and occupancy first.
func (g *Grid) occupy(c Coord, ship ShipID) {
	cell := &g.Cells[g.index(c)]
	cell.Occupied = true
	cell.Ship = ship
}

// fits reports whether every coordinate is inside the grid and unoccupied.
func (g *Grid) fits(coords []Coord) bool {
	for _, c := range coords {
		if !g.InBounds(c) || g.Cells[g.index(c)].Occupied {
			return false
		}
	}
	return true
}

// OccupiedCount returns the number of cells assigned to a ship.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Occupied {
			count++
		}
	}
	return count
}

// ShipCells returns the coordinates of a ship in row-major order.
func (g *Grid) ShipCells(ship ShipID) []Coord {
	coords := make([]Coord, 0)
	for _, cell := range g.Cells {
		if cell.Occupied && cell.Ship == ship {
			coords = append(coords, C(cell.Row, cell.Col))
		}
	}
	return coords
}

// Ships returns the distinct ships present on the grid in ShipID order.
func (g *Grid) Ships() []ShipID {
	seen := make(map[ShipID]bool)
	for _, cell := range g.Cells {
		if cell.Occupied {
			seen[cell.Ship] = true
		}
	}
	ships := make([]ShipID, 0, len(seen))
	for _, id := range AllShipIDs() {
		if seen[id] {
			ships = append(ships, id)
		}
	}
	return ships
}

// IsSunk reports whether every cell of the ship has been hit.
// A ship that is not on the grid is never sunk.
func (g *Grid) IsSunk(ship ShipID) bool {
	found := false
	for _, cell := range g.Cells {
		if cell.Occupied && cell.Ship == ship {
			if !cell.IsHit {
				return false
			}
			found = true
		}
	}
	return found
}

// AllSunk reports whether every occupied cell has been hit.
func (g *Grid) AllSunk() bool {
	for _, cell := range g.Cells {
		if cell.Occupied && !cell.IsHit {
			return false
		}
	}
	return true
}

// HitCount returns the number of cells marked as hit.
func (g *Grid) HitCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.IsHit {
			count++
		}
	}
	return count
}

// ShotCount returns the number of cells that have been shot at.
func (g *Grid) ShotCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Revealed() {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
