// Package core provides board generation and ship placement for Battleship.
// This package is UI-agnostic; randomness is injected through Rand.
package core

import (
	"fmt"
	"strings"
)

// ShipID identifies one of the standard vessels.
// The zero value ShipNone marks a cell without a ship.
type ShipID uint8

const (
	ShipNone ShipID = iota
	ShipCarrier
	ShipBattleship
	ShipCruiser
	ShipSubmarine
	ShipDestroyer
)

// AllShipIDs returns every valid ship id in declaration order.
func AllShipIDs() []ShipID {
	return []ShipID{ShipCarrier, ShipBattleship, ShipCruiser, ShipSubmarine, ShipDestroyer}
}

// String returns the canonical upper-case name of the ship.
func (s ShipID) String() string {
	switch s {
	case ShipCarrier:
		return "AIRCRAFT_CARRIER"
	case ShipBattleship:
		return "BATTLESHIP"
	case ShipCruiser:
		return "CRUISER"
	case ShipSubmarine:
		return "SUBMARINE"
	case ShipDestroyer:
		return "DESTROYER"
	case ShipNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// Initial returns the single-letter marker used in text renderings.
func (s ShipID) Initial() rune {
	switch s {
	case ShipCarrier:
		return 'A'
	case ShipBattleship:
		return 'B'
	case ShipCruiser:
		return 'C'
	case ShipSubmarine:
		return 'S'
	case ShipDestroyer:
		return 'D'
	default:
		return '?'
	}
}

// Valid reports whether s is one of the enumerated ships.
func (s ShipID) Valid() bool {
	return s >= ShipCarrier && s <= ShipDestroyer
}

// ParseShipID parses a ship name. Matching is case-insensitive and treats
// '-', '_' and spaces alike, so "aircraft-carrier" and "Aircraft Carrier"
// both resolve to ShipCarrier. "carrier" is accepted as an alias.
func ParseShipID(name string) (ShipID, bool) {
	norm := strings.ToUpper(strings.TrimSpace(name))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)

	switch norm {
	case "AIRCRAFT_CARRIER", "CARRIER":
		return ShipCarrier, true
	case "BATTLESHIP":
		return ShipBattleship, true
	case "CRUISER":
		return ShipCruiser, true
	case "SUBMARINE":
		return ShipSubmarine, true
	case "DESTROYER":
		return ShipDestroyer, true
	default:
		return ShipNone, false
	}
}

// ShipDefinition describes a vessel to place on the board.
type ShipDefinition struct {
	ID     ShipID
	Name   string // Display name, e.g. "Aircraft Carrier"
	Length int
}

// Validate checks that the definition can be placed at all.
func (d ShipDefinition) Validate() error {
	if !d.ID.Valid() {
		return fmt.Errorf("%w: unknown ship id %d", ErrInvalidShip, d.ID)
	}
	if d.Length <= 0 {
		return fmt.Errorf("%w: %s has length %d", ErrInvalidShip, d.ID, d.Length)
	}
	return nil
}

// DefaultShips returns the standard fleet in placement order.
func DefaultShips() []ShipDefinition {
	return []ShipDefinition{
		{ID: ShipCarrier, Name: "Aircraft Carrier", Length: 5},
		{ID: ShipBattleship, Name: "Battleship", Length: 4},
		{ID: ShipCruiser, Name: "Cruiser", Length: 3},
		{ID: ShipSubmarine, Name: "Submarine", Length: 3},
		{ID: ShipDestroyer, Name: "Destroyer", Length: 2},
	}
}

// TotalLength returns the number of cells a fleet occupies.
func TotalLength(ships []ShipDefinition) int {
	total := 0
	for _, s := range ships {
		total += s.Length
	}
	return total
}

// Orientation is the axis a ship is laid along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Cell is a single square of the board.
type Cell struct {
	Row      int
	Col      int
	Occupied bool
	IsHit    bool
	IsMissed bool
	Ship     ShipID // ShipNone unless Occupied
}

// Revealed reports whether the cell has been shot at.
func (c Cell) Revealed() bool {
	return c.IsHit || c.IsMissed
}

// Placement is a contiguous straight run of cells assigned to one ship.
type Placement struct {
	Ship        ShipID
	Origin      Coord
	Orientation Orientation
	Length      int
}

// Coords returns the cells covered by the placement, starting at Origin.
func (p Placement) Coords() []Coord {
	coords := make([]Coord, p.Length)
	for i := 0; i < p.Length; i++ {
		if p.Orientation == Horizontal {
			coords[i] = p.Origin.Add(0, i)
		} else {
			coords[i] = p.Origin.Add(i, 0)
		}
	}
	return coords
}

// LayoutShip lists the literal cells of one ship in a fixed layout.
type LayoutShip struct {
	Ship  ShipID
	Cells []Coord
}

// Layout is an ordered fixed placement of ships.
type Layout []LayoutShip

// DefaultFixedLayout returns the reference layout for a 10x10 board.
func DefaultFixedLayout() Layout {
	return Layout{
		{Ship: ShipCarrier, Cells: []Coord{C(2, 9), C(3, 9), C(4, 9), C(5, 9), C(6, 9)}},
		{Ship: ShipBattleship, Cells: []Coord{C(5, 2), C(5, 3), C(5, 4), C(5, 5)}},
		{Ship: ShipCruiser, Cells: []Coord{C(8, 1), C(8, 2), C(8, 3)}},
		{Ship: ShipSubmarine, Cells: []Coord{C(3, 0), C(3, 1), C(3, 2)}},
		{Ship: ShipDestroyer, Cells: []Coord{C(0, 0), C(1, 0)}},
	}
}
