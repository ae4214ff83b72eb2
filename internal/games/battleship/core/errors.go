package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when rows or cols is not positive.
	ErrInvalidDimensions = errors.New("board dimensions must be positive")

	// ErrInvalidShip is returned for ship definitions that can never be placed.
	ErrInvalidShip = errors.New("invalid ship definition")

	// ErrUnknownMode is returned for a placement mode other than fixed or random.
	ErrUnknownMode = errors.New("unknown placement mode")
)

// OutOfBoundsError reports a coordinate outside the grid.
type OutOfBoundsError struct {
	Ship  ShipID // ShipNone when the coordinate did not come from a layout
	Coord Coord
	Rows  int
	Cols  int
}

func (e *OutOfBoundsError) Error() string {
	if e.Ship == ShipNone {
		return fmt.Sprintf("coordinate %s is outside the %dx%d grid", e.Coord, e.Rows, e.Cols)
	}
	return fmt.Sprintf("%s: coordinate %s is outside the %dx%d grid", e.Ship, e.Coord, e.Rows, e.Cols)
}

// OverlapError reports a fixed placement landing on an occupied cell.
type OverlapError struct {
	Ship     ShipID
	Coord    Coord
	Occupant ShipID
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s: position %s already occupied by %s", e.Ship, e.Coord, e.Occupant)
}

// PlacementFailure reports that random placement gave up on a ship.
// The whole generation fails with it; no partial board is returned.
type PlacementFailure struct {
	Ship     ShipID
	Attempts int
}

func (e *PlacementFailure) Error() string {
	return fmt.Sprintf("could not place %s after %d attempts", e.Ship, e.Attempts)
}
