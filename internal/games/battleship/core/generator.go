package core

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// MaxPlacementAttempts is the default per-ship retry bound for random placement.
const MaxPlacementAttempts = 1000

// Mode selects how ships are placed.
type Mode string

const (
	ModeFixed  Mode = "fixed"
	ModeRandom Mode = "random"
)

// ParseMode parses a mode name (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeFixed:
		return ModeFixed, nil
	case ModeRandom:
		return ModeRandom, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Rand is the randomness source used by random placement.
// *math/rand.Rand satisfies it. A Rand must not be shared between
// concurrent generations unless access is serialized.
type Rand interface {
	Intn(n int) int
}

// GenParams configures board generation.
type GenParams struct {
	Rows int
	Cols int

	Ships []ShipDefinition // Placed in slice order in random mode
	Mode  Mode
	// Layout is used in fixed mode only.
	Layout Layout

	// MaxAttempts bounds random placement per ship (0 = MaxPlacementAttempts).
	MaxAttempts int
	// Rand drives random placement. Nil means a fresh time-seeded source per call.
	Rand Rand
}

// DefaultGenParams returns parameters for the standard 10x10 random board.
func DefaultGenParams() GenParams {
	return GenParams{
		Rows:        10,
		Cols:        10,
		Ships:       DefaultShips(),
		Mode:        ModeRandom,
		Layout:      DefaultFixedLayout(),
		MaxAttempts: MaxPlacementAttempts,
	}
}

// ShipAttempts records how many tries random placement spent on a ship.
type ShipAttempts struct {
	Ship     ShipID
	Attempts int
	Placed   bool
}

// Report describes a generation run.
// Placements are filled in random mode; fixed layouts need not be straight
// runs and are described by the layout itself.
type Report struct {
	Mode       Mode
	Placements []Placement
	Attempts   []ShipAttempts
}

// TotalAttempts returns the attempts spent across all ships.
func (r Report) TotalAttempts() int {
	total := 0
	for _, a := range r.Attempts {
		total += a.Attempts
	}
	return total
}

// GenerateBoard builds a grid and places every ship on it.
// On any error the returned grid is nil; a partially populated board is
// never handed out.
func GenerateBoard(p GenParams) (*Grid, error) {
	g, _, err := GenerateBoardWithReport(p)
	return g, err
}

// GenerateBoardWithReport is GenerateBoard plus a description of the run.
// The report is returned even on failure so callers can see which ship
// exhausted its attempts.
func GenerateBoardWithReport(p GenParams) (*Grid, Report, error) {
	report := Report{Mode: p.Mode}

	if p.Rows <= 0 || p.Cols <= 0 {
		return nil, report, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, p.Rows, p.Cols)
	}

	g := BuildEmptyGrid(p.Rows, p.Cols)

	switch p.Mode {
	case ModeFixed:
		if err := PlaceFixed(g, p.Layout); err != nil {
			return nil, report, err
		}

	case ModeRandom:
		rng := p.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		attempts := p.MaxAttempts
		if attempts <= 0 {
			attempts = MaxPlacementAttempts
		}

		placed, err := PlaceRandom(g, p.Ships, attempts, rng)
		report.Placements = placed.Placements
		report.Attempts = placed.Attempts
		if err != nil {
			return nil, report, err
		}

	default:
		return nil, report, fmt.Errorf("%w: %q", ErrUnknownMode, p.Mode)
	}

	return g, report, nil
}

// PlaceFixed marks each layout coordinate as occupied by its ship, in order.
// It fails on an entry without a valid ship, or on the first coordinate
// outside the grid or already occupied, in which case g is left untouched.
func PlaceFixed(g *Grid, layout Layout) error {
	work := g.Clone()

	for i, entry := range layout {
		if !entry.Ship.Valid() {
			return fmt.Errorf("%w: layout entry %d has no ship", ErrInvalidShip, i)
		}
		for _, c := range entry.Cells {
			if !work.InBounds(c) {
				return &OutOfBoundsError{Ship: entry.Ship, Coord: c, Rows: work.Rows, Cols: work.Cols}
			}
			if existing := work.Get(c); existing.Occupied {
				return &OverlapError{Ship: entry.Ship, Coord: c, Occupant: existing.Ship}
			}
			work.occupy(c, entry.Ship)
		}
	}

	copy(g.Cells, work.Cells)
	return nil
}

// PlaceRandom places ships one after another by rejection sampling.
// Each ship gets up to maxAttempts tries; the first ship to exhaust them
// aborts the run with a *PlacementFailure and g is left untouched.
func PlaceRandom(g *Grid, ships []ShipDefinition, maxAttempts int, rng Rand) (Report, error) {
	report := Report{Mode: ModeRandom}

	for _, ship := range ships {
		if err := ship.Validate(); err != nil {
			return report, err
		}
	}

	work := g.Clone()

	for _, ship := range ships {
		var (
			placement Placement
			ok        bool
			attempts  int
		)
		for attempts < maxAttempts && !ok {
			placement, ok = tryPlace(work, ship, rng)
			attempts++
		}

		report.Attempts = append(report.Attempts, ShipAttempts{
			Ship:     ship.ID,
			Attempts: attempts,
			Placed:   ok,
		})
		if !ok {
			return report, &PlacementFailure{Ship: ship.ID, Attempts: attempts}
		}

		for _, c := range placement.Coords() {
			work.occupy(c, ship.ID)
		}
		report.Placements = append(report.Placements, placement)
	}

	copy(g.Cells, work.Cells)
	return report, nil
}

// tryPlace makes a single random placement attempt.
// Orientation is drawn first, then an origin that keeps the ship in bounds.
// A ship longer than the chosen axis fails the attempt without drawing an origin.
func tryPlace(g *Grid, ship ShipDefinition, rng Rand) (Placement, bool) {
	orientation := Horizontal
	if rng.Intn(2) == 1 {
		orientation = Vertical
	}

	maxRow, maxCol := g.Rows-1, g.Cols-1
	if orientation == Horizontal {
		maxCol = g.Cols - ship.Length
	} else {
		maxRow = g.Rows - ship.Length
	}
	if maxRow < 0 || maxCol < 0 {
		return Placement{}, false
	}

	p := Placement{
		Ship:        ship.ID,
		Origin:      C(rng.Intn(maxRow+1), rng.Intn(maxCol+1)),
		Orientation: orientation,
		Length:      ship.Length,
	}
	if !g.fits(p.Coords()) {
		return Placement{}, false
	}
	return p, true
}
