package layouts

import (
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

// Validation error codes.
const (
	CodeUnknownShip   = "UNKNOWN_SHIP"
	CodeMissingShip   = "MISSING_SHIP"
	CodeDuplicateShip = "DUPLICATE_SHIP"
	CodeWrongLength   = "WRONG_LENGTH"
	CodeNotStraight   = "NOT_STRAIGHT"
	CodeOutOfBounds   = "OUT_OF_BOUNDS"
	CodeOverlap       = "OVERLAP"
	CodeBadSize       = "BAD_SIZE"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a layout against a fleet before it is handed to fixed
// placement. Checks, in order:
//   - board size is positive
//   - every fleet ship appears exactly once and nothing else does
//   - each ship has the declared length and is a straight contiguous run
//   - all cells are in bounds and no two ships share a cell
func Validate(l Layout, ships []core.ShipDefinition) error {
	if l.Rows <= 0 || l.Cols <= 0 {
		return ValidationError{
			Code:    CodeBadSize,
			Message: fmt.Sprintf("board size %dx%d must be positive", l.Rows, l.Cols),
		}
	}

	lengths := make(map[core.ShipID]int, len(ships))
	for _, s := range ships {
		lengths[s.ID] = s.Length
	}

	seen := make(map[core.ShipID]bool, len(l.Ships))
	for _, entry := range l.Ships {
		want, ok := lengths[entry.Ship]
		if !ok {
			return ValidationError{
				Code:    CodeUnknownShip,
				Message: fmt.Sprintf("%s is not part of the fleet", entry.Ship),
			}
		}
		if seen[entry.Ship] {
			return ValidationError{
				Code:    CodeDuplicateShip,
				Message: fmt.Sprintf("%s listed more than once", entry.Ship),
			}
		}
		seen[entry.Ship] = true

		if len(entry.Cells) != want {
			return ValidationError{
				Code:    CodeWrongLength,
				Message: fmt.Sprintf("%s has %d cells, want %d", entry.Ship, len(entry.Cells), want),
			}
		}
		if !straightRun(entry.Cells) {
			return ValidationError{
				Code:    CodeNotStraight,
				Message: fmt.Sprintf("%s cells %v are not a contiguous line", entry.Ship, entry.Cells),
			}
		}
	}

	for _, s := range ships {
		if !seen[s.ID] {
			return ValidationError{
				Code:    CodeMissingShip,
				Message: fmt.Sprintf("%s has no cells in the layout", s.ID),
			}
		}
	}

	// Bounds and overlap come from fixed placement itself.
	g := core.BuildEmptyGrid(l.Rows, l.Cols)
	if err := core.PlaceFixed(g, l.Ships); err != nil {
		code := CodeOverlap
		if _, ok := err.(*core.OutOfBoundsError); ok {
			code = CodeOutOfBounds
		}
		return ValidationError{Code: code, Message: err.Error()}
	}

	return nil
}

// straightRun reports whether cells, in the order given, step one cell at a
// time along a single row or column. Either direction is accepted.
func straightRun(cells []core.Coord) bool {
	if len(cells) <= 1 {
		return true
	}

	dr := cells[1].Row - cells[0].Row
	dc := cells[1].Col - cells[0].Col
	if abs(dr)+abs(dc) != 1 {
		return false
	}

	for i := 1; i < len(cells); i++ {
		if cells[i].Row-cells[i-1].Row != dr || cells[i].Col-cells[i-1].Col != dc {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
