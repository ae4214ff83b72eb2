// Package layouts loads fixed ship layouts from YAML files.
// This package depends on core but core does not depend on layouts.
package layouts

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

//go:embed defaults/classic.yaml
var defaultLayoutYAML []byte

// YAMLLayout represents the YAML structure for a layout file.
type YAMLLayout struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Size  YAMLSize   `yaml:"size"`
	Ships []YAMLShip `yaml:"ships"`
}

// YAMLSize represents board dimensions.
type YAMLSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// YAMLShip lists one ship's cells as [row, col] pairs.
type YAMLShip struct {
	Ship  string   `yaml:"ship"`
	Cells [][2]int `yaml:"cells"`
}

// Layout is a parsed layout file.
type Layout struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Ships    core.Layout
	FilePath string
}

// ParseYAML parses a YAML layout.
// Unknown ship names are rejected here; geometry is checked by Validate.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	layout := Layout{
		ID:    yl.ID,
		Name:  yl.Name,
		Rows:  yl.Size.Rows,
		Cols:  yl.Size.Cols,
		Ships: make(core.Layout, 0, len(yl.Ships)),
	}

	for i, ys := range yl.Ships {
		id, ok := core.ParseShipID(ys.Ship)
		if !ok {
			return Layout{}, ValidationError{
				Code:    CodeUnknownShip,
				Message: fmt.Sprintf("ship #%d: unknown ship %q", i+1, ys.Ship),
			}
		}

		cells := make([]core.Coord, len(ys.Cells))
		for j, rc := range ys.Cells {
			cells[j] = core.C(rc[0], rc[1])
		}
		layout.Ships = append(layout.Ships, core.LayoutShip{Ship: id, Cells: cells})
	}

	return layout, nil
}

// Default returns the embedded reference layout.
func Default() Layout {
	layout, err := ParseYAML(defaultLayoutYAML)
	if err != nil {
		// Fallback to hardcoded if embed fails
		return Layout{
			ID:    "classic",
			Name:  "Classic",
			Rows:  10,
			Cols:  10,
			Ships: core.DefaultFixedLayout(),
		}
	}
	return layout
}
