package config

import (
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/layouts"
)

// ShipDefinitions converts the configured fleet to core definitions,
// keeping the configured order.
func (c BattleshipConfig) ShipDefinitions() ([]core.ShipDefinition, error) {
	if len(c.Ships) == 0 {
		return core.DefaultShips(), nil
	}

	ships := make([]core.ShipDefinition, 0, len(c.Ships))
	seen := make(map[core.ShipID]bool, len(c.Ships))
	for i, sc := range c.Ships {
		id, ok := core.ParseShipID(sc.ID)
		if !ok {
			return nil, fmt.Errorf("ships[%d]: %w: unknown ship %q", i, core.ErrInvalidShip, sc.ID)
		}
		if seen[id] {
			return nil, fmt.Errorf("ships[%d]: %w: %s listed twice", i, core.ErrInvalidShip, id)
		}
		seen[id] = true

		def := core.ShipDefinition{ID: id, Name: sc.Name, Length: sc.Length}
		if def.Name == "" {
			def.Name = id.String()
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("ships[%d]: %w", i, err)
		}
		ships = append(ships, def)
	}
	return ships, nil
}

// Layout returns the fixed layout named by placement.layout_file, or the
// built-in classic layout when none is set.
func (c BattleshipConfig) Layout() (layouts.Layout, error) {
	if c.Placement.LayoutFile == "" {
		return layouts.Default(), nil
	}
	l, err := layouts.LoadFile(c.Placement.LayoutFile)
	if err != nil {
		return layouts.Layout{}, fmt.Errorf("failed to load layout: %w", err)
	}
	return l, nil
}

// CheckLayout sizes l from the board when the layout declares no size, then
// validates it against ships.
func (c BattleshipConfig) CheckLayout(l layouts.Layout, ships []core.ShipDefinition) (layouts.Layout, error) {
	if l.Rows <= 0 && l.Cols <= 0 {
		l.Rows, l.Cols = c.Board.Rows, c.Board.Cols
	}
	if err := layouts.Validate(l, ships); err != nil {
		return l, fmt.Errorf("layout %s: %w", l.ID, err)
	}
	return l, nil
}

// PlacementMode parses placement.mode.
func (c BattleshipConfig) PlacementMode() (core.Mode, error) {
	return core.ParseMode(c.Placement.Mode)
}

// GenParams builds generation parameters for the configured mode.
// In fixed mode the layout is validated against the fleet and the board takes
// the layout's size when the layout declares one.
func (c BattleshipConfig) GenParams(rng core.Rand) (core.GenParams, error) {
	mode, err := c.PlacementMode()
	if err != nil {
		return core.GenParams{}, err
	}
	return c.GenParamsFor(mode, rng)
}

// GenParamsFor is GenParams with the placement mode overridden.
func (c BattleshipConfig) GenParamsFor(mode core.Mode, rng core.Rand) (core.GenParams, error) {
	ships, err := c.ShipDefinitions()
	if err != nil {
		return core.GenParams{}, err
	}

	p := core.GenParams{
		Rows:        c.Board.Rows,
		Cols:        c.Board.Cols,
		Ships:       ships,
		Mode:        mode,
		MaxAttempts: c.Placement.MaxAttempts,
		Rand:        rng,
	}

	if mode == core.ModeFixed {
		l, err := c.Layout()
		if err != nil {
			return core.GenParams{}, err
		}
		l, err = c.CheckLayout(l, ships)
		if err != nil {
			return core.GenParams{}, err
		}
		p.Layout = l.Ships
		p.Rows, p.Cols = l.Rows, l.Cols
	}

	return p, nil
}
