package config

import (
	_ "embed"
)

//go:embed defaults/battleship.yaml
var defaultBattleshipYAML []byte

// DefaultBattleshipConfig returns the default Battleship configuration.
func DefaultBattleshipConfig() BattleshipConfig {
	return BattleshipConfig{
		Board: BoardConfig{
			Rows: 10,
			Cols: 10,
		},
		Ships: []ShipConfig{
			{ID: "aircraft_carrier", Name: "Aircraft Carrier", Length: 5},
			{ID: "battleship", Name: "Battleship", Length: 4},
			{ID: "cruiser", Name: "Cruiser", Length: 3},
			{ID: "submarine", Name: "Submarine", Length: 3},
			{ID: "destroyer", Name: "Destroyer", Length: 2},
		},
		Placement: PlacementConfig{
			Mode:        "random",
			MaxAttempts: 1000,
		},
		Game: GameConfig{
			GenerationRetries: 3,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultBattleshipYAML
}

// applyDefaults fills zero values left by a partial config file.
func applyDefaults(cfg *BattleshipConfig) {
	def := DefaultBattleshipConfig()

	if cfg.Board.Rows == 0 {
		cfg.Board.Rows = def.Board.Rows
	}
	if cfg.Board.Cols == 0 {
		cfg.Board.Cols = def.Board.Cols
	}
	if len(cfg.Ships) == 0 {
		cfg.Ships = def.Ships
	}
	if cfg.Placement.Mode == "" {
		cfg.Placement.Mode = def.Placement.Mode
	}
	if cfg.Placement.MaxAttempts == 0 {
		cfg.Placement.MaxAttempts = def.Placement.MaxAttempts
	}
	if cfg.Game.GenerationRetries == 0 {
		cfg.Game.GenerationRetries = def.Game.GenerationRetries
	}
}
