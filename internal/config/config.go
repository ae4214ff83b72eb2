// Package config provides YAML-based game configuration loading for the
// Battleship front end.
package config

// BattleshipConfig contains all configuration for the Battleship game.
type BattleshipConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Ships     []ShipConfig    `yaml:"ships"`
	Placement PlacementConfig `yaml:"placement"`
	Game      GameConfig      `yaml:"game"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// ShipConfig defines one ship of the fleet.
type ShipConfig struct {
	ID     string `yaml:"id"`   // e.g. "aircraft_carrier", "destroyer"
	Name   string `yaml:"name"` // Display name; defaults to the canonical name
	Length int    `yaml:"length"`
}

// PlacementConfig defines how ships are placed.
type PlacementConfig struct {
	Mode        string `yaml:"mode"`         // "random" or "fixed"
	MaxAttempts int    `yaml:"max_attempts"` // Per-ship retry bound in random mode
	LayoutFile  string `yaml:"layout_file"`  // Fixed layout YAML; empty = built-in
}

// GameConfig defines gameplay parameters.
type GameConfig struct {
	GenerationRetries int  `yaml:"generation_retries"` // Whole-board retries before giving up
	Reveal            bool `yaml:"reveal"`             // Show ship positions from the start
}
