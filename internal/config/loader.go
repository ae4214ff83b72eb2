package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvRows        = "BATTLESHIP_ROWS"
	EnvCols        = "BATTLESHIP_COLS"
	EnvMode        = "BATTLESHIP_MODE"
	EnvMaxAttempts = "BATTLESHIP_MAX_ATTEMPTS"
)

// LoadBattleship loads Battleship configuration.
// Search order: customPath -> ~/.arcade/configs/battleship.yaml -> ./configs/battleship.yaml -> embedded default
func LoadBattleship(customPath string) (BattleshipConfig, error) {
	var cfg BattleshipConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		applyDefaults(&cfg)
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("battleship.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				applyDefaults(&cfg)
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/battleship.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			applyDefaults(&cfg)
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = BattleshipConfig{}
	if err := yaml.Unmarshal(defaultBattleshipYAML, &cfg); err != nil {
		return DefaultBattleshipConfig(), nil // Fallback to hardcoded if embed fails
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyEnv overrides config values from the environment.
// envFile is loaded first with godotenv (empty means ".env"); a missing file
// is not an error and variables already set in the process win.
func ApplyEnv(cfg *BattleshipConfig, envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	if err := envInt(EnvRows, &cfg.Board.Rows); err != nil {
		return err
	}
	if err := envInt(EnvCols, &cfg.Board.Cols); err != nil {
		return err
	}
	if err := envInt(EnvMaxAttempts, &cfg.Placement.MaxAttempts); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvMode); ok && v != "" {
		cfg.Placement.Mode = v
	}
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	*dst = n
	return nil
}
