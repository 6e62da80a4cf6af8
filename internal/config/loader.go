package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const arenaFile = "arena.yaml"

// LoadArena loads the arena configuration.
// Search order: customPath -> ~/.tankarena/configs/arena.yaml -> ./configs/arena.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. An explicit customPath that cannot be read or parsed is
// an error; the implicit locations are skipped silently.
func LoadArena(customPath string) (ArenaConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ArenaConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return ArenaConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(arenaFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", arenaFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg ArenaConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func decode(data []byte) (ArenaConfig, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ArenaConfig{}, err
	}
	return cfg, nil
}

func embeddedDefault() ArenaConfig {
	var cfg ArenaConfig
	if err := yaml.Unmarshal(defaultArenaYAML, &cfg); err != nil {
		return DefaultArenaConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tankarena", "configs", filename)
}

// ApplyArenaPreset modifies the config based on a difficulty preset.
// Presets only touch spawn odds and enemy pace; lives and health stay as
// configured so a restart always restores the same round.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.EnemyChance = 90
		cfg.Spawn.CollectibleChance = 200
		cfg.Rules.ContactDamage = 1
	case DifficultyHard:
		cfg.Spawn.EnemyChance = 40
		cfg.Spawn.CollectibleChance = 450
		cfg.Spawn.LevelSpeedBonus = 2
		cfg.Rules.ProjectileDamage = 15
	}
}
