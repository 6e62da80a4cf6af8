package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the hardcoded arena configuration. It mirrors
// defaults/arena.yaml and is used when the embedded file cannot be parsed.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Screen: ScreenConfig{Width: 800, Height: 600},
		World: WorldConfig{
			Width:   1600,
			Height:  600,
			Gravity: 1,
			FloorY:  540,
		},
		Player: PlayerConfig{
			SpawnX:      100,
			SpawnY:      500,
			Width:       80,
			Height:      40,
			Speed:       5,
			JumpImpulse: -15,
			MaxHealth:   100,
			Lives:       3,
		},
		Enemy:       EnemyConfig{Width: 80, Height: 40},
		Projectile:  ProjectileConfig{Width: 10, Height: 5, Speed: 10},
		Collectible: CollectibleConfig{Size: 20},
		Rules: RulesConfig{
			ProjectileDamage: 10,
			ContactDamage:    1,
			HealAmount:       10,
			ScorePerEnemy:    10,
			LevelThreshold:   100,
		},
		Spawn: SpawnConfig{
			EnemyChance:       60,
			CollectibleChance: 300,
			LevelSpeedBonus:   1,
		},
		Drift: VariantConfig{
			EnemyX:       Range{800, 1600},
			EnemyY:       Range{100, 450},
			EnemySpeed:   Range{2, 5},
			CollectibleY: Range{400, 550},
		},
		Descent: VariantConfig{
			EnemyX:       Range{100, 700},
			EnemyY:       Range{-100, -40},
			EnemySpeed:   Range{1, 3},
			FirstShot:    Range{80, 180},
			Refire:       Range{30, 120},
			CollectibleY: Range{400, 550},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
