// Package config provides YAML-based arena configuration: world geometry,
// physics constants, combat rules, spawn odds and per-variant ranges.
// Every tunable number of the simulation is a named field here rather than a
// literal at a call site.
package config

// ArenaConfig contains all configuration for the arena simulation.
// Positions and sizes are in world units (pixels of the default 800x600
// screen); speeds are world units per tick.
type ArenaConfig struct {
	Screen      ScreenConfig      `yaml:"screen"`
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Projectile  ProjectileConfig  `yaml:"projectile"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Rules       RulesConfig       `yaml:"rules"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Drift       VariantConfig     `yaml:"drift"`
	Descent     VariantConfig     `yaml:"descent"`
}

// ScreenConfig is the size of the viewport the camera shows.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WorldConfig describes the scrollable play area.
type WorldConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Gravity int `yaml:"gravity"`
	FloorY  int `yaml:"floor_y"` // Line the player's feet rest on
}

// PlayerConfig defines the player tank.
type PlayerConfig struct {
	SpawnX        int `yaml:"spawn_x"`
	SpawnY        int `yaml:"spawn_y"`
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	Speed         int `yaml:"speed"`
	JumpImpulse   int `yaml:"jump_impulse"` // Negative = upward
	MaxHealth     int `yaml:"max_health"`
	Lives         int `yaml:"lives"`
	ShootCooldown int `yaml:"shoot_cooldown"` // Ticks between shots, 0 = none
}

// EnemyConfig defines enemy tank dimensions.
type EnemyConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ProjectileConfig defines bullets. Speed is a magnitude; the direction
// sign is owned by the side that fires.
type ProjectileConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
}

// CollectibleConfig defines health pickups.
type CollectibleConfig struct {
	Size int `yaml:"size"`
}

// RulesConfig holds combat and scoring constants.
type RulesConfig struct {
	ProjectileDamage int `yaml:"projectile_damage"`
	ContactDamage    int `yaml:"contact_damage"` // Applied every tick of overlap
	HealAmount       int `yaml:"heal_amount"`
	ScorePerEnemy    int `yaml:"score_per_enemy"`
	LevelThreshold   int `yaml:"level_threshold"` // Level up when score >= threshold * level
}

// SpawnConfig holds the per-frame spawn odds, expressed as "1 in N".
type SpawnConfig struct {
	EnemyChance       int `yaml:"enemy_chance"`
	CollectibleChance int `yaml:"collectible_chance"`
	LevelSpeedBonus   int `yaml:"level_speed_bonus"` // Added to enemy speed per level
}

// VariantConfig holds the ranges that differ between the drift and descent
// enemy behaviours. All ranges are inclusive.
type VariantConfig struct {
	EnemyX       Range `yaml:"enemy_x"`
	EnemyY       Range `yaml:"enemy_y"`
	EnemySpeed   Range `yaml:"enemy_speed"`
	FirstShot    Range `yaml:"first_shot"` // Initial shoot delay (descent only)
	Refire       Range `yaml:"refire"`     // Delay after each shot (descent only)
	CollectibleY Range `yaml:"collectible_y"`
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Span returns the number of integers in the range.
func (r Range) Span() int {
	return r.Max - r.Min + 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "" which
// means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
