package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid arena config")

// MaxHealthCap bounds player.max_health; health is a 0..100 gauge.
const MaxHealthCap = 100

// ValidationError describes the first field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks that the configuration describes a playable arena.
func (c ArenaConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return invalid("screen", "size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.World.Width < c.Screen.Width {
		return invalid("world.width", "must be at least screen width %d, got %d", c.Screen.Width, c.World.Width)
	}
	if c.World.Height < c.Screen.Height {
		return invalid("world.height", "must be at least screen height %d, got %d", c.Screen.Height, c.World.Height)
	}
	if c.World.Gravity < 0 {
		return invalid("world.gravity", "must not be negative")
	}
	if c.World.FloorY <= 0 || c.World.FloorY > c.World.Height {
		return invalid("world.floor_y", "must be within (0, %d], got %d", c.World.Height, c.World.FloorY)
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 {
		return invalid("player", "size must be positive")
	}
	if p.Speed < 0 {
		return invalid("player.speed", "must not be negative")
	}
	if p.JumpImpulse > 0 {
		return invalid("player.jump_impulse", "must be zero or negative (upward), got %d", p.JumpImpulse)
	}
	if p.MaxHealth <= 0 || p.MaxHealth > MaxHealthCap {
		return invalid("player.max_health", "must be in 1..%d, got %d", MaxHealthCap, p.MaxHealth)
	}
	if p.Lives < 1 {
		return invalid("player.lives", "must be at least 1")
	}
	if p.ShootCooldown < 0 {
		return invalid("player.shoot_cooldown", "must not be negative")
	}
	if p.SpawnX < 0 || p.SpawnX+p.Width > c.World.Width {
		return invalid("player.spawn_x", "player must start inside the world")
	}
	if p.SpawnY+p.Height > c.World.FloorY {
		return invalid("player.spawn_y", "player must start on or above the floor")
	}

	if c.Enemy.Width <= 0 || c.Enemy.Height <= 0 {
		return invalid("enemy", "size must be positive")
	}
	if c.Projectile.Width <= 0 || c.Projectile.Height <= 0 {
		return invalid("projectile", "size must be positive")
	}
	if c.Projectile.Speed <= 0 {
		return invalid("projectile.speed", "must be positive")
	}
	if c.Collectible.Size <= 0 || c.Collectible.Size > c.World.Width {
		return invalid("collectible.size", "must be within (0, %d]", c.World.Width)
	}

	r := c.Rules
	if r.ProjectileDamage < 0 || r.ContactDamage < 0 || r.HealAmount < 0 || r.ScorePerEnemy < 0 {
		return invalid("rules", "damage, heal and score values must not be negative")
	}
	if r.LevelThreshold <= 0 {
		return invalid("rules.level_threshold", "must be positive")
	}

	if c.Spawn.EnemyChance < 1 {
		return invalid("spawn.enemy_chance", "must be at least 1")
	}
	if c.Spawn.CollectibleChance < 1 {
		return invalid("spawn.collectible_chance", "must be at least 1")
	}
	if c.Spawn.LevelSpeedBonus < 0 {
		return invalid("spawn.level_speed_bonus", "must not be negative")
	}

	if err := c.Drift.validate("drift", false); err != nil {
		return err
	}
	return c.Descent.validate("descent", true)
}

type namedRange struct {
	field string
	r     Range
}

func (v VariantConfig) validate(name string, shoots bool) error {
	ranges := []namedRange{
		{"enemy_x", v.EnemyX},
		{"enemy_y", v.EnemyY},
		{"enemy_speed", v.EnemySpeed},
		{"collectible_y", v.CollectibleY},
	}
	if shoots {
		ranges = append(ranges, namedRange{"first_shot", v.FirstShot}, namedRange{"refire", v.Refire})
	}
	for _, nr := range ranges {
		if nr.r.Min > nr.r.Max {
			return invalid(name+"."+nr.field, "min %d exceeds max %d", nr.r.Min, nr.r.Max)
		}
	}
	if v.EnemySpeed.Min < 1 {
		return invalid(name+".enemy_speed", "min must be at least 1")
	}
	if shoots && v.Refire.Min < 1 {
		return invalid(name+".refire", "min must be at least 1")
	}
	return nil
}
