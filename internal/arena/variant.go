package arena

import "github.com/vovakirdan/tank-arena/internal/config"

// Variant selects the enemy behaviour of a round.
type Variant string

const (
	// Drift enemies enter from the far side of the world and roll left.
	Drift Variant = "drift"
	// Descent enemies drop in from above the screen and fire downward.
	Descent Variant = "descent"
)

// Variants lists the playable variants in registration order.
var Variants = []Variant{Drift, Descent}

// Title returns the display name of the variant.
func (v Variant) Title() string {
	switch v {
	case Descent:
		return "Tank Arena: Descent"
	default:
		return "Tank Arena: Drift"
	}
}

func (v Variant) config(cfg *config.ArenaConfig) *config.VariantConfig {
	if v == Descent {
		return &cfg.Descent
	}
	return &cfg.Drift
}

func (v Variant) descends() bool { return v == Descent }

// climbs reports whether the up key lifts the player. Only the descent
// variant binds it.
func (v Variant) climbs() bool { return v == Descent }

// Valid reports whether v names a known variant.
func (v Variant) Valid() bool {
	return v == Drift || v == Descent
}
