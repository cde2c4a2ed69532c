// Package combat resolves single exchanges between the player and an enemy.
package combat

import (
	"github.com/samdwyer/wasteland/internal/entity"
	"github.com/samdwyer/wasteland/internal/rng"
)

const (
	// Player shots deal PlayerBaseDamage + floor(r * PlayerDamageSpread).
	PlayerBaseDamage   = 6
	PlayerDamageSpread = 8

	// Enemy hits deal enemy attack + floor(r * EnemyDamageSpread).
	EnemyDamageSpread = 6

	// A flee attempt succeeds when the roll is above FleeThreshold.
	FleeThreshold = 0.35
)

// StrikeResult contains the outcome of one player attack.
type StrikeResult struct {
	Damage int          // Damage rolled
	Enemy  entity.Enemy // Enemy after the hit
	Killed bool         // True if the enemy's health dropped to zero or below
}

// Resolver rolls combat outcomes from a random source.
// Each method draws exactly one value.
type Resolver struct {
	rng rng.Source
}

// NewResolver creates a resolver drawing from src.
func NewResolver(src rng.Source) *Resolver {
	return &Resolver{rng: src}
}

// Strike rolls player damage and applies it to enemy.
func (r *Resolver) Strike(enemy entity.Enemy) StrikeResult {
	damage := PlayerBaseDamage + rng.IntN(r.rng, PlayerDamageSpread)
	hit := enemy.TakeDamage(damage)
	return StrikeResult{
		Damage: damage,
		Enemy:  hit,
		Killed: !hit.IsAlive(),
	}
}

// EnemyAttack rolls the damage enemy deals to the player.
func (r *Resolver) EnemyAttack(enemy entity.Enemy) int {
	return enemy.Attack() + rng.IntN(r.rng, EnemyDamageSpread)
}

// AttemptFlee rolls an escape. It returns true on success.
func (r *Resolver) AttemptFlee() bool {
	return r.rng.Float64() > FleeThreshold
}
