package entity

import "github.com/samdwyer/wasteland/internal/gamedata"

// Enemy is a live encounter: a template plus its remaining health.
// It is a value; damage returns a new Enemy instead of mutating.
type Enemy struct {
	Def gamedata.EnemyDef // Template this enemy was spawned from
	HP  int               // Current health
}

// NewEnemy instantiates a template at full health.
func NewEnemy(def gamedata.EnemyDef) Enemy {
	return Enemy{Def: def, HP: def.HP}
}

// Name returns the template's display name.
func (e Enemy) Name() string { return e.Def.Name }

// Attack returns the template's base attack.
func (e Enemy) Attack() int { return e.Def.Attack }

// Reward returns the bundle credited when this enemy dies.
func (e Enemy) Reward() gamedata.Bundle { return e.Def.Reward }

// IsAlive returns true if the enemy has health remaining.
func (e Enemy) IsAlive() bool { return e.HP > 0 }

// TakeDamage returns a copy of the enemy with amount subtracted from its health.
// Health may go negative; callers treat <= 0 as dead.
func (e Enemy) TakeDamage(amount int) Enemy {
	if amount > 0 {
		e.HP -= amount
	}
	return e
}
