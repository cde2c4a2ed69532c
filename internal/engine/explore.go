package engine

import (
	"fmt"

	"github.com/samdwyer/wasteland/internal/entity"
	"github.com/samdwyer/wasteland/internal/rng"
	"github.com/samdwyer/wasteland/internal/world"
)

const (
	moveThirst      = 4
	moveHunger      = 3
	hazardChance    = 0.40
	hazardRadiation = 3
	encounterChance = 0.35

	restHeal   = 18
	restThirst = 2
	restHunger = 1

	scavengeAPCost = 2
	scavengeThirst = 4
	scavengeHunger = 3

	medkitHeal      = 30
	medkitRadiation = 8

	nightThirst    = 5
	nightHunger    = 4
	nightRadiation = 1
	nightDamage    = 6
)

// move walks one step, clamped to the grid, and may trigger an encounter.
func (e *Engine) move(s entity.GameState, dx, dy int) entity.GameState {
	if s.AP <= 0 {
		return warn(s, "Not enough action points to move. End your turn to recover.")
	}

	next := s.Clone()
	next.Position = s.Position.Step(dx, dy)
	next.ZoneIndex = world.ZoneIndex(next.Position, e.catalog.ZoneCount())
	next = spendAP(next, 1)
	next.Thirst = addMeter(next.Thirst, moveThirst)
	next.Hunger = addMeter(next.Hunger, moveHunger)
	if chance(e.rng, hazardChance) {
		next.Radiation = addMeter(next.Radiation, hazardRadiation)
	}

	zone := e.catalog.ZoneAt(next.ZoneIndex)
	next = appendLog(next, fmt.Sprintf("Moving to %s. The Geiger counter crackles.", zone.Name), entity.LogEvent)

	if next.Encounter == nil && chance(e.rng, encounterChance) {
		enemy := entity.NewEnemy(e.catalog.EnemyAt(rng.IntN(e.rng, e.catalog.EnemyCount())))
		next.Encounter = &enemy
		next = appendLog(next, fmt.Sprintf("Alert: %s spotted!", enemy.Name()), entity.LogAlert)
	}

	return next
}

// rest passes a day recovering health. It costs no action points.
func (e *Engine) rest(s entity.GameState) entity.GameState {
	next := s.Clone()
	next.Day++
	next.Health = addHealth(next, restHeal)
	next.Thirst = addMeter(next.Thirst, restThirst)
	next.Hunger = addMeter(next.Hunger, restHunger)
	return appendLog(next, "Quick rest. The Pip-Boy optimizes your energy.", entity.LogEvent)
}

// scavenge searches the current zone for one loot outcome.
func (e *Engine) scavenge(s entity.GameState) entity.GameState {
	if s.AP < scavengeAPCost {
		return warn(s, "Not enough action points to scavenge. End your turn to recover.")
	}

	next := s.Clone()
	next.Day++
	next = spendAP(next, scavengeAPCost)
	next.Thirst = addMeter(next.Thirst, scavengeThirst)
	next.Hunger = addMeter(next.Hunger, scavengeHunger)

	zone := e.catalog.ZoneAt(next.ZoneIndex)
	loot := lootTableFor(zone.Category).roll(e.rng)
	next.Caps = addCount(next.Caps, loot.Caps)
	next.Ammo = addCount(next.Ammo, loot.Ammo)
	next.Medkits = addCount(next.Medkits, loot.Medkits)
	next.Scrap = addCount(next.Scrap, loot.Scrap)

	return appendLog(next, fmt.Sprintf(
		"Scavenged %s. +%d caps, +%d ammo, +%d medkits, +%d scrap.",
		zone.Name, loot.Caps, loot.Ammo, loot.Medkits, loot.Scrap,
	), entity.LogEvent)
}

// useMedkit heals and purges some radiation. Without medkits it does nothing.
func (e *Engine) useMedkit(s entity.GameState) entity.GameState {
	if s.Medkits <= 0 {
		return s
	}

	next := s.Clone()
	next.Medkits--
	next.Health = addHealth(next, medkitHeal)
	next.Radiation = addMeter(next.Radiation, -medkitRadiation)
	return appendLog(next, "Stimpak injected. Vital signs stabilizing.", entity.LogEvent)
}

// endDay applies the overnight degradation.
func (e *Engine) endDay(s entity.GameState) entity.GameState {
	next := s.Clone()
	next.Day++
	next.Thirst = addMeter(next.Thirst, nightThirst)
	next.Hunger = addMeter(next.Hunger, nightHunger)
	next.Radiation = addMeter(next.Radiation, nightRadiation)
	next.Health = addHealth(next, -nightDamage)
	return appendLog(next, "A cold night. Life support systems degrade.", entity.LogEvent)
}
