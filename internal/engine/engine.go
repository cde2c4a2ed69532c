// Package engine implements the state transition function of the simulation.
//
// Apply maps a GameState and an Action to the next GameState. It never
// modifies its input, holds no state between calls, and never fails:
// illegal actions either return the state unchanged or add a warning to
// the in-state log.
//
// Random draw order per handler (one Float64 per draw):
//
//	MOVE:     hazard roll, then trigger roll if no encounter is active,
//	          then template roll if the trigger succeeded
//	SCAVENGE: table roll, then amount roll if the outcome has a range
//	FIGHT:    damage roll, then retaliation roll if the enemy survives
//	FLEE:     escape roll
//	END_TURN: attack roll if an encounter is active
package engine

import (
	"github.com/samdwyer/wasteland/internal/combat"
	"github.com/samdwyer/wasteland/internal/entity"
	"github.com/samdwyer/wasteland/internal/gamedata"
	"github.com/samdwyer/wasteland/internal/rng"
)

// Engine applies actions using a catalog and a random source.
// It is not safe for concurrent use when the source is not.
type Engine struct {
	catalog  *gamedata.Catalog
	rng      rng.Source
	resolver *combat.Resolver
}

// New creates an engine over catalog drawing randomness from src.
func New(catalog *gamedata.Catalog, src rng.Source) *Engine {
	return &Engine{
		catalog:  catalog,
		rng:      src,
		resolver: combat.NewResolver(src),
	}
}

// Catalog returns the catalog the engine resolves zones, enemies and quests against.
func (e *Engine) Catalog() *gamedata.Catalog {
	return e.catalog
}

// Apply returns the state that follows s after action a.
func (e *Engine) Apply(s entity.GameState, a Action) entity.GameState {
	switch a.Kind {
	case ActionMove:
		return e.move(s, a.DX, a.DY)
	case ActionRest:
		return e.rest(s)
	case ActionScavenge:
		return e.scavenge(s)
	case ActionUseMedkit:
		return e.useMedkit(s)
	case ActionFight:
		return e.fight(s)
	case ActionFlee:
		return e.flee(s)
	case ActionEndTurn:
		return e.endTurn(s)
	case ActionEndDay:
		return e.endDay(s)
	case ActionAdvanceQuest:
		return e.advanceQuest(s)
	default:
		return s
	}
}

// =============================================================================
// Shared helpers
// =============================================================================

// clampInt saturates value to [lo, hi].
func clampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// appendLog returns s with a new most-recent entry, truncated to the log cap.
func appendLog(s entity.GameState, text string, category entity.LogCategory) entity.GameState {
	return s.AddLog(entity.LogEntry{Category: category, Text: text})
}

// warn returns a copy of s whose only change is one warning entry.
func warn(s entity.GameState, text string) entity.GameState {
	return appendLog(s.Clone(), text, entity.LogWarning)
}

// spendAP deducts action points and closes the player's window at zero.
func spendAP(s entity.GameState, n int) entity.GameState {
	s.AP = clampInt(s.AP-n, 0, s.MaxAP)
	if s.AP == 0 {
		s.PlayerTurn = false
	}
	return s
}

func addMeter(value, delta int) int {
	return clampInt(value+delta, 0, entity.MaxMeter)
}

func addHealth(s entity.GameState, delta int) int {
	return clampInt(s.Health+delta, 0, s.MaxHealth)
}

func addCount(value, delta int) int {
	return entity.AddCount(value, delta)
}

func chance(src rng.Source, p float64) bool {
	return src.Float64() < p
}
