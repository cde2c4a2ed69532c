package engine

import (
	"fmt"

	"github.com/samdwyer/wasteland/internal/entity"
)

const (
	fightAPCost      = 2
	fightAmmoCost    = 1
	fightRadiation   = 2
	killReputation   = 2
	fleeRadiation    = 3
	fleeEscapeAPCost = 1
	fleeEscapeDamage = 4
	fleeFailAPCost   = 2
	fleeFailDamage   = 10
	ambushRadiation  = 2
)

// fight shoots at the active enemy. With no encounter it does nothing.
func (e *Engine) fight(s entity.GameState) entity.GameState {
	if s.Encounter == nil {
		return s
	}
	if s.AP < fightAPCost {
		return warn(s, "Not enough action points to fight. End your turn to recover.")
	}

	next := s.Clone()
	next.Ammo = addCount(next.Ammo, -fightAmmoCost)
	next = spendAP(next, fightAPCost)

	strike := e.resolver.Strike(*next.Encounter)
	if strike.Killed {
		enemy := strike.Enemy
		next.Encounter = nil
		next = next.Credit(enemy.Reward())
		next.QuestProgress = clampInt(next.QuestProgress+1, 0, entity.MaxQuestProgress)
		next.Reputation = addCount(next.Reputation, killReputation)
		return appendLog(next, fmt.Sprintf("You take down %s. Loot recovered.", enemy.Name()), entity.LogEvent)
	}

	enemy := strike.Enemy
	retaliation := e.resolver.EnemyAttack(enemy)
	next.Encounter = &enemy
	next.Health = addHealth(next, -retaliation)
	next.Radiation = addMeter(next.Radiation, fightRadiation)
	return appendLog(next, fmt.Sprintf(
		"You deal %d damage. %s strikes back (%d).",
		strike.Damage, enemy.Name(), retaliation,
	), entity.LogEvent)
}

// flee tries to break off the active encounter. With no encounter it does nothing.
func (e *Engine) flee(s entity.GameState) entity.GameState {
	if s.Encounter == nil {
		return s
	}

	next := s.Clone()
	next.Radiation = addMeter(next.Radiation, fleeRadiation)

	if e.resolver.AttemptFlee() {
		next.Encounter = nil
		next = spendAP(next, fleeEscapeAPCost)
		next.Health = addHealth(next, -fleeEscapeDamage)
		return appendLog(next, "You lose the threat in the dust.", entity.LogEvent)
	}

	next = spendAP(next, fleeFailAPCost)
	next.Health = addHealth(next, -fleeFailDamage)
	return appendLog(next, fmt.Sprintf("Escape failed! %s blocks your path.", next.Encounter.Name()), entity.LogAlert)
}

// endTurn lets an active enemy attack, then restores the action budget.
func (e *Engine) endTurn(s entity.GameState) entity.GameState {
	next := s.Clone()

	if next.Encounter != nil {
		damage := e.resolver.EnemyAttack(*next.Encounter)
		next.Health = addHealth(next, -damage)
		next.Radiation = addMeter(next.Radiation, ambushRadiation)
		next = appendLog(next, fmt.Sprintf("%s attacks while you regroup (%d).", next.Encounter.Name(), damage), entity.LogAlert)
	}

	next.AP = next.MaxAP
	next.PlayerTurn = true
	return next
}
