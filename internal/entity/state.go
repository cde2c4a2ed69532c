// Package entity provides the game state aggregate and the live enemy instance.
package entity

import (
	"math"

	"github.com/samdwyer/wasteland/internal/gamedata"
	"github.com/samdwyer/wasteland/internal/world"
)

// Bounds shared by every transition.
const (
	MaxMeter         = 100 // Upper bound for radiation, thirst and hunger
	MaxQuestProgress = 4
	DefaultMaxAP     = 6
	DefaultMaxHealth = 100
)

// GameState is the whole simulation state. Transitions never modify a
// GameState in place; they work on a Clone and return it.
type GameState struct {
	Day int

	Health    int
	MaxHealth int
	Radiation int
	Thirst    int
	Hunger    int

	Caps      int
	Ammo      int
	Medkits   int
	Scrap     int
	Artifacts int

	Position  world.Position
	ZoneIndex int

	AP         int
	MaxAP      int
	PlayerTurn bool

	Encounter *Enemy // nil when no combat is active

	Quest         gamedata.QuestDef
	QuestProgress int
	Reputation    int

	Log    []LogEntry // Most recent first
	LogSeq int        // Entries ever written; never decreases
}

// NewGameState returns the documented initial state for a new session.
func NewGameState(catalog *gamedata.Catalog) GameState {
	return GameState{
		Day:        1,
		Health:     DefaultMaxHealth,
		MaxHealth:  DefaultMaxHealth,
		Radiation:  8,
		Thirst:     12,
		Hunger:     10,
		Caps:       40,
		Ammo:       6,
		Medkits:    2,
		Scrap:      3,
		Artifacts:  0,
		Position:   world.Position{X: 3, Y: 3},
		ZoneIndex:  0,
		AP:         DefaultMaxAP,
		MaxAP:      DefaultMaxAP,
		PlayerTurn: true,
		Quest:      catalog.FirstQuest(),
		Reputation: 12,
		Log: []LogEntry{
			{Category: LogSystem, Text: "Pip-Boy online. Your mission: keep the Wasteland alive."},
		},
		LogSeq: 1,
	}
}

// Clone returns a deep copy that shares no mutable storage with s.
func (s GameState) Clone() GameState {
	next := s
	next.Log = append([]LogEntry(nil), s.Log...)
	if s.Encounter != nil {
		enemy := *s.Encounter
		next.Encounter = &enemy
	}
	return next
}

// InEncounter returns true while a combat is active.
func (s GameState) InEncounter() bool {
	return s.Encounter != nil
}

// Credit returns a copy of s with every quantity in b added to the matching counter.
func (s GameState) Credit(b gamedata.Bundle) GameState {
	s.Caps = AddCount(s.Caps, b.Caps)
	s.Ammo = AddCount(s.Ammo, b.Ammo)
	s.Medkits = AddCount(s.Medkits, b.Medkits)
	s.Scrap = AddCount(s.Scrap, b.Scrap)
	s.Artifacts = AddCount(s.Artifacts, b.Artifacts)
	return s
}

// AddLog returns s with entry as the newest log line.
func (s GameState) AddLog(entry LogEntry) GameState {
	s.Log = PrependLog(s.Log, entry)
	s.LogSeq++
	return s
}

// EntriesSince returns the entries written after before, oldest first.
// Entries already dropped from the capped log are not returned.
func (s GameState) EntriesSince(before GameState) []LogEntry {
	n := min(max(s.LogSeq-before.LogSeq, 0), len(s.Log))
	added := make([]LogEntry, 0, n)
	for i := n - 1; i >= 0; i-- {
		added = append(added, s.Log[i])
	}
	return added
}

// AddCount adds delta to an inventory counter, saturating at 0 and math.MaxInt.
func AddCount(value, delta int) int {
	switch {
	case delta > 0 && value > math.MaxInt-delta:
		return math.MaxInt
	case value+delta < 0:
		return 0
	}
	return value + delta
}
