// Package game hosts the engine: it holds the current state, feeds it
// actions from the keyboard or a script, and traces each transition.
package game

import "github.com/samdwyer/wasteland/internal/entity"

// Mode is the coarse phase the host presents.
type Mode int

const (
	// ModeExplore is free movement with no hostile present.
	ModeExplore Mode = iota
	// ModeCombat is an active encounter; fight and flee become available.
	ModeCombat
)

// ModeOf returns the mode implied by s.
func ModeOf(s entity.GameState) Mode {
	if s.InEncounter() {
		return ModeCombat
	}
	return ModeExplore
}

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeCombat:
		return "combat"
	default:
		return "unknown"
	}
}
