package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wasteland/internal/command"
	"github.com/samdwyer/wasteland/internal/engine"
	"github.com/samdwyer/wasteland/internal/entity"
)

// keyAction maps a key press to the action it requests.
func keyAction(ev *tcell.EventKey) (engine.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return engine.Move(0, -1), true
	case tcell.KeyDown:
		return engine.Move(0, 1), true
	case tcell.KeyLeft:
		return engine.Move(-1, 0), true
	case tcell.KeyRight:
		return engine.Move(1, 0), true
	case tcell.KeyRune:
		a, ok := command.KeyBindings[ev.Rune()]
		return a, ok
	}
	return engine.Action{}, false
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// hint returns a short notice for states the player may need nudging out of.
func hint(s entity.GameState) string {
	switch {
	case s.InEncounter() && s.Ammo == 0:
		return "No ammo left. Flee or end the turn."
	case !s.PlayerTurn:
		return "Out of action points. Press t to end the turn."
	case s.QuestReady():
		return "Objective reached. Press a to debrief."
	}
	return ""
}
