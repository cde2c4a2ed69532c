package engine

import "strconv"

// ActionKind tags an action. Unknown kinds are accepted and ignored.
type ActionKind string

const (
	ActionMove         ActionKind = "MOVE"
	ActionRest         ActionKind = "REST"
	ActionScavenge     ActionKind = "SCAVENGE"
	ActionUseMedkit    ActionKind = "USE_MEDKIT"
	ActionFight        ActionKind = "FIGHT"
	ActionFlee         ActionKind = "FLEE"
	ActionEndTurn      ActionKind = "END_TURN"
	ActionEndDay       ActionKind = "END_DAY"
	ActionAdvanceQuest ActionKind = "ADVANCE_QUEST"
)

// Action is one discrete player decision fed to Apply.
// DX and DY are only read for ActionMove.
type Action struct {
	Kind   ActionKind
	DX, DY int
}

// Move returns a MOVE action by (dx, dy).
func Move(dx, dy int) Action {
	return Action{Kind: ActionMove, DX: dx, DY: dy}
}

// Rest returns a REST action.
func Rest() Action { return Action{Kind: ActionRest} }

// Scavenge returns a SCAVENGE action.
func Scavenge() Action { return Action{Kind: ActionScavenge} }

// UseMedkit returns a USE_MEDKIT action.
func UseMedkit() Action { return Action{Kind: ActionUseMedkit} }

// Fight returns a FIGHT action.
func Fight() Action { return Action{Kind: ActionFight} }

// Flee returns a FLEE action.
func Flee() Action { return Action{Kind: ActionFlee} }

// EndTurn returns an END_TURN action.
func EndTurn() Action { return Action{Kind: ActionEndTurn} }

// EndDay returns an END_DAY action.
func EndDay() Action { return Action{Kind: ActionEndDay} }

// AdvanceQuest returns an ADVANCE_QUEST action.
func AdvanceQuest() Action { return Action{Kind: ActionAdvanceQuest} }

// String returns the action tag, with the delta for moves.
func (a Action) String() string {
	if a.Kind == ActionMove {
		return string(a.Kind) + "{" + strconv.Itoa(a.DX) + "," + strconv.Itoa(a.DY) + "}"
	}
	return string(a.Kind)
}
