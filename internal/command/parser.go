// Package command turns typed player input into engine actions.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/samdwyer/wasteland/internal/engine"
)

var (
	// ErrEmpty is returned for blank input.
	ErrEmpty = errors.New("empty command")
	// ErrUnknown is returned when no command is close enough to the input.
	ErrUnknown = errors.New("unknown command")
	// ErrAmbiguous is returned when two different commands match equally well.
	ErrAmbiguous = errors.New("ambiguous command")
)

type phrase struct {
	alias  string
	action engine.Action
}

// Parser maps phrases like "north", "scavenge" or "end turn" to actions.
// Near misses are accepted within a small edit distance.
type Parser struct {
	phrases []phrase
}

// KeyBindings maps single keys to actions. The terminal host binds the
// same keys, and the parser accepts each one as a typed command.
var KeyBindings = map[rune]engine.Action{
	'k': engine.Move(0, -1),
	'j': engine.Move(0, 1),
	'h': engine.Move(-1, 0),
	'l': engine.Move(1, 0),
	's': engine.Scavenge(),
	'r': engine.Rest(),
	'm': engine.UseMedkit(),
	'f': engine.Fight(),
	'e': engine.Flee(),
	't': engine.EndTurn(),
	'n': engine.EndDay(),
	'a': engine.AdvanceQuest(),
}

// New creates a parser with the default vocabulary.
func New() *Parser {
	p := &Parser{}
	p.register(engine.Move(0, -1), "north", "up")
	p.register(engine.Move(0, 1), "south", "down")
	p.register(engine.Move(-1, 0), "west", "left")
	p.register(engine.Move(1, 0), "east", "right")
	p.register(engine.Rest(), "rest", "sleep", "camp")
	p.register(engine.Scavenge(), "scavenge", "search", "loot")
	p.register(engine.UseMedkit(), "medkit", "use medkit", "stimpak", "heal")
	p.register(engine.Fight(), "fight", "shoot", "attack")
	p.register(engine.Flee(), "flee", "run", "escape")
	p.register(engine.EndTurn(), "end turn", "wait", "turn")
	p.register(engine.EndDay(), "end day", "night", "pass night")
	p.register(engine.AdvanceQuest(), "advance quest", "debrief", "quest")
	for key, action := range KeyBindings {
		p.register(action, string(key))
	}
	return p
}

func (p *Parser) register(action engine.Action, aliases ...string) {
	for _, alias := range aliases {
		p.phrases = append(p.phrases, phrase{alias: alias, action: action})
	}
}

// Parse returns the action for raw. It also accepts the action tags
// themselves ("SCAVENGE", "end_turn") and explicit moves ("move 1 -1").
func (p *Parser) Parse(raw string) (engine.Action, error) {
	input := normalise(raw)
	if input == "" {
		return engine.Action{}, ErrEmpty
	}

	tokens := strings.Fields(input)
	if tokens[0] == "move" || tokens[0] == "go" {
		switch len(tokens) {
		case 3:
			return parseDelta(tokens[1], tokens[2])
		case 2:
			action, err := p.match(raw, tokens[1])
			if err == nil && action.Kind != engine.ActionMove {
				return engine.Action{}, fmt.Errorf("%w: %q is not a direction", ErrUnknown, raw)
			}
			return action, err
		}
	}

	return p.match(raw, input)
}

// match resolves input by exact alias, then by edit distance.
func (p *Parser) match(raw, input string) (engine.Action, error) {
	for _, ph := range p.phrases {
		if ph.alias == input {
			return ph.action, nil
		}
	}
	return p.closest(raw, input)
}

// closest picks the alias with the smallest edit distance within its limit.
func (p *Parser) closest(raw, input string) (engine.Action, error) {
	bestDist := -1
	var best []phrase
	for _, ph := range p.phrases {
		dist := levenshtein.ComputeDistance(input, ph.alias)
		if dist > distanceLimit(len(ph.alias)) {
			continue
		}
		switch {
		case bestDist < 0 || dist < bestDist:
			bestDist = dist
			best = []phrase{ph}
		case dist == bestDist:
			best = append(best, ph)
		}
	}

	if len(best) == 0 {
		return engine.Action{}, fmt.Errorf("%w: %q", ErrUnknown, raw)
	}
	for _, ph := range best[1:] {
		if ph.action != best[0].action {
			return engine.Action{}, fmt.Errorf("%w: %q could be %q or %q", ErrAmbiguous, raw, best[0].alias, ph.alias)
		}
	}
	return best[0].action, nil
}

func parseDelta(xs, ys string) (engine.Action, error) {
	dx, err := strconv.Atoi(xs)
	if err != nil {
		return engine.Action{}, fmt.Errorf("invalid move delta %q: %w", xs, err)
	}
	dy, err := strconv.Atoi(ys)
	if err != nil {
		return engine.Action{}, fmt.Errorf("invalid move delta %q: %w", ys, err)
	}
	return engine.Move(dx, dy), nil
}

// distanceLimit is the number of typos tolerated for an alias of length n.
func distanceLimit(n int) int {
	switch {
	case n <= 3:
		return 0
	case n <= 6:
		return 1
	default:
		return 2
	}
}

func normalise(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}
