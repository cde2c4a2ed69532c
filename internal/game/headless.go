package game

import (
	"context"
	"fmt"
	"io"

	"github.com/samdwyer/wasteland/internal/command"
	"github.com/samdwyer/wasteland/internal/engine"
	"github.com/samdwyer/wasteland/internal/entity"
	"github.com/samdwyer/wasteland/internal/world"
)

// Report summarizes a scripted run.
type Report struct {
	Applied  int // Commands turned into actions and dispatched
	Rejected int // Commands that did not parse or were not allowed
	Final    entity.GameState
}

// RunScript feeds commands to the session in order, writing each new log
// entry and a final status line to w. Bad commands are reported and skipped.
func RunScript(ctx context.Context, sess *Session, parser *command.Parser, commands []string, w io.Writer) (Report, error) {
	var report Report

	for _, raw := range commands {
		if err := ctx.Err(); err != nil {
			report.Final = sess.State()
			return report, err
		}

		action, err := parser.Parse(raw)
		if err != nil {
			report.Rejected++
			fmt.Fprintf(w, "! %v\n", err)
			continue
		}

		before := sess.State()
		if reason := refusal(before, action); reason != "" {
			report.Rejected++
			fmt.Fprintf(w, "! %s\n", reason)
			continue
		}

		after := sess.Dispatch(ctx, action)
		report.Applied++

		fmt.Fprintf(w, "> %s\n", action)
		for _, entry := range after.EntriesSince(before) {
			fmt.Fprintf(w, "  [%s] %s\n", entry.Category, entry.Text)
		}
	}

	report.Final = sess.State()
	fmt.Fprintln(w, StatusLine(sess, report.Final))
	return report, nil
}

// refusal returns why the host will not send a, or "" to allow it.
// Quest advancement and firing without ammo are gated here, not in the engine.
func refusal(s entity.GameState, a engine.Action) string {
	switch {
	case a.Kind == engine.ActionAdvanceQuest && !s.QuestReady():
		return fmt.Sprintf("quest objective not complete (%d/%d)", s.QuestProgress, entity.MaxQuestProgress)
	case a.Kind == engine.ActionFight && s.InEncounter() && s.Ammo == 0:
		return "no ammo: flee or end the turn"
	}
	return ""
}

// StatusLine renders a one-line summary of s.
func StatusLine(sess *Session, s entity.GameState) string {
	zone := world.ZoneFor(sess.Catalog(), s.Position)
	return fmt.Sprintf(
		"Day %d | HP %d/%d | RAD %d%% | THIRST %d%% | HUNGER %d%% | AP %d/%d | Caps %d Ammo %d Meds %d Scrap %d Art %d | %s (%d,%d) | %s %d/%d | Rep %d",
		s.Day, s.Health, s.MaxHealth, s.RadiationPercent(), s.ThirstPercent(), s.HungerPercent(),
		s.AP, s.MaxAP, s.Caps, s.Ammo, s.Medkits, s.Scrap, s.Artifacts,
		zone.Name, s.Position.X, s.Position.Y,
		s.Quest.Title, s.QuestProgress, entity.MaxQuestProgress, s.Reputation,
	)
}
