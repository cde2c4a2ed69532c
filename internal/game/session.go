package game

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wasteland/internal/engine"
	"github.com/samdwyer/wasteland/internal/entity"
	"github.com/samdwyer/wasteland/internal/gamedata"
)

// Session owns the single state value of a play session and serializes
// transitions through the engine. It is not safe for concurrent use.
type Session struct {
	ID string

	engine  *engine.Engine
	state   entity.GameState
	tracer  trace.Tracer
	actions int
}

// NewSession starts a session at the initial state.
func NewSession(eng *engine.Engine, tracer trace.Tracer) *Session {
	return &Session{
		ID:     uuid.NewString(),
		engine: eng,
		state:  entity.NewGameState(eng.Catalog()),
		tracer: tracer,
	}
}

// State returns a copy of the current state.
func (s *Session) State() entity.GameState {
	return s.state.Clone()
}

// Catalog returns the catalog backing the session's engine.
func (s *Session) Catalog() *gamedata.Catalog {
	return s.engine.Catalog()
}

// Actions returns the number of actions dispatched so far.
func (s *Session) Actions() int {
	return s.actions
}

// Dispatch applies one action and returns a copy of the resulting state.
func (s *Session) Dispatch(ctx context.Context, a engine.Action) entity.GameState {
	ctx, span := s.tracer.Start(ctx, "session.dispatch")
	defer span.End()

	before := s.state
	after := s.engine.Apply(before, a)
	s.state = after
	s.actions++

	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("action", string(a.Kind)),
		attribute.Int("day", after.Day),
		attribute.Int("ap", after.AP),
		attribute.Int("health", after.Health),
		attribute.String("mode", ModeOf(after).String()),
	)

	switch {
	case before.Encounter == nil && after.Encounter != nil:
		s.traceCombatStart(ctx, *after.Encounter)
	case before.Encounter != nil && after.Encounter == nil:
		s.traceCombatEnd(ctx, *before.Encounter, a, after)
	}

	return after.Clone()
}

func (s *Session) traceCombatStart(ctx context.Context, enemy entity.Enemy) {
	_, span := s.tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("enemy", enemy.Def.ID),
		attribute.Int("enemy_hp", enemy.HP),
	)
	span.End()
}

func (s *Session) traceCombatEnd(ctx context.Context, enemy entity.Enemy, a engine.Action, after entity.GameState) {
	outcome := "fled"
	if a.Kind == engine.ActionFight {
		outcome = "kill"
	}

	_, span := s.tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("enemy", enemy.Def.ID),
		attribute.String("outcome", outcome),
		attribute.Int("health_remaining", after.Health),
	)
	span.End()
}
