package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wasteland/internal/telemetry"
	"github.com/samdwyer/wasteland/internal/ui"
)

// Game is the interactive terminal host for a session.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool
	notice   string
}

// New creates a terminal game around sess.
func New(sess *Session) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, sess.Catalog()),
		session:  sess,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	_, span := tracer.Start(ctx, "game.init")
	start := g.session.State()
	span.SetAttributes(
		attribute.String("session.id", g.session.ID),
		attribute.Int("start_x", start.Position.X),
		attribute.Int("start_y", start.Position.Y),
	)
	span.End()

	for g.running {
		g.renderer.Render(g.session.State(), g.notice)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent turns a key into an action and dispatches it.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	g.notice = ""

	if isQuitKey(ev) {
		g.running = false
		return
	}

	action, ok := keyAction(ev)
	if !ok {
		return
	}

	s := g.session.State()
	if reason := refusal(s, action); reason != "" {
		g.notice = reason
		return
	}

	after := g.session.Dispatch(ctx, action)
	g.notice = hint(after)
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
