package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wasteland/internal/entity"
	"github.com/samdwyer/wasteland/internal/gamedata"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	screen, err := newScreen(sim)
	if err != nil {
		t.Fatalf("newScreen() error = %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(120, 40)
	return NewRenderer(screen, gamedata.MustLoadCatalog()), sim
}

func TestRenderPlacesPlayer(t *testing.T) {
	r, sim := newTestRenderer(t)
	s := entity.NewGameState(gamedata.MustLoadCatalog())

	r.Render(s, "")

	x := mapLeft + s.Position.X*cellWidth + 1
	y := mapTop + s.Position.Y
	if got, _, _, _ := sim.GetContent(x, y); got != '@' {
		t.Errorf("cell (%d,%d) = %q, want '@'", x, y, got)
	}
}

func TestRenderNotice(t *testing.T) {
	r, sim := newTestRenderer(t)
	s := entity.NewGameState(gamedata.MustLoadCatalog())

	r.Render(s, "hello")

	_, height := sim.Size()
	for i, want := range "hello" {
		if got, _, _, _ := sim.GetContent(mapLeft+i, height-2); got != want {
			t.Errorf("notice cell %d = %q, want %q", i, got, want)
		}
	}
}

func TestDrawText(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	screen, err := newScreen(sim)
	if err != nil {
		t.Fatalf("newScreen() error = %v", err)
	}
	defer screen.Close()

	if got := screen.DrawText(2, 0, "abc", tcell.StyleDefault); got != 5 {
		t.Errorf("DrawText() = %d, want 5", got)
	}
}
