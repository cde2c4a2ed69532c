package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wasteland/internal/entity"
	"github.com/samdwyer/wasteland/internal/gamedata"
	"github.com/samdwyer/wasteland/internal/world"
)

// Layout.
const (
	mapLeft   = 1
	mapTop    = 2
	cellWidth = 3
	panelLeft = mapLeft + world.GridSize*cellWidth + 3
	barWidth  = 20
	logTop    = mapTop + world.GridSize + 12
)

var logColors = map[entity.LogCategory]tcell.Color{
	entity.LogSystem:  tcell.ColorAqua,
	entity.LogEvent:   tcell.ColorWhite,
	entity.LogAlert:   tcell.ColorRed,
	entity.LogWarning: tcell.ColorYellow,
}

// Renderer draws a game state to the screen. It only reads the state.
type Renderer struct {
	screen  *Screen
	catalog *gamedata.Catalog
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, catalog *gamedata.Catalog) *Renderer {
	return &Renderer{screen: screen, catalog: catalog}
}

// Render draws the full frame. notice is an optional host message.
func (r *Renderer) Render(s entity.GameState, notice string) {
	r.screen.Clear()

	title := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	r.screen.DrawText(mapLeft, 0, fmt.Sprintf("WASTELAND OPERATOR  day %d", s.Day), title)

	r.renderMap(s)
	r.renderVitals(s)
	r.renderMission(s)
	r.renderLog(s)

	_, height := r.screen.Size()
	if notice != "" {
		r.screen.DrawText(mapLeft, height-2, notice, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	help := "arrows/hjkl move  s scavenge  r rest  m medkit  f fight  e flee  t end turn  n end day  a debrief  q quit"
	r.screen.DrawText(mapLeft, height-1, help, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// renderMap draws the zone grid, shading cells reachable with the remaining AP.
func (r *Renderer) renderMap(s entity.GameState) {
	reachable := make(map[world.Position]bool)
	for _, p := range world.ReachableCells(s.Position, s.AP) {
		reachable[p] = true
	}

	for _, tile := range world.MapTiles(r.catalog) {
		x := mapLeft + tile.X*cellWidth
		y := mapTop + tile.Y

		style := tcell.StyleDefault.Foreground(tile.Zone.TCellColor())
		if reachable[tile.Position] {
			style = style.Background(tcell.ColorDarkSlateGray)
		}
		glyph := tile.Zone.GlyphRune()
		if tile.Position == s.Position {
			glyph = '@'
			style = style.Foreground(tcell.ColorYellow).Bold(true)
		}

		r.screen.SetContent(x, y, ' ', style)
		r.screen.SetContent(x+1, y, glyph, style)
		r.screen.SetContent(x+2, y, ' ', style)
	}

	zone := world.ZoneFor(r.catalog, s.Position)
	y := mapTop + world.GridSize + 1
	r.screen.DrawText(mapLeft, y, zone.Name, tcell.StyleDefault.Foreground(zone.TCellColor()).Bold(true))
	r.screen.DrawText(mapLeft, y+1, zone.Description, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *Renderer) renderVitals(s entity.GameState) {
	y := mapTop
	r.drawBar(y, "Health", s.HealthPercent(), tcell.ColorGreen)
	r.drawBar(y+1, "Radiation", s.RadiationPercent(), tcell.ColorLime)
	r.drawBar(y+2, "Thirst", s.ThirstPercent(), tcell.ColorBlue)
	r.drawBar(y+3, "Hunger", s.HungerPercent(), tcell.ColorOrange)
	r.drawBar(y+4, "AP", s.APPercent(), tcell.ColorYellow)

	plain := tcell.StyleDefault
	r.screen.DrawText(panelLeft, y+6, fmt.Sprintf("Caps %d  Ammo %d  Stimpaks %d  Scrap %d  Artifacts %d",
		s.Caps, s.Ammo, s.Medkits, s.Scrap, s.Artifacts), plain)
	r.screen.DrawText(panelLeft, y+7, fmt.Sprintf("Reputation %d  AP %d/%d", s.Reputation, s.AP, s.MaxAP), plain)
	if !s.PlayerTurn {
		r.screen.DrawText(panelLeft, y+8, "Out of action points. Press t to end the turn.", plain.Foreground(tcell.ColorYellow))
	}

	if s.Encounter != nil {
		alert := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		text := fmt.Sprintf("Combat: %s (%d HP)  f fight  e flee", s.Encounter.Name(), s.Encounter.HP)
		if s.Ammo == 0 {
			text += "  [no ammo]"
		}
		r.screen.DrawText(panelLeft, y+9, text, alert)
	}
}

func (r *Renderer) renderMission(s entity.GameState) {
	y := mapTop + 11
	r.screen.DrawText(panelLeft, y, "Mission: "+s.Quest.Title, tcell.StyleDefault.Bold(true))
	r.screen.DrawText(panelLeft, y+1, fmt.Sprintf("Progress %d/%d  %s", s.QuestProgress, entity.MaxQuestProgress, s.Quest.Reward), tcell.StyleDefault)
	if s.QuestReady() {
		r.screen.DrawText(panelLeft, y+2, "Objective reached. Press a to debrief.", tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}
	for i, o := range s.Objectives() {
		mark := "[ ] "
		if o.Done {
			mark = "[x] "
		}
		r.screen.DrawText(panelLeft, y+3+i, mark+o.Title, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
}

func (r *Renderer) renderLog(s entity.GameState) {
	for i, entry := range s.Log {
		color, ok := logColors[entry.Category]
		if !ok {
			color = tcell.ColorWhite
		}
		r.screen.DrawText(mapLeft, logTop+i, "> "+entry.Text, tcell.StyleDefault.Foreground(color))
	}
}

// drawBar draws a labelled meter filled to percent.
func (r *Renderer) drawBar(y int, label string, percent int, color tcell.Color) {
	filled := percent * barWidth / 100
	bar := strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled)
	x := r.screen.DrawText(panelLeft, y, fmt.Sprintf("%-10s", label), tcell.StyleDefault)
	x = r.screen.DrawText(x, y, bar, tcell.StyleDefault.Foreground(color))
	r.screen.DrawText(x+1, y, fmt.Sprintf("%3d%%", percent), tcell.StyleDefault)
}
