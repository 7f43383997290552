package game

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player glyphs for the symbolic visual states.
const (
	PlayerGrounded = '●'
	PlayerCharging = '◎'
	PlayerAirborne = '◉'
)

// Render draws the current game state into the screen buffer.
// Strictly read-only with respect to game state; out-of-bounds draws are
// clipped by the screen, never an error.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawBackground(dst)
	g.drawLevel(dst)
	g.drawPlayer(dst)
	g.drawHUD(dst)

	// Game over banner last so nothing overlaps it.
	if g.phase == core.PhaseGameOver {
		g.drawGameOver(dst)
	}
}

// drawBackground renders the parallax stars and clouds.
func (g *Game) drawBackground(dst *core.Screen) {
	for _, s := range g.level.Stars() {
		dst.SetColored(s.X, s.Y, StarChar, core.ColorGray)
	}
	for _, c := range g.level.Clouds() {
		for dx := 0; dx < c.W; dx++ {
			dst.SetColored(c.X+dx, c.Y, CloudChar, core.ColorGray)
		}
	}
}

// drawLevel renders ground, platform, and hazard cells.
func (g *Game) drawLevel(dst *core.Screen) {
	groundRow := g.level.GroundRow()
	platformRow := g.level.PlatformRow()

	for x := 0; x < g.level.Width(); x++ {
		if r := g.level.CharAt(x, groundRow); r != EmptyChar {
			dst.SetColored(x, groundRow, r, core.ColorGreen)
		}
		if r := g.level.CharAt(x, platformRow); r != EmptyChar {
			dst.SetColored(x, platformRow, r, cellColor(r))
		}
		c := g.level.column(x)
		for _, h := range c.Hazards {
			dst.SetColored(x, h.Row, h.Char, cellColor(h.Char))
		}
	}
}

// cellColor picks the display color for a level cell rune.
func cellColor(r rune) core.Color {
	switch r {
	case SpikeChar:
		return core.ColorBrightRed
	case FloaterChar:
		return core.ColorMagenta
	case BlockChar:
		return core.ColorWhite
	case PlatformChar:
		return core.ColorGreen
	default:
		return core.ColorDefault
	}
}

// drawPlayer renders the player glyph for its current visual state.
func (g *Game) drawPlayer(dst *core.Screen) {
	glyph := PlayerGrounded
	switch g.player.Visual() {
	case VisualCharging:
		glyph = PlayerCharging
	case VisualAirborne:
		glyph = PlayerAirborne
	}
	dst.SetColored(g.player.X(), g.player.Row(), glyph, core.ColorBrightYellow)
}

// drawHUD renders score, best score, and speed at the top of the screen.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Best: %d  Speed: %.1fx ", g.score, g.best, g.speedMult)
	dst.DrawText(1, 0, hud)

	title := fmt.Sprintf(" %s ", g.Title())
	dst.DrawTextColored(dst.Width()-len(title)-2, 0, title, core.ColorCyan)
}

// drawGameOver renders the end-of-run banner, centered.
func (g *Game) drawGameOver(dst *core.Screen) {
	title := "GAME OVER"
	subtitle := fmt.Sprintf("Score: %d  |  Press R to restart, Q to quit", g.score)

	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
