// Package clicker implements an incremental game: mash the primary action
// for points, spend points on upgrades that compound production.
package clicker

import (
	"fmt"

	"gameforge/internal/core"
	"gameforge/internal/registry"
)

// Upgrade is a purchasable production improvement. Cost grows 1.5x per
// level.
type Upgrade struct {
	Name        string
	Description string
	Cost        int
	Multiplier  float64
	Level       int
}

// Game implements the incremental clicker.
type Game struct {
	screenW int
	screenH int

	tickRate int
	tick     uint64

	points         float64
	pointsPerClick float64
	pointsPerSec   float64
	totalClicks    int

	upgrades []Upgrade
	cursor   int

	paused bool
}

func init() {
	registry.Register("clicker", func() registry.Game { return New() })
}

// New creates a new clicker game instance.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "clicker"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Incremental Clicker"
}

// Reset initializes the game with the given runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	g.tick = 0
	g.points = 0
	g.pointsPerClick = 1
	g.pointsPerSec = 0
	g.totalClicks = 0
	g.cursor = 0
	g.paused = false

	g.upgrades = []Upgrade{
		{Name: "Click Power", Cost: 10, Multiplier: 2, Description: "Double your click power"},
		{Name: "Auto Clicker", Cost: 50, Multiplier: 1, Description: "Adds 1 point per second"},
		{Name: "Multiplier", Cost: 100, Multiplier: 1.5, Description: "Increases all gains by 50%"},
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if in.Has(core.ActionPrimary) || in.Has(core.ActionConfirm) {
		g.points += g.pointsPerClick
		g.totalClicks++
	}

	switch {
	case in.Has(core.ActionSlot1):
		g.buy(0)
	case in.Has(core.ActionSlot2):
		g.buy(1)
	case in.Has(core.ActionSlot3):
		g.buy(2)
	}

	// Navigate the upgrade list and buy with the secondary action.
	if in.Has(core.ActionUp) && g.cursor > 0 {
		g.cursor--
	}
	if in.Has(core.ActionDown) && g.cursor < len(g.upgrades)-1 {
		g.cursor++
	}
	if in.Has(core.ActionSecondary) {
		g.buy(g.cursor)
	}

	// Auto income lands once per second of ticks.
	if g.tick%uint64(g.tickRate) == 0 {
		g.points += g.pointsPerSec
	}

	return core.StepResult{State: g.State()}
}

// buy purchases an upgrade if affordable and applies its effect.
func (g *Game) buy(index int) {
	if index < 0 || index >= len(g.upgrades) {
		return
	}
	u := &g.upgrades[index]
	if g.points < float64(u.Cost) {
		return
	}

	g.points -= float64(u.Cost)
	u.Level++
	u.Cost = int(float64(u.Cost) * 1.5)

	switch u.Name {
	case "Click Power":
		g.pointsPerClick *= u.Multiplier
	case "Auto Clicker":
		g.pointsPerSec++
	case "Multiplier":
		g.pointsPerClick *= u.Multiplier
		g.pointsPerSec *= u.Multiplier
	}
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Top bar.
	dst.DrawHLine(0, 1, g.screenW, '─', core.ColorGray)
	dst.DrawTextColor(1, 0, fmt.Sprintf("Points: %d", int(g.points)), core.ColorBrightYellow)

	// Main click area prompt.
	panelX := g.screenW * 2 / 3
	dst.DrawTextCentered(g.screenH/2, "[ Space to click! ]")

	// Upgrade panel.
	dst.DrawVLine(panelX, 2, g.screenH-3, '│', core.ColorGray)
	dst.DrawText(panelX+2, 2, "Upgrades (1-3 or Enter)")
	for i, u := range g.upgrades {
		y := 4 + i*3
		marker := "  "
		if i == g.cursor {
			marker = "> "
		}
		color := core.ColorGray
		if g.points >= float64(u.Cost) {
			color = core.ColorBrightGreen
		}
		dst.DrawTextColor(panelX+2, y, fmt.Sprintf("%s%d. %s (Lvl %d)", marker, i+1, u.Name, u.Level), color)
		dst.DrawTextColor(panelX+4, y+1, fmt.Sprintf("Cost: %d - %s", u.Cost, u.Description), core.ColorGray)
	}

	// Bottom stats bar.
	stats := fmt.Sprintf("CPS: %.1f | Click Power: %.1f | Total Clicks: %d",
		g.pointsPerSec, g.pointsPerClick, g.totalClicks)
	dst.DrawHLine(0, g.screenH-2, g.screenW, '─', core.ColorGray)
	dst.DrawText(1, g.screenH-1, stats)

	if g.paused {
		dst.DrawTextCentered(g.screenH/2-2, "= PAUSED =")
	}
}

// State returns the platform-visible game state. Score is total points.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  int(g.points),
		Paused: g.paused,
	}
}
