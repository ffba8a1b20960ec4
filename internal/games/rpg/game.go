// Package rpg implements a top-down world explorer: a large scrolling
// world dotted with landmarks, a clamped follow camera and a minimap in
// the corner.
package rpg

import (
	"fmt"
	"math/rand"

	"gameforge/internal/core"
	"gameforge/internal/registry"
)

const (
	worldW = 200
	worldH = 100

	numTrees  = 50
	numRocks  = 30
	numHouses = 10

	walkSpeed   = 0.5
	sprintSpeed = 1.0
	// 1/sqrt(2), keeps diagonal movement the same speed as cardinal.
	diagNorm = 0.7071

	maxHealth  = 100
	maxStamina = 100

	minimapW = 16
	minimapH = 8

	discoverPoints = 10
)

// LandmarkKind classifies a world feature.
type LandmarkKind int

const (
	LandmarkTree LandmarkKind = iota
	LandmarkRock
	LandmarkHouse
)

// Landmark is a fixed world feature.
type Landmark struct {
	X, Y       int
	Kind       LandmarkKind
	Discovered bool
}

// Game implements the top-down explorer.
type Game struct {
	rng *rand.Rand

	screenW int
	screenH int
	viewH   int // Playfield rows below the HUD

	playerX float64
	playerY float64
	health  float64
	stamina float64

	camX float64
	camY float64

	landmarks []Landmark

	tick   uint64
	score  int
	paused bool
}

func init() {
	registry.Register("rpg", func() registry.Game { return New() })
}

// New creates a new explorer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "rpg"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Overworld Explorer"
}

// Reset initializes the game with the given runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.viewH = cfg.ScreenH - 2

	g.playerX = worldW / 2
	g.playerY = worldH / 2
	g.health = maxHealth
	g.stamina = maxStamina

	g.landmarks = nil
	g.spawnLandmarks(numTrees, LandmarkTree)
	g.spawnLandmarks(numRocks, LandmarkRock)
	g.spawnLandmarks(numHouses, LandmarkHouse)

	g.tick = 0
	g.score = 0
	g.paused = false
	g.updateCamera()
}

func (g *Game) spawnLandmarks(n int, kind LandmarkKind) {
	for i := 0; i < n; i++ {
		g.landmarks = append(g.landmarks, Landmark{
			X:    g.rng.Intn(worldW),
			Y:    g.rng.Intn(worldH),
			Kind: kind,
		})
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

	speed := walkSpeed
	sprinting := in.Has(core.ActionPrimary) && g.stamina > 0
	if sprinting {
		speed = sprintSpeed
		g.stamina = core.ClampF(g.stamina-0.5, 0, maxStamina)
	} else {
		g.stamina = core.ClampF(g.stamina+0.2, 0, maxStamina)
	}

	var vx, vy float64
	if in.Has(core.ActionUp) {
		vy = -speed
	}
	if in.Has(core.ActionDown) {
		vy = speed
	}
	if in.Has(core.ActionLeft) {
		vx = -speed
	}
	if in.Has(core.ActionRight) {
		vx = speed
	}
	if vx != 0 && vy != 0 {
		vx *= diagNorm
		vy *= diagNorm
	}

	g.playerX = core.ClampF(g.playerX+vx, 0, worldW-1)
	g.playerY = core.ClampF(g.playerY+vy, 0, worldH-1)

	g.updateCamera()
	g.discoverVisible()

	return core.StepResult{State: g.State()}
}

// updateCamera centers on the player and clamps to the world bounds.
func (g *Game) updateCamera() {
	g.camX = core.ClampF(g.playerX-float64(g.screenW)/2, 0, worldW-float64(g.screenW))
	g.camY = core.ClampF(g.playerY-float64(g.viewH)/2, 0, worldH-float64(g.viewH))
	if float64(g.screenW) > worldW {
		g.camX = 0
	}
	if float64(g.viewH) > worldH {
		g.camY = 0
	}
}

// discoverVisible awards points the first time a landmark scrolls into
// view.
func (g *Game) discoverVisible() {
	view := core.NewRect(int(g.camX), int(g.camY), g.screenW, g.viewH)
	for i := range g.landmarks {
		lm := &g.landmarks[i]
		if !lm.Discovered && view.Contains(lm.X, lm.Y) {
			lm.Discovered = true
			g.score += discoverPoints
		}
	}
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	offY := 2 // Playfield starts below the HUD

	for _, lm := range g.landmarks {
		sx := lm.X - int(g.camX)
		sy := lm.Y - int(g.camY)
		if sx < 0 || sx >= g.screenW || sy < 0 || sy >= g.viewH {
			continue
		}
		r, c := landmarkGlyph(lm.Kind)
		dst.SetCell(sx, sy+offY, r, c)
	}

	px := int(g.playerX - g.camX)
	py := int(g.playerY-g.camY) + offY
	dst.SetCell(px, py, '@', core.ColorBrightGreen)

	g.renderMinimap(dst)

	if g.paused {
		dst.DrawTextCentered(g.screenH/2, "= PAUSED =")
	}
}

func landmarkGlyph(kind LandmarkKind) (rune, core.Color) {
	switch kind {
	case LandmarkTree:
		return '♣', core.ColorDarkGreen
	case LandmarkRock:
		return 'o', core.ColorGray
	default:
		return '⌂', core.ColorBrown
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, "HP ")
	dst.DrawHBar(4, 0, 16, g.health, maxHealth, core.ColorBrightGreen, core.ColorGray)
	dst.DrawText(22, 0, "ST ")
	dst.DrawHBar(25, 0, 16, g.stamina, maxStamina, core.ColorBrightYellow, core.ColorGray)
	dst.DrawText(44, 0, fmt.Sprintf("Discovered: %d/%d", g.score/discoverPoints, len(g.landmarks)))
	dst.DrawHLine(0, 1, g.screenW, '─', core.ColorGray)
}

// renderMinimap draws the scaled world overview in the top-right corner.
func (g *Game) renderMinimap(dst *core.Screen) {
	x0 := g.screenW - minimapW - 2
	y0 := 2
	dst.DrawBox(core.NewRect(x0, y0, minimapW+2, minimapH+2), core.ColorWhite)

	plot := func(wx, wy int, r rune, c core.Color) {
		mx := x0 + 1 + wx*minimapW/worldW
		my := y0 + 1 + wy*minimapH/worldH
		dst.SetCell(mx, my, r, c)
	}

	for _, lm := range g.landmarks {
		_, c := landmarkGlyph(lm.Kind)
		plot(lm.X, lm.Y, '·', c)
	}
	plot(int(g.playerX), int(g.playerY), '@', core.ColorBrightGreen)
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Paused: g.paused,
	}
}
