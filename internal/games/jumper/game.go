// Package jumper implements a vertical platform hopper: the player
// bounces automatically on landing, steers in the air, and climbs an
// endless tower of platforms. Every gap is generated reachable; gaps too
// tall for a normal jump get a super-jump pad on the platform below.
package jumper

import (
	"fmt"
	"math/rand"

	"gameforge/internal/config"
	"gameforge/internal/core"
	"gameforge/internal/registry"
)

// Platform is a horizontal ledge in world coordinates. Y grows downward;
// climbing means decreasing Y.
type Platform struct {
	X     int
	Y     int
	W     int
	Super bool // Jump pad granting the super impulse
}

// Game implements the vertical jumper.
type Game struct {
	conf config.JumperConfig
	diff *config.DifficultyManager
	rng  *rand.Rand

	screenW int
	screenH int

	playerX float64
	playerY float64
	vy      float64

	camY     float64
	topY     int // Y of the highest generated platform
	platforms []Platform

	tick     uint64
	score    int
	gameOver bool
	paused   bool
}

// Package-level config selection, applied on the next Reset.
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

func init() {
	registry.Register("jumper", func() registry.Game { return New() })
}

// New creates a new jumper game instance.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "jumper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tower Hopper"
}

// Reset initializes the game with the given runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	conf, err := config.LoadJumper(configPath)
	if err != nil {
		conf = config.DefaultJumperConfig()
	}
	config.ApplyJumperPreset(&conf, difficultyPreset)

	g.conf = conf
	g.diff = config.NewDifficultyManager(conf.Difficulty)
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	// Ground platform spanning the screen, player resting on it.
	ground := Platform{X: 0, Y: cfg.ScreenH - 2, W: cfg.ScreenW}
	g.platforms = []Platform{ground}
	g.topY = ground.Y

	g.playerX = float64(cfg.ScreenW) / 2
	g.playerY = float64(ground.Y - 1)
	g.vy = g.conf.Physics.JumpImpulse

	g.camY = 0
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false

	g.generateAhead()
}

// maxJumpHeight returns the apex height of a jump with the given impulse.
func (g *Game) maxJumpHeight(impulse float64) float64 {
	return impulse * impulse / (2 * g.conf.Physics.Gravity)
}

// generateAhead keeps at least one screen of platforms above the camera.
func (g *Game) generateAhead() {
	normalReach := g.maxJumpHeight(g.conf.Physics.JumpImpulse) * g.conf.Platforms.ReachFactor
	superReach := g.maxJumpHeight(g.conf.Physics.SuperImpulse) * g.conf.Platforms.ReachFactor

	for float64(g.topY) > g.camY-float64(g.screenH) {
		var gap float64
		needPad := g.rng.Float64() < 0.2
		if needPad {
			gap = normalReach + g.rng.Float64()*(superReach-normalReach)
		} else {
			gap = 3 + g.rng.Float64()*(normalReach-3)
		}
		if gap < 3 {
			gap = 3
		}

		// A gap beyond normal reach needs a pad on the platform below.
		if needPad && len(g.platforms) > 0 {
			g.platforms[len(g.platforms)-1].Super = true
		}

		width := g.conf.Platforms.MinWidth +
			g.rng.Intn(core.Max(1, g.conf.Platforms.MaxWidth-g.conf.Platforms.MinWidth+1))
		x := g.rng.Intn(core.Max(1, g.screenW-width))

		g.topY -= int(gap)
		g.platforms = append(g.platforms, Platform{X: x, Y: g.topY, W: width})
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH, TickRate: 60, Seed: g.rng.Int63()})
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if in.Has(core.ActionLeft) {
		g.playerX -= g.conf.Physics.MoveSpeed
	}
	if in.Has(core.ActionRight) {
		g.playerX += g.conf.Physics.MoveSpeed
	}
	// Wrap around the screen edges.
	if g.playerX < 0 {
		g.playerX += float64(g.screenW)
	}
	if g.playerX >= float64(g.screenW) {
		g.playerX -= float64(g.screenW)
	}

	prevY := g.playerY
	g.vy = core.ClampF(g.vy+g.conf.Physics.Gravity, g.conf.Physics.SuperImpulse, g.conf.Physics.MaxFallSpeed)
	g.playerY += g.vy

	// Landing: only while falling, crossing a platform top this tick.
	if g.vy > 0 {
		for _, p := range g.platforms {
			top := float64(p.Y - 1)
			if prevY <= top && g.playerY >= top &&
				g.playerX >= float64(p.X)-0.5 && g.playerX < float64(p.X+p.W)+0.5 {
				g.playerY = top
				if p.Super {
					g.vy = g.conf.Physics.SuperImpulse
				} else {
					g.vy = g.conf.Physics.JumpImpulse
				}
				break
			}
		}
	}

	g.updateCamera()
	g.despawnBelow()
	g.generateAhead()

	// Falling out of view ends the run.
	if g.playerY > g.camY+g.conf.Camera.KillFactor*float64(g.screenH) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// updateCamera eases toward the player but never scrolls down.
func (g *Game) updateCamera() {
	target := g.playerY - float64(g.screenH)*0.6
	next := g.camY + (target-g.camY)*g.conf.Camera.FollowRate
	if next < g.camY {
		g.camY = next
	}
}

// despawnBelow removes platforms that scrolled out the bottom and scores
// them.
func (g *Game) despawnBelow() {
	kept := g.platforms[:0]
	for _, p := range g.platforms {
		if float64(p.Y) > g.camY+float64(g.screenH) {
			g.score += g.conf.Scoring.PlatformPoints
			continue
		}
		kept = append(kept, p)
	}
	g.platforms = kept
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, p := range g.platforms {
		sy := p.Y - int(g.camY)
		if sy < 1 || sy >= g.screenH {
			continue
		}
		r, c := '═', core.ColorGreen
		if p.Super {
			r, c = '▲', core.ColorBrightMagenta
		}
		dst.DrawHLine(p.X, sy, p.W, r, c)
	}

	px := int(g.playerX)
	py := int(g.playerY - g.camY)
	dst.SetCell(px, py, '@', core.ColorBrightCyan)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Height: %d", g.score, -core.Min(0, int(g.playerY)-(g.screenH-3))))

	if g.paused {
		dst.DrawTextCentered(g.screenH/2, "= PAUSED =")
	}
	if g.gameOver {
		dst.DrawTextCentered(g.screenH/2-1, "YOU FELL")
		dst.DrawTextCentered(g.screenH/2, fmt.Sprintf("Score: %d", g.score))
		dst.DrawTextCentered(g.screenH/2+1, "Press R to restart")
	}
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
