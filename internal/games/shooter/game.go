// Package shooter implements a vertical space shooter: the player ship
// sweeps along the bottom of the screen shooting falling enemies, which
// respawn at the top and occasionally drop repair pickups.
package shooter

import (
	"fmt"
	"math/rand"

	"gameforge/internal/config"
	"gameforge/internal/core"
	"gameforge/internal/registry"
)

// Bullet is a player projectile traveling up the screen.
type Bullet struct {
	X, Y float64
}

// Enemy is a falling hostile ship.
type Enemy struct {
	X, Y float64
	VX   float64
	VY   float64
}

// Pickup is a falling repair powerup dropped by a destroyed enemy.
type Pickup struct {
	X, Y float64
}

// Game implements the space shooter.
type Game struct {
	conf config.ShooterConfig
	diff *config.DifficultyManager
	rng  *rand.Rand

	screenW int
	screenH int
	hudRows int

	playerX  float64
	playerY  int
	health   int
	cooldown int

	bullets []Bullet
	enemies []Enemy
	pickups []Pickup

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
	registry.Register("shooter", func() registry.Game { return New() })
}

// New creates a new shooter game instance.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Space Shooter"
}

// Reset initializes the game with the given runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	conf, err := config.LoadShooter(configPath)
	if err != nil {
		conf = config.DefaultShooterConfig()
	}
	config.ApplyShooterPreset(&conf, difficultyPreset)

	g.conf = conf
	g.diff = config.NewDifficultyManager(conf.Difficulty)
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudRows = 2

	g.playerX = float64(cfg.ScreenW) / 2
	g.playerY = cfg.ScreenH - 2
	g.health = conf.Player.MaxHealth
	g.cooldown = 0

	g.bullets = nil
	g.pickups = nil
	g.enemies = make([]Enemy, conf.Enemies.Count)
	for i := range g.enemies {
		g.enemies[i] = g.spawnEnemy()
	}

	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
}

// spawnEnemy creates a fresh enemy above the visible playfield.
func (g *Game) spawnEnemy() Enemy {
	speedRange := g.conf.Enemies.MaxSpeed - g.conf.Enemies.MinSpeed
	return Enemy{
		X:  1 + g.rng.Float64()*float64(g.screenW-4),
		Y:  float64(g.hudRows) - g.rng.Float64()*6,
		VX: (g.rng.Float64()*2 - 1) * g.conf.Enemies.MaxDrift,
		VY: g.conf.Enemies.MinSpeed + g.rng.Float64()*speedRange,
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: 60,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.processInput(in)
	g.updateBullets()
	g.updateEnemies()
	g.updatePickups()

	return core.StepResult{State: g.State()}
}

func (g *Game) processInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.playerX -= g.conf.Player.Speed
	}
	if in.Has(core.ActionRight) {
		g.playerX += g.conf.Player.Speed
	}
	g.playerX = core.ClampF(g.playerX, 1, float64(g.screenW-2))

	if g.cooldown > 0 {
		g.cooldown--
	}
	if (in.Has(core.ActionPrimary) || in.Has(core.ActionJump)) && g.cooldown == 0 {
		g.bullets = append(g.bullets, Bullet{X: g.playerX, Y: float64(g.playerY) - 1})
		g.cooldown = g.conf.Player.ShootCooldown
	}
}

func (g *Game) updateBullets() {
	alive := g.bullets[:0]
	for _, b := range g.bullets {
		b.Y -= g.conf.Player.BulletSpeed
		if b.Y < float64(g.hudRows) {
			continue
		}
		if hit := g.hitEnemy(b); !hit {
			alive = append(alive, b)
		}
	}
	g.bullets = alive
}

// hitEnemy checks a bullet against all enemies. On a kill the enemy
// respawns at the top and may drop a repair pickup.
func (g *Game) hitEnemy(b Bullet) bool {
	for i := range g.enemies {
		e := &g.enemies[i]
		if core.AbsF(e.X-b.X) <= 1 && core.AbsF(e.Y-b.Y) <= 1 {
			g.score += g.conf.Scoring.KillPoints
			if g.rng.Float64() < g.conf.Powerups.HealChance {
				g.pickups = append(g.pickups, Pickup{X: e.X, Y: e.Y})
			}
			*e = g.spawnEnemy()
			return true
		}
	}
	return false
}

func (g *Game) updateEnemies() {
	speedScale := g.diff.Speed(1.0, g.score, int(g.tick))

	for i := range g.enemies {
		e := &g.enemies[i]
		e.X += e.VX
		e.Y += e.VY * speedScale

		// Bounce off the side walls.
		if e.X < 1 || e.X > float64(g.screenW-2) {
			e.VX = -e.VX
			e.X = core.ClampF(e.X, 1, float64(g.screenW-2))
		}

		// Collision with the player ship.
		if core.AbsF(e.X-g.playerX) <= 1.5 && core.AbsF(e.Y-float64(g.playerY)) <= 1 {
			g.health -= g.conf.Scoring.CollisionDamage
			*e = g.spawnEnemy()
			if g.health <= 0 {
				g.health = 0
				g.gameOver = true
			}
			continue
		}

		// Fell past the bottom: respawn at the top.
		if e.Y > float64(g.screenH) {
			*e = g.spawnEnemy()
		}
	}
}

func (g *Game) updatePickups() {
	alive := g.pickups[:0]
	for _, p := range g.pickups {
		p.Y += g.conf.Powerups.FallSpeed
		if p.Y > float64(g.screenH) {
			continue
		}
		if core.AbsF(p.X-g.playerX) <= 1.5 && core.AbsF(p.Y-float64(g.playerY)) <= 1 {
			g.health = core.Min(g.health+g.conf.Powerups.HealAmount, g.conf.Player.MaxHealth)
			continue
		}
		alive = append(alive, p)
	}
	g.pickups = alive
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	for _, b := range g.bullets {
		dst.SetCell(int(b.X), int(b.Y), '|', core.ColorBrightYellow)
	}
	for _, p := range g.pickups {
		dst.SetCell(int(p.X), int(p.Y), '+', core.ColorBrightGreen)
	}
	for _, e := range g.enemies {
		if e.Y >= float64(g.hudRows) {
			dst.SetCell(int(e.X), int(e.Y), 'V', core.ColorBrightRed)
		}
	}

	// Player ship.
	px := int(g.playerX)
	dst.SetCell(px-1, g.playerY, '<', core.ColorBrightCyan)
	dst.SetCell(px, g.playerY, 'A', core.ColorBrightCyan)
	dst.SetCell(px+1, g.playerY, '>', core.ColorBrightCyan)

	if g.paused {
		dst.DrawTextCentered(g.screenH/2, "= PAUSED =")
	}
	if g.gameOver {
		dst.DrawTextCentered(g.screenH/2-1, "GAME OVER")
		dst.DrawTextCentered(g.screenH/2, fmt.Sprintf("Score: %d", g.score))
		dst.DrawTextCentered(g.screenH/2+1, "Press R to restart")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(g.screenW-18, 0, "HP ")
	dst.DrawHBar(g.screenW-15, 0, 12, float64(g.health), float64(g.conf.Player.MaxHealth),
		core.ColorBrightGreen, core.ColorGray)
	dst.DrawHLine(0, 1, g.screenW, '─', core.ColorGray)
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
