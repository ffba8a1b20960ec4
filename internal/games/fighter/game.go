// Package fighter implements a shared-keyboard fighting duel: two
// fighters, best of three rounds, punch/kick/block with blocking halving
// incoming damage.
package fighter

import (
	"fmt"

	"gameforge/internal/core"
	"gameforge/internal/registry"
)

const (
	gravity     = 0.07
	jumpImpulse = -1.2
	moveSpeed   = 0.6

	punchDamage = 10
	kickDamage  = 15
	attackReach = 3.0

	// Ticks between attacks.
	attackCooldown = 20

	maxHealth    = 100
	roundsToWin  = 2
	introTicks   = 60
	roundEndWait = 90
)

// AttackKind distinguishes the two strikes.
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackPunch
	AttackKick
)

// Fighter is one combatant.
type Fighter struct {
	X, Y     float64
	VY       float64
	Health   int
	Facing   int // +1 right, -1 left
	Blocking bool
	Cooldown int
	OnGround bool
	// Attack currently connecting, for render feedback.
	Attacking AttackKind
}

// Game implements the fighting duel.
type Game struct {
	screenW int
	screenH int
	floorY  int

	p1, p2   Fighter
	wins1    int
	wins2    int
	round    int
	intro    int // Countdown before a round starts
	roundEnd int // Countdown after a round ends

	tick     uint64
	gameOver bool
	paused   bool
	winner   int // 0 none, 1 or 2
}

func init() {
	registry.Register("fighter", func() registry.Game { return New() })
}

// New creates a new fighter game instance.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "fighter"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Arena Duel"
}

// Reset initializes the game with the given runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.floorY = cfg.ScreenH - 3

	g.wins1 = 0
	g.wins2 = 0
	g.round = 1
	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.winner = 0

	g.startRound()
}

// startRound resets both fighters to their corners at full health.
func (g *Game) startRound() {
	quarter := float64(g.screenW) / 4
	g.p1 = Fighter{X: quarter, Y: float64(g.floorY), Health: maxHealth, Facing: 1, OnGround: true}
	g.p2 = Fighter{X: 3 * quarter, Y: float64(g.floorY), Health: maxHealth, Facing: -1, OnGround: true}
	g.intro = introTicks
	g.roundEnd = 0
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH, TickRate: 60})
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if g.intro > 0 {
		g.intro--
		return core.StepResult{State: g.State()}
	}
	if g.roundEnd > 0 {
		g.roundEnd--
		if g.roundEnd == 0 {
			g.advanceRound()
		}
		return core.StepResult{State: g.State()}
	}

	// Stances first so a block raised this tick halves attacks resolved
	// this tick, then both attacks against the settled stances.
	p1In, p2In := splitInput(in)
	g.stepStance(&g.p1, p1In)
	g.stepStance(&g.p2, p2In)
	g.faceEachOther()
	g.resolveAttack(&g.p1, &g.p2, p1In)
	g.resolveAttack(&g.p2, &g.p1, p2In)

	if g.p1.Health <= 0 || g.p2.Health <= 0 {
		if g.p2.Health <= 0 {
			g.wins1++
		} else {
			g.wins2++
		}
		g.roundEnd = roundEndWait
	}

	return core.StepResult{State: g.State()}
}

// fighterInput is the per-player slice of an input frame.
type fighterInput struct {
	left, right, jump bool
	punch, kick       bool
	block             bool
}

func splitInput(in core.InputFrame) (p1, p2 fighterInput) {
	p1 = fighterInput{
		left:  in.Has(core.ActionLeft),
		right: in.Has(core.ActionRight),
		jump:  in.Has(core.ActionUp) || in.Has(core.ActionJump),
		punch: in.Has(core.ActionPrimary),
		kick:  in.Has(core.ActionSecondary),
		block: in.Has(core.ActionBlock),
	}
	p2 = fighterInput{
		left:  in.Has(core.ActionP2Left),
		right: in.Has(core.ActionP2Right),
		jump:  in.Has(core.ActionP2Up),
		punch: in.Has(core.ActionP2Primary),
		kick:  in.Has(core.ActionP2Secondary),
		block: in.Has(core.ActionP2Block),
	}
	return p1, p2
}

// stepStance applies one tick of stance and physics for f: blocking,
// movement, jumping and cooldown recovery.
func (g *Game) stepStance(f *Fighter, in fighterInput) {
	f.Blocking = in.block
	f.Attacking = AttackNone

	if !f.Blocking {
		if in.left {
			f.X -= moveSpeed
		}
		if in.right {
			f.X += moveSpeed
		}
	}
	f.X = core.ClampF(f.X, 2, float64(g.screenW-3))

	if in.jump && f.OnGround {
		f.VY = jumpImpulse
		f.OnGround = false
	}
	f.VY += gravity
	f.Y += f.VY
	if f.Y >= float64(g.floorY) {
		f.Y = float64(g.floorY)
		f.VY = 0
		f.OnGround = true
	}

	if f.Cooldown > 0 {
		f.Cooldown--
	}
}

// resolveAttack resolves f's attack for this tick against opponent o.
// Stances for the tick are already settled, so a block raised in the
// same frame counts.
func (g *Game) resolveAttack(f, o *Fighter, in fighterInput) {
	var kind AttackKind
	var damage int
	switch {
	case in.punch:
		kind, damage = AttackPunch, punchDamage
	case in.kick:
		kind, damage = AttackKick, kickDamage
	default:
		return
	}
	if f.Cooldown > 0 || f.Blocking {
		return
	}

	f.Cooldown = attackCooldown
	f.Attacking = kind

	// Hit needs horizontal reach, rough vertical alignment and facing.
	dx := o.X - f.X
	if core.AbsF(dx) > attackReach || core.AbsF(o.Y-f.Y) > 2 {
		return
	}
	if (dx > 0 && f.Facing < 0) || (dx < 0 && f.Facing > 0) {
		return
	}

	if o.Blocking {
		damage /= 2
	}
	o.Health -= damage
	if o.Health < 0 {
		o.Health = 0
	}
}

func (g *Game) faceEachOther() {
	if g.p1.X < g.p2.X {
		g.p1.Facing, g.p2.Facing = 1, -1
	} else {
		g.p1.Facing, g.p2.Facing = -1, 1
	}
}

// advanceRound moves to the next round or ends the match.
func (g *Game) advanceRound() {
	if g.wins1 >= roundsToWin || g.wins2 >= roundsToWin {
		g.gameOver = true
		if g.wins1 > g.wins2 {
			g.winner = 1
		} else {
			g.winner = 2
		}
		return
	}
	g.round++
	g.startRound()
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	// Floor.
	dst.DrawHLine(0, g.floorY+1, g.screenW, '═', core.ColorGray)

	g.renderFighter(dst, &g.p1, core.ColorBrightCyan)
	g.renderFighter(dst, &g.p2, core.ColorBrightRed)

	switch {
	case g.paused:
		dst.DrawTextCentered(g.screenH/2, "= PAUSED =")
	case g.gameOver:
		dst.DrawTextCentered(g.screenH/2-1, fmt.Sprintf("PLAYER %d WINS THE MATCH", g.winner))
		dst.DrawTextCentered(g.screenH/2+1, "Press R to restart")
	case g.intro > 0:
		dst.DrawTextCentered(g.screenH/2, fmt.Sprintf("ROUND %d", g.round))
	case g.roundEnd > 0:
		dst.DrawTextCentered(g.screenH/2, "K.O.")
	}
}

func (g *Game) renderFighter(dst *core.Screen, f *Fighter, c core.Color) {
	x, y := int(f.X), int(f.Y)
	body := '@'
	if f.Blocking {
		body = 'D'
	}
	dst.SetCell(x, y-1, 'o', c)
	dst.SetCell(x, y, body, c)

	// Strike extends one cell toward the opponent.
	if f.Attacking != AttackNone {
		r := '-'
		if f.Attacking == AttackKick {
			r = '='
		}
		dst.SetCell(x+f.Facing, y, r, core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	barW := g.screenW/2 - 6
	dst.DrawText(1, 0, "P1")
	dst.DrawHBar(4, 0, barW, float64(g.p1.Health), maxHealth, core.ColorBrightGreen, core.ColorGray)
	dst.DrawText(g.screenW-3, 0, "P2")
	dst.DrawHBar(g.screenW-3-barW-1, 0, barW, float64(g.p2.Health), maxHealth, core.ColorBrightGreen, core.ColorGray)

	dst.DrawTextCentered(1, fmt.Sprintf("Round %d   %d : %d", g.round, g.wins1, g.wins2))
}

// State returns the platform-visible game state. Score counts rounds won
// by player one.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.wins1 * 100,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
