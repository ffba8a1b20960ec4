// Package incrpg implements an incremental top-down hybrid: walk a
// scrolling world harvesting resource nodes, then spend the harvest on
// upgrades that make the walking and harvesting better.
package incrpg

import (
	"fmt"
	"math/rand"

	"gameforge/internal/core"
	"gameforge/internal/registry"
)

const (
	worldW = 120
	worldH = 60

	startNodes = 100
	maxNodes   = 150

	// Ticks between new node spawns and the base respawn delay.
	spawnInterval = 300 // 5s at 60 ticks/sec
	baseRespawn   = 600 // 10s
)

// Node is a harvestable resource in the world.
type Node struct {
	X, Y      int
	Active    bool
	RespawnIn int
}

// Upgrade is a purchasable improvement. Cost grows 1.5x per level.
type Upgrade struct {
	Name  string
	Cost  int
	Level int
}

// Game implements the hybrid.
type Game struct {
	rng *rand.Rand

	screenW int
	screenH int
	viewH   int

	playerX float64
	playerY float64
	camX    float64
	camY    float64

	nodes []Node

	resources int
	collected int // Lifetime total, reported as score

	// Upgradeable stats.
	collectRange float64
	moveSpeed    float64
	yield        int
	respawnMult  float64

	upgrades   []Upgrade
	spawnTimer int

	tick   uint64
	paused bool
}

func init() {
	registry.Register("incrpg", func() registry.Game { return New() })
}

// New creates a new hybrid game instance.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "incrpg"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Harvest Walker"
}

// Reset initializes the game with the given runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.viewH = cfg.ScreenH - 2

	g.playerX = worldW / 2
	g.playerY = worldH / 2

	g.nodes = make([]Node, 0, startNodes)
	for i := 0; i < startNodes; i++ {
		g.nodes = append(g.nodes, g.newNode())
	}

	g.resources = 0
	g.collected = 0
	g.collectRange = 5
	g.moveSpeed = 0.5
	g.yield = 1
	g.respawnMult = 1.0

	g.upgrades = []Upgrade{
		{Name: "Collection Range", Cost: 20},
		{Name: "Move Speed", Cost: 30},
		{Name: "Yield", Cost: 50},
		{Name: "Respawn Speed", Cost: 75},
	}

	g.spawnTimer = spawnInterval
	g.tick = 0
	g.paused = false
	g.updateCamera()
}

func (g *Game) newNode() Node {
	return Node{
		X:      g.rng.Intn(worldW),
		Y:      g.rng.Intn(worldH),
		Active: true,
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
	g.processInput(in)
	g.harvest()
	g.respawnNodes()
	g.spawnNewNodes()
	g.updateCamera()

	return core.StepResult{State: g.State()}
}

func (g *Game) processInput(in core.InputFrame) {
	var vx, vy float64
	if in.Has(core.ActionUp) {
		vy = -g.moveSpeed
	}
	if in.Has(core.ActionDown) {
		vy = g.moveSpeed
	}
	if in.Has(core.ActionLeft) {
		vx = -g.moveSpeed
	}
	if in.Has(core.ActionRight) {
		vx = g.moveSpeed
	}
	if vx != 0 && vy != 0 {
		vx *= 0.7071
		vy *= 0.7071
	}
	g.playerX = core.ClampF(g.playerX+vx, 0, worldW-1)
	g.playerY = core.ClampF(g.playerY+vy, 0, worldH-1)

	switch {
	case in.Has(core.ActionSlot1):
		g.buy(0)
	case in.Has(core.ActionSlot2):
		g.buy(1)
	case in.Has(core.ActionSlot3):
		g.buy(2)
	case in.Has(core.ActionSlot4):
		g.buy(3)
	}
}

// buy purchases an upgrade if affordable and applies its effect.
func (g *Game) buy(index int) {
	if index < 0 || index >= len(g.upgrades) {
		return
	}
	u := &g.upgrades[index]
	if g.resources < u.Cost {
		return
	}

	g.resources -= u.Cost
	u.Level++
	u.Cost = int(float64(u.Cost) * 1.5)

	switch index {
	case 0:
		g.collectRange++
	case 1:
		g.moveSpeed += 0.1
	case 2:
		g.yield++
	case 3:
		g.respawnMult *= 0.9
	}
}

// harvest collects every active node within collection range.
func (g *Game) harvest() {
	for i := range g.nodes {
		n := &g.nodes[i]
		if !n.Active {
			continue
		}
		dx := float64(n.X) - g.playerX
		dy := float64(n.Y) - g.playerY
		if dx*dx+dy*dy <= g.collectRange*g.collectRange {
			n.Active = false
			n.RespawnIn = int(baseRespawn * g.respawnMult)
			g.resources += g.yield
			g.collected += g.yield
		}
	}
}

func (g *Game) respawnNodes() {
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.Active {
			continue
		}
		n.RespawnIn--
		if n.RespawnIn <= 0 {
			// Respawn somewhere fresh.
			*n = g.newNode()
		}
	}
}

func (g *Game) spawnNewNodes() {
	g.spawnTimer--
	if g.spawnTimer > 0 {
		return
	}
	g.spawnTimer = spawnInterval
	if len(g.nodes) < maxNodes {
		g.nodes = append(g.nodes, g.newNode())
	}
}

func (g *Game) updateCamera() {
	g.camX = core.ClampF(g.playerX-float64(g.screenW)/2, 0, core.ClampF(worldW-float64(g.screenW), 0, worldW))
	g.camY = core.ClampF(g.playerY-float64(g.viewH)/2, 0, core.ClampF(worldH-float64(g.viewH), 0, worldH))
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	offY := 2
	for _, n := range g.nodes {
		if !n.Active {
			continue
		}
		sx := n.X - int(g.camX)
		sy := n.Y - int(g.camY)
		if sx < 0 || sx >= g.screenW || sy < 0 || sy >= g.viewH {
			continue
		}
		dst.SetCell(sx, sy+offY, '◆', core.ColorBrightYellow)
	}

	px := int(g.playerX - g.camX)
	py := int(g.playerY-g.camY) + offY
	dst.SetCell(px, py, '@', core.ColorBrightGreen)

	if g.paused {
		dst.DrawTextCentered(g.screenH/2, "= PAUSED =")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Resources: %d  Collected: %d", g.resources, g.collected))
	x := 40
	for i, u := range g.upgrades {
		label := fmt.Sprintf("[%d] %s L%d (%d)", i+1, u.Name, u.Level, u.Cost)
		color := core.ColorGray
		if g.resources >= u.Cost {
			color = core.ColorBrightGreen
		}
		dst.DrawTextColor(x, 0, label, color)
		x += len(label) + 2
	}
	dst.DrawHLine(0, 1, g.screenW, '─', core.ColorGray)
}

// State returns the platform-visible game state. Score is the lifetime
// harvest.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.collected,
		Paused: g.paused,
	}
}
