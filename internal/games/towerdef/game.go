// Package towerdef implements a tower defense game: creeps march along a
// fixed waypoint path, the player places towers on open ground with gold
// earned from kills and cleared waves.
package towerdef

import (
	"fmt"
	"math/rand"

	"gameforge/internal/config"
	"gameforge/internal/core"
	"gameforge/internal/registry"
)

// Point is a grid cell.
type Point struct {
	X, Y int
}

// Tower is a placed defense tower.
type Tower struct {
	Pos      Point
	Cooldown int
}

// Creep is an enemy walking the path. Progress indexes into the path cell
// sequence.
type Creep struct {
	Progress  float64
	Health    int
	MaxHealth int
}

// Game implements tower defense.
type Game struct {
	conf config.TowerDefConfig
	diff *config.DifficultyManager
	rng  *rand.Rand

	screenW int
	screenH int
	hudRows int

	path     []Point
	pathSet  map[Point]bool
	towers   []Tower
	towerSet map[Point]bool
	creeps   []Creep

	cursor Point

	wave       int
	toSpawn    int
	spawnTimer int
	waveBreak  int // Ticks until the next wave starts

	gold  int
	lives int
	score int

	tick     uint64
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
	registry.Register("towerdef", func() registry.Game { return New() })
}

// New creates a new tower defense game instance.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "towerdef"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tower Defense"
}

// Reset initializes the game with the given runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	conf, err := config.LoadTowerDef(configPath)
	if err != nil {
		conf = config.DefaultTowerDefConfig()
	}
	config.ApplyTowerDefPreset(&conf, difficultyPreset)

	g.conf = conf
	g.diff = config.NewDifficultyManager(conf.Difficulty)
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudRows = 2

	g.buildPath()
	g.towers = nil
	g.towerSet = make(map[Point]bool)
	g.creeps = nil

	g.cursor = Point{X: cfg.ScreenW / 2, Y: cfg.ScreenH / 2}

	g.wave = 0
	g.toSpawn = 0
	g.spawnTimer = 0
	g.waveBreak = 120

	g.gold = conf.Gameplay.StartGold
	g.lives = conf.Gameplay.Lives
	g.score = 0

	g.tick = 0
	g.gameOver = false
	g.paused = false
}

// buildPath lays a three-bend path from the left edge to the right edge.
// Waypoints scale with the playfield so any terminal size gets a sensible
// course.
func (g *Game) buildPath() {
	top := g.hudRows + 2
	bottom := g.screenH - 3
	midX := g.screenW / 2

	waypoints := []Point{
		{0, top + (bottom-top)/3},
		{midX / 2, top + (bottom-top)/3},
		{midX / 2, bottom},
		{midX + midX/2, bottom},
		{midX + midX/2, top},
		{g.screenW - 1, top},
	}

	g.path = nil
	g.pathSet = make(map[Point]bool)
	for i := 0; i < len(waypoints)-1; i++ {
		a, b := waypoints[i], waypoints[i+1]
		dx := sign(b.X - a.X)
		dy := sign(b.Y - a.Y)
		p := a
		for p != b {
			g.appendPathCell(p)
			p.X += dx
			p.Y += dy
		}
	}
	g.appendPathCell(waypoints[len(waypoints)-1])
}

func (g *Game) appendPathCell(p Point) {
	if !g.pathSet[p] {
		g.path = append(g.path, p)
		g.pathSet[p] = true
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
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
	g.processInput(in)
	g.updateWave()
	g.updateCreeps()
	g.updateTowers()

	return core.StepResult{State: g.State()}
}

func (g *Game) processInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.cursor.X--
	}
	if in.Has(core.ActionRight) {
		g.cursor.X++
	}
	if in.Has(core.ActionUp) {
		g.cursor.Y--
	}
	if in.Has(core.ActionDown) {
		g.cursor.Y++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, g.screenW-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, g.hudRows, g.screenH-2)

	if in.Has(core.ActionPrimary) || in.Has(core.ActionConfirm) {
		g.placeTower(g.cursor)
	}
}

// placeTower builds at p when affordable, unoccupied and clear of the path.
func (g *Game) placeTower(p Point) {
	if g.gold < g.conf.Towers.Cost || g.towerSet[p] {
		return
	}
	for _, pc := range g.path {
		if core.Abs(pc.X-p.X) < g.conf.Towers.PathClearance &&
			core.Abs(pc.Y-p.Y) < g.conf.Towers.PathClearance {
			return
		}
	}
	g.gold -= g.conf.Towers.Cost
	g.towers = append(g.towers, Tower{Pos: p})
	g.towerSet[p] = true
}

// CanPlace reports whether a tower may be built at the cursor.
func (g *Game) CanPlace() bool {
	if g.towerSet[g.cursor] {
		return false
	}
	for _, pc := range g.path {
		if core.Abs(pc.X-g.cursor.X) < g.conf.Towers.PathClearance &&
			core.Abs(pc.Y-g.cursor.Y) < g.conf.Towers.PathClearance {
			return false
		}
	}
	return true
}

func (g *Game) updateWave() {
	if g.waveBreak > 0 {
		g.waveBreak--
		if g.waveBreak == 0 {
			g.wave++
			g.toSpawn = g.conf.Waves.BaseCount + g.conf.Waves.PerWave*g.wave
			g.spawnTimer = 0
		}
		return
	}

	if g.toSpawn > 0 {
		if g.spawnTimer > 0 {
			g.spawnTimer--
		} else {
			health := g.conf.Enemies.BaseHealth + g.conf.Enemies.HealthPerWave*(g.wave-1)
			g.creeps = append(g.creeps, Creep{Health: health, MaxHealth: health})
			g.toSpawn--
			g.spawnTimer = g.conf.Waves.SpawnTicks
		}
		return
	}

	// Wave cleared once everything spawned is dead or leaked.
	if len(g.creeps) == 0 {
		g.gold += g.conf.Waves.ClearBonus
		g.score += g.conf.Waves.ClearBonus
		g.waveBreak = 180
	}
}

func (g *Game) updateCreeps() {
	speed := g.diff.Speed(g.conf.Enemies.Speed, g.score, int(g.tick))

	alive := g.creeps[:0]
	for _, c := range g.creeps {
		c.Progress += speed
		if int(c.Progress) >= len(g.path) {
			g.lives--
			if g.lives <= 0 {
				g.lives = 0
				g.gameOver = true
			}
			continue
		}
		alive = append(alive, c)
	}
	g.creeps = alive
}

func (g *Game) updateTowers() {
	for i := range g.towers {
		t := &g.towers[i]
		if t.Cooldown > 0 {
			t.Cooldown--
			continue
		}

		target := g.nearestCreep(t.Pos)
		if target < 0 {
			continue
		}

		t.Cooldown = g.conf.Towers.AttackTicks
		c := &g.creeps[target]
		c.Health -= g.conf.Towers.Damage
		if c.Health <= 0 {
			g.gold += g.conf.Enemies.Reward
			g.score += g.conf.Enemies.Reward
			g.creeps = append(g.creeps[:target], g.creeps[target+1:]...)
		}
	}
}

// nearestCreep returns the index of the closest creep in range, or -1.
func (g *Game) nearestCreep(from Point) int {
	best := -1
	bestDist := g.conf.Towers.Range + 1
	for i, c := range g.creeps {
		pos := g.creepPos(c)
		d := float64(core.Manhattan(from.X, from.Y, pos.X, pos.Y))
		if d <= g.conf.Towers.Range && d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func (g *Game) creepPos(c Creep) Point {
	idx := core.Clamp(int(c.Progress), 0, len(g.path)-1)
	return g.path[idx]
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	for _, p := range g.path {
		dst.SetCell(p.X, p.Y, '░', core.ColorGray)
	}
	for _, t := range g.towers {
		dst.SetCell(t.Pos.X, t.Pos.Y, 'T', core.ColorBrightCyan)
	}
	for _, c := range g.creeps {
		pos := g.creepPos(c)
		color := core.ColorBrightRed
		if c.Health > c.MaxHealth/2 {
			color = core.ColorBrightMagenta
		}
		dst.SetCell(pos.X, pos.Y, 'o', color)
	}

	cursorColor := core.ColorBrightYellow
	if !g.CanPlace() || g.gold < g.conf.Towers.Cost {
		cursorColor = core.ColorRed
	}
	dst.SetCell(g.cursor.X, g.cursor.Y, '+', cursorColor)

	if g.paused {
		dst.DrawTextCentered(g.screenH/2, "= PAUSED =")
	}
	if g.gameOver {
		dst.DrawTextCentered(g.screenH/2-1, "THE BASE HAS FALLEN")
		dst.DrawTextCentered(g.screenH/2, fmt.Sprintf("Survived %d waves, score %d", g.wave, g.score))
		dst.DrawTextCentered(g.screenH/2+1, "Press R to restart")
	} else if g.waveBreak > 0 {
		dst.DrawTextCentered(g.hudRows, fmt.Sprintf("Wave %d incoming...", g.wave+1))
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Gold: %d  Lives: %d  Wave: %d  Score: %d  (build: Space, %dg)",
		g.gold, g.lives, g.wave, g.score, g.conf.Towers.Cost))
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
