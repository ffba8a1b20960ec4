package towerdef

import (
	"testing"

	"gameforge/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func TestPathIsConnected(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if len(g.path) == 0 {
		t.Fatal("path must not be empty")
	}
	if g.path[0].X != 0 {
		t.Errorf("path should start at the left edge, got %v", g.path[0])
	}
	if g.path[len(g.path)-1].X != g.screenW-1 {
		t.Errorf("path should end at the right edge, got %v", g.path[len(g.path)-1])
	}

	for i := 1; i < len(g.path); i++ {
		d := core.Manhattan(g.path[i-1].X, g.path[i-1].Y, g.path[i].X, g.path[i].Y)
		if d != 1 {
			t.Fatalf("path cells %d and %d are not adjacent: %v -> %v", i-1, i, g.path[i-1], g.path[i])
		}
	}
}

func TestPlaceTowerSpendsGold(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	spot := g.findBuildableCell(t)
	goldBefore := g.gold
	g.placeTower(spot)

	if len(g.towers) != 1 {
		t.Fatalf("tower count = %d, want 1", len(g.towers))
	}
	if g.gold != goldBefore-g.conf.Towers.Cost {
		t.Errorf("gold = %d, want %d", g.gold, goldBefore-g.conf.Towers.Cost)
	}

	// Same cell is occupied now.
	g.placeTower(spot)
	if len(g.towers) != 1 {
		t.Error("should not stack towers on one cell")
	}
}

func TestCannotBuildOnPath(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.placeTower(g.path[len(g.path)/2])
	if len(g.towers) != 0 {
		t.Error("tower built on the path")
	}
}

func TestCannotBuildWithoutGold(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.gold = g.conf.Towers.Cost - 1

	g.placeTower(g.findBuildableCell(t))
	if len(g.towers) != 0 {
		t.Error("tower built without enough gold")
	}
}

func TestTowerKillsCreepAndPaysReward(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// One weak creep at the path start, one tower in range.
	g.creeps = []Creep{{Health: g.conf.Towers.Damage, MaxHealth: 30}}
	g.towers = []Tower{{Pos: g.nearPathCell()}}

	goldBefore := g.gold
	g.updateTowers()

	if len(g.creeps) != 0 {
		t.Fatalf("creep should die, %d left with health %d", len(g.creeps), g.creeps[0].Health)
	}
	if g.gold != goldBefore+g.conf.Enemies.Reward {
		t.Errorf("gold = %d, want %d", g.gold, goldBefore+g.conf.Enemies.Reward)
	}
	if g.towers[0].Cooldown != g.conf.Towers.AttackTicks {
		t.Errorf("tower cooldown = %d, want %d", g.towers[0].Cooldown, g.conf.Towers.AttackTicks)
	}
}

func TestLeakedCreepCostsLife(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.creeps = []Creep{{Progress: float64(len(g.path)), Health: 100, MaxHealth: 100}}
	livesBefore := g.lives
	g.updateCreeps()

	if g.lives != livesBefore-1 {
		t.Errorf("lives = %d, want %d", g.lives, livesBefore-1)
	}
	if len(g.creeps) != 0 {
		t.Error("leaked creep should be removed")
	}
}

func TestWaveSizeGrows(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Let the first wave start.
	for g.wave == 0 {
		g.Step(core.NewInputFrame())
	}
	firstWave := g.toSpawn + len(g.creeps)

	// Wave n spawns base + per*n creeps.
	want := g.conf.Waves.BaseCount + g.conf.Waves.PerWave
	if firstWave != want {
		t.Errorf("wave 1 size = %d, want %d", firstWave, want)
	}

	// Drain wave one and let wave two arm.
	g.creeps = nil
	g.toSpawn = 0
	for g.wave == 1 {
		g.Step(core.NewInputFrame())
		g.creeps = nil
	}
	secondWave := g.toSpawn

	want = g.conf.Waves.BaseCount + 2*g.conf.Waves.PerWave
	if secondWave != want {
		t.Errorf("wave 2 size = %d, want %d", secondWave, want)
	}
}

func TestGameOverWhenLivesExhausted(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.lives = 1

	g.creeps = []Creep{{Progress: float64(len(g.path)), Health: 10, MaxHealth: 10}}
	g.updateCreeps()

	if !g.gameOver {
		t.Error("game should end when lives reach zero")
	}
}

// findBuildableCell scans for a legal build spot.
func (g *Game) findBuildableCell(t *testing.T) Point {
	t.Helper()
	for y := g.hudRows; y < g.screenH-1; y++ {
		for x := 0; x < g.screenW; x++ {
			g.cursor = Point{X: x, Y: y}
			if g.CanPlace() {
				return g.cursor
			}
		}
	}
	t.Fatal("no buildable cell found")
	return Point{}
}

// nearPathCell returns a buildable cell close enough to shoot the path
// start.
func (g *Game) nearPathCell() Point {
	start := g.path[0]
	return Point{X: start.X + g.conf.Towers.PathClearance + 1, Y: start.Y + g.conf.Towers.PathClearance + 1}
}
