package incrpg

import (
	"testing"

	"gameforge/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 31}
}

func TestInitialWorld(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if len(g.nodes) != startNodes {
		t.Fatalf("node count = %d, want %d", len(g.nodes), startNodes)
	}
	for _, n := range g.nodes {
		if !n.Active {
			t.Error("all starting nodes should be active")
		}
		if n.X < 0 || n.X >= worldW || n.Y < 0 || n.Y >= worldH {
			t.Errorf("node out of bounds: %+v", n)
		}
	}
}

func TestHarvestWithinRange(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.nodes = []Node{
		{X: int(g.playerX) + 2, Y: int(g.playerY), Active: true},  // In range
		{X: int(g.playerX) + 50, Y: int(g.playerY), Active: true}, // Out of range
	}
	g.harvest()

	if g.nodes[0].Active {
		t.Error("node in range should be harvested")
	}
	if !g.nodes[1].Active {
		t.Error("node out of range should survive")
	}
	if g.resources != g.yield {
		t.Errorf("resources = %d, want %d", g.resources, g.yield)
	}
	if g.nodes[0].RespawnIn != baseRespawn {
		t.Errorf("respawn delay = %d, want %d", g.nodes[0].RespawnIn, baseRespawn)
	}
}

func TestNodeRespawns(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.nodes = []Node{{X: 1, Y: 1, Active: false, RespawnIn: 2}}
	g.respawnNodes()
	if g.nodes[0].Active {
		t.Fatal("node respawned too early")
	}
	g.respawnNodes()
	if !g.nodes[0].Active {
		t.Error("node should respawn when the timer expires")
	}
}

func TestUpgradesApply(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.resources = 1000

	baseRange := g.collectRange
	baseSpeed := g.moveSpeed
	baseYield := g.yield
	baseMult := g.respawnMult

	for i := 0; i < 4; i++ {
		g.buy(i)
	}

	if g.collectRange != baseRange+1 {
		t.Errorf("range = %f, want %f", g.collectRange, baseRange+1)
	}
	if g.moveSpeed != baseSpeed+0.1 {
		t.Errorf("speed = %f, want %f", g.moveSpeed, baseSpeed+0.1)
	}
	if g.yield != baseYield+1 {
		t.Errorf("yield = %d, want %d", g.yield, baseYield+1)
	}
	if g.respawnMult >= baseMult {
		t.Errorf("respawn multiplier should shrink, got %f", g.respawnMult)
	}
}

func TestNodeCapRespected(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Run long enough for many spawn intervals.
	for i := 0; i < spawnInterval*80; i++ {
		g.spawnNewNodes()
	}
	if len(g.nodes) > maxNodes {
		t.Errorf("node count %d exceeds cap %d", len(g.nodes), maxNodes)
	}
}

func TestUpgradeCostScaling(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.resources = 20

	g.buy(0)
	if g.upgrades[0].Cost != 30 {
		t.Errorf("cost = %d, want 30", g.upgrades[0].Cost)
	}

	// Can no longer afford the next level.
	g.buy(0)
	if g.upgrades[0].Level != 1 {
		t.Errorf("level = %d, want 1", g.upgrades[0].Level)
	}
}
