package rpg

import (
	"testing"

	"gameforge/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99}
}

func TestLandmarkGeneration(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	want := numTrees + numRocks + numHouses
	if len(g.landmarks) != want {
		t.Fatalf("landmark count = %d, want %d", len(g.landmarks), want)
	}

	for _, lm := range g.landmarks {
		if lm.X < 0 || lm.X >= worldW || lm.Y < 0 || lm.Y >= worldH {
			t.Errorf("landmark out of world bounds: %+v", lm)
		}
	}
}

func TestSameSeedSameWorld(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig())
	g2 := New()
	g2.Reset(testConfig())

	for i := range g1.landmarks {
		a, b := g1.landmarks[i], g2.landmarks[i]
		if a.X != b.X || a.Y != b.Y || a.Kind != b.Kind {
			t.Fatalf("worlds diverge at landmark %d: %+v vs %+v", i, a, b)
		}
	}
}

func TestPlayerClampedToWorld(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 1000; i++ {
		g.Step(left)
	}
	if g.playerX < 0 {
		t.Errorf("player left the world: x = %f", g.playerX)
	}
	if g.camX < 0 {
		t.Errorf("camera left the world: camX = %f", g.camX)
	}
}

func TestDiagonalNormalization(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	startX, startY := g.playerX, g.playerY
	diag := core.NewInputFrame()
	diag.Set(core.ActionRight)
	diag.Set(core.ActionDown)
	g.Step(diag)

	dx := g.playerX - startX
	dy := g.playerY - startY
	wantStep := walkSpeed * diagNorm
	if core.AbsF(dx-wantStep) > 1e-9 || core.AbsF(dy-wantStep) > 1e-9 {
		t.Errorf("diagonal step = (%f, %f), want (%f, %f)", dx, dy, wantStep, wantStep)
	}
}

func TestSprintDrainsStamina(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	sprint := core.NewInputFrame()
	sprint.Set(core.ActionRight)
	sprint.Set(core.ActionPrimary)
	g.Step(sprint)

	if g.stamina >= maxStamina {
		t.Error("sprinting should drain stamina")
	}

	// Resting recovers it.
	low := g.stamina
	g.Step(core.NewInputFrame())
	if g.stamina <= low {
		t.Error("resting should recover stamina")
	}
}

func TestDiscoveryAwardsOnce(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Everything already visible was discovered during Reset's first
	// camera update plus the first Step.
	g.Step(core.NewInputFrame())
	first := g.score
	g.Step(core.NewInputFrame())

	if g.score != first {
		t.Errorf("standing still re-awarded discovery points: %d -> %d", first, g.score)
	}
}
