package jumper

import (
	"testing"

	"gameforge/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 4242}
}

func TestEveryGapIsReachable(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	normalReach := g.maxJumpHeight(g.conf.Physics.JumpImpulse)
	superReach := g.maxJumpHeight(g.conf.Physics.SuperImpulse)

	// Climb a long way to force plenty of generation.
	for i := 0; i < 50; i++ {
		g.camY -= float64(g.screenH)
		g.generateAhead()
	}

	for i := 1; i < len(g.platforms); i++ {
		below := g.platforms[i-1]
		above := g.platforms[i]
		gap := float64(below.Y - above.Y)

		reach := normalReach
		if below.Super {
			reach = superReach
		}
		if gap > reach {
			t.Fatalf("platform %d unreachable: gap %f exceeds reach %f (super=%v)",
				i, gap, reach, below.Super)
		}
	}
}

func TestAutoJumpOnLanding(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Drop the player onto a hand-placed platform.
	g.platforms = []Platform{{X: 0, Y: 20, W: g.screenW}}
	g.topY = -10000 // Keep generation quiet
	g.playerY = 10
	g.vy = 1.0

	for i := 0; i < 60 && g.vy > 0; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.vy != g.conf.Physics.JumpImpulse {
		t.Errorf("landing should rebound with the jump impulse, vy = %f", g.vy)
	}
	if g.playerY != 19 {
		t.Errorf("player should rest on the platform top, y = %f", g.playerY)
	}
}

func TestSuperPadRebound(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.platforms = []Platform{{X: 0, Y: 20, W: g.screenW, Super: true}}
	g.topY = -10000
	g.playerY = 10
	g.vy = 1.0

	for i := 0; i < 60 && g.vy > 0; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.vy != g.conf.Physics.SuperImpulse {
		t.Errorf("pad should rebound with the super impulse, vy = %f", g.vy)
	}
}

func TestHorizontalWrap(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.playerX = 0.2

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	g.Step(left)

	if g.playerX < 0 || g.playerX >= float64(g.screenW) {
		t.Errorf("player should wrap, x = %f", g.playerX)
	}
	if g.playerX < float64(g.screenW)/2 {
		t.Errorf("player should appear near the right edge, x = %f", g.playerX)
	}
}

func TestDespawnScoresPlatforms(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Drop a platform far below the camera and collect it.
	g.platforms = append(g.platforms, Platform{X: 10, Y: int(g.camY) + g.screenH + 50, W: 5})
	before := g.score
	g.despawnBelow()

	if g.score != before+g.conf.Scoring.PlatformPoints {
		t.Errorf("score = %d, want %d", g.score, before+g.conf.Scoring.PlatformPoints)
	}
}

func TestFallingEndsRun(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Teleport the player far below the kill line.
	g.playerY = g.camY + g.conf.Camera.KillFactor*float64(g.screenH) + 100
	g.vy = g.conf.Physics.MaxFallSpeed
	g.platforms = nil
	g.topY = -10000 // Keep generation quiet
	g.Step(core.NewInputFrame())

	if !g.gameOver {
		t.Error("falling below the kill line should end the run")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%9 < 4 {
			inputs[i].Set(core.ActionLeft)
		} else {
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() (int, float64, float64) {
		g := New()
		g.Reset(cfg)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.score, g.playerX, g.playerY
	}

	s1, x1, y1 := run()
	s2, x2, y2 := run()
	if s1 != s2 || x1 != x2 || y1 != y2 {
		t.Errorf("determinism failed: (%d,%f,%f) vs (%d,%f,%f)", s1, x1, y1, s2, x2, y2)
	}
}
