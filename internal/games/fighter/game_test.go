package fighter

import (
	"testing"

	"gameforge/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

// skipIntro steps past the round countdown.
func skipIntro(g *Game) {
	for g.intro > 0 {
		g.Step(core.NewInputFrame())
	}
}

func TestPunchDealsDamage(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipIntro(g)

	// Stand the fighters in reach.
	g.p1.X = 40
	g.p2.X = 42
	g.faceEachOther()

	punch := core.NewInputFrame()
	punch.Set(core.ActionPrimary)
	g.Step(punch)

	if g.p2.Health != maxHealth-punchDamage {
		t.Errorf("p2 health = %d, want %d", g.p2.Health, maxHealth-punchDamage)
	}
}

func TestBlockHalvesDamage(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipIntro(g)

	g.p1.X = 40
	g.p2.X = 42
	g.faceEachOther()

	in := core.NewInputFrame()
	in.Set(core.ActionSecondary) // P1 kick
	in.Set(core.ActionP2Block)   // P2 blocks
	g.Step(in)

	want := maxHealth - kickDamage/2
	if g.p2.Health != want {
		t.Errorf("blocked kick: p2 health = %d, want %d", g.p2.Health, want)
	}
}

func TestAttackCooldown(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipIntro(g)

	g.p1.X = 40
	g.p2.X = 42
	g.faceEachOther()

	punch := core.NewInputFrame()
	punch.Set(core.ActionPrimary)

	g.Step(punch)
	g.Step(punch) // Inside cooldown, must not connect

	if g.p2.Health != maxHealth-punchDamage {
		t.Errorf("cooldown violated: p2 health = %d", g.p2.Health)
	}
}

func TestOutOfReachMisses(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipIntro(g)

	g.p1.X = 10
	g.p2.X = 60
	g.faceEachOther()

	punch := core.NewInputFrame()
	punch.Set(core.ActionPrimary)
	g.Step(punch)

	if g.p2.Health != maxHealth {
		t.Errorf("distant punch should miss, p2 health = %d", g.p2.Health)
	}
}

func TestRoundAndMatchFlow(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipIntro(g)

	// P1 takes round one.
	g.p2.Health = 1
	g.p1.X = 40
	g.p2.X = 42
	g.faceEachOther()

	punch := core.NewInputFrame()
	punch.Set(core.ActionPrimary)
	g.Step(punch)

	if g.wins1 != 1 {
		t.Fatalf("wins1 = %d, want 1", g.wins1)
	}
	if g.gameOver {
		t.Fatal("match should not end after one round")
	}

	// Let the round-end pause elapse; round two starts fresh.
	for g.roundEnd > 0 {
		g.Step(core.NewInputFrame())
	}
	if g.round != 2 {
		t.Fatalf("round = %d, want 2", g.round)
	}
	if g.p2.Health != maxHealth {
		t.Errorf("fighters should reset between rounds, p2 health = %d", g.p2.Health)
	}

	// P1 takes round two and the match.
	skipIntro(g)
	g.p2.Health = 1
	g.p1.X = 40
	g.p2.X = 42
	g.faceEachOther()
	g.Step(punch)
	for g.roundEnd > 0 {
		g.Step(core.NewInputFrame())
	}

	if !g.gameOver {
		t.Fatal("match should end at two round wins")
	}
	if g.winner != 1 {
		t.Errorf("winner = %d, want 1", g.winner)
	}
}

func TestJumpAndLand(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipIntro(g)

	jump := core.NewInputFrame()
	jump.Set(core.ActionUp)
	g.Step(jump)

	if g.p1.OnGround {
		t.Fatal("p1 should be airborne after jump")
	}

	for i := 0; i < 120 && !g.p1.OnGround; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.p1.OnGround {
		t.Error("p1 should land within two seconds")
	}
	if g.p1.Y != float64(g.floorY) {
		t.Errorf("p1 should rest on the floor, Y = %f", g.p1.Y)
	}
}
