package clicker

import (
	"testing"

	"gameforge/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func TestClickAddsPoints(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	click := core.NewInputFrame()
	click.Set(core.ActionPrimary)

	for i := 0; i < 5; i++ {
		g.Step(click)
	}

	if g.points != 5 {
		t.Errorf("5 clicks at power 1 should give 5 points, got %f", g.points)
	}
	if g.totalClicks != 5 {
		t.Errorf("totalClicks = %d, want 5", g.totalClicks)
	}
}

func TestUpgradePurchase(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.points = 10

	buy := core.NewInputFrame()
	buy.Set(core.ActionSlot1)
	g.Step(buy)

	if g.upgrades[0].Level != 1 {
		t.Fatalf("Click Power level = %d, want 1", g.upgrades[0].Level)
	}
	if g.pointsPerClick != 2 {
		t.Errorf("click power after upgrade = %f, want 2", g.pointsPerClick)
	}
	if g.upgrades[0].Cost != 15 {
		t.Errorf("cost should scale 1.5x to 15, got %d", g.upgrades[0].Cost)
	}
	if g.points != 0 {
		t.Errorf("points should be spent, got %f", g.points)
	}
}

func TestUpgradeUnaffordable(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.points = 5

	buy := core.NewInputFrame()
	buy.Set(core.ActionSlot2)
	g.Step(buy)

	if g.upgrades[1].Level != 0 {
		t.Error("should not buy an unaffordable upgrade")
	}
	if g.points < 5 {
		t.Errorf("points should be untouched minus nothing, got %f", g.points)
	}
}

func TestAutoClickerIncome(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.points = 50

	buy := core.NewInputFrame()
	buy.Set(core.ActionSlot2)
	g.Step(buy)

	if g.pointsPerSec != 1 {
		t.Fatalf("auto clicker should give 1/sec, got %f", g.pointsPerSec)
	}

	// One second of ticks pays out exactly once.
	start := g.points
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.points != start+1 {
		t.Errorf("after 60 ticks points = %f, want %f", g.points, start+1)
	}
}

func TestMultiplierAffectsBothRates(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.points = 1000
	g.pointsPerSec = 2

	buy := core.NewInputFrame()
	buy.Set(core.ActionSlot3)
	g.Step(buy)

	if g.pointsPerClick != 1.5 {
		t.Errorf("click power = %f, want 1.5", g.pointsPerClick)
	}
	if g.pointsPerSec != 3 {
		t.Errorf("cps = %f, want 3", g.pointsPerSec)
	}
}
