package artifact2

import (
	"math"
	"math/rand"

	"gameforge/internal/core"
)

const (
	riftMinRadius = 1.0
	riftMaxRadius = 2.5
	riftPulseStep = 0.02
	riftLifespan  = 600 // 10s at 60 ticks/sec

	// Rifts refuse to form within this Manhattan distance of another.
	riftMinSpacing = 5

	paradoxChance = 0.3
	// Ticks before a stepped-on paradox resolves and rewrites terrain.
	paradoxFuse = 300

	cloneSpawnChance = 0.001 // Per rift per tick, gated again below
	cloneSpawnGate   = 0.2
	cloneMoveDelay   = 3
	cloneHealth      = 3
)

// rift is a pulsing tear in reality. Inside it an alternate version of
// the nearby terrain applies on top of the real one.
type rift struct {
	X, Y     int
	Radius   float64
	pulseDir float64
	Lifespan int
	Active   bool

	// Overrides for tiles within the rift's reach. A tileParadox entry
	// is a trap: stepping on it starts a paradox fuse.
	AltReality map[pos]tileKind

	hasClone bool
}

func newRift(x, y int, w *world, rng *rand.Rand) *rift {
	r := &rift{
		X:          x,
		Y:          y,
		Radius:     riftMinRadius,
		pulseDir:   1,
		Lifespan:   riftLifespan,
		Active:     true,
		AltReality: make(map[pos]tileKind),
	}
	r.generateAltReality(w, rng)
	return r
}

// generateAltReality flips a fraction of the surrounding tiles in the
// rift's overlay, and optionally hides a paradox nearby.
func (r *rift) generateAltReality(w *world, rng *rand.Rand) {
	for dx := -5; dx <= 5; dx++ {
		for dy := -5; dy <= 5; dy++ {
			p := pos{r.X + dx, r.Y + dy}
			t, ok := w.tiles[p]
			if !ok {
				continue
			}
			if rng.Float64() >= 0.3 {
				continue
			}
			switch t.kind {
			case tileFloor:
				if rng.Float64() < 0.5 {
					r.AltReality[p] = tileWall
				} else {
					r.AltReality[p] = tileWater
				}
			case tileWall:
				r.AltReality[p] = tileFloor
			}
		}
	}

	if rng.Float64() < paradoxChance {
		p := pos{r.X + rng.Intn(7) - 3, r.Y + rng.Intn(7) - 3}
		if _, ok := w.tiles[p]; ok {
			r.AltReality[p] = tileParadox
		}
	}
}

// update pulses the radius and burns down the lifespan.
func (r *rift) update() {
	r.Radius += riftPulseStep * r.pulseDir
	if r.Radius >= riftMaxRadius {
		r.pulseDir = -1
	} else if r.Radius <= riftMinRadius {
		r.pulseDir = 1
	}

	r.Lifespan--
	if r.Lifespan <= 0 {
		r.Active = false
	}
}

// contains reports whether the position falls inside the rift's current
// pulse.
func (r *rift) contains(p pos) bool {
	dx := float64(p.X - r.X)
	dy := float64(p.Y - r.Y)
	return math.Sqrt(dx*dx+dy*dy) < r.Radius
}

// clone is a hostile copy of the player that crawls out of a rift and
// walks toward them.
type clone struct {
	X, Y      int
	Health    int
	moveTimer int
}

func newClone(x, y int) *clone {
	return &clone{X: x, Y: y, Health: cloneHealth}
}

// step advances the clone toward the target along the dominant axis.
// Returns true when it lands on the target this tick.
func (c *clone) step(target pos, w *world) bool {
	c.moveTimer++
	if c.moveTimer < cloneMoveDelay {
		return false
	}
	c.moveTimer = 0

	dx := target.X - c.X
	dy := target.Y - c.Y
	next := pos{c.X, c.Y}
	if core.Abs(dx) > core.Abs(dy) {
		next.X += sign(dx)
	} else {
		next.Y += sign(dy)
	}
	if w.walkable(next, false) {
		c.X, c.Y = next.X, next.Y
	}
	return c.X == target.X && c.Y == target.Y
}
