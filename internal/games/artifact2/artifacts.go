package artifact2

import (
	"fmt"
	"math/rand"
	"strings"

	"gameforge/internal/core"
)

// Affinity groups artifacts by how they resonate with the temple.
type Affinity int

const (
	AffinityNone Affinity = iota
	AffinityAttract
	AffinityRepel
	AffinityOrbit
	AffinityLink
)

var affinities = []Affinity{AffinityNone, AffinityAttract, AffinityRepel, AffinityOrbit, AffinityLink}

// WorldPower is an effect an artifact has on the world when activated.
type WorldPower int

const (
	WorldGravity WorldPower = iota
	WorldPhaseRifts
	WorldSizeFlux
	WorldWarp
)

// PlayerPower is an effect an artifact has on its bearer.
type PlayerPower int

const (
	PlayerPerception PlayerPower = iota
	PlayerPhase
	PlayerSize
	PlayerInvertControls
	PlayerStabilize // Evolved masks cancel control inversion instead
)

// Kind identifies the base relic an artifact descends from. Fusions
// lose their lineage.
type Kind int

const (
	KindGravityLens Kind = iota
	KindPhaseCrystal
	KindSizeScepter
	KindVoidMask
	KindFused
)

const (
	maxStability = 100.0
	// Stability lost per activation, rolled in this range.
	stabilityLossMin = 5.0
	stabilityLossMax = 15.0
	// Below this an artifact refuses a pedestal.
	minPedestalStability = 30.0
	repairAmount         = 25.0

	// Evolution gained per activation, rolled in this range.
	evolutionGainMin = 2.0
	evolutionGainMax = 5.0

	// Activations at one spot before reality tears open.
	riftUseThreshold = 3

	// Ticks within which paired activations count as synchronized.
	entangleSyncWindow = 30
)

// Artifact is a collectible relic. Beyond its powers it carries
// stability (drained by use, restored at the temple), evolution
// progress, and an optional quantum partner.
type Artifact struct {
	Name        string
	Description string
	Kind        Kind
	Worlds      []WorldPower
	Players     []PlayerPower
	Color       core.Color
	Cursed      bool
	Cleansed    bool
	Affinity    Affinity

	Stability float64
	Evolution float64
	Evolved   bool
	UseCount  int
	LastUse   pos

	Entangled      *Artifact
	LastActivation uint64
}

func (a *Artifact) hasWorld(p WorldPower) bool {
	for _, w := range a.Worlds {
		if w == p {
			return true
		}
	}
	return false
}

func (a *Artifact) hasPlayer(p PlayerPower) bool {
	for _, pp := range a.Players {
		if pp == p {
			return true
		}
	}
	return false
}

// drainStability rolls the per-use stability loss and reports whether
// the artifact hit zero and needs a reality quake.
func (a *Artifact) drainStability(rng *rand.Rand) bool {
	loss := stabilityLossMin + rng.Float64()*(stabilityLossMax-stabilityLossMin)
	a.Stability -= loss
	if a.Stability <= 0 {
		a.Stability = 0
		return true
	}
	return false
}

func (a *Artifact) repair() {
	a.Stability = core.ClampF(a.Stability+repairAmount, 0, maxStability)
}

// evolve transforms the artifact into its ascended form and resets the
// progress bar.
func (a *Artifact) evolve() {
	a.Evolution = 0
	a.Evolved = true

	switch a.Kind {
	case KindGravityLens:
		a.Name = "Enhanced Gravity Lens"
		a.Description = "Creates localized gravity wells"
	case KindPhaseCrystal:
		a.Name = "Supercharged Phase Crystal"
		a.Description = "Creates persistent phase rifts in spacetime"
	case KindSizeScepter:
		a.Name = "Grand Size Scepter"
		a.Description = "Causes dramatic environmental size fluctuations"
	case KindVoidMask:
		a.Name = "Ascendant Void Mask"
		a.Description = "Grants insight into chaos patterns"
		// The ascended mask steadies the bearer instead of scrambling
		// them.
		for i, p := range a.Players {
			if p == PlayerInvertControls {
				a.Players[i] = PlayerStabilize
			}
		}
	default:
		a.Name = "Evolved " + a.Name
	}
}

// entangleWith links two artifacts; activating one within the sync
// window of the other stabilizes both.
func (a *Artifact) entangleWith(b *Artifact) {
	a.Entangled = b
	b.Entangled = a
}

// fuseArtifacts forges a new relic out of two others. The fusion
// carries both parents' powers, inherits any curse, and rolls a fresh
// affinity. Entanglement transfers from whichever parent had one.
func fuseArtifacts(a, b *Artifact, rng *rand.Rand) *Artifact {
	lastWord := func(name string) string {
		parts := strings.Fields(name)
		return parts[len(parts)-1]
	}

	fused := &Artifact{
		Name:        fmt.Sprintf("Fused %s-%s", lastWord(a.Name), lastWord(b.Name)),
		Description: fmt.Sprintf("A fusion of %s and %s", a.Name, b.Name),
		Kind:        KindFused,
		Color:       a.Color,
		Cursed:      a.Cursed || b.Cursed,
		Affinity:    affinities[rng.Intn(len(affinities))],
		Stability:   maxStability,
	}

	seen := map[WorldPower]bool{}
	for _, w := range append(append([]WorldPower{}, a.Worlds...), b.Worlds...) {
		if !seen[w] {
			seen[w] = true
			fused.Worlds = append(fused.Worlds, w)
		}
	}
	seenP := map[PlayerPower]bool{}
	for _, p := range append(append([]PlayerPower{}, a.Players...), b.Players...) {
		if !seenP[p] {
			seenP[p] = true
			fused.Players = append(fused.Players, p)
		}
	}

	if a.Entangled != nil && a.Entangled != b {
		fused.entangleWith(a.Entangled)
	} else if b.Entangled != nil && b.Entangled != a {
		fused.entangleWith(b.Entangled)
	}

	return fused
}

// baseArtifacts returns the four relics scattered across the world.
func baseArtifacts() []*Artifact {
	return []*Artifact{
		{
			Name:        "Gravity Lens",
			Description: "A strange crystalline lens that bends light and gravity",
			Kind:        KindGravityLens,
			Worlds:      []WorldPower{WorldGravity},
			Players:     []PlayerPower{PlayerPerception},
			Color:       core.ColorBlue,
			Affinity:    AffinityAttract,
			Stability:   maxStability,
		},
		{
			Name:        "Phase Crystal",
			Description: "A shimmering crystal that seems to exist in multiple states at once",
			Kind:        KindPhaseCrystal,
			Worlds:      []WorldPower{WorldPhaseRifts},
			Players:     []PlayerPower{PlayerPhase},
			Color:       core.ColorMagenta,
			Affinity:    AffinityLink,
			Stability:   maxStability,
		},
		{
			Name:        "Size Scepter",
			Description: "An ornate rod that pulses with energy",
			Kind:        KindSizeScepter,
			Worlds:      []WorldPower{WorldSizeFlux},
			Players:     []PlayerPower{PlayerSize},
			Color:       core.ColorYellow,
			Affinity:    AffinityOrbit,
			Stability:   maxStability,
		},
		{
			Name:        "Void Mask",
			Description: "A dark mask with swirling patterns that hurt to look at",
			Kind:        KindVoidMask,
			Worlds:      []WorldPower{WorldWarp},
			Players:     []PlayerPower{PlayerInvertControls},
			Color:       core.ColorRed,
			Cursed:      true,
			Affinity:    AffinityRepel,
			Stability:   maxStability,
		},
	}
}
