package artifact

import "gameforge/internal/core"

// Affinity groups artifacts by how they resonate with the temple.
type Affinity int

const (
	AffinityNone Affinity = iota
	AffinityAttract
	AffinityRepel
	AffinityOrbit
	AffinityLink
)

// WorldPower is the effect an artifact has on the world when collected.
type WorldPower int

const (
	WorldNone WorldPower = iota
	WorldGravity    // Toggles gravity inversion
	WorldPhaseRifts // Opens phasing rifts in structures
	WorldSizeFlux   // Objects grow and shrink
	WorldWarp       // Warps the landscape
)

// PlayerPower is the effect an artifact has on its bearer.
type PlayerPower int

const (
	PlayerNone PlayerPower = iota
	PlayerPerception     // Perceive gravitational waves
	PlayerPhase          // Walk through barriers
	PlayerSize           // Size attunement
	PlayerInvertControls // Movement controls reversed
)

// Artifact is a collectible relic. Cursed artifacts burden the bearer
// until cleansed at a temple tile.
type Artifact struct {
	Name        string
	Description string
	World       WorldPower
	Player      PlayerPower
	Color       core.Color
	Cursed      bool
	Cleansed    bool
	Affinity    Affinity
}

// baseArtifacts returns the four relics scattered across the world.
func baseArtifacts() []*Artifact {
	return []*Artifact{
		{
			Name:        "Gravity Lens",
			Description: "A strange crystalline lens that bends light and gravity",
			World:       WorldGravity,
			Player:      PlayerPerception,
			Color:       core.ColorBlue,
			Affinity:    AffinityAttract,
		},
		{
			Name:        "Phase Crystal",
			Description: "A shimmering crystal that seems to exist in multiple states at once",
			World:       WorldPhaseRifts,
			Player:      PlayerPhase,
			Color:       core.ColorMagenta,
			Affinity:    AffinityLink,
		},
		{
			Name:        "Size Scepter",
			Description: "An ornate rod that pulses with energy",
			World:       WorldSizeFlux,
			Player:      PlayerSize,
			Color:       core.ColorYellow,
			Affinity:    AffinityOrbit,
		},
		{
			Name:        "Void Mask",
			Description: "A dark mask with swirling patterns that hurt to look at",
			World:       WorldWarp,
			Player:      PlayerInvertControls,
			Color:       core.ColorRed,
			Cursed:      true,
			Affinity:    AffinityRepel,
		},
	}
}
