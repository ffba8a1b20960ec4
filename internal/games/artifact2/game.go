// Package artifact2 implements the second artifact expedition. The
// relic hunt from the first expedition gains volatile mechanics:
// artifacts destabilize with use and trigger reality quakes at zero,
// evolve into ascended forms, fuse into hybrids, entangle in pairs, and
// repeated activations tear open dimensional rifts that overlay an
// alternate reality, hide paradoxes, and leak hostile clones.
package artifact2

import (
	"fmt"
	"math/rand"

	"gameforge/internal/core"
	"gameforge/internal/registry"
)

const (
	// Ticks between grid steps while a direction is held. Carrying an
	// uncleansed curse doubles it.
	moveDelay       = 8
	cursedMoveDelay = 16

	maxHealth = 5

	// Reality quakes scramble the player for this many ticks.
	quakeDuration = 600
	// Stability an exhausted artifact settles at after its quake.
	postQuakeStability = 30.0

	collectPoints = 100
	placePoints   = 50
	cleansePoints = 50
	fusionPoints  = 150
	evolvePoints  = 200
	clonePoints   = 100
	winPoints     = 1000
)

// quakeEffect is one symptom of a reality quake.
type quakeEffect int

const (
	quakeInvertControls quakeEffect = iota
	quakePhasing
	quakeSizeShift
	quakeGravityFlux
	quakeTeleport
	quakeGlitch
)

var quakeEffects = []quakeEffect{
	quakeInvertControls, quakePhasing, quakeSizeShift,
	quakeGravityFlux, quakeTeleport, quakeGlitch,
}

var sizeChoices = []float64{0.5, 0.7, 1.0, 1.5, 2.0}

// Game implements the second expedition.
type Game struct {
	rng   *rand.Rand
	world *world

	screenW int
	screenH int

	px, py           int
	health           int
	invertedControls bool
	canPhase         bool
	cursed           bool
	sizeScale        float64
	moveRange        int

	inventory []*Artifact
	selected  int

	inRift      bool
	currentRift *rift
	rifts       []*rift
	clones      []*clone
	paradoxes   []pos

	quakeUntil   uint64
	activeQuakes []quakeEffect

	// Lab mode pairs artifacts for fusion or entanglement.
	labOpen bool
	marks   [2]int

	moveCooldown int

	msgQueue []string
	message  string
	msgTimer int

	tick   uint64
	score  int
	won    bool
	dead   bool
	paused bool
}

func init() {
	registry.Register("artifact2", func() registry.Game { return New() })
}

// New creates a new expedition instance.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "artifact2"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Artifact Explorer II"
}

// Reset initializes the game with the given runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.world = buildWorld(g.rng)
	start := g.world.firstFloor()
	g.px, g.py = start.X, start.Y

	g.health = maxHealth
	g.invertedControls = false
	g.canPhase = false
	g.cursed = false
	g.sizeScale = 1.0
	g.moveRange = 1

	g.inventory = nil
	g.selected = -1

	g.inRift = false
	g.currentRift = nil
	g.rifts = nil
	g.clones = nil
	g.paradoxes = nil

	g.quakeUntil = 0
	g.activeQuakes = nil

	g.labOpen = false
	g.marks = [2]int{-1, -1}

	g.moveCooldown = 0
	g.msgQueue = nil
	g.message = ""
	g.msgTimer = 0

	g.tick = 0
	g.score = 0
	g.won = false
	g.dead = false
	g.paused = false

	g.say("The artifacts feel different this time. Less stable. Hungrier.")
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && (g.won || g.dead) {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH, TickRate: 60, Seed: g.rng.Int63()})
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.won || g.dead || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.updateMessages()

	if g.labOpen {
		g.processLab(in)
	} else {
		g.processPlay(in)
	}

	g.updateRifts()
	g.updateClones()
	g.updateParadoxes()
	g.updateQuake()

	if g.health <= 0 {
		g.dead = true
		g.say("The artifacts' combined effects overwhelm you.")
	}
	g.checkWin()

	return core.StepResult{State: g.State()}
}

func (g *Game) processPlay(in core.InputFrame) {
	g.processMovement(in)

	switch {
	case in.Has(core.ActionPrimary):
		g.collect()
	case in.Has(core.ActionJump):
		g.activateSelected()
	case in.Has(core.ActionSecondary):
		g.placeOnPedestal()
	case in.Has(core.ActionBlock):
		g.cleanse()
	case in.Has(core.ActionConfirm):
		g.repair()
	case in.Has(core.ActionBack):
		g.labOpen = true
		g.marks = [2]int{-1, -1}
	case in.Has(core.ActionSlot1):
		g.selectSlot(0)
	case in.Has(core.ActionSlot2):
		g.selectSlot(1)
	case in.Has(core.ActionSlot3):
		g.selectSlot(2)
	case in.Has(core.ActionSlot4):
		g.selectSlot(3)
	}
}

// processLab handles the pairing overlay: mark two artifacts, then fuse
// or entangle them.
func (g *Game) processLab(in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		g.labOpen = false
	case in.Has(core.ActionSlot1):
		g.mark(0)
	case in.Has(core.ActionSlot2):
		g.mark(1)
	case in.Has(core.ActionSlot3):
		g.mark(2)
	case in.Has(core.ActionSlot4):
		g.mark(3)
	case in.Has(core.ActionConfirm):
		g.fuseMarked()
	case in.Has(core.ActionSecondary):
		g.entangleMarked()
	}
}

func (g *Game) mark(i int) {
	if i < 0 || i >= len(g.inventory) {
		return
	}
	if g.marks[0] == i || g.marks[1] == i {
		return
	}
	if g.marks[0] < 0 {
		g.marks[0] = i
	} else if g.marks[1] < 0 {
		g.marks[1] = i
	}
}

func (g *Game) markedPair() (*Artifact, *Artifact, bool) {
	if g.marks[0] < 0 || g.marks[1] < 0 {
		return nil, nil, false
	}
	return g.inventory[g.marks[0]], g.inventory[g.marks[1]], true
}

// fuseMarked consumes the two marked artifacts and forges a hybrid.
func (g *Game) fuseMarked() {
	a, b, ok := g.markedPair()
	if !ok {
		g.say("Mark two artifacts to fuse (1-4).")
		return
	}

	fused := fuseArtifacts(a, b, g.rng)

	kept := g.inventory[:0]
	for _, inv := range g.inventory {
		if inv != a && inv != b {
			kept = append(kept, inv)
		}
	}
	g.inventory = append(kept, fused)
	g.selected = len(g.inventory) - 1
	g.marks = [2]int{-1, -1}
	g.labOpen = false
	g.score += fusionPoints
	g.say(fmt.Sprintf("You've created a new artifact: %s!", fused.Name))
}

// entangleMarked quantum-links the two marked artifacts.
func (g *Game) entangleMarked() {
	a, b, ok := g.markedPair()
	if !ok {
		g.say("Mark two artifacts to entangle (1-4).")
		return
	}
	if a.Entangled != nil || b.Entangled != nil {
		g.say("One of these artifacts is already entangled.")
		return
	}

	a.entangleWith(b)
	g.marks = [2]int{-1, -1}
	g.labOpen = false
	g.say(fmt.Sprintf("You've quantum entangled %s with %s!", a.Name, b.Name))
}

func (g *Game) processMovement(in core.InputFrame) {
	if g.moveCooldown > 0 {
		g.moveCooldown--
		return
	}

	dx, dy := 0, 0
	switch {
	case in.Has(core.ActionUp):
		dy = -1
	case in.Has(core.ActionDown):
		dy = 1
	case in.Has(core.ActionLeft):
		dx = -1
	case in.Has(core.ActionRight):
		dx = 1
	default:
		return
	}
	if g.invertedControls {
		dx, dy = -dx, -dy
	}

	next := pos{g.px + dx*g.moveRange, g.py + dy*g.moveRange}

	// Inside a rift the alternate reality overlays the real terrain.
	if g.inRift && g.currentRift != nil {
		switch g.currentRift.AltReality[next] {
		case tileParadox:
			g.triggerParadox(next)
			return
		case tileWall:
			if !g.canPhase {
				g.say("You can't move there in this reality.")
				return
			}
		case tileWater:
			if g.sizeScale > 1.0 {
				g.say("You're too large to cross the water here.")
				return
			}
		}
	}

	if !g.world.walkable(next, g.canPhase) {
		return
	}
	g.px, g.py = next.X, next.Y

	delay := moveDelay
	if g.cursed {
		delay = cursedMoveDelay
	}
	g.moveCooldown = delay

	g.updateRiftMembership()
	g.checkCloneContact()

	if t := g.world.tiles[next]; t != nil && t.artifact != nil {
		g.say(fmt.Sprintf("You found a %s! Press Z to collect it.", t.artifact.Name))
	}
}

// updateRiftMembership tracks entering and leaving rift dimensions.
func (g *Game) updateRiftMembership() {
	here := pos{g.px, g.py}
	if g.inRift {
		if g.currentRift == nil || !g.currentRift.Active || !g.currentRift.contains(here) {
			g.inRift = false
			g.currentRift = nil
			g.say("You exit the dimensional rift and return to normal reality.")
		}
		return
	}
	for _, r := range g.rifts {
		if r.Active && r.contains(here) {
			g.inRift = true
			g.currentRift = r
			g.say("You enter a dimensional rift! Reality seems... different here.")
			return
		}
	}
}

// checkCloneContact resolves the player walking into a clone: the
// player strikes it.
func (g *Game) checkCloneContact() {
	kept := g.clones[:0]
	for _, c := range g.clones {
		if c.X == g.px && c.Y == g.py {
			c.Health--
			if c.Health <= 0 {
				g.score += clonePoints
				g.say("You defeat your evil clone!")
				continue
			}
			g.say("You strike your evil clone!")
		}
		kept = append(kept, c)
	}
	g.clones = kept
}

// collect picks up the artifact under the player; pickup counts as a
// first activation.
func (g *Game) collect() {
	t := g.world.tiles[pos{g.px, g.py}]
	if t == nil || t.artifact == nil {
		return
	}
	a := t.artifact
	t.artifact = nil

	g.inventory = append(g.inventory, a)
	g.selected = len(g.inventory) - 1
	g.score += collectPoints
	g.say(fmt.Sprintf("You collected the %s.", a.Name))

	g.activate(a)

	if g.hasWorldPower(WorldGravity) && g.hasPlayerPower(PlayerPhase) {
		g.say("DISCOVERY: inverted gravity and phasing let you walk through barriers!")
	}
}

func (g *Game) activateSelected() {
	if g.selected < 0 || g.selected >= len(g.inventory) {
		g.say("Select an artifact first (1-4).")
		return
	}
	g.activate(g.inventory[g.selected])
}

// activate runs a full artifact activation at the player's position:
// effects, entanglement resolution, stability drain, rift formation,
// and evolution.
func (g *Game) activate(a *Artifact) {
	here := pos{g.px, g.py}
	a.LastUse = here
	a.UseCount++

	g.say(fmt.Sprintf("You activate the %s.", a.Name))
	g.applyWorldEffects(a)
	g.applyPlayerEffects(a)

	a.LastActivation = g.tick
	g.resolveEntanglement(a)

	if a.drainStability(g.rng) {
		g.triggerRealityQuake(a)
	}

	if a.UseCount >= riftUseThreshold {
		if g.createRift(here.X, here.Y) != nil {
			g.say("The fabric of reality weakens... a dimensional rift forms!")
		}
	}

	a.Evolution += evolutionGainMin + g.rng.Float64()*(evolutionGainMax-evolutionGainMin)
	if a.Evolution >= 100 {
		a.evolve()
		g.score += evolvePoints
		g.say(fmt.Sprintf("The artifact has evolved into: %s!", a.Name))
	}

	if a.Cursed && !a.Cleansed {
		g.cursed = true
		g.say("WARNING: this artifact is cursed! It drags at your every step.")
	}
}

func (g *Game) applyWorldEffects(a *Artifact) {
	for _, w := range a.Worlds {
		switch w {
		case WorldGravity:
			g.world.gravityInverted = !g.world.gravityInverted
			g.say("The gravity has been inverted! Up is now down.")
		case WorldWarp:
			g.world.landscapeWarped = true
			g.say("The landscape begins to warp and distort.")
		}
	}
}

func (g *Game) applyPlayerEffects(a *Artifact) {
	for _, p := range a.Players {
		switch p {
		case PlayerPhase:
			g.canPhase = true
			if a.Evolved {
				g.moveRange = 2
			}
		case PlayerInvertControls:
			g.invertedControls = !g.invertedControls
		case PlayerStabilize:
			g.invertedControls = false
		case PlayerSize:
			g.sizeScale = sizeChoices[g.rng.Intn(len(sizeChoices))]
		}
	}
}

// resolveEntanglement reacts to activating one half of an entangled
// pair. Synchronized activations stabilize both; sloppy timing rolls a
// quantum side effect from the tick delta.
func (g *Game) resolveEntanglement(a *Artifact) {
	partner := a.Entangled
	if partner == nil || !g.holds(partner) || partner.LastActivation == 0 {
		return
	}

	delta := g.tick - partner.LastActivation
	if delta < entangleSyncWindow {
		g.say("Perfect quantum synchronization!")
		a.Stability = core.ClampF(a.Stability+10, 0, maxStability)
		partner.Stability = core.ClampF(partner.Stability+10, 0, maxStability)
		return
	}

	switch delta % 3 {
	case 0:
		g.say("Quantum interference! Effects amplified!")
		g.applyWorldEffects(partner)
	case 1:
		g.say("Quantum inversion! Effects reversed!")
		if a.hasWorld(WorldGravity) {
			g.world.gravityInverted = !g.world.gravityInverted
		}
	default:
		g.say("Quantum disruption! Stability decreasing!")
		a.Stability = core.ClampF(a.Stability-20, 10, maxStability)
		partner.Stability = core.ClampF(partner.Stability-20, 10, maxStability)
	}
}

func (g *Game) holds(a *Artifact) bool {
	for _, inv := range g.inventory {
		if inv == a {
			return true
		}
	}
	return false
}

// triggerRealityQuake is what an artifact hitting zero stability does:
// random terrain rewrites, a random rift, and 1 to 3 symptoms afflicting
// the player for the quake's duration.
func (g *Game) triggerRealityQuake(a *Artifact) {
	g.say(fmt.Sprintf("The %s becomes unstable and triggers a REALITY QUAKE!", a.Name))
	a.Stability = postQuakeStability
	g.quakeUntil = g.tick + quakeDuration

	// Rewrite a handful of tiles.
	tiles := g.world.sortedTiles()
	changes := 3 + g.rng.Intn(5)
	for i := 0; i < changes; i++ {
		p := tiles[g.rng.Intn(len(tiles))]
		t := g.world.tiles[p]
		switch {
		case t.kind == tileFloor && !t.temple:
			t.kind = tileWater
		case t.kind == tileWall:
			t.kind = tileFloor
		}
	}

	// Tear open a rift somewhere random.
	g.createRift(5+g.rng.Intn(31), 5+g.rng.Intn(16))

	// Afflict the player.
	g.activeQuakes = nil
	picks := 1 + g.rng.Intn(3)
	order := g.rng.Perm(len(quakeEffects))
	for _, idx := range order[:picks] {
		eff := quakeEffects[idx]
		g.activeQuakes = append(g.activeQuakes, eff)
		switch eff {
		case quakeInvertControls:
			g.invertedControls = true
		case quakePhasing:
			g.canPhase = true
		case quakeGravityFlux:
			g.world.gravityInverted = !g.world.gravityInverted
		case quakeTeleport:
			floors := g.world.sortedFloors()
			if len(floors) > 0 {
				p := floors[g.rng.Intn(len(floors))]
				g.px, g.py = p.X, p.Y
			}
		}
	}
}

func (g *Game) quakeActive() bool {
	return g.quakeUntil > g.tick
}

func (g *Game) hasQuakeEffect(e quakeEffect) bool {
	if !g.quakeActive() {
		return false
	}
	for _, q := range g.activeQuakes {
		if q == e {
			return true
		}
	}
	return false
}

// updateQuake oscillates size during a size-shift quake and unwinds
// symptoms once the quake passes.
func (g *Game) updateQuake() {
	if g.quakeActive() {
		if g.hasQuakeEffect(quakeSizeShift) {
			if g.tick%20 < 10 {
				g.sizeScale = 0.7
			} else {
				g.sizeScale = 1.3
			}
		}
		return
	}
	if len(g.activeQuakes) == 0 {
		return
	}
	g.activeQuakes = nil
	g.sizeScale = 1.0
	if !g.hasPlayerPower(PlayerInvertControls) {
		g.invertedControls = false
	}
	if !g.hasPlayerPower(PlayerPhase) {
		g.canPhase = false
	}
}

// createRift opens a rift unless another active rift is too close.
func (g *Game) createRift(x, y int) *rift {
	for _, r := range g.rifts {
		if r.Active && core.Abs(r.X-x)+core.Abs(r.Y-y) < riftMinSpacing {
			return nil
		}
	}
	r := newRift(x, y, g.world, g.rng)
	g.rifts = append(g.rifts, r)
	return r
}

func (g *Game) updateRifts() {
	kept := g.rifts[:0]
	for _, r := range g.rifts {
		r.update()
		if r.Active {
			kept = append(kept, r)
		} else if g.currentRift == r {
			g.inRift = false
			g.currentRift = nil
			g.say("The rift collapses around you. Reality snaps back.")
		}
	}
	g.rifts = kept
}

// updateClones rolls rift spawns and walks every clone toward the
// player. A clone reaching the player bites for one health.
func (g *Game) updateClones() {
	for _, r := range g.rifts {
		if !r.Active || r.hasClone {
			continue
		}
		if g.rng.Float64() < cloneSpawnChance && g.rng.Float64() < cloneSpawnGate {
			r.hasClone = true
			g.clones = append(g.clones, newClone(r.X, r.Y))
			g.say("An evil version of you emerges from the rift!")
		}
	}

	target := pos{g.px, g.py}
	for _, c := range g.clones {
		if c.step(target, g.world) {
			g.health--
			g.say("Your evil clone attacks you!")
		}
	}
}

// triggerParadox arms a paradox fuse at p. When it burns down the
// surrounding terrain rewrites itself.
func (g *Game) triggerParadox(p pos) {
	t, ok := g.world.tiles[p]
	if !ok || t.paradox {
		return
	}
	g.say("PARADOX DETECTED! The fabric of reality is tearing!")
	t.paradox = true
	t.paradoxTimer = paradoxFuse
	g.paradoxes = append(g.paradoxes, p)
}

func (g *Game) updateParadoxes() {
	kept := g.paradoxes[:0]
	for _, p := range g.paradoxes {
		t := g.world.tiles[p]
		t.paradoxTimer--
		if t.paradoxTimer > 0 {
			kept = append(kept, p)
			continue
		}
		t.paradox = false
		g.resolveParadox(p)
		g.say("The paradox resolves, altering reality!")
	}
	g.paradoxes = kept
}

// resolveParadox mutates the 5x5 region around p: walls open up, floors
// sometimes seal over.
func (g *Game) resolveParadox(p pos) {
	for dx := -2; dx <= 2; dx++ {
		for dy := -2; dy <= 2; dy++ {
			q := pos{p.X + dx, p.Y + dy}
			t, ok := g.world.tiles[q]
			if !ok || g.rng.Float64() >= 0.5 {
				continue
			}
			switch t.kind {
			case tileWall:
				t.kind = tileFloor
			case tileFloor:
				if !t.temple && g.rng.Float64() < 0.3 {
					t.kind = tileWall
				}
			}
		}
	}
}

func (g *Game) selectSlot(i int) {
	if i < 0 || i >= len(g.inventory) {
		return
	}
	g.selected = i
	g.say(fmt.Sprintf("Selected: %s", g.inventory[i].Name))
}

// placeOnPedestal refuses artifacts that are too unstable, then checks
// the temple combinations.
func (g *Game) placeOnPedestal() {
	if g.selected < 0 || g.selected >= len(g.inventory) {
		g.say("Select an artifact first (1-4).")
		return
	}
	t := g.world.tiles[pos{g.px, g.py}]
	if t == nil || !t.pedestal || t.pedestalName == "" {
		g.say("Artifacts can only be placed on temple pedestals.")
		return
	}
	if t.pedestalArtifact != nil {
		g.say("This pedestal is already occupied.")
		return
	}

	a := g.inventory[g.selected]
	if a.Stability < minPedestalStability {
		g.say(fmt.Sprintf("The %s is too unstable to place! Repair it first.", a.Name))
		return
	}

	t.pedestalArtifact = a
	g.inventory = append(g.inventory[:g.selected], g.inventory[g.selected+1:]...)
	g.selected = -1
	g.score += placePoints
	g.say(fmt.Sprintf("You placed the %s on the %s pedestal.", a.Name, t.pedestalName))

	g.checkPedestals()
}

// checkPedestals fires once every pedestal holds an artifact. Three
// combinations wake the temple, each opening a different chamber.
func (g *Game) checkPedestals() {
	var placed []*Artifact
	for _, name := range pedestalNames {
		t := g.world.tiles[g.world.pedestals[name]]
		if t == nil || t.pedestalArtifact == nil {
			return
		}
		placed = append(placed, t.pedestalArtifact)
	}

	g.say("Ancient mechanisms begin to whir as all pedestals are filled!")

	hasGravity, hasPhase, hasSize, hasVoid := false, false, false, false
	affinitySet := map[Affinity]bool{}
	for _, a := range placed {
		if a.hasWorld(WorldGravity) {
			hasGravity = true
		}
		if a.hasPlayer(PlayerPhase) {
			hasPhase = true
		}
		if a.hasPlayer(PlayerSize) {
			hasSize = true
		}
		if a.hasWorld(WorldWarp) {
			hasVoid = true
		}
		affinitySet[a.Affinity] = true
	}

	switch {
	case hasGravity && hasPhase:
		g.say("The temple responds to gravity and phase artifacts!")
		g.world.templeUnlocked = true
		g.world.createSecretChamber(chamberPhase, g.rng)
	case hasSize && hasVoid:
		g.say("The temple responds to size and void artifacts!")
		g.world.templeUnlocked = true
		g.world.createSecretChamber(chamberVoid, g.rng)
	case len(affinitySet) == 4:
		g.say("The temple resonates with the diverse affinities!")
		g.world.templeUnlocked = true
		g.world.createSecretChamber(chamberAffinity, g.rng)
	default:
		g.say("The temple stirs but remains dormant.")
	}
}

// cleanse lifts the curse from the selected artifact at the temple.
func (g *Game) cleanse() {
	if g.selected < 0 || g.selected >= len(g.inventory) {
		g.say("Select an artifact first (1-4).")
		return
	}
	a := g.inventory[g.selected]
	if !a.Cursed || a.Cleansed {
		g.say(fmt.Sprintf("The %s does not need cleansing.", a.Name))
		return
	}
	t := g.world.tiles[pos{g.px, g.py}]
	if t == nil || !t.temple {
		g.say("Artifacts can only be cleansed at the temple.")
		return
	}

	a.Cleansed = true
	g.cursed = false
	g.score += cleansePoints
	g.say(fmt.Sprintf("The %s has been cleansed! The curse's grip weakens.", a.Name))
}

// repair restores stability to the selected artifact at the temple.
func (g *Game) repair() {
	if g.selected < 0 || g.selected >= len(g.inventory) {
		g.say("Select an artifact first (1-4).")
		return
	}
	a := g.inventory[g.selected]
	if a.Stability >= maxStability {
		g.say(fmt.Sprintf("The %s is already at maximum stability.", a.Name))
		return
	}
	t := g.world.tiles[pos{g.px, g.py}]
	if t == nil || !t.temple {
		g.say("Artifacts can only be repaired at the temple.")
		return
	}

	a.repair()
	g.say(fmt.Sprintf("The %s has been repaired and is more stable now.", a.Name))
}

func (g *Game) hasWorldPower(p WorldPower) bool {
	for _, a := range g.inventory {
		if a.hasWorld(p) {
			return true
		}
	}
	return false
}

func (g *Game) hasPlayerPower(p PlayerPower) bool {
	for _, a := range g.inventory {
		if a.hasPlayer(p) {
			return true
		}
	}
	return false
}

func (g *Game) checkWin() {
	if !g.world.templeUnlocked || g.won || g.dead {
		return
	}
	if t := g.world.tiles[pos{g.px, g.py}]; t != nil && t.kind == tileWin {
		g.won = true
		g.score += winPoints
		g.say("Temple secrets unlocked!")
	}
}

func (g *Game) say(msg string) {
	g.msgQueue = append(g.msgQueue, msg)
	if g.message == "" {
		g.nextMessage()
	}
}

func (g *Game) nextMessage() {
	if len(g.msgQueue) == 0 {
		return
	}
	g.message = g.msgQueue[0]
	g.msgQueue = g.msgQueue[1:]
	g.msgTimer = core.Max(60, len(g.message)*3)
}

func (g *Game) updateMessages() {
	if g.msgTimer > 0 {
		g.msgTimer--
		if g.msgTimer <= 0 && len(g.msgQueue) > 0 {
			g.nextMessage()
		}
	} else if g.message != "" && len(g.msgQueue) == 0 {
		g.message = ""
	}
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won || g.dead,
		Paused:   g.paused,
	}
}
