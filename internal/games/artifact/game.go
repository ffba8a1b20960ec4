// Package artifact implements a top-down exploration game: collect
// reality-bending relics on an alien overworld, carry them to the
// temple, and find the combination that opens its secret chamber.
// Collecting an artifact immediately applies its world and player
// effects, so every pickup changes how the rest of the run plays.
package artifact

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

	collectPoints = 100
	placePoints   = 50
	cleansePoints = 50
	winPoints     = 1000
)

// Game implements the artifact expedition.
type Game struct {
	rng   *rand.Rand
	world *world

	screenW int
	screenH int

	px, py           int
	invertedControls bool
	canPhase         bool
	cursed           bool

	inventory []*Artifact
	selected  int // index into inventory, -1 when nothing selected

	moveCooldown int

	msgQueue []string
	message  string
	msgTimer int

	tick   uint64
	score  int
	won    bool
	paused bool
}

func init() {
	registry.Register("artifact", func() registry.Game { return New() })
}

// New creates a new expedition instance.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "artifact"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Artifact Explorer"
}

// Reset initializes the game with the given runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.world = buildWorld(g.rng)
	start := g.world.firstFloor()
	g.px, g.py = start.X, start.Y

	g.invertedControls = false
	g.canPhase = false
	g.cursed = false
	g.inventory = nil
	g.selected = -1
	g.moveCooldown = 0

	g.msgQueue = nil
	g.message = ""
	g.msgTimer = 0

	g.tick = 0
	g.score = 0
	g.won = false
	g.paused = false

	g.say("You land on a strange alien planet. Find the temple's secret.")
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.won {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH, TickRate: 60, Seed: g.rng.Int63()})
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.won || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.updateMessages()

	g.processMovement(in)

	switch {
	case in.Has(core.ActionPrimary):
		g.collect()
	case in.Has(core.ActionSecondary):
		g.placeOnPedestal()
	case in.Has(core.ActionBlock):
		g.cleanse()
	case in.Has(core.ActionSlot1):
		g.selectSlot(0)
	case in.Has(core.ActionSlot2):
		g.selectSlot(1)
	case in.Has(core.ActionSlot3):
		g.selectSlot(2)
	case in.Has(core.ActionSlot4):
		g.selectSlot(3)
	}

	g.checkWin()
	return core.StepResult{State: g.State()}
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

	next := pos{g.px + dx, g.py + dy}
	if !g.world.walkable(next, g.canPhase) {
		return
	}
	g.px, g.py = next.X, next.Y

	delay := moveDelay
	if g.cursed {
		delay = cursedMoveDelay
	}
	g.moveCooldown = delay

	if t := g.world.tiles[next]; t.artifact != nil {
		g.say(fmt.Sprintf("You found a %s! Press Z to collect it.", t.artifact.Name))
	}
}

// collect picks up the artifact under the player and applies its
// effects.
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

	g.applyWorldEffect(a)
	g.applyPlayerEffect(a)

	if a.Cursed && !a.Cleansed {
		g.cursed = true
		g.say("WARNING: this artifact is cursed! It drags at your every step.")
	}
	if g.hasPower(WorldGravity) && g.hasPlayerPower(PlayerPhase) {
		g.say("DISCOVERY: inverted gravity and phasing let you walk through barriers!")
	}
}

func (g *Game) applyWorldEffect(a *Artifact) {
	switch a.World {
	case WorldGravity:
		g.world.gravityInverted = !g.world.gravityInverted
		g.say("The gravity has been inverted! Up is now down.")
	case WorldWarp:
		g.world.landscapeWarped = true
		g.say("The landscape begins to warp and distort.")
	}
}

func (g *Game) applyPlayerEffect(a *Artifact) {
	switch a.Player {
	case PlayerPhase:
		g.canPhase = true
		g.say("You can now phase through certain barriers.")
	case PlayerInvertControls:
		g.invertedControls = !g.invertedControls
		g.say("Your movement controls are reversed!")
	}
}

func (g *Game) hasPower(p WorldPower) bool {
	for _, a := range g.inventory {
		if a.World == p {
			return true
		}
	}
	return false
}

func (g *Game) hasPlayerPower(p PlayerPower) bool {
	for _, a := range g.inventory {
		if a.Player == p {
			return true
		}
	}
	return false
}

func (g *Game) selectSlot(i int) {
	if i < 0 || i >= len(g.inventory) {
		return
	}
	g.selected = i
	g.say(fmt.Sprintf("Selected: %s", g.inventory[i].Name))
}

// placeOnPedestal moves the selected artifact onto the pedestal under
// the player and checks whether the temple wakes up.
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
	t.pedestalArtifact = a
	g.inventory = append(g.inventory[:g.selected], g.inventory[g.selected+1:]...)
	g.selected = -1
	g.score += placePoints
	g.say(fmt.Sprintf("You placed the %s on the %s pedestal.", a.Name, t.pedestalName))

	g.checkPedestals()
}

// checkPedestals fires once every pedestal holds an artifact. A gravity
// plus phase combination opens the secret chamber.
func (g *Game) checkPedestals() {
	var placed []*Artifact
	for _, p := range g.world.pedestals {
		t := g.world.tiles[p]
		if t == nil || t.pedestalArtifact == nil {
			return
		}
		placed = append(placed, t.pedestalArtifact)
	}

	g.say("Ancient mechanisms begin to whir as all pedestals are filled!")

	hasGravity, hasPhase := false, false
	for _, a := range placed {
		if a.World == WorldGravity {
			hasGravity = true
		}
		if a.Player == PlayerPhase {
			hasPhase = true
		}
	}
	if hasGravity && hasPhase {
		g.say("The temple responds! A hidden door slides open.")
		g.world.unlockSecretChamber()
	} else {
		g.say("The temple stirs but remains dormant.")
	}
}

// cleanse lifts the curse from the selected artifact. Only works while
// standing on temple ground.
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

func (g *Game) checkWin() {
	if !g.world.templeUnlocked || g.won {
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

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	viewTop := 1
	viewH := g.screenH - 3
	camX := core.Clamp(g.px-g.screenW/2, 0, core.Max(0, g.world.width-g.screenW))
	camY := core.Clamp(g.py-viewH/2, 0, core.Max(0, g.world.height-viewH))

	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < g.screenW; sx++ {
			t, ok := g.world.tiles[pos{camX + sx, camY + sy}]
			if !ok {
				continue
			}
			r, c := g.tileGlyph(t)
			dst.SetCell(sx, sy+viewTop, r, c)
		}
	}

	playerColor := core.ColorBrightBlue
	if g.cursed {
		playerColor = core.ColorBrightRed
	}
	dst.SetCell(g.px-camX, g.py-camY+viewTop, '@', playerColor)

	g.renderInventory(dst)
	if g.message != "" {
		dst.DrawTextColor(1, g.screenH-1, g.message, core.ColorWhite)
	}

	if g.paused {
		dst.DrawTextCentered(g.screenH/2, "= PAUSED =")
	}
	if g.won {
		dst.DrawTextCentered(g.screenH/2-1, "TEMPLE SECRETS UNLOCKED!")
		dst.DrawTextCentered(g.screenH/2, fmt.Sprintf("Score: %d", g.score))
		dst.DrawTextCentered(g.screenH/2+1, "Press R to start a new expedition")
	}
}

func (g *Game) tileGlyph(t *tile) (rune, core.Color) {
	switch {
	case t.artifact != nil:
		return '◆', t.artifact.Color
	case t.pedestal && t.pedestalArtifact != nil:
		return '◆', t.pedestalArtifact.Color
	case t.pedestal:
		return 'Π', core.ColorCyan
	case t.kind == tileWin:
		return '★', core.ColorBrightYellow
	case t.kind == tileWall:
		return '█', core.ColorGray
	case t.temple:
		return '▒', core.ColorMagenta
	default:
		return '·', core.ColorDarkGreen
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	status := fmt.Sprintf("Score: %d  Artifacts: %d", g.score, len(g.inventory))
	dst.DrawText(1, 0, status)

	x := len(status) + 3
	for _, flag := range g.statusFlags() {
		dst.DrawTextColor(x, 0, flag, core.ColorBrightYellow)
		x += len(flag) + 2
	}
}

func (g *Game) statusFlags() []string {
	var flags []string
	if g.invertedControls {
		flags = append(flags, "[INVERTED]")
	}
	if g.canPhase {
		flags = append(flags, "[PHASING]")
	}
	if g.cursed {
		flags = append(flags, "[CURSED]")
	}
	if g.world.gravityInverted {
		flags = append(flags, "[GRAVITY]")
	}
	return flags
}

func (g *Game) renderInventory(dst *core.Screen) {
	x := 1
	for i, a := range g.inventory {
		label := fmt.Sprintf("[%d]%s", i+1, a.Name)
		if a.Cursed && !a.Cleansed {
			label += "✗"
		}
		color := a.Color
		if i == g.selected {
			color = core.ColorBrightWhite
		}
		dst.DrawTextColor(x, g.screenH-2, label, color)
		x += len(label) + 2
	}
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won,
		Paused:   g.paused,
	}
}
