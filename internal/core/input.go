package core

// Action is a logical input a game can react to. The TUI layer owns the
// mapping from physical keys; games only see actions.
type Action int

const (
	ActionNone Action = iota

	// Movement and menu navigation.
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	// Game verbs. Primary is the game's main verb (shoot, click, punch,
	// activate); Secondary its alternate (kick, fuse, build).
	ActionPrimary
	ActionSecondary
	ActionJump
	ActionBlock

	// UI actions.
	ActionConfirm
	ActionBack
	ActionPause
	ActionRestart
	ActionQuit

	// Upgrade hotkeys for the incremental games.
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionSlot4

	// Second player on a shared keyboard, used by the duel games.
	ActionP2Up
	ActionP2Down
	ActionP2Left
	ActionP2Right
	ActionP2Primary
	ActionP2Secondary
	ActionP2Block
)

// InputFrame is the set of actions pressed during one simulation tick.
type InputFrame struct {
	pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{pressed: make(map[Action]bool)}
}

// Set marks an action as pressed this tick.
func (f *InputFrame) Set(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
}

// Has reports whether an action is pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return f.pressed[a]
}

// Clear removes all pressed actions.
func (f *InputFrame) Clear() {
	for k := range f.pressed {
		delete(f.pressed, k)
	}
}

// Any reports whether any action at all is pressed.
func (f InputFrame) Any() bool {
	return len(f.pressed) > 0
}
