package core

// Action represents a host-level intent, abstracted from physical key presses.
// Movement is not an action: it travels as Key events so repeated presses
// within one frame can accumulate.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// KeyCode identifies a decoded non-character key.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune         // A printable (or at least Unicode) character; see Key.Rune
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
	KeyEscape
	KeyOther
)

// Key is a decoded key event: either a raw key code or a Unicode character.
type Key struct {
	Code KeyCode
	Rune rune
}

// RawKey builds a Key for a non-character key.
func RawKey(code KeyCode) Key {
	return Key{Code: code}
}

// RuneKey builds a Key for a Unicode character.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// IsRune reports whether the key carries a Unicode character.
func (k Key) IsRune() bool {
	return k.Code == KeyRune
}

// IsDrawable reports whether r is printable ASCII and so can be shown as a
// single display glyph.
func IsDrawable(r rune) bool {
	return r >= ' ' && r <= '~'
}

// InputFrame collects the input delivered between two simulation ticks.
type InputFrame struct {
	// Actions maps host actions to whether they were triggered this frame.
	Actions map[Action]bool
	// Keys holds decoded key events in arrival order.
	Keys []Key
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Push appends a key event to the frame.
func (f *InputFrame) Push(k Key) {
	f.Keys = append(f.Keys, k)
}

// Clear resets all actions and keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
}
