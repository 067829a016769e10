// Package keys models the keyboard events the widget states dispatch
// on. The view layer translates its native key events (DOM KeyboardEvent,
// terminal input, test doubles) into keys.Event values and feeds them to
// a widget's OnKeyDown handler.
package keys

// Key identifies a recognized key. Keys outside this set arrive as
// KeyOther and pass through widget dispatch untouched.
type Key int

const (
	// KeyOther is any key the widgets do not handle.
	KeyOther Key = iota

	// KeyArrowUp moves focus up.
	KeyArrowUp

	// KeyArrowDown moves focus down.
	KeyArrowDown

	// KeyArrowLeft moves focus left.
	KeyArrowLeft

	// KeyArrowRight moves focus right.
	KeyArrowRight

	// KeyHome moves focus to the start of the row.
	KeyHome

	// KeyEnd moves focus to the end of the row.
	KeyEnd

	// KeyPageUp pages backward.
	KeyPageUp

	// KeyPageDown pages forward.
	KeyPageDown

	// KeyEnter activates the focused element.
	KeyEnter

	// KeySpace activates the focused element.
	KeySpace
)

func (k Key) String() string {
	switch k {
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowLeft:
		return "ArrowLeft"
	case KeyArrowRight:
		return "ArrowRight"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return " "
	default:
		return "Other"
	}
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	// ModShift is the Shift key.
	ModShift Modifiers = 1 << iota
	// ModCtrl is the Control key.
	ModCtrl
	// ModAlt is the Alt/Option key.
	ModAlt
	// ModMeta is the Command/Windows key.
	ModMeta
)

// Has reports whether all of the given modifiers are held.
func (m Modifiers) Has(mods Modifiers) bool { return m&mods == mods }

// Result indicates how a key event was handled.
type Result int

const (
	// Ignored indicates the event was not handled and should receive
	// its default action.
	Ignored Result = iota

	// Handled indicates the event was consumed.
	Handled
)

// Event is a single key press dispatched to a widget.
type Event struct {
	// Key is the recognized key code.
	Key Key

	// Mods holds the modifier keys active during the press.
	Mods Modifiers

	prevented bool
}

// NewEvent builds an event for the given key and modifiers.
func NewEvent(key Key, mods Modifiers) *Event {
	return &Event{Key: key, Mods: mods}
}

// PreventDefault marks the event so the view layer suppresses the
// native default action (scrolling, text selection).
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.prevented }
