package key

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Event represents a single decoded input event.
//
// Exactly one interpretation is active at a time: Key == KeyRune means a
// character event (Rune holds the character), KeyMouse carries a mouse
// report in Mouse, KeyUnknown preserves undecodable bytes in Raw, and any
// other Key value is a symbolic key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event was decoded.
	Timestamp time.Time

	// Raw holds the consumed bytes for KeyUnknown events.
	Raw []byte

	// Mouse holds the decoded report for KeyMouse events.
	Mouse *Mouse
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(key Key, r rune, mods Modifier) Event {
	return Event{
		Key:       key,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a symbolic key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewUnknownEvent creates an event preserving bytes that could not be
// decoded. The slice is copied.
func NewUnknownEvent(raw []byte) Event {
	b := make([]byte, len(raw))
	copy(b, raw)
	return Event{
		Key:       KeyUnknown,
		Raw:       b,
		Timestamp: time.Now(),
	}
}

// NewMouseEvent creates an event carrying a mouse report.
func NewMouseEvent(m Mouse) Event {
	return Event{
		Key:       KeyMouse,
		Modifiers: m.Modifiers,
		Timestamp: time.Now(),
		Mouse:     &m,
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt) != 0
	}
	return e.Modifiers != ModNone
}

// IsSpecial returns true if this is a special (non-character) key.
func (e Event) IsSpecial() bool {
	return e.Key.IsSpecial()
}

// String returns the canonical representation.
// Examples: "a", "A", "Escape", "Ctrl+S", "Ctrl+Alt+Delete".
func (e Event) String() string {
	switch e.Key {
	case KeyUnknown:
		return fmt.Sprintf("Unknown(% x)", e.Raw)
	case KeyMouse:
		if e.Mouse != nil {
			return e.Mouse.String()
		}
		return "Mouse"
	}

	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "Alt")
	}
	// Shift is only shown for non-character keys; for characters it is
	// already reflected in the rune itself.
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "Shift")
	}

	parts = append(parts, e.keyName())
	return strings.Join(parts, "+")
}

// VimString returns a Vim-style representation.
// Examples: "a", "<Esc>", "<C-s>", "<C-A-Del>".
func (e Event) VimString() string {
	if e.Key == KeyUnknown {
		return fmt.Sprintf("<Unknown-% x>", e.Raw)
	}
	if e.Key == KeyMouse {
		if e.Mouse != nil {
			return "<" + e.Mouse.String() + ">"
		}
		return "<Mouse>"
	}

	// Simple characters without modifiers (except Shift)
	if e.IsRune() && !e.IsModified() {
		if e.Rune == ' ' {
			return "<Space>"
		}
		return string(e.Rune)
	}

	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = strings.ToLower(string(e.Rune))
		}
	case KeyEscape:
		keyName = "Esc"
	case KeyEnter:
		keyName = "CR"
	case KeyBackspace:
		keyName = "BS"
	case KeyDelete:
		keyName = "Del"
	case KeyInsert:
		keyName = "Ins"
	default:
		keyName = e.Key.String()
	}

	parts = append(parts, keyName)
	return "<" + strings.Join(parts, "-") + ">"
}

// keyName renders the key portion for the canonical style.
func (e Event) keyName() string {
	if e.Key != KeyRune {
		return e.Key.String()
	}
	if e.Rune == ' ' {
		return "Space"
	}
	// Control characters that slipped through as runes render as
	// caret notation so the output stays printable.
	if e.Rune < 0x20 {
		return "^" + string('@'+e.Rune)
	}
	if e.IsModified() && unicode.IsLetter(e.Rune) {
		return string(unicode.ToUpper(e.Rune))
	}
	return string(e.Rune)
}

// Equals returns true if two events represent the same key press.
// Timestamps and raw bytes are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// IsEscape returns true if this is the Escape key (with no modifiers).
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// IsEnter returns true if this is the Enter key (with no modifiers).
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter && e.Modifiers == ModNone
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
