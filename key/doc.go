// Package key defines the value types produced by the terminal input
// decoder.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers and timestamp
//   - Mouse: A decoded mouse report attached to a KeyMouse event
//
// # Formatting
//
// Events format deterministically in two styles. The canonical style spells
// modifiers in the fixed order Ctrl, Alt, Shift joined with "+", and renders
// symbolic keys by their canonical name:
//
//	"a", "Escape", "Ctrl+C", "Ctrl+Alt+Delete"
//
// The Vim style uses angle-bracket notation:
//
//	"a", "<Esc>", "<C-c>", "<C-A-Del>"
//
// Both styles round-trip through Parse, and symbolic names round-trip
// through KeyFromName and Key.String.
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
package key
