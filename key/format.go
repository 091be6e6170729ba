package key

// FormatFlags selects among the output styles produced by Format.
// The zero value selects the canonical style.
type FormatFlags uint8

const (
	// FormatVim renders Vim-style angle-bracket notation such as
	// "<C-s>" and "<Esc>".
	FormatVim FormatFlags = 1 << iota

	// FormatCaret renders Ctrl-modified letters in caret notation such
	// as "^C". It applies only to the canonical style.
	FormatCaret
)

// Format renders an event in the style selected by flags.
//
// The canonical style (zero flags) spells modifiers in the fixed order
// Ctrl, Alt, Shift and renders symbolic keys by their canonical name, so
// a bare Escape press formats as "Escape". Every style is deterministic
// and round-trips through Parse.
func Format(e Event, flags FormatFlags) string {
	if flags&FormatVim != 0 {
		return e.VimString()
	}
	if flags&FormatCaret != 0 && e.IsRune() && e.Modifiers == ModCtrl {
		r := e.Rune
		if r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
		}
		if r >= '@' && r <= '_' {
			return "^" + string(r)
		}
	}
	return e.String()
}
