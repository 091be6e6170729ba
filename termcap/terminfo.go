package termcap

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2/terminfo"

	// Register the built-in terminal database.
	_ "github.com/gdamore/tcell/v2/terminfo/extended"

	"github.com/dshills/keydec/key"
)

// ForTerm builds a table for the named terminal type from the terminfo
// database. Unknown terminals fall back to the built-in default set, so a
// missing entry never prevents decoding; genuinely malformed entries do.
func ForTerm(name string) (*Table, error) {
	if name == "" {
		return Default(), nil
	}
	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		if errors.Is(err, terminfo.ErrTermNotFound) {
			return Default(), nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCapabilityData, name, err)
	}
	return FromTerminfo(ti)
}

// FromTerminfo builds a table from an already-loaded terminfo entry.
// Entries with no key capabilities at all are rejected.
func FromTerminfo(ti *terminfo.Terminfo) (*Table, error) {
	if ti == nil {
		return nil, fmt.Errorf("%w: nil terminfo", ErrInvalidCapabilityData)
	}

	t := New()
	reg := func(seq string, k key.Key, mods key.Modifier) {
		if seq == "" {
			return
		}
		// Registration order resolves collisions; terminfo entries
		// never error here because empty capabilities are skipped.
		_ = t.Register(seq, key.NewSpecialEvent(k, mods))
	}

	reg(ti.KeyUp, key.KeyUp, key.ModNone)
	reg(ti.KeyDown, key.KeyDown, key.ModNone)
	reg(ti.KeyLeft, key.KeyLeft, key.ModNone)
	reg(ti.KeyRight, key.KeyRight, key.ModNone)
	reg(ti.KeyHome, key.KeyHome, key.ModNone)
	reg(ti.KeyEnd, key.KeyEnd, key.ModNone)
	reg(ti.KeyInsert, key.KeyInsert, key.ModNone)
	reg(ti.KeyDelete, key.KeyDelete, key.ModNone)
	reg(ti.KeyPgUp, key.KeyPageUp, key.ModNone)
	reg(ti.KeyPgDn, key.KeyPageDown, key.ModNone)
	reg(ti.KeyBackspace, key.KeyBackspace, key.ModNone)
	reg(ti.KeyBacktab, key.KeyBacktab, key.ModNone)

	fkeys := []string{
		ti.KeyF1, ti.KeyF2, ti.KeyF3, ti.KeyF4, ti.KeyF5, ti.KeyF6,
		ti.KeyF7, ti.KeyF8, ti.KeyF9, ti.KeyF10, ti.KeyF11, ti.KeyF12,
	}
	for i, seq := range fkeys {
		reg(seq, key.FunctionKey(i+1), key.ModNone)
	}

	reg(ti.KeyShfUp, key.KeyUp, key.ModShift)
	reg(ti.KeyShfDown, key.KeyDown, key.ModShift)
	reg(ti.KeyShfLeft, key.KeyLeft, key.ModShift)
	reg(ti.KeyShfRight, key.KeyRight, key.ModShift)
	reg(ti.KeyShfHome, key.KeyHome, key.ModShift)
	reg(ti.KeyShfEnd, key.KeyEnd, key.ModShift)

	reg(ti.KeyCtrlUp, key.KeyUp, key.ModCtrl)
	reg(ti.KeyCtrlDown, key.KeyDown, key.ModCtrl)
	reg(ti.KeyCtrlLeft, key.KeyLeft, key.ModCtrl)
	reg(ti.KeyCtrlRight, key.KeyRight, key.ModCtrl)
	reg(ti.KeyCtrlHome, key.KeyHome, key.ModCtrl)
	reg(ti.KeyCtrlEnd, key.KeyEnd, key.ModCtrl)

	reg(ti.KeyAltUp, key.KeyUp, key.ModAlt)
	reg(ti.KeyAltDown, key.KeyDown, key.ModAlt)
	reg(ti.KeyAltLeft, key.KeyLeft, key.ModAlt)
	reg(ti.KeyAltRight, key.KeyRight, key.ModAlt)

	if t.Len() == 0 {
		return nil, fmt.Errorf("%w: %s: no key capabilities", ErrInvalidCapabilityData, ti.Name)
	}
	return t, nil
}

// Default returns the built-in xterm/VT100 sequence set, used when the
// terminal type is unknown. Sequences cover both the CSI and SS3 cursor
// key encodings plus the common rxvt shift/ctrl variants.
func Default() *Table {
	t := New()
	reg := func(seq string, k key.Key, mods key.Modifier) {
		_ = t.Register(seq, key.NewSpecialEvent(k, mods))
	}

	reg("\x1b[A", key.KeyUp, key.ModNone)
	reg("\x1b[B", key.KeyDown, key.ModNone)
	reg("\x1b[C", key.KeyRight, key.ModNone)
	reg("\x1b[D", key.KeyLeft, key.ModNone)
	reg("\x1bOA", key.KeyUp, key.ModNone)
	reg("\x1bOB", key.KeyDown, key.ModNone)
	reg("\x1bOC", key.KeyRight, key.ModNone)
	reg("\x1bOD", key.KeyLeft, key.ModNone)

	reg("\x1b[H", key.KeyHome, key.ModNone)
	reg("\x1bOH", key.KeyHome, key.ModNone)
	reg("\x1b[1~", key.KeyHome, key.ModNone)
	reg("\x1b[7~", key.KeyHome, key.ModNone)
	reg("\x1b[F", key.KeyEnd, key.ModNone)
	reg("\x1bOF", key.KeyEnd, key.ModNone)
	reg("\x1b[4~", key.KeyEnd, key.ModNone)
	reg("\x1b[8~", key.KeyEnd, key.ModNone)

	reg("\x1b[2~", key.KeyInsert, key.ModNone)
	reg("\x1b[3~", key.KeyDelete, key.ModNone)
	reg("\x1b[5~", key.KeyPageUp, key.ModNone)
	reg("\x1b[6~", key.KeyPageDown, key.ModNone)

	reg("\x1bOP", key.KeyF1, key.ModNone)
	reg("\x1bOQ", key.KeyF2, key.ModNone)
	reg("\x1bOR", key.KeyF3, key.ModNone)
	reg("\x1bOS", key.KeyF4, key.ModNone)
	reg("\x1b[11~", key.KeyF1, key.ModNone)
	reg("\x1b[12~", key.KeyF2, key.ModNone)
	reg("\x1b[13~", key.KeyF3, key.ModNone)
	reg("\x1b[14~", key.KeyF4, key.ModNone)
	reg("\x1b[15~", key.KeyF5, key.ModNone)
	reg("\x1b[17~", key.KeyF6, key.ModNone)
	reg("\x1b[18~", key.KeyF7, key.ModNone)
	reg("\x1b[19~", key.KeyF8, key.ModNone)
	reg("\x1b[20~", key.KeyF9, key.ModNone)
	reg("\x1b[21~", key.KeyF10, key.ModNone)
	reg("\x1b[23~", key.KeyF11, key.ModNone)
	reg("\x1b[24~", key.KeyF12, key.ModNone)

	// rxvt-style modified navigation
	reg("\x1b[a", key.KeyUp, key.ModShift)
	reg("\x1b[b", key.KeyDown, key.ModShift)
	reg("\x1b[c", key.KeyRight, key.ModShift)
	reg("\x1b[d", key.KeyLeft, key.ModShift)
	reg("\x1bOa", key.KeyUp, key.ModCtrl)
	reg("\x1bOb", key.KeyDown, key.ModCtrl)
	reg("\x1bOc", key.KeyRight, key.ModCtrl)
	reg("\x1bOd", key.KeyLeft, key.ModCtrl)
	reg("\x1b[2$", key.KeyInsert, key.ModShift)
	reg("\x1b[3$", key.KeyDelete, key.ModShift)
	reg("\x1b[5$", key.KeyPageUp, key.ModShift)
	reg("\x1b[6$", key.KeyPageDown, key.ModShift)
	reg("\x1b[2^", key.KeyInsert, key.ModCtrl)
	reg("\x1b[3^", key.KeyDelete, key.ModCtrl)
	reg("\x1b[5^", key.KeyPageUp, key.ModCtrl)
	reg("\x1b[6^", key.KeyPageDown, key.ModCtrl)

	reg("\x1b[Z", key.KeyBacktab, key.ModNone)
	reg("\x7f", key.KeyBackspace, key.ModNone)

	reg("\x1b[200~", key.KeyPasteStart, key.ModNone)
	reg("\x1b[201~", key.KeyPasteEnd, key.ModNone)

	return t
}
