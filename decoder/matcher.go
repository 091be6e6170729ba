package decoder

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/dshills/keydec/key"
	"github.com/dshills/keydec/termcap"
)

// maxSequence bounds how long a single escape sequence may grow before
// it is surfaced as unrecognized bytes instead of waiting forever.
const maxSequence = 64

// matchKind classifies a single decode attempt over the buffer prefix.
type matchKind int

const (
	matchNone matchKind = iota
	matchPartial
	matchFull
)

// match is the result of classifying a buffer prefix.
type match struct {
	kind matchKind
	ev   key.Event
	n    int

	// Longest completed capability entry beneath a still-extendable
	// prefix. Forced resolution falls back to it.
	fallbackEv key.Event
	fallbackN  int
}

func full(ev key.Event, n int) match {
	return match{kind: matchFull, ev: ev, n: n}
}

// matcher classifies pending bytes against the capability table and the
// built-in sequence classes (control bytes, UTF-8, CSI/SS3 fallbacks,
// mouse reports).
type matcher struct {
	table   *termcap.Table
	charset *charmap.Charmap // non-nil selects 8-bit single-byte decoding
}

// classify examines the buffer prefix. The capability table is consulted
// first so terminal-specific sequences always win; the built-in classes
// cover everything the table does not describe.
func (m *matcher) classify(buf []byte) match {
	if len(buf) == 0 {
		return match{kind: matchNone}
	}

	tm, tev, tn := m.table.Lookup(buf)
	switch tm {
	case termcap.MatchFull:
		return full(tev, tn)
	case termcap.MatchPartial:
		res := match{kind: matchPartial}
		if tn > 0 {
			res.fallbackEv, res.fallbackN = tev, tn
		}
		return res
	}

	if buf[0] == 0x1b {
		return m.classifyEscape(buf)
	}
	return m.classifyText(buf)
}

// resolve forces the best available interpretation of a prefix the last
// classify call reported as partial. It always produces an event and a
// consumed length; it never reports partial again.
func (m *matcher) resolve(buf []byte) (key.Event, int) {
	c := m.classify(buf)
	switch c.kind {
	case matchFull:
		return c.ev, c.n
	case matchNone:
		return key.NewUnknownEvent(buf[:1]), 1
	}

	if c.fallbackN > 0 {
		return c.fallbackEv, c.fallbackN
	}

	if buf[0] == 0x1b {
		if len(buf) == 1 {
			return key.NewSpecialEvent(key.KeyEscape, key.ModNone), 1
		}
		if buf[1] != '[' && buf[1] != 'O' {
			// A truncated Alt-modified rune; surface the bytes.
			return key.NewUnknownEvent(buf), len(buf)
		}
		// An unfinished CSI/SS3 sequence: the ESC stands alone and
		// the tail is reprocessed as ordinary bytes.
		return key.NewSpecialEvent(key.KeyEscape, key.ModNone), 1
	}

	// A truncated UTF-8 sequence.
	return key.NewUnknownEvent(buf), len(buf)
}

// classifyText handles buffers that do not start with ESC: control
// bytes, printable ASCII, and multi-byte characters.
func (m *matcher) classifyText(buf []byte) match {
	b0 := buf[0]

	switch {
	case b0 == 0x7f:
		return full(key.NewSpecialEvent(key.KeyBackspace, key.ModNone), 1)
	case b0 < 0x20:
		return full(ctrlByteEvent(b0), 1)
	case b0 < 0x80:
		return full(key.NewRuneEvent(rune(b0), key.ModNone), 1)
	}

	if m.charset != nil {
		return full(key.NewRuneEvent(m.charset.DecodeByte(b0), key.ModNone), 1)
	}

	if !utf8.FullRune(buf) {
		// A valid lead byte still waiting for continuation bytes.
		return match{kind: matchPartial}
	}
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size == 1 {
		return full(key.NewUnknownEvent(buf[:1]), 1)
	}
	return full(key.NewRuneEvent(r, key.ModNone), size)
}

// classifyEscape handles ESC-introduced input the capability table did
// not claim: CSI and SS3 fallbacks, Alt-modified characters, and mouse
// reports.
func (m *matcher) classifyEscape(buf []byte) match {
	if len(buf) == 1 {
		return match{kind: matchPartial}
	}

	b1 := buf[1]
	switch {
	case b1 == '[':
		return m.classifyCSI(buf)
	case b1 == 'O':
		return m.classifySS3(buf)
	case b1 == 0x1b:
		// The leading ESC cannot extend further; emit it and leave
		// the second one for the next decode attempt.
		return full(key.NewSpecialEvent(key.KeyEscape, key.ModNone), 1)
	case b1 == 0x7f:
		return full(withAlt(key.NewSpecialEvent(key.KeyBackspace, key.ModNone)), 2)
	case b1 < 0x20:
		return full(withAlt(ctrlByteEvent(b1)), 2)
	case b1 < 0x80:
		return full(key.NewRuneEvent(rune(b1), key.ModAlt), 2)
	}

	// Alt ahead of a multi-byte or 8-bit character.
	if m.charset != nil {
		return full(key.NewRuneEvent(m.charset.DecodeByte(b1), key.ModAlt), 2)
	}
	tail := buf[1:]
	if !utf8.FullRune(tail) {
		return match{kind: matchPartial}
	}
	r, size := utf8.DecodeRune(tail)
	if r == utf8.RuneError && size == 1 {
		return full(key.NewUnknownEvent(buf[:2]), 2)
	}
	return full(key.NewRuneEvent(r, key.ModAlt), 1+size)
}

// classifySS3 handles ESC O sequences for terminals in application
// cursor mode whose capabilities are missing from the table.
func (m *matcher) classifySS3(buf []byte) match {
	if len(buf) < 3 {
		return match{kind: matchPartial}
	}

	var k key.Key
	switch buf[2] {
	case 'A':
		k = key.KeyUp
	case 'B':
		k = key.KeyDown
	case 'C':
		k = key.KeyRight
	case 'D':
		k = key.KeyLeft
	case 'H':
		k = key.KeyHome
	case 'F':
		k = key.KeyEnd
	case 'P':
		k = key.KeyF1
	case 'Q':
		k = key.KeyF2
	case 'R':
		k = key.KeyF3
	case 'S':
		k = key.KeyF4
	case 'M':
		k = key.KeyEnter // keypad enter
	default:
		return full(key.NewUnknownEvent(buf[:3]), 3)
	}
	return full(key.NewSpecialEvent(k, key.ModNone), 3)
}

// classifyCSI scans an ESC [ sequence for its final byte and decodes
// parameterized keys, modifier encodings, and mouse reports.
func (m *matcher) classifyCSI(buf []byte) match {
	// X10 mouse: CSI M is followed by three raw coordinate bytes.
	if len(buf) >= 3 && buf[2] == 'M' {
		if len(buf) < 6 {
			return match{kind: matchPartial}
		}
		return full(x10Mouse(buf[3], buf[4], buf[5]), 6)
	}

	i := 2
	for i < len(buf) {
		b := buf[i]
		if b >= 0x40 && b <= 0x7e {
			break
		}
		if b < 0x20 || i > maxSequence {
			// Not a CSI byte: surface what accumulated so far.
			return full(key.NewUnknownEvent(buf[:i]), i)
		}
		i++
	}
	if i == len(buf) {
		return match{kind: matchPartial}
	}

	body := string(buf[2:i])
	final := buf[i]
	raw := buf[:i+1]

	// SGR mouse: CSI < b ; x ; y followed by M (press) or m (release).
	if strings.HasPrefix(body, "<") && (final == 'M' || final == 'm') {
		return sgrMouse(body[1:], final, raw)
	}

	params := parseParams(body)
	mods := csiModifier(paramAt(params, 1))

	switch final {
	case 'A':
		return full(key.NewSpecialEvent(key.KeyUp, mods), len(raw))
	case 'B':
		return full(key.NewSpecialEvent(key.KeyDown, mods), len(raw))
	case 'C':
		return full(key.NewSpecialEvent(key.KeyRight, mods), len(raw))
	case 'D':
		return full(key.NewSpecialEvent(key.KeyLeft, mods), len(raw))
	case 'H':
		return full(key.NewSpecialEvent(key.KeyHome, mods), len(raw))
	case 'F':
		return full(key.NewSpecialEvent(key.KeyEnd, mods), len(raw))
	case 'Z':
		return full(key.NewSpecialEvent(key.KeyBacktab, mods), len(raw))
	case 'P', 'Q', 'R', 'S':
		// Modified F1-F4 are sent as CSI 1 ; m {PQRS}.
		return full(key.NewSpecialEvent(key.KeyF1+key.Key(final-'P'), mods), len(raw))
	case 'u':
		// modifyOtherKeys / kitty encoding: codepoint ; modifiers u.
		cp := paramAt(params, 0)
		if cp <= 0 || !utf8.ValidRune(rune(cp)) {
			return full(key.NewUnknownEvent(raw), len(raw))
		}
		return full(key.NewRuneEvent(rune(cp), mods), len(raw))
	case '~':
		if k, ok := tildeKeys[paramAt(params, 0)]; ok {
			return full(key.NewSpecialEvent(k, mods), len(raw))
		}
		return full(key.NewUnknownEvent(raw), len(raw))
	}
	return full(key.NewUnknownEvent(raw), len(raw))
}

// tildeKeys maps the leading parameter of a CSI ~ sequence to its key.
var tildeKeys = map[int]key.Key{
	1:   key.KeyHome,
	2:   key.KeyInsert,
	3:   key.KeyDelete,
	4:   key.KeyEnd,
	5:   key.KeyPageUp,
	6:   key.KeyPageDown,
	7:   key.KeyHome,
	8:   key.KeyEnd,
	11:  key.KeyF1,
	12:  key.KeyF2,
	13:  key.KeyF3,
	14:  key.KeyF4,
	15:  key.KeyF5,
	17:  key.KeyF6,
	18:  key.KeyF7,
	19:  key.KeyF8,
	20:  key.KeyF9,
	21:  key.KeyF10,
	23:  key.KeyF11,
	24:  key.KeyF12,
	200: key.KeyPasteStart,
	201: key.KeyPasteEnd,
}

// parseParams splits a CSI parameter body on ';'. Sub-parameters after
// ':' are dropped; empty or malformed positions become zero.
func parseParams(body string) []int {
	if body == "" {
		return nil
	}
	parts := strings.Split(body, ";")
	out := make([]int, len(parts))
	for i, p := range parts {
		if j := strings.IndexByte(p, ':'); j >= 0 {
			p = p[:j]
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		out[i] = n
	}
	return out
}

func paramAt(params []int, i int) int {
	if i >= len(params) {
		return 0
	}
	return params[i]
}

// csiModifier decodes the xterm modifier parameter: the value minus one
// is a bitset of Shift=1, Alt=2, Ctrl=4.
func csiModifier(p int) key.Modifier {
	if p < 2 {
		return key.ModNone
	}
	bits := p - 1
	var m key.Modifier
	if bits&1 != 0 {
		m = m.With(key.ModShift)
	}
	if bits&2 != 0 {
		m = m.With(key.ModAlt)
	}
	if bits&4 != 0 {
		m = m.With(key.ModCtrl)
	}
	return m
}

// ctrlByteEvent decodes a bare C0 control byte (never ESC) as the
// Ctrl-modified character it stands for.
func ctrlByteEvent(b byte) key.Event {
	switch {
	case b == 0x00:
		return key.NewRuneEvent(' ', key.ModCtrl)
	case b <= 0x1a:
		return key.NewRuneEvent(rune('a'+b-1), key.ModCtrl)
	default: // 0x1c-0x1f
		return key.NewRuneEvent(rune('\\'+b-0x1c), key.ModCtrl)
	}
}

func withAlt(ev key.Event) key.Event {
	ev.Modifiers = ev.Modifiers.With(key.ModAlt)
	return ev
}

// x10Mouse decodes the three coordinate bytes of a classic CSI M report.
func x10Mouse(cb, x, y byte) key.Event {
	btn, action := mouseButton(cb - 32)
	return key.NewMouseEvent(key.Mouse{
		X:         int(x) - 33,
		Y:         int(y) - 33,
		Button:    btn,
		Action:    action,
		Modifiers: mouseModifier(cb - 32),
	})
}

// sgrMouse decodes a CSI < b ; x ; y M/m report.
func sgrMouse(body string, final byte, raw []byte) match {
	params := parseParams(body)
	if len(params) < 3 {
		return full(key.NewUnknownEvent(raw), len(raw))
	}
	cb := byte(params[0])
	btn, action := mouseButton(cb)
	if final == 'm' {
		action = key.ActionRelease
	}
	return full(key.NewMouseEvent(key.Mouse{
		X:         params[1] - 1,
		Y:         params[2] - 1,
		Button:    btn,
		Action:    action,
		Modifiers: mouseModifier(cb),
	}), len(raw))
}

// mouseButton decodes the xterm button bits shared by the X10 and SGR
// encodings.
func mouseButton(cb byte) (key.Button, key.MouseAction) {
	if cb&64 != 0 {
		if cb&3 == 0 {
			return key.ButtonWheelUp, key.ActionPress
		}
		return key.ButtonWheelDown, key.ActionPress
	}

	var btn key.Button
	switch cb & 3 {
	case 0:
		btn = key.ButtonLeft
	case 1:
		btn = key.ButtonMiddle
	case 2:
		btn = key.ButtonRight
	case 3:
		return key.ButtonNone, key.ActionRelease
	}
	if cb&32 != 0 {
		return btn, key.ActionMotion
	}
	return btn, key.ActionPress
}

// mouseModifier decodes the modifier bits of a mouse report.
func mouseModifier(cb byte) key.Modifier {
	var m key.Modifier
	if cb&4 != 0 {
		m = m.With(key.ModShift)
	}
	if cb&8 != 0 {
		m = m.With(key.ModAlt)
	}
	if cb&16 != 0 {
		m = m.With(key.ModCtrl)
	}
	return m
}
