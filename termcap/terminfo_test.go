package termcap

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2/terminfo"

	"github.com/dshills/keydec/key"
)

func TestFromTerminfo(t *testing.T) {
	ti := &terminfo.Terminfo{
		Name:     "testterm",
		KeyUp:    "\x1b[A",
		KeyDown:  "\x1b[B",
		KeyF1:    "\x1bOP",
		KeyShfUp: "\x1b[1;2A",
	}

	tbl, err := FromTerminfo(ti)
	if err != nil {
		t.Fatalf("FromTerminfo: %v", err)
	}

	tests := []struct {
		seq      string
		wantKey  key.Key
		wantMods key.Modifier
	}{
		{"\x1b[A", key.KeyUp, key.ModNone},
		{"\x1b[B", key.KeyDown, key.ModNone},
		{"\x1bOP", key.KeyF1, key.ModNone},
		{"\x1b[1;2A", key.KeyUp, key.ModShift},
	}

	for _, tt := range tests {
		m, ev, _ := tbl.Lookup([]byte(tt.seq))
		if m != MatchFull {
			t.Errorf("Lookup(%q) = %v, want full", tt.seq, m)
			continue
		}
		if ev.Key != tt.wantKey || ev.Modifiers != tt.wantMods {
			t.Errorf("Lookup(%q) = %v/%v, want %v/%v",
				tt.seq, ev.Key, ev.Modifiers, tt.wantKey, tt.wantMods)
		}
	}
}

func TestFromTerminfoNil(t *testing.T) {
	_, err := FromTerminfo(nil)
	if !errors.Is(err, ErrInvalidCapabilityData) {
		t.Errorf("FromTerminfo(nil) error = %v, want ErrInvalidCapabilityData", err)
	}
}

func TestFromTerminfoNoKeys(t *testing.T) {
	_, err := FromTerminfo(&terminfo.Terminfo{Name: "dumb"})
	if !errors.Is(err, ErrInvalidCapabilityData) {
		t.Errorf("FromTerminfo(no keys) error = %v, want ErrInvalidCapabilityData", err)
	}
}

func TestForTermFallsBack(t *testing.T) {
	// An empty or unknown terminal name must still produce a usable
	// table rather than an error.
	for _, name := range []string{"", "definitely-not-a-terminal"} {
		tbl, err := ForTerm(name)
		if err != nil {
			t.Fatalf("ForTerm(%q): %v", name, err)
		}
		if m, ev, _ := tbl.Lookup([]byte("\x1b[A")); m != MatchFull || ev.Key != key.KeyUp {
			t.Errorf("ForTerm(%q) fallback table missing Up", name)
		}
	}
}

func TestDefaultTable(t *testing.T) {
	tbl := Default()

	tests := []struct {
		seq      string
		wantKey  key.Key
		wantMods key.Modifier
	}{
		{"\x1b[A", key.KeyUp, key.ModNone},
		{"\x1bOD", key.KeyLeft, key.ModNone},
		{"\x1b[3~", key.KeyDelete, key.ModNone},
		{"\x1b[5~", key.KeyPageUp, key.ModNone},
		{"\x1b[15~", key.KeyF5, key.ModNone},
		{"\x1b[24~", key.KeyF12, key.ModNone},
		{"\x1b[Z", key.KeyBacktab, key.ModNone},
		{"\x7f", key.KeyBackspace, key.ModNone},
		{"\x1b[200~", key.KeyPasteStart, key.ModNone},
		{"\x1b[a", key.KeyUp, key.ModShift},
		{"\x1bOa", key.KeyUp, key.ModCtrl},
		{"\x1b[3^", key.KeyDelete, key.ModCtrl},
	}

	for _, tt := range tests {
		m, ev, n := tbl.Lookup([]byte(tt.seq))
		if m != MatchFull {
			t.Errorf("Lookup(%q) = %v, want full", tt.seq, m)
			continue
		}
		if ev.Key != tt.wantKey || ev.Modifiers != tt.wantMods {
			t.Errorf("Lookup(%q) = %v/%v, want %v/%v",
				tt.seq, ev.Key, ev.Modifiers, tt.wantKey, tt.wantMods)
		}
		if n != len(tt.seq) {
			t.Errorf("Lookup(%q) consumed %d, want %d", tt.seq, n, len(tt.seq))
		}
	}
}
