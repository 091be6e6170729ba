package termcap

import (
	"errors"
	"testing"

	"github.com/dshills/keydec/key"
)

func TestLoadOverrides(t *testing.T) {
	tbl := Default()

	// ESC O A normally means Up; remap it, and add a new binding.
	data := []byte(`{
		"\u001bOA": "F1",
		"\u001b[27;5;13~": "Ctrl+Enter"
	}`)
	if err := tbl.LoadOverrides(data); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}

	m, ev, _ := tbl.Lookup([]byte("\x1bOA"))
	if m != MatchFull || ev.Key != key.KeyF1 {
		t.Errorf("override did not replace entry: %v %v", m, ev.Key)
	}

	m, ev, _ = tbl.Lookup([]byte("\x1b[27;5;13~"))
	if m != MatchFull || ev.Key != key.KeyEnter || !ev.Modifiers.HasCtrl() {
		t.Errorf("new override missing: %v %v/%v", m, ev.Key, ev.Modifiers)
	}

	// Untouched entries survive.
	m, ev, _ = tbl.Lookup([]byte("\x1b[A"))
	if m != MatchFull || ev.Key != key.KeyUp {
		t.Errorf("unrelated entry disturbed: %v %v", m, ev.Key)
	}
}

func TestLoadOverridesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed JSON", `{"a": `},
		{"not an object", `["a"]`},
		{"bad key spec", `{"\u001bOA": "NotAKey"}`},
		{"empty sequence", `{"": "F1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Default().LoadOverrides([]byte(tt.data))
			if !errors.Is(err, ErrInvalidCapabilityData) {
				t.Errorf("LoadOverrides error = %v, want ErrInvalidCapabilityData", err)
			}
		})
	}
}
