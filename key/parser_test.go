package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		// Single characters
		{"a", NewRuneEvent('a', ModNone)},
		{"A", NewRuneEvent('A', ModShift)},
		{"1", NewRuneEvent('1', ModNone)},
		{"@", NewRuneEvent('@', ModNone)},

		// Key names
		{"Enter", NewSpecialEvent(KeyEnter, ModNone)},
		{"Escape", NewSpecialEvent(KeyEscape, ModNone)},
		{"esc", NewSpecialEvent(KeyEscape, ModNone)},
		{"Tab", NewSpecialEvent(KeyTab, ModNone)},
		{"F5", NewSpecialEvent(KeyF5, ModNone)},

		// Modifier style
		{"Ctrl+S", NewRuneEvent('s', ModCtrl)},
		{"Alt+F4", NewSpecialEvent(KeyF4, ModAlt)},
		{"Ctrl+Shift+P", NewRuneEvent('p', ModCtrl|ModShift)},
		{"Ctrl+Alt+Delete", NewSpecialEvent(KeyDelete, ModCtrl|ModAlt)},

		// Vim style
		{"<C-s>", NewRuneEvent('s', ModCtrl)},
		{"<A-f>", NewRuneEvent('f', ModAlt)},
		{"<C-S-p>", NewRuneEvent('p', ModCtrl|ModShift)},
		{"<CR>", NewSpecialEvent(KeyEnter, ModNone)},
		{"<Esc>", NewSpecialEvent(KeyEscape, ModNone)},
		{"<BS>", NewSpecialEvent(KeyBackspace, ModNone)},
		{"<C-Up>", NewSpecialEvent(KeyUp, ModCtrl)},
		{"<Space>", NewRuneEvent(' ', ModNone)},
		{"<lt>", NewRuneEvent('<', ModNone)},
		{"<C-bslash>", NewRuneEvent('\\', ModCtrl)},

		// Caret notation
		{"^C", NewRuneEvent('c', ModCtrl)},
		{"^@", NewRuneEvent('@', ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want error
	}{
		{"empty", "", ErrEmptySpec},
		{"whitespace", "   ", ErrEmptySpec},
		{"unknown name", "NotAKey", ErrInvalidSpec},
		{"unknown modifier", "Hyper+X", ErrInvalidSpec},
		{"empty vim body", "<>", ErrInvalidSpec},
		{"unknown vim key", "<C-NotAKey>", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid spec")
		}
	}()
	MustParse("NotAKey")
}
