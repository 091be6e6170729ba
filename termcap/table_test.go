package termcap

import (
	"errors"
	"testing"

	"github.com/dshills/keydec/key"
)

func TestTableLookupFull(t *testing.T) {
	tbl := New()
	if err := tbl.Register("\x1b[A", key.NewSpecialEvent(key.KeyUp, key.ModNone)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	m, ev, n := tbl.Lookup([]byte("\x1b[A"))
	if m != MatchFull {
		t.Fatalf("Lookup = %v, want full", m)
	}
	if ev.Key != key.KeyUp {
		t.Errorf("event key = %v, want Up", ev.Key)
	}
	if n != 3 {
		t.Errorf("consumed = %d, want 3", n)
	}
}

func TestTableLookupPartial(t *testing.T) {
	tbl := New()
	_ = tbl.Register("\x1b[A", key.NewSpecialEvent(key.KeyUp, key.ModNone))

	for _, prefix := range []string{"\x1b", "\x1b["} {
		m, _, n := tbl.Lookup([]byte(prefix))
		if m != MatchPartial {
			t.Errorf("Lookup(%q) = %v, want partial", prefix, m)
		}
		if n != 0 {
			t.Errorf("Lookup(%q) fallback length = %d, want 0", prefix, n)
		}
	}
}

func TestTableLookupNone(t *testing.T) {
	tbl := New()
	_ = tbl.Register("\x1b[A", key.NewSpecialEvent(key.KeyUp, key.ModNone))

	tests := []string{"x", "\x1bX", "\x1b[B"}
	for _, s := range tests {
		if m, _, _ := tbl.Lookup([]byte(s)); m != MatchNone {
			t.Errorf("Lookup(%q) = %v, want none", s, m)
		}
	}

	if m, _, _ := tbl.Lookup(nil); m != MatchNone {
		t.Error("Lookup(nil) != none")
	}
}

// A full match must not be reported while a longer entry could still
// arrive; the completed entry is carried as the fallback instead.
func TestTableLongestMatchWins(t *testing.T) {
	tbl := New()
	_ = tbl.Register("\x1b[1~", key.NewSpecialEvent(key.KeyHome, key.ModNone))
	_ = tbl.Register("\x1b[11~", key.NewSpecialEvent(key.KeyF1, key.ModNone))

	// The shorter entry resolves only once the next byte diverges.
	m, ev, n := tbl.Lookup([]byte("\x1b[1~"))
	if m != MatchFull || ev.Key != key.KeyHome || n != 4 {
		t.Errorf("Lookup(\\x1b[1~) = %v %v %d, want full Home 4", m, ev.Key, n)
	}

	m, ev, n = tbl.Lookup([]byte("\x1b[11~"))
	if m != MatchFull || ev.Key != key.KeyF1 || n != 5 {
		t.Errorf("Lookup(\\x1b[11~) = %v %v %d, want full F1 5", m, ev.Key, n)
	}
}

func TestTablePartialWithFallback(t *testing.T) {
	tbl := New()
	_ = tbl.Register("ab", key.NewSpecialEvent(key.KeyF1, key.ModNone))
	_ = tbl.Register("abcd", key.NewSpecialEvent(key.KeyF2, key.ModNone))

	// "ab" is complete but "abcd" could still arrive.
	m, ev, n := tbl.Lookup([]byte("ab"))
	if m != MatchPartial {
		t.Fatalf("Lookup(ab) = %v, want partial", m)
	}
	if ev.Key != key.KeyF1 || n != 2 {
		t.Errorf("fallback = %v %d, want F1 2", ev.Key, n)
	}

	// Divergence after the completed entry resolves to it.
	m, ev, n = tbl.Lookup([]byte("abX"))
	if m != MatchFull || ev.Key != key.KeyF1 || n != 2 {
		t.Errorf("Lookup(abX) = %v %v %d, want full F1 2", m, ev.Key, n)
	}
}

func TestTableFirstRegistrationWins(t *testing.T) {
	tbl := New()
	_ = tbl.Register("\x1bOP", key.NewSpecialEvent(key.KeyF1, key.ModNone))
	_ = tbl.Register("\x1bOP", key.NewSpecialEvent(key.KeyF2, key.ModNone))

	_, ev, _ := tbl.Lookup([]byte("\x1bOP"))
	if ev.Key != key.KeyF1 {
		t.Errorf("second registration replaced the first: got %v", ev.Key)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}

func TestTableRegisterEmpty(t *testing.T) {
	tbl := New()
	err := tbl.Register("", key.NewSpecialEvent(key.KeyF1, key.ModNone))
	if !errors.Is(err, ErrInvalidCapabilityData) {
		t.Errorf("Register(\"\") error = %v, want ErrInvalidCapabilityData", err)
	}
}
