package termcap

import (
	"errors"
	"fmt"

	"github.com/dshills/keydec/key"
)

// Construction errors
var (
	// ErrInvalidCapabilityData indicates the capability source could not
	// be turned into a usable table. It is fatal at construction time.
	ErrInvalidCapabilityData = errors.New("invalid capability data")
)

// Match classifies the result of a table lookup.
type Match int

const (
	// MatchNone means no registered sequence starts with the prefix.
	MatchNone Match = iota

	// MatchPartial means the prefix could extend into a registered
	// sequence but is not yet conclusive.
	MatchPartial

	// MatchFull means the prefix resolves to exactly one registered
	// sequence and no longer entry can still match.
	MatchFull
)

// String returns a human-readable match name.
func (m Match) String() string {
	switch m {
	case MatchPartial:
		return "partial"
	case MatchFull:
		return "full"
	default:
		return "none"
	}
}

// node is a trie node keyed on a single byte. A node with a non-nil event
// terminates a registered sequence; it may still have children when a
// longer sequence shares the prefix.
type node struct {
	children map[byte]*node
	ev       *key.Event
}

// Table maps terminal byte sequences to key events.
//
// The table is immutable from the decoder's point of view: all
// registration happens during construction, Lookup performs no mutation.
type Table struct {
	root node
	size int
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Len returns the number of registered sequences.
func (t *Table) Len() int {
	return t.size
}

// Register adds a byte sequence producing the given event. If the exact
// sequence is already registered the first registration wins and the new
// one is ignored; ties between capability entries therefore resolve in
// registration order.
func (t *Table) Register(seq string, ev key.Event) error {
	return t.put(seq, ev, false)
}

func (t *Table) put(seq string, ev key.Event, overwrite bool) error {
	if seq == "" {
		return fmt.Errorf("%w: empty sequence", ErrInvalidCapabilityData)
	}

	n := &t.root
	for i := 0; i < len(seq); i++ {
		b := seq[i]
		if n.children == nil {
			n.children = make(map[byte]*node)
		}
		child, ok := n.children[b]
		if !ok {
			child = &node{}
			n.children[b] = child
		}
		n = child
	}

	if n.ev != nil && !overwrite {
		return nil
	}
	if n.ev == nil {
		t.size++
	}
	e := ev
	n.ev = &e
	return nil
}

// Lookup performs a longest-prefix match of p against the table.
//
// MatchFull returns the matched event and the number of bytes it
// consumed. MatchPartial means more bytes could still extend the match;
// if a shorter registered sequence has already completed, its event and
// length are returned alongside so a forced resolution can fall back to
// it. MatchNone means no registered sequence starts with p.
func (t *Table) Lookup(p []byte) (Match, key.Event, int) {
	if len(p) == 0 {
		return MatchNone, key.Event{}, 0
	}

	var (
		bestEv  *key.Event
		bestLen int
	)

	n := &t.root
	for i := 0; i < len(p); i++ {
		child, ok := n.children[p[i]]
		if !ok {
			// Diverged: the longest completed entry, if any, wins.
			if bestEv != nil {
				return MatchFull, *bestEv, bestLen
			}
			return MatchNone, key.Event{}, 0
		}
		n = child
		if n.ev != nil {
			bestEv = n.ev
			bestLen = i + 1
		}
	}

	// Consumed all of p.
	if n.ev != nil && len(n.children) == 0 {
		return MatchFull, *n.ev, len(p)
	}
	if bestEv != nil {
		// A completed entry is in hand but a longer one could still
		// arrive; the decoder must wait or force.
		return MatchPartial, *bestEv, bestLen
	}
	return MatchPartial, key.Event{}, 0
}
