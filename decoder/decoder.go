package decoder

import (
	"errors"
	"io"
	"time"

	"github.com/dshills/keydec/key"
	"github.com/dshills/keydec/termcap"
)

// Construction errors
var (
	// ErrNoTable indicates the decoder was created without a capability
	// table.
	ErrNoTable = errors.New("decoder: nil capability table")
)

// Decoder turns raw terminal input bytes into key events.
//
// The decoder performs no I/O scheduling of its own: it never blocks,
// owns no goroutines, and owns no timers. The caller detects
// readability, hands bytes over through AdviseReadable or Push, and
// drains events with GetKey until it stops returning ResultKey. When
// GetKey reports ResultAgain a partial sequence is pending: the caller
// should wait up to Waittime for more bytes and, if none arrive, call
// GetKeyForce to resolve the ambiguity. Arriving bytes invalidate the
// pending timeout, so the caller cancels its timer whenever
// AdviseReadable ingests data.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	src  io.Reader
	m    matcher
	buf  buffer
	wait time.Duration

	scratch []byte
	closed  bool
	err     error
}

// New creates a decoder reading from src and classifying sequences
// against table. src may be nil for callers that own the read and push
// bytes explicitly.
func New(src io.Reader, table *termcap.Table, opts ...Option) (*Decoder, error) {
	if table == nil {
		return nil, ErrNoTable
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Decoder{
		src:     src,
		m:       matcher{table: table, charset: cfg.charset},
		wait:    cfg.waittime,
		scratch: make([]byte, cfg.readSize),
	}, nil
}

// AdviseReadable ingests whatever the source has available. Call it
// after observing readability; it performs exactly one read and never
// blocks on a source that reported readable.
//
// Returns ResultAgain if bytes are pending afterward, ResultNone if
// nothing was available, and ResultEOF once the source is closed. Any
// timer armed for a previous ResultAgain must be cancelled by the
// caller when this ingests new bytes.
func (d *Decoder) AdviseReadable() Result {
	if d.closed {
		return ResultEOF
	}
	if d.src == nil {
		if d.buf.len() > 0 {
			return ResultAgain
		}
		return ResultNone
	}

	n, err := d.src.Read(d.scratch)
	if n > 0 {
		d.buf.write(d.scratch[:n])
	}
	if err != nil {
		d.closed = true
		if !errors.Is(err, io.EOF) {
			d.err = err
		}
	}

	if d.buf.len() > 0 {
		return ResultAgain
	}
	if d.closed {
		return ResultEOF
	}
	return ResultNone
}

// Push ingests bytes read by the caller. Bytes arriving after the
// source is closed are not accepted.
func (d *Decoder) Push(p []byte) Result {
	if d.closed {
		return ResultEOF
	}
	d.buf.write(p)
	if d.buf.len() > 0 {
		return ResultAgain
	}
	return ResultNone
}

// GetKey attempts to decode the next key event from the pending bytes.
//
// Call it in a loop: ResultKey means an event was produced and more may
// follow; ResultAgain means a partial sequence needs either more bytes
// or, after Waittime with none, GetKeyForce; ResultNone means the
// buffer is empty; ResultEOF is terminal.
func (d *Decoder) GetKey() (key.Event, Result) {
	for d.buf.len() > 0 {
		c := d.m.classify(d.buf.bytes())
		switch c.kind {
		case matchFull:
			d.buf.consume(c.n)
			return c.ev, ResultKey
		case matchPartial:
			if d.closed {
				// No more bytes can ever arrive; resolve now.
				return d.force()
			}
			return key.Event{}, ResultAgain
		default:
			// Unrecognized leading byte: drop it but surface the
			// fact rather than discarding silently.
			ev := key.NewUnknownEvent(d.buf.bytes()[:1])
			d.buf.consume(1)
			return ev, ResultKey
		}
	}

	if d.closed {
		return key.Event{}, ResultEOF
	}
	return key.Event{}, ResultNone
}

// GetKeyForce resolves a pending partial match to its best available
// interpretation. Call it only after GetKey returned ResultAgain and
// Waittime elapsed with no new bytes: a lone ESC resolves to the Escape
// key, a truncated UTF-8 sequence to an unrecognized event, a completed
// shorter capability entry to its key.
//
// Forcing with an empty buffer is a no-op returning ResultNone, so a
// stale timer firing late does no harm.
func (d *Decoder) GetKeyForce() (key.Event, Result) {
	if d.buf.len() == 0 {
		if d.closed {
			return key.Event{}, ResultEOF
		}
		return key.Event{}, ResultNone
	}
	return d.force()
}

// force resolves the buffer prefix unconditionally. The remainder, if
// any, stays pending and resolves through the caller's normal GetKey
// drain loop; bytes are never dropped.
func (d *Decoder) force() (key.Event, Result) {
	ev, n := d.m.resolve(d.buf.bytes())
	d.buf.consume(n)
	return ev, ResultKey
}

// Close signals that the source is finished. Pending bytes still decode;
// once drained, every call reports ResultEOF.
func (d *Decoder) Close() {
	d.closed = true
}

// Err returns the first non-EOF read error observed by AdviseReadable,
// if any.
func (d *Decoder) Err() error {
	return d.err
}

// Waittime returns the configured disambiguation delay.
func (d *Decoder) Waittime() time.Duration {
	return d.wait
}

// SetWaittime changes the disambiguation delay.
func (d *Decoder) SetWaittime(wt time.Duration) {
	if wt > 0 {
		d.wait = wt
	}
}

// Pending returns the number of unconsumed bytes, for diagnostics.
func (d *Decoder) Pending() int {
	return d.buf.len()
}
