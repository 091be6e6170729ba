package decoder

// buffer holds unconsumed input bytes between decode attempts. Bytes
// already emitted as part of a resolved event are never retained.
type buffer struct {
	b []byte
}

// write appends bytes to the pending buffer.
func (b *buffer) write(p []byte) {
	b.b = append(b.b, p...)
}

// bytes returns the pending bytes without copying. The slice is only
// valid until the next mutation.
func (b *buffer) bytes() []byte {
	return b.b
}

// len returns the number of pending bytes.
func (b *buffer) len() int {
	return len(b.b)
}

// consume removes the first n bytes.
func (b *buffer) consume(n int) {
	if n >= len(b.b) {
		b.b = b.b[:0]
		return
	}
	b.b = append(b.b[:0], b.b[n:]...)
}
