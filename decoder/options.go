package decoder

import (
	"time"

	"golang.org/x/text/encoding/charmap"
)

// Option configures a Decoder.
type Option func(*config)

// config contains decoder configuration.
type config struct {
	// waittime is how long an ambiguous partial match is tolerated
	// before the caller should force resolution.
	waittime time.Duration

	// charset selects single-byte decoding for non-UTF-8 terminals.
	charset *charmap.Charmap

	// readSize is the scratch buffer used by AdviseReadable.
	readSize int
}

// defaultConfig returns sensible default configuration.
func defaultConfig() config {
	return config{
		waittime: 50 * time.Millisecond,
		readSize: 256,
	}
}

// WithWaittime sets the disambiguation delay recommended to callers
// when a partial sequence is pending.
func WithWaittime(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.waittime = d
		}
	}
}

// WithCharmap selects 8-bit single-byte decoding for terminals that do
// not speak UTF-8. High bytes are decoded through the given character
// map instead of being treated as UTF-8 lead bytes.
func WithCharmap(cm *charmap.Charmap) Option {
	return func(c *config) {
		c.charset = cm
	}
}

// WithReadSize sets the size of the buffer used for a single
// AdviseReadable ingestion.
func WithReadSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.readSize = n
		}
	}
}
