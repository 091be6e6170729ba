package decoder

// Result is the outcome of a single decode attempt.
type Result int

const (
	// ResultNone means no bytes are pending; there is nothing to decode.
	ResultNone Result = iota

	// ResultKey means a key event was produced.
	ResultKey

	// ResultAgain means a partial sequence is pending. The caller should
	// wait up to Waittime for more bytes, then call GetKeyForce.
	ResultAgain

	// ResultEOF means the source is closed and drained. Every subsequent
	// call returns ResultEOF.
	ResultEOF
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case ResultKey:
		return "key"
	case ResultAgain:
		return "again"
	case ResultEOF:
		return "eof"
	default:
		return "none"
	}
}
