package termcap

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dshills/keydec/key"
)

// LoadOverrides merges user keymap overrides into the table. The data is
// a JSON object mapping literal escape sequences to key specifications:
//
//	{
//	    "\u001bOA": "Up",
//	    "\u001b[27;5;13~": "Ctrl+Enter",
//	    "\u001bx": "<A-x>"
//	}
//
// Overrides intentionally replace earlier registrations. Malformed JSON,
// empty sequences, and unparseable key specifications all fail with
// ErrInvalidCapabilityData; a failed load leaves no partial guarantee, so
// callers should treat it as fatal the same way they treat a failed
// terminfo load.
func (t *Table) LoadOverrides(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: malformed override JSON", ErrInvalidCapabilityData)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return fmt.Errorf("%w: overrides must be a JSON object", ErrInvalidCapabilityData)
	}

	var err error
	root.ForEach(func(seq, spec gjson.Result) bool {
		ev, perr := key.Parse(spec.String())
		if perr != nil {
			err = fmt.Errorf("%w: %q: %v", ErrInvalidCapabilityData, spec.String(), perr)
			return false
		}
		if rerr := t.put(seq.String(), ev, true); rerr != nil {
			err = rerr
			return false
		}
		return true
	})
	return err
}
