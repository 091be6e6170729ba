// Package decoder implements the terminal key-input state machine.
//
// The decoder consumes raw bytes as the caller reads them from a
// terminal and produces typed key events, disambiguating a bare Escape
// press from the first byte of a longer escape sequence with a
// wait-time heuristic. The flow is cooperative and single-threaded:
//
//	dec, _ := decoder.New(tty, table)
//	for {
//	    // ... caller's event loop observes readability ...
//	    dec.AdviseReadable()
//	    for {
//	        ev, res := dec.GetKey()
//	        switch res {
//	        case decoder.ResultKey:
//	            handle(ev)
//	            continue
//	        case decoder.ResultAgain:
//	            // arm a timer for dec.Waittime(); on expiry with no
//	            // new bytes, call dec.GetKeyForce()
//	        }
//	        break
//	    }
//	}
//
// Classification order: the capability table wins, then CSI/SS3 and
// Alt-prefix fallbacks, bare control bytes, and UTF-8 characters. Decode
// anomalies (invalid UTF-8, unrecognized sequences) surface as
// key.KeyUnknown events carrying the consumed bytes; they never abort
// the stream. Only construction can fail.
package decoder
