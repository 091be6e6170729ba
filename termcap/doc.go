// Package termcap builds the capability table that maps terminal escape
// sequences to symbolic keys.
//
// A Table is a byte-sequence trie constructed once, from a terminfo entry
// (FromTerminfo, ForTerm), from the built-in xterm/VT100 set (Default), or
// from JSON overrides (LoadOverrides). After construction the decoder only
// calls Lookup, which performs longest-prefix matching:
//
//	match, ev, n := table.Lookup([]byte{0x1b, '[', 'A'})
//
// Lookup never resolves a sequence early while a longer registered entry
// could still match; in that case it reports MatchPartial along with the
// longest complete entry seen so far, which the decoder uses when a
// wait-time timeout forces resolution.
//
// Construction failures (malformed override data, empty terminfo entries)
// are reported as errors wrapping ErrInvalidCapabilityData and are fatal at
// build time. Lookup itself cannot fail.
package termcap
