package checkval

import (
	"slices"
	"unicode/utf16"
)

// Value is a sealed interface for log metadata values.
// Only Null, String, Int, Float, and Strings implement it.
// Checks log counts, measures, names, and value lists; arbitrary Go
// types are rejected at compile time by the sealed interface.
type Value interface {
	logValue() // Sealed - only these types implement it
}

// Null represents an absent measure (e.g. an aggregate over zero rows).
// Using an explicit type ensures all Values satisfy the sealed interface.
type Null struct{}

func (Null) logValue() {}

// String represents a textual metadata value (column names, patterns).
type String string

func (String) logValue() {}

// Int represents a count or integral measure. Always int64.
type Int int64

func (Int) logValue() {}

// Float represents a fractional measure (means, medians, bounds).
type Float float64

func (Float) logValue() {}

// Strings represents an ordered list of textual values
// (enum sets, join keys, distinct violations).
type Strings []string

func (Strings) logValue() {}

// Metadata is the key/value bag attached to a log record.
// Use SortedKeys for deterministic iteration; Render for the
// canonical serialized form stored in the log table.
type Metadata map[string]Value

// SortedKeys returns keys in RFC 8785 canonical order (UTF-16 code units).
// Go's sort.Strings compares UTF-8 bytes, which produces a DIFFERENT
// order for keys outside the ASCII range.
func (m Metadata) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysUTF16)
	return keys
}

// compareKeysUTF16 compares strings by UTF-16 code units as required by
// RFC 8785. Uses unicode/utf16.Encode for correct surrogate handling.
func compareKeysUTF16(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	minLen := len(a16)
	if len(b16) < minLen {
		minLen = len(b16)
	}

	for i := 0; i < minLen; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}

	if len(a16) < len(b16) {
		return -1
	}
	if len(a16) > len(b16) {
		return 1
	}
	return 0
}
