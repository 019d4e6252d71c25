package checkval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Render produces the canonical serialized form of a metadata map for
// storage in the log table. The same metadata always renders to the
// same string, so log rows can be compared byte-for-byte:
//
//  1. Object keys sorted by UTF-16 code units (RFC 8785 ordering)
//  2. No HTML escaping (< > & are NOT escaped)
//  3. Strings are NFC normalized
//  4. Integers as plain decimals, floats in shortest round-trip form
//
// NaN and infinities have no JSON representation and return an error.
func Render(m Metadata) (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, k := range m.SortedKeys() {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyBytes, err := renderString(k)
		if err != nil {
			return "", fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valBytes, err := renderValue(m[k])
		if err != nil {
			return "", fmt.Errorf("value for key %q: %w", k, err)
		}
		buf.Write(valBytes)
	}

	buf.WriteByte('}')
	return buf.String(), nil
}

// renderValue serializes one Value.
func renderValue(v Value) ([]byte, error) {
	switch val := v.(type) {
	case Null:
		return []byte("null"), nil
	case String:
		return renderString(string(val))
	case Int:
		return strconv.AppendInt(nil, int64(val), 10), nil
	case Float:
		return renderFloat(float64(val))
	case Strings:
		return renderStrings(val)
	case nil:
		return nil, fmt.Errorf("nil Value; use checkval.Null{}")
	default:
		return nil, fmt.Errorf("unsupported Value type: %T", v)
	}
}

// renderString produces a JSON string with NFC normalization and
// HTML escaping disabled. Only control characters, backslash, and
// quote are escaped.
func renderString(s string) ([]byte, error) {
	// NFC normalize at the serialization boundary
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	// json.Encoder adds a trailing newline, remove it
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}

	return result, nil
}

// renderFloat formats a float in the shortest form that round-trips.
func renderFloat(f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("non-finite float %v cannot be rendered", f)
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// renderStrings serializes a string list as a JSON array.
func renderStrings(vals Strings) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')

	for i, s := range vals {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := renderString(s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		buf.Write(b)
	}

	buf.WriteByte(']')
	return buf.Bytes(), nil
}
