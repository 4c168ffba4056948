// Package llmjson extracts JSON values embedded in free-form model output.
// Models wrap JSON in prose or markdown fences; these helpers locate the first
// balanced object or array and ignore everything around it.
package llmjson

import (
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when no balanced JSON value is present.
var ErrNotFound = errors.New("llmjson: no JSON value found")

// ExtractObject returns the first balanced {...} span in s.
func ExtractObject(s string) (string, bool) {
	return extract(s, '{', '}')
}

// ExtractArray returns the first balanced [...] span in s.
func ExtractArray(s string) (string, bool) {
	return extract(s, '[', ']')
}

// DecodeObject extracts the first object in s and unmarshals it into v.
func DecodeObject(s string, v any) error {
	span, ok := ExtractObject(s)
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal([]byte(span), v)
}

// DecodeArray extracts the first array in s and unmarshals it into v.
func DecodeArray(s string, v any) error {
	span, ok := ExtractArray(s)
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal([]byte(span), v)
}

// extract scans from the first open delimiter to its matching close.
// Delimiters inside JSON strings are skipped.
func extract(s string, open, closing byte) (string, bool) {
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] == open {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
