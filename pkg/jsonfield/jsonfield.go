// Package jsonfield handles the JSON-in-text columns of the content schema.
// List and object shaped fields (tags, tech stacks, galleries, page sections,
// setting values) are stored as opaque text; decoding must never fail the
// surrounding request, so Decode is total and falls back to a caller-supplied
// default on any malformed or absent value.
package jsonfield

import (
	"encoding/json"
	"strings"
)

// Decode parses raw into T. Empty input or a parse failure returns fallback.
func Decode[T any](raw string, fallback T) T {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return fallback
	}
	return value
}

// Encode produces the storage encoding of value.
func Encode[T any](value T) string {
	data, err := json.Marshal(value)
	if err != nil {
		// Only unsupported types (chan, func) reach this branch; none of the
		// persisted shapes contain them.
		return "null"
	}
	return string(data)
}

// SplitLines turns newline-delimited form input into a list, trimming each
// entry and dropping blanks while preserving input order. Used for hero
// subtitles and experience bullet points.
func SplitLines(input string) []string {
	return splitAndTrim(input, "\n")
}

// SplitCSV turns comma-separated form input into a list, trimming each entry
// and dropping blanks. Used for tags and tech stacks.
func SplitCSV(input string) []string {
	return splitAndTrim(input, ",")
}

func splitAndTrim(input, sep string) []string {
	parts := strings.Split(input, sep)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
