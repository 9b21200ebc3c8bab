// Package util provides common utility functions used across the unit creator.
package util

import (
	"fmt"
	"strconv"
	"strings"
)

// TrimQuotes removes leading and trailing double quotes from a string.
func TrimQuotes(s string) string {
	return strings.Trim(s, `"`)
}

// FixEscapeQuotes replaces escaped double quotes ("") with single double quotes (").
func FixEscapeQuotes(s string) string {
	return strings.ReplaceAll(s, `""`, `"`)
}

// SplitRecord splits a pipe-delimited definition record into its fields,
// trimming surrounding whitespace and quoting from each field.
func SplitRecord(line string) []string {
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = FixEscapeQuotes(TrimQuotes(strings.TrimSpace(p)))
	}
	return parts
}

// ParsePairList parses a "KEY:value;KEY:value" list into a map. Values must
// be integers. Empty input yields an empty map.
func ParsePairList(s string) (map[string]int, error) {
	out := make(map[string]int)
	s = strings.TrimSpace(s)
	if s == "" {
		return out, nil
	}
	for _, pair := range strings.Split(s, ";") {
		key, value, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("malformed pair %q", pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("malformed quantity in pair %q: %w", pair, err)
		}
		out[strings.TrimSpace(key)] = n
	}
	return out, nil
}
