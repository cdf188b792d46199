// File: split.go
// Title: Delimiter Splitting and Key Lookup
// Description: Splitting on a delimiter (first segment, first split, all
//              segments) and value lookup in key=value lists.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-04
// Modified: 2026-09-04

package stringx

import "strings"

// FirstSegment returns the part of s before the first sep. The whole of s
// is returned when sep is empty or does not occur.
func FirstSegment(s, sep string) string {
	before, _ := SplitFirst(s, sep)
	return before
}

// SplitFirst splits s around the first sep and drops the separator.
// It returns (s, "") when sep is empty or absent.
func SplitFirst(s, sep string) (before, after string) {
	if sep == "" {
		return s, ""
	}
	before, after, found := strings.Cut(s, sep)
	if !found {
		return s, ""
	}
	return before, after
}

// Segments returns every segment of s between occurrences of sep, keeping
// empty segments. An empty sep yields []string{s} rather than splitting
// into runes.
func Segments(s, sep string) []string {
	if sep == "" {
		return []string{s}
	}
	return strings.Split(s, sep)
}

// ValueForKey finds the first "key=value" entry whose key equals key and
// returns its value. Only the first '=' separates key from value, so values
// may contain '='. Entries without '=' are skipped.
func ValueForKey(pairs []string, key string) (string, bool) {
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if ok && k == key {
			return v, true
		}
	}
	return "", false
}
