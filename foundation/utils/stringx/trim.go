// File: trim.go
// Title: Character Trimming and Prefix Removal
// Description: Removes a single character from a chosen end of a string and
//              drops a number of leading characters.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-04
// Modified: 2026-09-04

package stringx

import (
	"strings"
	"unicode/utf8"

	"github.com/bt-tools/btstring/foundation/core/errors"
)

// Side selects the end of a string an operation applies to
type Side int

const (
	// SideBegin is the start of the string
	SideBegin Side = iota
	// SideEnd is the end of the string
	SideEnd
)

// String returns "begin" or "end"
func (s Side) String() string {
	switch s {
	case SideBegin:
		return "begin"
	case SideEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ParseSide parses "begin"/"start" or "end", ignoring case
func ParseSide(value string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "begin", "start":
		return SideBegin, nil
	case "end":
		return SideEnd, nil
	default:
		return SideBegin, errors.InvalidInput(errors.ModuleStringx, "parse_side", value, "begin or end")
	}
}

// TrimChar removes one occurrence of target from the given side of s.
// s is returned unchanged when that side does not hold target.
func TrimChar(s string, target rune, side Side) string {
	switch side {
	case SideBegin:
		if r, size := utf8.DecodeRuneInString(s); size > 0 && r == target {
			return s[size:]
		}
	case SideEnd:
		if r, size := utf8.DecodeLastRuneInString(s); size > 0 && r == target {
			return s[:len(s)-size]
		}
	}
	return s
}

// RemoveFirstN drops the first n runes of s
func RemoveFirstN(s string, n int) string {
	if n <= 0 {
		return s
	}
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
