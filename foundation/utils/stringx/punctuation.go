// File: punctuation.go
// Title: Word Boundary Character Classes
// Description: The punctuation set that separates words, and the rune
//              classification shared by the splitter and whole-word search.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-04
// Modified: 2026-09-04

package stringx

import (
	"strings"
	"unicode"
)

// DefaultPunctuation lists the runes that end a word in addition to
// whitespace. ASCII hyphen and slash are deliberately absent so that
// "well-known" and "and/or" stay single words.
const DefaultPunctuation = `.,;:!?'"()[]{}<>«»“”‘’…–—`

// PunctuationSet is an immutable set of word-separating runes
type PunctuationSet struct {
	runes map[rune]struct{}
	src   string
}

// NewPunctuationSet builds a set from every rune of chars. Whitespace is
// always a separator and need not be listed.
func NewPunctuationSet(chars string) PunctuationSet {
	set := PunctuationSet{runes: make(map[rune]struct{}, len(chars)), src: chars}
	for _, r := range chars {
		set.runes[r] = struct{}{}
	}
	return set
}

var defaultPunctuationSet = NewPunctuationSet(DefaultPunctuation)

// Contains reports whether r is in the set
func (p PunctuationSet) Contains(r rune) bool {
	_, ok := p.runes[r]
	return ok
}

// IsWordRune reports whether r belongs to a word, i.e. it is neither
// whitespace nor punctuation
func (p PunctuationSet) IsWordRune(r rune) bool {
	return !unicode.IsSpace(r) && !p.Contains(r)
}

// Len returns the number of distinct runes in the set
func (p PunctuationSet) Len() int {
	return len(p.runes)
}

// String returns the characters the set was built from
func (p PunctuationSet) String() string {
	return p.src
}

// Runes returns the set members in the order they were first listed
func (p PunctuationSet) Runes() []rune {
	seen := make(map[rune]struct{}, len(p.runes))
	out := make([]rune, 0, len(p.runes))
	for _, r := range p.src {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// isASCIIPunct matches the ASCII punctuation class used by the word counter
func isASCIIPunct(r rune) bool {
	return r < 0x80 && strings.ContainsRune("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", r)
}
