// File: search.go
// Title: Whole-Word Search
// Description: Finds occurrences of a word that are not embedded in a
//              longer word.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-04
// Modified: 2026-09-04

package stringx

import (
	"strings"
	"unicode/utf8"
)

// FindWholeWord returns the byte offsets of every non-overlapping,
// case-sensitive occurrence of word in text whose neighbouring runes are
// not word runes under DefaultPunctuation. An empty word matches nothing.
func FindWholeWord(text, word string) []int {
	return findWholeWord(text, word, defaultPunctuationSet)
}

// ContainsWholeWord reports whether word occurs in text as a whole word
func ContainsWholeWord(text, word string) bool {
	return len(FindWholeWord(text, word)) > 0
}

// FindWholeWord is FindWholeWord with the splitter's punctuation set
func (s *BalancedSplitter) FindWholeWord(text, word string) []int {
	return findWholeWord(text, word, s.punct)
}

func findWholeWord(text, word string, punct PunctuationSet) []int {
	if word == "" {
		return nil
	}

	var positions []int
	for offset := 0; offset <= len(text)-len(word); {
		idx := strings.Index(text[offset:], word)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(word)

		if isBoundaryBefore(text, start, punct) && isBoundaryAfter(text, end, punct) {
			positions = append(positions, start)
			offset = end
			continue
		}

		// step past the first rune of the rejected match
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}

	return positions
}

func isBoundaryBefore(text string, pos int, punct PunctuationSet) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return !punct.IsWordRune(r)
}

func isBoundaryAfter(text string, pos int, punct PunctuationSet) bool {
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return !punct.IsWordRune(r)
}
