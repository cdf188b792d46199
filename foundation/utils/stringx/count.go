// File: count.go
// Title: Word and Paragraph Counting
// Description: Word processor style counts for plain text: words with
//              punctuation, hyphen and CJK handling, and paragraphs as
//              newline separated blocks.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-05
// Modified: 2026-09-05

package stringx

import (
	"strings"
	"unicode/utf8"
)

// CountWords counts words the way a word processor does. Tokens are split
// on whitespace and ASCII punctuation other than ' and - is trimmed from
// both ends; tokens left empty are ignored. Hyphenated words, contractions,
// URLs and emoji count as one word each. A token made only of CJK
// ideographs counts one word per ideograph.
func CountWords(text string) int {
	count := 0

	for _, token := range strings.Fields(text) {
		trimmed := strings.TrimFunc(token, func(r rune) bool {
			return isASCIIPunct(r) && r != '\'' && r != '-'
		})
		if trimmed == "" {
			continue
		}

		if allCJK(trimmed) {
			count += utf8.RuneCountInString(trimmed)
			continue
		}
		count++
	}

	return count
}

func allCJK(s string) bool {
	for _, r := range s {
		if !IsCJK(r) {
			return false
		}
	}
	return true
}

// IsCJK reports whether r is a CJK ideograph: the unified block,
// extensions A through E, and the compatibility ideograph blocks.
func IsCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF,
		r >= 0x3400 && r <= 0x4DBF,
		r >= 0x20000 && r <= 0x2A6DF,
		r >= 0x2A700 && r <= 0x2B73F,
		r >= 0x2B740 && r <= 0x2B81F,
		r >= 0x2B820 && r <= 0x2CEAF,
		r >= 0xF900 && r <= 0xFAFF,
		r >= 0x2F800 && r <= 0x2FA1F:
		return true
	}
	return false
}

// CountParagraphs counts newline separated paragraphs. \r\n, \n and \r
// all end a paragraph and blank lines count as empty paragraphs. Empty
// text has no paragraphs and text without a newline has one. When text
// starts with a newline the count equals the number of newlines;
// otherwise it is one more.
func CountParagraphs(text string) int {
	if text == "" {
		return 0
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	newlines := strings.Count(normalized, "\n")
	switch {
	case newlines == 0:
		return 1
	case normalized[0] == '\n':
		return newlines
	default:
		return newlines + 1
	}
}
