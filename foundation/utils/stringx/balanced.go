// File: balanced.go
// Title: Word-Balanced Splitting
// Description: Splits text into a fixed number of contiguous groups whose
//              word counts differ by at most one. The partition is lossless:
//              joining the groups reproduces the input byte for byte.
// Author: btstring maintainers
// Version: v0.2.0
// Created: 2026-09-04
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-04 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Configurable punctuation via BalancedSplitter

package stringx

import (
	"unicode"
	"unicode/utf8"

	"github.com/bt-tools/btstring/foundation/core/errors"
)

// BalancedSplitter splits text into word-balanced groups using a fixed
// punctuation set. The zero value is not usable; call NewBalancedSplitter.
// A BalancedSplitter is safe for concurrent use.
type BalancedSplitter struct {
	punct PunctuationSet
}

// NewBalancedSplitter returns a splitter treating whitespace and every rune
// of punctuation as word separators
func NewBalancedSplitter(punctuation string) *BalancedSplitter {
	if punctuation == DefaultPunctuation {
		return &BalancedSplitter{punct: defaultPunctuationSet}
	}
	return &BalancedSplitter{punct: NewPunctuationSet(punctuation)}
}

// Punctuation returns the separator set of the splitter
func (s *BalancedSplitter) Punctuation() PunctuationSet {
	return s.punct
}

// SplitBalanced splits text into min(n, W) groups, where W is the number of
// words, using DefaultPunctuation. See BalancedSplitter.Split.
func SplitBalanced(text string, n int) ([]string, error) {
	return defaultSplitter.Split(text, n)
}

var defaultSplitter = &BalancedSplitter{punct: defaultPunctuationSet}

// Split partitions text into min(n, W) groups of consecutive words. The first
// W%k groups hold one word more than the rest. The first group starts at the
// beginning of text and the last group runs to the end of text. Between two
// groups the cut falls after the last whitespace of the separator run, so
// trailing punctuation stays with the earlier group and opening punctuation
// moves with the word it opens. A separator run without whitespace stays
// with the earlier group.
//
//	"one two three four five", 2 -> ["one two three ", "four five"]
//	"He said: (quote) here", 2   -> ["He said: ", "(quote) here"]
//
// Text without words yields a single group equal to text. n < 1 is an
// INVALID_INPUT error.
func (s *BalancedSplitter) Split(text string, n int) ([]string, error) {
	if n < 1 {
		return nil, errors.StringxInvalidArgument("split_balanced", "group count", n, "n >= 1")
	}

	cuts := s.wordCuts(text)
	words := len(cuts)
	if words == 0 {
		return []string{text}, nil
	}

	k := n
	if words < k {
		k = words
	}
	base, rem := words/k, words%k

	groups := make([]string, 0, k)
	begin, word := 0, 0
	for g := 0; g < k; g++ {
		word += base
		if g < rem {
			word++
		}

		end := len(text)
		if g < k-1 {
			end = cuts[word]
		}
		groups = append(groups, text[begin:end])
		begin = end
	}

	return groups, nil
}

// CountWords returns the number of words the splitter sees in text
func (s *BalancedSplitter) CountWords(text string) int {
	return len(s.wordCuts(text))
}

// wordCuts returns, for every word, the offset where a group starting with
// that word begins: just past the last whitespace rune of the preceding
// separator run, or the word start when the run holds no whitespace.
func (s *BalancedSplitter) wordCuts(text string) []int {
	var cuts []int
	inWord := false
	spaceEnd := -1

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if s.punct.IsWordRune(r) {
			if !inWord {
				cut := i
				if spaceEnd >= 0 {
					cut = spaceEnd
				}
				cuts = append(cuts, cut)
				inWord = true
				spaceEnd = -1
			}
		} else {
			inWord = false
			if unicode.IsSpace(r) {
				spaceEnd = i + size
			}
		}
		i += size
	}

	return cuts
}
