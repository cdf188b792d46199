// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the btstring text operations:
//              word-balanced splitting and a set of small helpers for
//              splitting, trimming, searching, counting and chunking.
// Author: btstring maintainers
// Version: v0.2.0
// Created: 2026-09-04
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-04 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Configurable punctuation, grapheme-aware chunking

// Package stringx provides stateless string operations.
//
// # Balanced splitting
//
// SplitBalanced cuts a text into a requested number of contiguous groups
// whose word counts differ by at most one, larger groups first:
//
//	groups, err := stringx.SplitBalanced("one two three four five", 2)
//	// groups == []string{"one two three ", "four five"}
//
// A word is a maximal run of runes that are neither whitespace nor listed
// in DefaultPunctuation. The groups always concatenate back to the input.
// Text with fewer words than requested groups yields one group per word,
// and text with no words yields a single group holding the whole text.
// A BalancedSplitter built with NewBalancedSplitter uses a different
// punctuation set.
//
// # Helpers
//
//   - FirstSegment, SplitFirst, Segments: delimiter splitting
//   - ValueForKey: lookup in "key=value" lists
//   - TrimChar with Side, RemoveFirstN: trimming by rune
//   - RandomURLSafe, RandomStringFrom: tokens from crypto/rand or an injected io.Reader
//   - FindWholeWord, ContainsWholeWord: word-bounded search
//   - StripTag: removal of <tag>...</tag> regions
//   - CountWords, CountParagraphs, IsCJK: word processor style counts
//   - ChunkBytes: byte-bounded pieces cut on grapheme cluster boundaries
//
// # Errors
//
// Functions with a natural fallback never fail; FirstSegment returns the
// whole input when the delimiter is missing. Out-of-range scalar arguments
// (a group count or chunk size below one) return a structured error with
// code INVALID_INPUT from foundation/core/error. Random generation wraps a
// failing entropy source as OPERATION_FAILED.
//
// All functions are safe for concurrent use.
package stringx
