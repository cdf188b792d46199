// File: count_test.go
// Title: Word and Paragraph Counting Tests
// Description: Word processor compatible counting cases for CountWords,
//              CountParagraphs and IsCJK.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-05
// Modified: 2026-09-05

package stringx

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"basic", "Hello world", 2},
		{"three words", "One two three", 3},
		{"trailing punctuation", "Hello, world!", 2},
		{"parentheses", "(test)", 1},
		{"quotes", "\"quoted\"", 1},
		{"mixed whitespace", "a   b\tc\nd", 4},
		{"padded", "   spaced   out   ", 2},
		{"hyphenated", "state-of-the-art", 1},
		{"hyphenated family", "mother-in-law", 1},
		{"contraction", "don't stop", 2},
		{"contraction pronoun", "I'm here", 2},
		{"contraction plural", "they're coming", 2},
		{"url in sentence", "Visit https://example.com now", 3},
		{"bare url path", "example.com/test", 1},
		{"emoji alone", "🙂", 1},
		{"emoji between words", "Hello 🙂 world", 3},
		{"cjk per ideograph", "你好世界", 4},
		{"cjk mixed with latin", "Hello 你好", 3},
		{"cjk with ascii punctuation", "你好!", 2},
		{"lone punctuation ignored", "wait ... what", 2},
		{"empty", "", 0},
		{"spaces only", "     ", 0},
		{"whitespace only", "\n\t  ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.text); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsCJK(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'你', true},
		{'界', true},
		{'㐀', true},
		{'\U00020000', true},
		{'\U0002F800', true},
		{'豈', true},
		{'a', false},
		{'🙂', false},
		{'ア', false},
		{'한', false},
	}

	for _, tt := range tests {
		if got := IsCJK(tt.r); got != tt.want {
			t.Errorf("IsCJK(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestCountParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"single paragraph", "Hello world", 1},
		{"unix newline", "Hello\nWorld", 2},
		{"windows newline", "Hello\r\nWorld", 2},
		{"old mac newline", "Hello\rWorld", 2},
		{"empty document", "", 0},
		{"newline only", "\n", 1},
		{"carriage return only", "\r", 1},
		{"crlf only", "\r\n", 1},
		{"trailing newline", "Hello\n", 2},
		{"trailing crlf", "Hello\r\n", 2},
		{"one blank line", "A\n\nB", 3},
		{"two blank lines", "A\n\n\nB", 4},
		{"whitespace line", "A\n   \nB", 3},
		{"mixed newline types", "A\r\nB\nC\rD", 4},
		{"leading newline", "\nA\nB", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountParagraphs(tt.text); got != tt.want {
				t.Errorf("CountParagraphs(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
