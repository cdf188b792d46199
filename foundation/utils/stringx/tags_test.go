// File: tags_test.go
// Title: Tag Stripping Tests
// Description: Tests for StripTag covering nesting, case, attributes and
//              malformed markup.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-05
// Modified: 2026-10-16

package stringx

import "testing"

func TestStripTag(t *testing.T) {
	tests := []struct {
		name, text, tag, want string
	}{
		{"simple region", "keep <b>bold</b> this", "b", "keep  this"},
		{"case insensitive with attributes", "a<B class='x'>y</b>c", "b", "ac"},
		{"tag argument case", "a<b>y</b>c", "B", "ac"},
		{"nested same tag", "x<div>1<div>2</div>3</div>y", "div", "xy"},
		{"other tags untouched", "<p>Hi <i>there</i></p>", "i", "<p>Hi </p>"},
		{"other tag case kept", "<P>Keep</P><b>x</b>", "b", "<P>Keep</P>"},
		{"mixed case kept around target", "<Em>a</Em><SPAN>b</SPAN><Em>c</Em>", "span", "<Em>a</Em><Em>c</Em>"},
		{"multiple regions", "<s>a</s>b<s>c</s>d", "s", "bd"},
		{"unclosed removes to end", "keep<script>alert(1)", "script", "keep"},
		{"stray close removed", "a</b>c", "b", "ac"},
		{"self closing removed", "line<br/>break", "br", "linebreak"},
		{"entities preserved", "a &amp; <b>x</b> &lt;", "b", "a &amp;  &lt;"},
		{"comments preserved", "<!-- c --><b>x</b>y", "b", "<!-- c -->y"},
		{"prefix name not matched", "<bold>x</bold>", "b", "<bold>x</bold>"},
		{"script body removed whole", "a<script>if (x < 1) { y(\"</b>\") }</script>z", "script", "az"},
		{"no markup", "plain text", "b", "plain text"},
		{"empty tag", "<b>x</b>", "", "<b>x</b>"},
		{"empty text", "", "b", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTag(tt.text, tt.tag); got != tt.want {
				t.Errorf("StripTag(%q, %q) = %q, want %q", tt.text, tt.tag, got, tt.want)
			}
		})
	}
}

func TestStripTagKeepsUnrelatedMarkupVerbatim(t *testing.T) {
	texts := []string{
		"<DIV Class=\"A\">\r\n  <img src=x>  <a href='y'>link</a>\n</DIV>",
		"<DIV>no target here</DIV>",
		"<BR/><HR ID=z>",
	}
	for _, text := range texts {
		if got := StripTag(text, "span"); got != text {
			t.Errorf("StripTag() altered unrelated markup:\n got %q\nwant %q", got, text)
		}
	}
}
