// File: tags.go
// Title: Tagged Region Stripping
// Description: Removes <tag>...</tag> regions from markup while leaving all
//              other bytes untouched.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-05
// Modified: 2026-10-16

package stringx

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTag removes every region opened by <tag ...> and closed by the
// matching </tag>, markers included. Tag names match case-insensitively and
// nested regions of the same tag are removed as a whole. An opening tag
// that is never closed removes everything after it. Stray closing tags and
// self-closing <tag/> elements are removed on their own. Everything else,
// including other tags, comments and entities, is copied verbatim.
// An empty tag returns text unchanged.
//
// Content of raw-text elements such as <script> is not parsed, so a <tag>
// inside a script body is left alone unless tag is the script itself.
func StripTag(text, tag string) string {
	name := strings.ToLower(strings.TrimSpace(tag))
	if name == "" || !strings.Contains(text, "<") {
		return text
	}

	var out strings.Builder
	out.Grow(len(text))

	z := html.NewTokenizer(strings.NewReader(text))
	depth := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// a tag cut off by the end of input is reported as an error
			// with its bytes in Raw; keep them
			if depth == 0 {
				out.Write(z.Raw())
			}
			break
		}

		// TagName lowercases the token buffer in place, so copy the raw
		// bytes first
		raw := append([]byte(nil), z.Raw()...)

		switch tt {
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			tn, _ := z.TagName()
			if string(tn) == name {
				switch tt {
				case html.StartTagToken:
					depth++
				case html.EndTagToken:
					if depth > 0 {
						depth--
					}
				}
				continue
			}
		}

		if depth == 0 {
			out.Write(raw)
		}
	}

	return out.String()
}
