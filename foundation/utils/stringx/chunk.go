// File: chunk.go
// Title: Byte-Bounded Chunking
// Description: Cuts text into consecutive pieces of at most a given number
//              of bytes without splitting user-perceived characters.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-05
// Modified: 2026-09-05

package stringx

import (
	"github.com/rivo/uniseg"

	"github.com/bt-tools/btstring/foundation/core/errors"
)

// ChunkBytes splits text into consecutive substrings of at most size bytes.
// Cuts fall only on grapheme cluster boundaries, so combining marks, emoji
// sequences and multi-byte runes stay whole. A single cluster longer than
// size becomes a chunk of its own. Empty text yields an empty slice and
// size < 1 is an INVALID_INPUT error.
func ChunkBytes(text string, size int) ([]string, error) {
	if size < 1 {
		return nil, errors.StringxInvalidArgument("chunk_by_bytes", "chunk size", size, "size >= 1")
	}
	if text == "" {
		return []string{}, nil
	}

	chunks := make([]string, 0, len(text)/size+1)
	start, end := 0, 0
	rest := text
	state := -1

	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)

		if end > start && end-start+len(cluster) > size {
			chunks = append(chunks, text[start:end])
			start = end
		}
		end += len(cluster)
	}
	chunks = append(chunks, text[start:end])

	return chunks, nil
}
