// File: random.go
// Title: Random String Generation
// Description: Uniform random strings over a character set. The entropy
//              source is injectable so tests can use a seeded reader;
//              production callers use crypto/rand.
// Author: btstring maintainers
// Version: v0.2.0
// Created: 2026-09-04
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-04 v0.1.0: Initial implementation with secure random generation
// - 2026-10-15 v0.2.0: Injectable source, rune charsets

package stringx

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/bt-tools/btstring/foundation/core/errors"
)

const (
	// Character sets for random string generation
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersUppercase + LettersLowercase
	Digits           = "0123456789"
	Alphanumeric     = Letters + Digits

	// URLSafe is the unpadded base64url alphabet
	URLSafe = Alphanumeric + "-_"
)

// RandomString generates a string of length characters drawn uniformly from
// charset using crypto/rand. An empty charset means Alphanumeric.
func RandomString(length int, charset string) (string, error) {
	return RandomStringFrom(rand.Reader, length, charset)
}

// RandomStringFrom is RandomString with an explicit entropy source.
// Selection goes through rand.Int, so it is unbiased for any charset size.
// Charset members are runes; duplicates raise their weight.
func RandomStringFrom(src io.Reader, length int, charset string) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if charset == "" {
		charset = Alphanumeric
	}

	chars := []rune(charset)
	limit := big.NewInt(int64(len(chars)))
	result := make([]rune, length)

	for i := range result {
		idx, err := rand.Int(src, limit)
		if err != nil {
			return "", errors.StringxOperationFailed("random_string", err)
		}
		result[i] = chars[idx.Int64()]
	}

	return string(result), nil
}

// RandomURLSafe generates a random token over the URL-safe alphabet
func RandomURLSafe(length int) (string, error) {
	return RandomStringFrom(rand.Reader, length, URLSafe)
}

// RandomURLSafeFrom generates a URL-safe token from src
func RandomURLSafeFrom(src io.Reader, length int) (string, error) {
	return RandomStringFrom(src, length, URLSafe)
}

// RandomHex generates a random lowercase hexadecimal string
func RandomHex(length int) (string, error) {
	return RandomString(length, "0123456789abcdef")
}
