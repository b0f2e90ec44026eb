// File: stringx.go
// Title: String Utility Functions
// Description: Implements small string and byte-sequence helpers used across
//              the adifkit packages. Focuses on the ASCII-oriented operations
//              the ADI format needs, such as locating short ASCII markers
//              inside arbitrary byte streams.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if IsEmpty(s) {
		return true
	}

	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// EqualFoldASCII returns true if the byte sequence and the string represent
// the same ASCII text when compared case-insensitively, byte by byte.
//
// The primary use-case is to identify short ASCII markers (like "eor") within
// byte streams that may contain arbitrary non-ASCII content, so the sequence
// is never converted to a string first. Non-ASCII bytes simply never match.
func EqualFoldASCII(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}

	for i := 0; i < len(b); i++ {
		if asciiLower(b[i]) != asciiLower(s[i]) {
			return false
		}
	}
	return true
}

// asciiLower folds a single byte to lower case if it is an ASCII upper-case
// letter. All other bytes are returned unchanged.
func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// IsASCIIPrintable returns true if every byte of the sequence is ASCII and
// none is a control character other than carriage return or line feed.
func IsASCIIPrintable(b []byte) bool {
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c > unicode.MaxASCII {
			return false
		}
		if c < 0x20 && c != '\r' && c != '\n' {
			return false
		}
		if c == 0x7f {
			return false
		}
	}
	return true
}

// TrimToLower trims surrounding whitespace and folds the result to lower
// case. Useful for normalizing configuration values and field names.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
