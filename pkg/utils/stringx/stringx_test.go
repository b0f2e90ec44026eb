// File: stringx_test.go
// Title: String Utility Unit Tests
// Description: Unit tests for the stringx helper functions, covering blank
//              detection, case-insensitive ASCII comparison of byte
//              sequences, and printable-ASCII validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial test suite

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Empty string", input: "", expected: true},
		{name: "Spaces only", input: "   ", expected: true},
		{name: "Tabs and newlines", input: "\t\n\r ", expected: true},
		{name: "Non-blank", input: "eoh", expected: false},
		{name: "Blank with content", input: "  x  ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEqualFoldASCII(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []byte
		str      string
		expected bool
	}{
		{name: "Exact match", bytes: []byte("eoh"), str: "eoh", expected: true},
		{name: "Upper case", bytes: []byte("EOH"), str: "eoh", expected: true},
		{name: "Mixed case", bytes: []byte("EoR"), str: "eor", expected: true},
		{name: "Different text", bytes: []byte("eoh"), str: "eor", expected: false},
		{name: "Different length", bytes: []byte("eohh"), str: "eoh", expected: false},
		{name: "Empty both", bytes: []byte{}, str: "", expected: true},
		{name: "Non-ASCII bytes", bytes: []byte{0xc3, 0xa9, 'x'}, str: "eoh", expected: false},
		{name: "Marker with digits", bytes: []byte("Call2"), str: "call2", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualFoldASCII(tt.bytes, tt.str); got != tt.expected {
				t.Errorf("EqualFoldASCII(%q, %q) = %v, want %v",
					tt.bytes, tt.str, got, tt.expected)
			}
		})
	}
}

func TestIsASCIIPrintable(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected bool
	}{
		{name: "Plain text", input: []byte("KK6ZBI"), expected: true},
		{name: "Text with CRLF", input: []byte("line1\r\nline2"), expected: true},
		{name: "Empty", input: []byte{}, expected: true},
		{name: "NUL byte", input: []byte{'a', 0x00, 'b'}, expected: false},
		{name: "Tab is a control byte", input: []byte("a\tb"), expected: false},
		{name: "DEL byte", input: []byte{0x7f}, expected: false},
		{name: "High bit set", input: []byte{0x80}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsASCIIPrintable(tt.input); got != tt.expected {
				t.Errorf("IsASCIIPrintable(%v) = %v, want %v",
					tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrimToLower(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Already lower", input: "gridsquare", expected: "gridsquare"},
		{name: "Mixed with spaces", input: "  QSO_Date ", expected: "qso_date"},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimToLower(tt.input); got != tt.expected {
				t.Errorf("TrimToLower(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
