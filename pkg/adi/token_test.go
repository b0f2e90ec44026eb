// File: token_test.go
// Title: ADI Tokenizer Tests
// Description: Tests for the low-level byte tokenizer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation

package adi

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	kiterror "github.com/msto63/adifkit/pkg/core/error"
)

func TestReadToken_Sequence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token
	}{
		{
			"empty input",
			"",
			[]token{{typ: tokenEOF}},
		},
		{
			"single delimiters",
			"<:>",
			[]token{{typ: tokenLAB}, {typ: tokenColon}, {typ: tokenRAB}, {typ: tokenEOF}},
		},
		{
			"byte run between delimiters",
			"<call>",
			[]token{
				{typ: tokenLAB},
				{typ: tokenBytes, bytes: []byte("call")},
				{typ: tokenRAB},
				{typ: tokenEOF},
			},
		},
		{
			"run keeps cr and lf",
			"ab\r\ncd",
			[]token{
				{typ: tokenBytes, bytes: []byte("ab\r\ncd")},
				{typ: tokenEOF},
			},
		},
		{
			"full specifier",
			"<call:6>KK6ZBI",
			[]token{
				{typ: tokenLAB},
				{typ: tokenBytes, bytes: []byte("call")},
				{typ: tokenColon},
				{typ: tokenBytes, bytes: []byte("6")},
				{typ: tokenRAB},
				{typ: tokenBytes, bytes: []byte("KK6ZBI")},
				{typ: tokenEOF},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := bufio.NewReader(strings.NewReader(tt.input))
			for i, want := range tt.want {
				got, err := readToken(source)
				if err != nil {
					t.Fatalf("token %d: unexpected error: %v", i, err)
				}
				if got.typ != want.typ {
					t.Fatalf("token %d: got type %v, want %v", i, got.typ, want.typ)
				}
				if !bytes.Equal(got.bytes, want.bytes) {
					t.Errorf("token %d: got bytes %q, want %q", i, got.bytes, want.bytes)
				}
			}
		})
	}
}

func TestReadToken_EOFIsRepeatable(t *testing.T) {
	source := bufio.NewReader(strings.NewReader(""))

	for i := 0; i < 3; i++ {
		tok, err := readToken(source)
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
		if tok.typ != tokenEOF {
			t.Fatalf("read %d: got type %v, want EOF", i, tok.typ)
		}
	}
}

func TestReadToken_RejectsBadBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"tab", "ab\tcd"},
		{"nul", "ab\x00cd"},
		{"bell", "\x07"},
		{"delete", "ab\x7f"},
		{"non-ascii", "caf\xc3\xa9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := bufio.NewReader(strings.NewReader(tt.input))
			_, err := readToken(source)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !kiterror.HasCode(err, kiterror.CodeBadInput) {
				t.Errorf("expected CodeBadInput, got %s", kiterror.GetCode(err))
			}
		})
	}
}

func TestToken_Text(t *testing.T) {
	tests := []struct {
		tok      token
		expected string
	}{
		{token{typ: tokenBytes, bytes: []byte("x")}, "bytes"},
		{token{typ: tokenLAB}, "\"<\""},
		{token{typ: tokenColon}, "\":\""},
		{token{typ: tokenRAB}, "\">\""},
		{token{typ: tokenEOF}, "end of input"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.tok.text(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
