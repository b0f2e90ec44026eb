// File: token.go
// Title: ADI Byte Tokenizer
// Description: Implements the lowest level of ADI parsing. Converts a
//              buffered byte source into a stream of lexical tokens: the
//              three delimiter characters, runs of arbitrary non-delimiter
//              bytes, and end-of-input. On success, reading a token consumes
//              precisely the bytes that represent it; there is no pushback.
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
	"io"

	kiterror "github.com/msto63/adifkit/pkg/core/error"
)

// tokenType represents the type of a lexical token
type tokenType int

const (
	// tokenBytes holds arbitrary non-delimiter byte content
	tokenBytes tokenType = iota

	// tokenLAB is a left angle bracket '<'
	tokenLAB

	// tokenColon is a ':'
	tokenColon

	// tokenRAB is a right angle bracket '>'
	tokenRAB

	// tokenEOF marks the end of input
	tokenEOF
)

// token represents a logical chunk of the underlying file
type token struct {
	typ   tokenType
	bytes []byte // only set for tokenBytes
}

// text returns a short summary of the token, generally in quotes. This is
// intended for error messages, as when one kind of token was found where
// another was expected.
func (t token) text() string {
	switch t.typ {
	case tokenBytes:
		return "bytes"
	case tokenLAB:
		return "\"<\""
	case tokenColon:
		return "\":\""
	case tokenRAB:
		return "\">\""
	case tokenEOF:
		return "end of input"
	default:
		return "unknown"
	}
}

// isDelimiter reports whether the byte is one of the three ADI delimiters
func isDelimiter(c byte) bool {
	return c == '<' || c == ':' || c == '>'
}

// readToken reads the next token from the underlying stream. A byte run
// ends at the buffered window, so a long value may arrive as several
// consecutive byte-run tokens; callers must accumulate across tokens rather
// than assume one token holds an entire value.
func readToken(source *bufio.Reader) (token, error) {
	first, err := source.Peek(1)
	if err == io.EOF {
		return token{typ: tokenEOF}, nil
	}
	if err != nil {
		return token{}, kiterror.Wrap(err, "reading input").
			WithCode(kiterror.CodeIO).
			WithOperation("adi.readToken")
	}

	switch first[0] {
	case '<':
		discard(source, 1)
		return token{typ: tokenLAB}, nil
	case ':':
		discard(source, 1)
		return token{typ: tokenColon}, nil
	case '>':
		discard(source, 1)
		return token{typ: tokenRAB}, nil
	}

	// Accumulate non-delimiter bytes from the buffered window. Any header
	// text, field name, or value may legally contain CR/LF, but all other
	// control bytes and anything non-ASCII are malformed input.
	buffered, _ := source.Peek(source.Buffered())
	i := 0
	for i < len(buffered) {
		c := buffered[i]
		if isDelimiter(c) {
			break
		}
		if c > 0x7f || (isASCIIControl(c) && c != '\r' && c != '\n') {
			return token{}, kiterror.Newf(
				"reading input: expected ASCII character, but found byte 0x%x", c).
				WithCode(kiterror.CodeBadInput).
				WithOperation("adi.readToken")
		}
		i++
	}

	// Copy before Discard invalidates the peeked window
	run := make([]byte, i)
	copy(run, buffered[:i])
	discard(source, i)

	return token{typ: tokenBytes, bytes: run}, nil
}

// discard drops n buffered bytes. The bytes are known to be buffered, so
// Discard cannot fail.
func discard(source *bufio.Reader, n int) {
	if _, err := source.Discard(n); err != nil {
		panic("adi: discard of buffered bytes failed: " + err.Error())
	}
}

// isASCIIControl reports whether the byte is an ASCII control character
func isASCIIControl(c byte) bool {
	return c < 0x20 || c == 0x7f
}
