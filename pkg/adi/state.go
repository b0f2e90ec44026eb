// File: state.go
// Title: ADI Parse State and Lookahead Buffer
// Description: Tracks state while parsing an ADI file. Most importantly,
//              this supports an abstraction that allows the parser to peek
//              at the next N tokens before deciding to consume them. It
//              also records when an error or end-of-input has been
//              encountered.
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
)

// parseState tracks state while parsing an ADI file.
//
// Data flows from the source to the token queue and then into a File. At
// any given time, the unprocessed input is always represented by the
// sequence of tokens in the queue followed by the remaining contents of the
// source. The queue grows as needed to store tokens that have been examined
// with peek. Tokens are removed from the front in order as they are
// consumed, with one exception: the end-of-input token is never removed.
// Once read, it is always the last token in the queue and done is set.
//
// After a tokenizer error the state is permanently faulted: the error is
// stored and every later peek returns it without touching the source again.
type parseState struct {
	source *bufio.Reader // underlying source of ADI input
	tokens []token       // next unconsumed tokens
	err    error         // set once an unrecoverable error occurred
	done   bool          // set once the end-of-input token was read
}

// newParseState wraps the given buffered source in a fresh parse state
func newParseState(source *bufio.Reader) *parseState {
	return &parseState{source: source}
}

// advance ensures that the queue holds at least n tokens, reading from the
// underlying input as needed. It stops early once end-of-input is queued.
func (ps *parseState) advance(n int) error {
	if ps.err != nil {
		return ps.err
	}

	for !ps.done && n > len(ps.tokens) {
		tok, err := readToken(ps.source)
		if err != nil {
			ps.err = err
			return err
		}
		if tok.typ == tokenEOF {
			ps.done = true
		}
		ps.tokens = append(ps.tokens, tok)
	}

	return nil
}

// peek examines the token at offset n (0-based) from the start of
// unconsumed input without removing it. Offsets at or beyond end-of-input
// all return the end-of-input token. Callers that process the token must
// follow up with consume.
func (ps *parseState) peek(n int) (token, error) {
	if err := ps.advance(n + 1); err != nil {
		return token{}, err
	}

	if n < len(ps.tokens) {
		return ps.tokens[n], nil
	}

	// We must be at end-of-input, and the last queued token must be the
	// end-of-input token.
	if !ps.done || len(ps.tokens) == 0 {
		panic("adi: short token queue without end of input")
	}
	last := ps.tokens[len(ps.tokens)-1]
	if last.typ != tokenEOF {
		panic("adi: last token after end of input is not the end-of-input token")
	}
	return last, nil
}

// consume removes the first n queued tokens. It is a contract violation to
// consume tokens that have not been peeked, to consume on a faulted state,
// or to consume the end-of-input token.
func (ps *parseState) consume(n int) {
	if ps.err != nil {
		panic("adi: consume on faulted parse state")
	}
	if n > len(ps.tokens) {
		panic("adi: consume of tokens that were never peeked")
	}
	for i := 0; i < n; i++ {
		if ps.tokens[i].typ == tokenEOF {
			panic("adi: consume of the end-of-input token")
		}
	}

	ps.tokens = ps.tokens[n:]
}

// consumeUntilLAB consumes tokens until the next left angle bracket or
// end-of-input. This is needed because ADI allows arbitrary bytes after a
// value and before the next data specifier or end-of-record marker.
func (ps *parseState) consumeUntilLAB() error {
	for {
		tok, err := ps.peek(0)
		if err != nil {
			return err
		}
		if tok.typ == tokenLAB || tok.typ == tokenEOF {
			return nil
		}
		ps.consume(1)
	}
}
