// File: parser.go
// Title: ADI Physical Parser
// Description: Implements parsing of the ADI physical file format. The
//              grammar is: file := header? record*, where a header is free
//              text interleaved with data specifiers up to an "<eoh>"
//              marker, a record is data specifiers up to an "<eor>" marker,
//              and a data specifier is "<name:length>" followed by exactly
//              length value bytes and discarded filler. Disambiguating a
//              section marker from a data specifier requires peeking a few
//              tokens ahead before committing to consume them.
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
	"strconv"
	"strings"

	kiterror "github.com/msto63/adifkit/pkg/core/error"
	"github.com/msto63/adifkit/pkg/utils/stringx"
)

// Section markers, compared case-insensitively
const (
	markerEOH = "eoh" // end-of-header
	markerEOR = "eor" // end-of-record
)

// MaxFieldLength is the maximum accepted declared value length. The limit
// is not intrinsic to the format; it ensures graceful failure when given
// input that would otherwise attempt to use lots of memory.
const MaxFieldLength = 1024

// Parse parses an ADI file from the given input source
func Parse(source io.Reader) (*File, error) {
	ps := newParseState(bufio.NewReader(source))

	tok, err := ps.peek(0)
	if err != nil {
		return nil, err
	}

	// A file that starts with '<' has no header; neither does an empty
	// file, which parses to no header and no records.
	var header *Header
	if tok.typ != tokenLAB && tok.typ != tokenEOF {
		header, err = parseHeader(ps)
		if err != nil {
			return nil, err
		}
	}

	records, err := parseRecords(ps)
	if err != nil {
		return nil, err
	}

	return &File{
		Header:  header,
		Records: records,
	}, nil
}

// ParseString parses an ADI file held in a string
func ParseString(source string) (*File, error) {
	return Parse(strings.NewReader(source))
}

// parseHeader parses the header of an ADI file. The header is free text up
// to the end-of-header marker, possibly interleaved with data specifiers.
func parseHeader(ps *parseState) (*Header, error) {
	var content []byte
	var fields []DataSpecifier

	for {
		tok, err := ps.peek(0)
		if err != nil {
			return nil, err
		}

		switch tok.typ {
		case tokenBytes:
			content = append(content, tok.bytes...)
			ps.consume(1)

		// Although it seems crazy, the ADIF specification does not say
		// there's anything wrong with having these special characters
		// loose in the header (i.e., not following a "<"). We thus treat
		// them as plain text.
		case tokenColon:
			content = append(content, ':')
			ps.consume(1)
		case tokenRAB:
			content = append(content, '>')
			ps.consume(1)

		case tokenLAB:
			next, err := ps.peek(1)
			if err != nil {
				return nil, err
			}
			if next.typ == tokenBytes && stringx.EqualFoldASCII(next.bytes, markerEOH) {
				next2, err := ps.peek(2)
				if err != nil {
					return nil, err
				}
				if next2.typ == tokenRAB {
					// Done with the header: consume '<', "eoh", '>'
					ps.consume(3)
					return &Header{Content: content, Fields: fields}, nil
				}
			}

			// Anything other than the end-of-header marker is a data
			// specifier. Note that this means a normal data specifier for
			// a field called "eoh" would be supported, which is pretty
			// dubious, but appears to be technically allowed.
			spec, err := parseDataSpecifier(ps)
			if err != nil {
				return nil, err
			}
			fields = append(fields, spec)

		case tokenEOF:
			return nil, kiterror.New("unexpected end of input while reading header").
				WithCode(kiterror.CodeBadInput).
				WithOperation("adi.parseHeader")
		}
	}
}

// parseRecords parses the body of the ADI input, everything after the header
func parseRecords(ps *parseState) ([]Record, error) {
	var records []Record

	if err := ps.consumeUntilLAB(); err != nil {
		return nil, err
	}

	for {
		tok, err := ps.peek(0)
		if err != nil {
			return nil, err
		}
		if tok.typ == tokenEOF {
			return records, nil
		}

		rec, err := parseRecord(ps)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// parseRecord parses a single record, including any trailing filler bytes
func parseRecord(ps *parseState) (Record, error) {
	var rec Record

	for {
		t0, err := ps.peek(0)
		if err != nil {
			return rec, err
		}
		t1, err := ps.peek(1)
		if err != nil {
			return rec, err
		}
		t2, err := ps.peek(2)
		if err != nil {
			return rec, err
		}

		if t0.typ == tokenLAB && t1.typ == tokenBytes &&
			stringx.EqualFoldASCII(t1.bytes, markerEOR) && t2.typ == tokenRAB {
			ps.consume(3)
			if err := ps.consumeUntilLAB(); err != nil {
				return rec, err
			}
			return rec, nil
		}

		if t0.typ == tokenEOF {
			return rec, kiterror.New("unexpected end of input while reading record").
				WithCode(kiterror.CodeBadInput).
				WithOperation("adi.parseRecord")
		}

		spec, err := parseDataSpecifier(ps)
		if err != nil {
			return rec, err
		}
		rec.Fields = append(rec.Fields, spec)
	}
}

// parseDataSpecifier parses one data specifier. The caller is responsible
// for ensuring that the front token is a left angle bracket.
//
// The accepted token sequence is:
//
//	<FIELDNAME:FIELDLEN>FIELDVALUE_...<
//	^^        ^^       ^^         ^   ^
//	||        ||       ||         |   | # TOKEN
//	++--------++-------++---------+---+ 0 (LAB)
//	 +--------++-------++---------+---+ 1 (BYTES) FIELDNAME
//	          ++-------++---------+---+ 2 (COLON)
//	           +-------++---------+---+ 3 (BYTES) FIELDLEN
//	                   ++---------+---+ 4 (RAB)
//	                    +---------+---+ 5 (BYTES) FIELDVALUE
//	                              +---+ 6 (BYTES) (discarded filler)
//	                                  + 7 (LAB)
//
// ADI also allows an additional colon and type indicator directly after the
// field length. That form is recognized but not yet supported.
func parseDataSpecifier(ps *parseState) (DataSpecifier, error) {
	var spec DataSpecifier

	t0, err := ps.peek(0)
	if err != nil {
		return spec, err
	}
	if t0.typ != tokenLAB {
		return spec, kiterror.Newf(
			"parsing data specifier: expected \"<\", but found %s", t0.text()).
			WithCode(kiterror.CodeBadInput).
			WithOperation("adi.parseDataSpecifier")
	}

	tName, err := ps.peek(1)
	if err != nil {
		return spec, err
	}
	tColon, err := ps.peek(2)
	if err != nil {
		return spec, err
	}
	tLength, err := ps.peek(3)
	if err != nil {
		return spec, err
	}
	tIndicator, err := ps.peek(4)
	if err != nil {
		return spec, err
	}

	if tName.typ != tokenBytes {
		return spec, kiterror.Newf(
			"parsing data specifier: expected field name, but found %s", tName.text()).
			WithCode(kiterror.CodeBadInput).
			WithOperation("adi.parseDataSpecifier")
	}
	name := string(tName.bytes)

	if tColon.typ != tokenColon {
		return spec, kiterror.Newf(
			"parsing data specifier: expected \":\", but found %s", tColon.text()).
			WithCode(kiterror.CodeBadInput).
			WithOperation("adi.parseDataSpecifier")
	}

	if tLength.typ != tokenBytes {
		return spec, kiterror.Newf(
			"parsing data specifier length: expected ASCII string, but found %s",
			tLength.text()).
			WithCode(kiterror.CodeBadInput).
			WithOperation("adi.parseDataSpecifier")
	}
	length, err := strconv.Atoi(string(tLength.bytes))
	if err != nil || length < 0 {
		return spec, kiterror.Newf(
			"parsing data specifier length: invalid length %q", string(tLength.bytes)).
			WithCode(kiterror.CodeBadInput).
			WithOperation("adi.parseDataSpecifier").
			WithDetail("field", name)
	}
	if length > MaxFieldLength {
		return spec, kiterror.Newf(
			"parsing data specifier: max supported size is %d bytes", MaxFieldLength).
			WithCode(kiterror.CodeBadInput).
			WithOperation("adi.parseDataSpecifier").
			WithDetail("field", name).
			WithDetail("length", length)
	}

	switch tIndicator.typ {
	case tokenRAB:
		// The supported, untyped form
	case tokenColon:
		return spec, kiterror.New(
			"parsing data specifier: typed values are not supported").
			WithCode(kiterror.CodeNotImplemented).
			WithOperation("adi.parseDataSpecifier").
			WithDetail("field", name)
	default:
		return spec, kiterror.Newf(
			"parsing data specifier: expected \">\", but found %s", tIndicator.text()).
			WithCode(kiterror.CodeBadInput).
			WithOperation("adi.parseDataSpecifier")
	}

	ps.consume(5)

	// Accumulate value bytes until the declared length is satisfied. The
	// three delimiter characters are legal data inside a declared-length
	// value, so a delimiter token contributes its literal byte. A byte run
	// may hold less than the whole value (runs end at the read buffer), so
	// accumulation continues across as many tokens as needed.
	value := make([]byte, 0, length)
	for len(value) < length {
		tok, err := ps.peek(0)
		if err != nil {
			return spec, err
		}

		switch tok.typ {
		case tokenLAB:
			value = append(value, '<')
		case tokenColon:
			value = append(value, ':')
		case tokenRAB:
			value = append(value, '>')
		case tokenBytes:
			need := length - len(value)
			if need > len(tok.bytes) {
				need = len(tok.bytes)
			}
			value = append(value, tok.bytes[:need]...)
		case tokenEOF:
			return spec, kiterror.Newf(
				"parsing data specifier: unexpected %s in value", tok.text()).
				WithCode(kiterror.CodeBadInput).
				WithOperation("adi.parseDataSpecifier").
				WithDetail("field", name)
		}
		ps.consume(1)
	}

	// Anything between the value and the next '<' is discarded filler
	if err := ps.consumeUntilLAB(); err != nil {
		return spec, err
	}

	return DataSpecifier{
		Name:      name,
		CanonName: strings.ToLower(name),
		Length:    length,
		Bytes:     value,
	}, nil
}
