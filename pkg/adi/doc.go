// File: doc.go
// Title: Package Documentation for adi
// Description: Package-level documentation for the ADI physical parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation

/*
Package adi parses the ADI physical file format, the legacy
bracket-delimited serialization of amateur-radio contact logs.

An ADI file is an optional free-text header terminated by "<eoh>",
followed by records terminated by "<eor>". Each field is a data
specifier of the form "<name:length>" followed by exactly length value
bytes; anything between the value and the next '<' is discarded filler.
The three delimiter characters '<', ':' and '>' are legal data inside a
declared-length value, so the parser cannot split on delimiters alone.

Parsing works in three layers. A tokenizer converts the byte stream into
delimiter, byte-run and end-of-input tokens. A parse state queues tokens
so the parser can peek several ahead before committing to consume them,
which is how a section marker is told apart from a data specifier. The
parsers for headers, records and data specifiers then assemble a File.

The structures produced here describe exactly what appears in the file.
Field names are canonicalized, but values remain raw bytes and no
semantics are applied; that is the job of the adif package.

Usage:

	f, err := adi.ParseString("<call:6>KK6ZBI<eor>")
	if err != nil {
		// handle malformed input
	}
	fmt.Println(adi.Dump(f))
*/
package adi
