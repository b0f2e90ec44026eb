// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for the adifkit structured error system.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial documentation

/*
Package error provides structured error handling for the adifkit toolkit.

Errors carry a classification code, a severity, the operation that failed,
and a map of diagnostic details, while remaining fully compatible with Go's
standard error interface (including errors.Is/As unwrapping).

The parser distinguishes exactly three terminal failure classes:

  - CodeIO: an I/O failure from the underlying byte source
  - CodeBadInput: a structural, length, duplicate-field, or encoding
    violation in the input
  - CodeNotImplemented: a construct the format allows but the parser does
    not support (type-tagged physical values)

Callers should classify errors with HasCode or GetCode instead of matching
on message text:

	if kiterror.HasCode(err, kiterror.CodeBadInput) {
		// report and exit non-zero; never interpret a partial result
	}
*/
package error
