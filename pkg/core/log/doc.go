// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the adifkit structured logger.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial documentation

/*
Package log provides structured logging for the adifkit toolkit.

Loggers are immutable: the With* methods return a copy carrying additional
context (name, request ID, persistent fields), so a command can derive a
tagged logger once and hand it down without synchronization concerns.

Two output formats are supported: human-readable text (the CLI default,
written to stderr so parser output on stdout stays clean) and JSON for
machine consumption. LogError understands the pkg/core/error type and maps
error severity onto the appropriate log level, attaching the error code,
operation, and details as structured fields.
*/
package log
