// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the adifkit toolkit. The parser maps
//              each terminal failure class onto exactly one code so callers
//              can distinguish I/O failures, malformed input, and
//              not-yet-implemented constructs without string matching.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation with parser error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the adifkit toolkit
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Parser codes
	CodeIO             Code = "IO"
	CodeBadInput       Code = "BAD_INPUT"
	CodeNotImplemented Code = "NOT_IMPLEMENTED"

	// Configuration and validation
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid returns true if the code is one of the defined codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeIO, CodeBadInput, CodeNotImplemented,
		CodeConfigError, CodeInvalidInput, CodeValidationFailed:
		return true
	default:
		return false
	}
}

// GetSeverityFromCode returns the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeIO, CodeBadInput:
		return SeverityHigh
	case CodeConfigError, CodeValidationFailed:
		return SeverityMedium
	case CodeNotImplemented, CodeNotFound, CodeInvalidInput:
		return SeverityMedium
	default:
		return SeverityMedium
	}
}
