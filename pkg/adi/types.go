// File: types.go
// Title: ADI Physical File Structures
// Description: Defines the structures describing the low-level elements of
//              an ADI file (header, data specifier, record). At this level
//              nothing is interpreted; the structures reflect exactly what
//              appears in the file. Semantics are applied by the adif
//              package on top of these.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation

package adi

// File represents a complete ADI file. The whole file is materialized in
// memory; this structure is not compatible with a streaming parser.
type File struct {
	// Header is the file header, if present
	Header *Header

	// Records is the ordered list of records in the file
	Records []Record
}

// Header represents the header of an ADI file, if present
type Header struct {
	// Content is the complete free-form header text, including any loose
	// ':' or '>' bytes found outside a data specifier
	Content []byte

	// Fields is the ordered list of header data specifiers
	Fields []DataSpecifier
}

// Record represents one record in an ADI file
type Record struct {
	Fields []DataSpecifier
}

// DataSpecifier represents a data specifier in an ADI file. These are
// sometimes called fields, and they are essentially key-value pairs. The
// members reflect exactly what appears in the file: ADI allows a data
// specifier to carry a type indicator, but it is optional, and many fields
// have default types based on the field name. Rather than fill in defaults
// here, Type records only what the file actually said. If it is empty, the
// higher-level parser can fill in a default.
type DataSpecifier struct {
	// Name is the field name as written in the file
	Name string

	// CanonName is the canonicalized (lower-cased) field name
	CanonName string

	// Length is the declared size in bytes of the field's value
	Length int

	// Bytes holds the field's value, exactly Length bytes
	Bytes []byte

	// Type is the type indicator for the field, empty if none was given
	Type string
}
