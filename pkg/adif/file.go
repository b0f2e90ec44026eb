// File: file.go
// Title: Logical ADIF Interpreter
// Description: Converts the physical representation of an ADI file into a
//              more useful interface for consumers: well-known header
//              fields become typed metadata, record values are decoded as
//              UTF-8 text, and duplicate field names within one record are
//              rejected.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation

package adif

import (
	"io"
	"unicode/utf8"

	"github.com/msto63/adifkit/pkg/adi"
	kiterror "github.com/msto63/adifkit/pkg/core/error"
)

// Well-known header fields, by canonical name
const (
	headerADIFVer          = "adif_ver"
	headerProgramID        = "programid"
	headerProgramVersion   = "programversion"
	headerCreatedTimestamp = "created_timestamp"
)

// File represents the logical contents of an ADIF file
type File struct {
	// Well-known header fields, empty if absent
	ADIFVersion      string
	ProgramID        string
	ProgramVersion   string
	CreatedTimestamp string

	// Label identifies this file for consumers (e.g. the filename)
	Label string

	// HeaderFields holds all decoded header fields by canonical name,
	// including ones that are not well-known. A name repeated in the
	// header keeps its last value.
	HeaderFields map[string]string

	// Records is the list of records in the file
	Records []Record
}

// Record maps canonical field names to decoded values. Names are unique
// within one record; a duplicate is a fatal input error.
type Record struct {
	Fields map[string]string
}

// Value returns the value of the named field and whether it is present
func (r *Record) Value(canonName string) (string, bool) {
	v, ok := r.Fields[canonName]
	return v, ok
}

// Parse reads ADI input from the given source and interprets it as a
// logical ADIF file. The label identifies the source in the result and in
// error messages.
func Parse(label string, source io.Reader) (*File, error) {
	physical, err := adi.Parse(source)
	if err != nil {
		return nil, err
	}
	return Interpret(label, physical)
}

// ParseString interprets ADI input held in a string
func ParseString(label string, source string) (*File, error) {
	physical, err := adi.ParseString(source)
	if err != nil {
		return nil, err
	}
	return Interpret(label, physical)
}

// Interpret converts a parsed physical ADI file into a logical ADIF file
func Interpret(label string, physical *adi.File) (*File, error) {
	f := &File{
		Label:        label,
		HeaderFields: make(map[string]string),
		Records:      make([]Record, 0, len(physical.Records)),
	}

	if physical.Header != nil {
		for i := range physical.Header.Fields {
			spec := &physical.Header.Fields[i]
			value, err := decodeString(spec)
			if err != nil {
				return nil, err
			}

			f.HeaderFields[spec.CanonName] = value
			switch spec.CanonName {
			case headerADIFVer:
				f.ADIFVersion = value
			case headerProgramID:
				f.ProgramID = value
			case headerProgramVersion:
				f.ProgramVersion = value
			case headerCreatedTimestamp:
				f.CreatedTimestamp = value
			}
		}
	}

	for i := range physical.Records {
		rec := Record{Fields: make(map[string]string, len(physical.Records[i].Fields))}

		for j := range physical.Records[i].Fields {
			spec := &physical.Records[i].Fields[j]
			if _, ok := rec.Fields[spec.CanonName]; ok {
				return nil, kiterror.Newf(
					"record %d: duplicate field \"%s\"", i+1, spec.CanonName).
					WithCode(kiterror.CodeBadInput).
					WithOperation("adif.Interpret").
					WithDetail("label", label).
					WithDetail("record", i+1).
					WithDetail("field", spec.CanonName)
			}

			value, err := decodeString(spec)
			if err != nil {
				return nil, err
			}
			rec.Fields[spec.CanonName] = value
		}

		f.Records = append(f.Records, rec)
	}

	return f, nil
}

// decodeString decodes a data specifier's value as text. If the specifier
// carries a type indicator it must be exactly "S"; the value bytes must be
// valid UTF-8.
func decodeString(spec *adi.DataSpecifier) (string, error) {
	if spec.Type != "" && spec.Type != "S" {
		return "", kiterror.Newf(
			"field \"%s\": expected string value, but found type \"%s\"",
			spec.Name, spec.Type).
			WithCode(kiterror.CodeBadInput).
			WithOperation("adif.decodeString")
	}

	if !utf8.Valid(spec.Bytes) {
		return "", kiterror.Newf(
			"field \"%s\": value contained invalid bytes for UTF-8 string",
			spec.Name).
			WithCode(kiterror.CodeBadInput).
			WithOperation("adif.decodeString")
	}

	return string(spec.Bytes), nil
}
