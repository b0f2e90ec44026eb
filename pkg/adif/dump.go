// File: dump.go
// Title: Logical ADIF Dump
// Description: Renders a logical ADIF file as human-readable text,
//              optionally limited to the first record, a set of fields,
//              or records matching field filters.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation

package adif

import (
	"fmt"
	"io"
	"sort"

	kiterror "github.com/msto63/adifkit/pkg/core/error"
)

// WhichRecords selects how many records a dump renders
type WhichRecords int

const (
	// DumpAll renders every record
	DumpAll WhichRecords = iota

	// DumpOne renders only the first record
	DumpOne
)

// DumpOptions controls what a dump renders
type DumpOptions struct {
	// Records selects whether all records or only the first are dumped
	Records WhichRecords

	// Fields restricts output to the named canonical fields; empty means
	// all fields
	Fields []string

	// Filter keeps only records where every named field has the given
	// value; records missing a filtered field are skipped
	Filter map[string]string
}

// Dump renders the file to the given writer
func (f *File) Dump(w io.Writer, opts DumpOptions) error {
	if err := dumpMetadata(w, f); err != nil {
		return err
	}

	for i := range f.Records {
		rec := &f.Records[i]
		if !matchesFilter(rec, opts.Filter) {
			continue
		}

		if err := dumpRecord(w, i+1, rec, opts.Fields); err != nil {
			return err
		}

		if opts.Records == DumpOne {
			break
		}
	}

	return nil
}

func dumpMetadata(w io.Writer, f *File) error {
	if _, err := fmt.Fprintf(w, "file: %s\n", f.Label); err != nil {
		return wrapWrite(err)
	}

	meta := []struct {
		label string
		value string
	}{
		{"adif version", f.ADIFVersion},
		{"program id", f.ProgramID},
		{"program version", f.ProgramVersion},
		{"created", f.CreatedTimestamp},
	}
	for _, m := range meta {
		if m.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", m.label, m.value); err != nil {
			return wrapWrite(err)
		}
	}

	if _, err := fmt.Fprintf(w, "records: %d\n", len(f.Records)); err != nil {
		return wrapWrite(err)
	}

	return nil
}

func dumpRecord(w io.Writer, index int, rec *Record, fields []string) error {
	if _, err := fmt.Fprintf(w, "record %d:\n", index); err != nil {
		return wrapWrite(err)
	}

	names := fields
	if len(names) == 0 {
		names = make([]string, 0, len(rec.Fields))
		for name := range rec.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	for _, name := range names {
		value, ok := rec.Fields[name]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "    %s: %s\n", name, value); err != nil {
			return wrapWrite(err)
		}
	}

	return nil
}

// matchesFilter reports whether the record satisfies every filter entry
func matchesFilter(rec *Record, filter map[string]string) bool {
	for name, want := range filter {
		got, ok := rec.Fields[name]
		if !ok || got != want {
			return false
		}
	}
	return true
}

func wrapWrite(err error) error {
	return kiterror.Wrap(err, "writing dump output").
		WithCode(kiterror.CodeIO).
		WithOperation("adif.Dump")
}
