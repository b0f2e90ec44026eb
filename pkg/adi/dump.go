// File: dump.go
// Title: ADI Physical Structure Dump
// Description: Renders a parsed ADI file as human-readable text for
//              debugging. The output approximates the physical layout but
//              is not a byte-exact re-serialization.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation

package adi

import (
	"fmt"
	"strings"
)

// Dump renders an ADI file to a string in a format intended for debugging
func Dump(f *File) string {
	var sb strings.Builder

	if f.Header == nil {
		sb.WriteString("(no header present)")
	} else {
		sb.Write(f.Header.Content)
		for i := range f.Header.Fields {
			dumpSpecifier(&sb, &f.Header.Fields[i])
		}
		sb.WriteString("<eoh>\n")
	}

	for i := range f.Records {
		dumpRecord(&sb, &f.Records[i])
	}

	return sb.String()
}

func dumpRecord(sb *strings.Builder, rec *Record) {
	for i := range rec.Fields {
		dumpSpecifier(sb, &rec.Fields[i])
	}
	sb.WriteString("<eor>\n")
}

func dumpSpecifier(sb *strings.Builder, spec *DataSpecifier) {
	fmt.Fprintf(sb, "    <%s:%d", spec.CanonName, spec.Length)
	if spec.Type != "" {
		sb.WriteString(":")
		sb.WriteString(spec.Type)
	}
	sb.WriteString(">")
	sb.Write(spec.Bytes)
	sb.WriteString("\n")
}
