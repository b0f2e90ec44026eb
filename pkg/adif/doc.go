// File: doc.go
// Title: Package Documentation for adif
// Description: Package-level documentation for the logical ADIF layer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation

/*
Package adif interprets parsed ADI files as logical ADIF data.

Amateur Data Interchange Format (ADIF) is a standardized file format for
exchanging data about amateur radio contacts ("QSOs"). ADI is its legacy
bracket-delimited physical encoding, handled by the adi package. This
package applies the semantics on top: well-known header fields (adif_ver,
programid, programversion, created_timestamp) are lifted into typed
metadata, every value is decoded as UTF-8 text, and each record becomes a
map from canonical field name to value. A field name repeated within one
record is a fatal input error, reported with the 1-based record index.

Parsing stops at the first error; there is no recovery or partial result.

Usage:

	f, err := adif.Parse("mylog.adi", file)
	if err != nil {
		// surface the message and exit non-zero
	}
	for _, rec := range f.Records {
		fmt.Println(rec.Fields["call"])
	}

The package also provides the reporting operations used by the command
line tools: Dump renders the file with optional record, field and filter
selection, and Diff pairs the records of two files by a signature and
compares one field between paired records.
*/
package adif
