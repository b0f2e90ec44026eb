// File: diff_test.go
// Title: Logical ADIF Diff Tests
// Description: Tests for record pairing by signature and field comparison
//              between two files.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation

package adif

import (
	"strings"
	"testing"
)

func diffTestFiles(t *testing.T, input1, input2 string) (*File, *File) {
	t.Helper()

	f1, err := ParseString("one.adi", input1)
	if err != nil {
		t.Fatalf("unexpected error parsing first file: %v", err)
	}
	f2, err := ParseString("two.adi", input2)
	if err != nil {
		t.Fatalf("unexpected error parsing second file: %v", err)
	}
	return f1, f2
}

func TestDiff_Identical(t *testing.T) {
	input := "<call:6>KK6ZBI<qso_date:8>20181129<gridsquare:4>CM87<eor>"
	f1, f2 := diffTestFiles(t, input, input)

	var sb strings.Builder
	result, err := f1.Diff(f2, &sb, DiffOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OnlyInFirst != 0 || result.Matched != 1 || result.Differing != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
	if !strings.Contains(sb.String(), "matched records: 1") {
		t.Errorf("unexpected summary: %q", sb.String())
	}
}

func TestDiff_OnlyInFirst(t *testing.T) {
	f1, f2 := diffTestFiles(t,
		"<call:6>KK6ZBI<qso_date:8>20181129<eor>",
		"<call:6>KB1HCN<qso_date:8>20181130<eor>")

	var sb strings.Builder
	result, err := f1.Diff(f2, &sb, DiffOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OnlyInFirst != 1 || result.Matched != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
	if !strings.Contains(sb.String(), "only in one.adi: 20181129 QSO with KK6ZBI") {
		t.Errorf("expected unmatched line, got %q", sb.String())
	}
}

func TestDiff_FieldDiffers(t *testing.T) {
	f1, f2 := diffTestFiles(t,
		"<call:6>KK6ZBI<qso_date:8>20181129<gridsquare:4>CM87<eor>",
		"<call:6>KK6ZBI<qso_date:8>20181129<gridsquare:4>CM88<eor>")

	var sb strings.Builder
	result, err := f1.Diff(f2, &sb, DiffOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Matched != 1 || result.Differing != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	out := sb.String()
	if !strings.Contains(out, "gridsquare differs") {
		t.Errorf("expected difference line, got %q", out)
	}
	if !strings.Contains(out, "\"CM87\" vs. \"CM88\"") {
		t.Errorf("expected both values, got %q", out)
	}
}

func TestDiff_FieldMissingOnOneSide(t *testing.T) {
	tests := []struct {
		name   string
		input1 string
		input2 string
		want   string
	}{
		{
			"missing in first",
			"<call:6>KK6ZBI<qso_date:8>20181129<eor>",
			"<call:6>KK6ZBI<qso_date:8>20181129<gridsquare:4>CM87<eor>",
			"none vs. \"CM87\"",
		},
		{
			"missing in second",
			"<call:6>KK6ZBI<qso_date:8>20181129<gridsquare:4>CM87<eor>",
			"<call:6>KK6ZBI<qso_date:8>20181129<eor>",
			"\"CM87\" vs. none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f1, f2 := diffTestFiles(t, tt.input1, tt.input2)

			var sb strings.Builder
			result, err := f1.Diff(f2, &sb, DiffOptions{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Differing != 1 {
				t.Errorf("expected one difference, got %+v", result)
			}
			if !strings.Contains(sb.String(), tt.want) {
				t.Errorf("expected %q in output, got %q", tt.want, sb.String())
			}
		})
	}
}

func TestDiff_FieldMissingOnBothSides(t *testing.T) {
	input := "<call:6>KK6ZBI<qso_date:8>20181129<eor>"
	f1, f2 := diffTestFiles(t, input, input)

	var sb strings.Builder
	result, err := f1.Diff(f2, &sb, DiffOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Matched != 1 || result.Differing != 0 {
		t.Errorf("expected a clean match, got %+v", result)
	}
}

func TestDiff_CustomOptions(t *testing.T) {
	f1, f2 := diffTestFiles(t,
		"<call:6>KK6ZBI<band:3>20m<mode:2>CW<eor>",
		"<call:6>KK6ZBI<band:3>20m<mode:3>SSB<eor>")

	var sb strings.Builder
	opts := DiffOptions{
		MatchFields:  []string{"call", "band"},
		CompareField: "mode",
	}
	result, err := f1.Diff(f2, &sb, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Matched != 1 || result.Differing != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if !strings.Contains(sb.String(), "mode differs") {
		t.Errorf("expected mode difference, got %q", sb.String())
	}
}
