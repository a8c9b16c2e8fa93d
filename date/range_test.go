// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date_test

import (
	"testing"

	"cloudeng.io/daycount/date"
	"github.com/google/go-cmp/cmp"
)

func datesAsStrings(dates []date.Date) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}

func TestRange(t *testing.T) {
	from, to := date.MustNew(2025, 8, 25), date.MustNew(2025, 9, 5)
	got := date.Dates(from, to)
	want := []string{
		"2025-08-25", "2025-08-26", "2025-08-27", "2025-08-28",
		"2025-08-29", "2025-08-30", "2025-08-31", "2025-09-01",
		"2025-09-02", "2025-09-03", "2025-09-04",
	}
	if diff := cmp.Diff(want, datesAsStrings(got)); diff != "" {
		t.Errorf("dates mismatch (-want +got):\n%s", diff)
	}

	// Repeated calls to Increment must produce the same sequence.
	var seq []date.Date
	for d := from; d < to; d.Increment() {
		seq = append(seq, d)
	}
	if diff := cmp.Diff(got, seq); diff != "" {
		t.Errorf("dates mismatch (-want +got):\n%s", diff)
	}

	if got, want := len(date.Dates(to, from)), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(date.Dates(from, from)), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Early termination.
	n := 0
	for d := range date.Range(from, to) {
		if d == from+3 {
			break
		}
		n++
	}
	if got, want := n, 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// The end of the representable range.
	tail := date.Dates(date.MaxDate-2, date.MaxDate)
	if diff := cmp.Diff([]string{"5881580-07-09", "5881580-07-10"}, datesAsStrings(tail)); diff != "" {
		t.Errorf("dates mismatch (-want +got):\n%s", diff)
	}
}

func TestSort(t *testing.T) {
	dates := []date.Date{
		date.MustNew(2025, 9, 4),
		date.MustNew(-1, 1, 1),
		date.MustNew(2025, 8, 25),
		date.MustNew(1970, 1, 1),
		date.MustNew(12345, 1, 1),
	}
	date.Sort(dates)
	want := []string{"-0001-01-01", "1970-01-01", "2025-08-25", "2025-09-04", "12345-01-01"}
	if diff := cmp.Diff(want, datesAsStrings(dates)); diff != "" {
		t.Errorf("dates mismatch (-want +got):\n%s", diff)
	}
}
