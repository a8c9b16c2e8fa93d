// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"cloudeng.io/daycount/date"
	"gopkg.in/yaml.v3"
)

func TestString(t *testing.T) {
	for _, tc := range []struct {
		d    date.Date
		text string
	}{
		{date.MustNew(2025, 8, 25), "2025-08-25"},
		{date.Epoch, "1970-01-01"},
		{date.MustNew(1, 1, 1), "0001-01-01"},
		{date.MustNew(999, 12, 31), "0999-12-31"},
		{date.MustNew(0, 1, 1), "0000-01-01"},
		{date.MustNew(-5, 3, 1), "-0005-03-01"},
		{date.MustNew(-12345, 10, 9), "-12345-10-09"},
		{date.MustNew(12345, 1, 1), "12345-01-01"},
		{date.MaxDate, "5881580-07-11"},
		{date.MinDate, "-5877641-06-23"},
	} {
		if got, want := tc.d.String(), tc.text; got != want {
			t.Errorf("%d: got %v, want %v", tc.d.Days(), got, want)
		}
		if got, want := tc.d.CalendarDate().String(), tc.text; got != want {
			t.Errorf("%d: got %v, want %v", tc.d.Days(), got, want)
		}
		txt, err := tc.d.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if got, want := string(txt), tc.text; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestFormat(t *testing.T) {
	d := date.MustNew(2025, 8, 25)
	for _, tc := range []struct {
		format string
		args   []any
		out    string
	}{
		{"%v", []any{d}, "2025-08-25"},
		{"%s", []any{d}, "2025-08-25"},
		{"%d", []any{d}, "20325"},
		{"%q", []any{d}, `"2025-08-25"`},
		{"%+v", []any{d}, "date: 2025-08-25 (days=20325)"},
		{"%v: %v", []any{0, d.Next()}, "0: 2025-08-26"},
		{"|%12v|", []any{date.Epoch}, "|  1970-01-01|"},
		{"|%-12s|", []any{date.Epoch}, "|1970-01-01  |"},
		{"|%*v|", []any{11, date.FromDays(-1)}, "| 1969-12-31|"},
		{"|%.4v|", []any{d}, "|2025|"},
		{"|%8d|", []any{d}, "|   20325|"},
		{"|%-8d|", []any{date.FromDays(-7)}, "|-7      |"},
		{"|%06d|", []any{date.FromDays(42)}, "|000042|"},
		{"|%14q|", []any{d}, `|  "2025-08-25"|`},
		{"|%+32v|", []any{d}, "|   date: 2025-08-25 (days=20325)|"},
		{"|%32v|", []any{d}, "|" + strings.Repeat(" ", 32-10) + "2025-08-25|"},
	} {
		if got, want := fmt.Sprintf(tc.format, tc.args...), tc.out; got != want {
			t.Errorf("%v: got %v, want %v", tc.format, got, want)
		}
	}
	if got, want := fmt.Sprintf("%d", date.FromDays(-1)), "-1"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMarshal(t *testing.T) {
	type event struct {
		Name string    `json:"name" yaml:"name"`
		When date.Date `json:"when" yaml:"when"`
	}
	ev := event{Name: "launch", When: date.MustNew(2025, 9, 4)}

	buf, err := json.Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), `{"name":"launch","when":"2025-09-04"}`; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	buf, err = yaml.Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), "name: launch\nwhen: \"2025-09-04\"\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var cd struct {
		From date.CalendarDate `yaml:"from"`
	}
	if err := yaml.Unmarshal([]byte("from: {year: 2024, month: 2, day: 29}"), &cd); err != nil {
		t.Fatal(err)
	}
	d, err := cd.From.Date()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d, date.MustNew(2024, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
