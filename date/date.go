// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package date provides a compact calendar date represented as the number
// of days since 1970-01-01 in the proleptic Gregorian calendar.
//
// A Date is an int32 and hence dates may be compared and sorted using
// the built-in operators and the cmp and slices packages.
//
//	d := date.MustNew(2025, 8, 25)
//	for d := range date.Range(d, d+7) {
//		fmt.Println(d)
//	}
package date

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInvalidCalendarDate is returned when a year, month and day
	// do not name a day that exists in the calendar, eg. Feb 29th in a
	// non-leap year.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")

	// ErrOverflow is returned when a date or the result of date
	// arithmetic cannot be represented as a Date.
	ErrOverflow = errors.New("date overflow")
)

// Date represents a calendar day as the number of days since 1970-01-01.
// The zero value is 1970-01-01 and every int32 value is a valid Date.
type Date int32

const (
	// Epoch is 1970-01-01.
	Epoch Date = 0
	// MinDate is the earliest representable Date.
	MinDate Date = math.MinInt32
	// MaxDate is the latest representable Date.
	MaxDate Date = math.MaxInt32
)

// FromDays returns the Date that is days after (or before for negative
// values) the epoch.
func FromDays(days int32) Date {
	return Date(days)
}

// New returns the Date for the specified year, month and day. It returns
// ErrInvalidCalendarDate if the month is not in the range 1-12 or the day
// does not exist in that month and year; no normalization is performed.
// ErrOverflow is returned for a valid day that falls outside of the range
// MinDate to MaxDate.
func New(year int, month Month, day int) (Date, error) {
	if !ValidMonth(month) {
		return 0, fmt.Errorf("%w: month %d", ErrInvalidCalendarDate, int(month))
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf("%w: day %d for %v %d", ErrInvalidCalendarDate, day, time.Month(month), year)
	}
	if year < -maxAbsYear || year > maxAbsYear {
		return 0, fmt.Errorf("%w: year %d", ErrOverflow, year)
	}
	days := daysFromCivil(int64(year), month, day)
	if days < math.MinInt32 || days > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v", ErrOverflow, formatYMD(year, month, day))
	}
	return Date(days), nil
}

// MustNew is like New but panics on error.
func MustNew(year int, month Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the Date of the wall clock date of t in t's own
// location. Times outside of the representable range are clamped to
// MinDate or MaxDate.
func FromTime(t time.Time) Date {
	year, month, day := t.Date()
	days := daysFromCivil(int64(year), Month(month), day)
	switch {
	case days < math.MinInt32:
		return MinDate
	case days > math.MaxInt32:
		return MaxDate
	}
	return Date(days)
}

// Days returns the number of days since the epoch.
func (d Date) Days() int32 {
	return int32(d)
}

// YMD returns the year, month and day for d.
func (d Date) YMD() (year int, month Month, day int) {
	y, m, dd := civilFromDays(int64(d))
	return int(y), m, dd
}

// CalendarDate returns the year, month and day for d as a CalendarDate.
func (d Date) CalendarDate() CalendarDate {
	y, m, dd := d.YMD()
	return CalendarDate{Year: y, Month: m, Day: dd}
}

// Year returns the year for d.
func (d Date) Year() int {
	y, _, _ := d.YMD()
	return y
}

// Month returns the month for d.
func (d Date) Month() Month {
	_, m, _ := d.YMD()
	return m
}

// Day returns the day of the month for d.
func (d Date) Day() int {
	_, _, dd := d.YMD()
	return dd
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday.
	wd := (int64(d) + int64(time.Thursday)) % 7
	if wd < 0 {
		wd += 7
	}
	return time.Weekday(wd)
}

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	y, m, dd := d.YMD()
	return time.Date(y, time.Month(m), dd, 0, 0, 0, 0, time.UTC)
}

// Next returns the following day. Next(MaxDate) returns MaxDate.
func (d Date) Next() Date {
	if d == MaxDate {
		return d
	}
	return d + 1
}

// Prev returns the preceding day. Prev(MinDate) returns MinDate.
func (d Date) Prev() Date {
	if d == MinDate {
		return d
	}
	return d - 1
}

// Increment advances d by one day and returns the new value.
func (d *Date) Increment() Date {
	*d = d.Next()
	return *d
}

// Decrement moves d back by one day and returns the new value.
func (d *Date) Decrement() Date {
	*d = d.Prev()
	return *d
}

// PostIncrement advances d by one day and returns its previous value.
func (d *Date) PostIncrement() Date {
	old := *d
	*d = d.Next()
	return old
}

// PostDecrement moves d back by one day and returns its previous value.
func (d *Date) PostDecrement() Date {
	old := *d
	*d = d.Prev()
	return old
}

// AddDays returns the Date n days after d, n may be negative. ErrOverflow
// is returned if the result cannot be represented.
func (d Date) AddDays(n int) (Date, error) {
	r := int64(d) + int64(n)
	if r < math.MinInt32 || r > math.MaxInt32 {
		return d, fmt.Errorf("%w: %v %+d days", ErrOverflow, d, n)
	}
	return Date(r), nil
}

// MustAddDays is like AddDays but panics on error.
func (d Date) MustAddDays(n int) Date {
	r, err := d.AddDays(n)
	if err != nil {
		panic(err)
	}
	return r
}

// Sub returns the number of days from other to d, ie. d - other.
func (d Date) Sub(other Date) int64 {
	return int64(d) - int64(other)
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same as,
// or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d < other:
		return -1
	case d > other:
		return 1
	}
	return 0
}

// Before returns true if d is before other.
func (d Date) Before(other Date) bool {
	return d < other
}

// After returns true if d is after other.
func (d Date) After(other Date) bool {
	return d > other
}

// Equal returns true if d and other are the same day.
func (d Date) Equal(other Date) bool {
	return d == other
}
