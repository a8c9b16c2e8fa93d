// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date

import (
	"fmt"

	"cloudeng.io/datetime"
)

// Month is a month of the year in the range 1-12.
type Month = datetime.Month

// ValidMonth returns true if m is in the range 1-12.
func ValidMonth(m Month) bool {
	return m >= 1 && m <= 12
}

// IsLeap returns true if the given year is a leap year in the proleptic
// Gregorian calendar.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInMonth returns the number of days in the given month for the given
// year. It returns 0 for an invalid month.
func DaysInMonth(year int, month Month) int {
	if !ValidMonth(month) {
		return 0
	}
	return int(datetime.DaysInMonth(year, month))
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// CalendarDate represents a date as a year, month and day.
type CalendarDate struct {
	Year  int   `yaml:"year" json:"year"`
	Month Month `yaml:"month" json:"month"`
	Day   int   `yaml:"day" json:"day"`
}

// NewCalendarDate returns a CalendarDate for the specified year, month and day.
// No validation is performed.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// Date returns the Date for cd, see New.
func (cd CalendarDate) Date() (Date, error) {
	return New(cd.Year, cd.Month, cd.Day)
}

// Valid returns true if cd names a day that exists in the calendar.
func (cd CalendarDate) Valid() bool {
	return ValidMonth(cd.Month) && cd.Day >= 1 && cd.Day <= DaysInMonth(cd.Year, cd.Month)
}

func (cd CalendarDate) String() string {
	return formatYMD(cd.Year, cd.Month, cd.Day)
}

// Years beyond this cannot be represented by any int32 day-count and
// are rejected before any arithmetic that could overflow an int64.
const maxAbsYear = 6_000_000

const (
	daysPerEra  = 146097 // days in 400 years
	epochShift  = 719468 // days from 0000-03-01 to 1970-01-01
	yearsPerEra = 400
	daysPerYear = 365
)

// daysFromCivil returns the number of days since 1970-01-01 for the
// given triple, which must be valid. The year is shifted so that it starts
// on March 1st which moves the leap day to the end of the year.
func daysFromCivil(year int64, month Month, day int) int64 {
	y := year
	if month <= 2 {
		y--
	}
	era := y / yearsPerEra
	if y < 0 && y%yearsPerEra != 0 {
		era--
	}
	yoe := y - era*yearsPerEra                     // [0, 399]
	mp := (int64(month) + 9) % 12                  // March is 0
	doy := (153*mp+2)/5 + int64(day) - 1           // [0, 365]
	doe := yoe*daysPerYear + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*daysPerEra + doe - epochShift
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(days int64) (int64, Month, int) {
	z := days + epochShift
	era := z / daysPerEra
	if z < 0 && z%daysPerEra != 0 {
		era--
	}
	doe := z - era*daysPerEra                                      // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / daysPerYear // [0, 399]
	y := yoe + era*yearsPerEra
	doy := doe - (daysPerYear*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                          // [0, 11]
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 { // January and February
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, Month(m), int(d)
}

func formatYMD(year int, month Month, day int) string {
	if year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -year, int(month), day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}
