// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// String returns d in YYYY-MM-DD format. The year is zero padded to at
// least four digits, is never truncated and negative years are
// prefixed with '-', eg. -0005-03-01.
func (d Date) String() string {
	return formatYMD(d.YMD())
}

// Format implements fmt.Formatter. The %d verb prints the number of days
// since the epoch and %+v includes the day count with the date, all other
// verbs print the value returned by String. Width, precision and flags
// are honoured as they are for integers and strings.
func (d Date) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'd':
		fmt.Fprintf(f, fmt.FormatString(f, 'd'), int32(d))
	case verb == 'q':
		fmt.Fprintf(f, fmt.FormatString(f, 'q'), d.String())
	case verb == 'v' && f.Flag('+'):
		fmt.Fprintf(f, fmt.FormatString(f, 's'), "date: "+d.String()+" (days="+strconv.FormatInt(int64(d), 10)+")")
	default:
		fmt.Fprintf(f, fmt.FormatString(f, 's'), d.String())
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalJSON implements json.Marshaler, dates are encoded as strings.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}
