// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date_test

import (
	"errors"
	"fmt"

	"cloudeng.io/daycount/date"
)

func ExampleRange() {
	from, to := date.MustNew(2025, 8, 29), date.MustNew(2025, 9, 2)
	i := 0
	for d := range date.Range(from, to) {
		fmt.Printf("%v: %v\n", i, d)
		i++
	}
	fmt.Println(to.Sub(from))
	// Output:
	// 0: 2025-08-29
	// 1: 2025-08-30
	// 2: 2025-08-31
	// 3: 2025-09-01
	// 4
}

func ExampleNew() {
	_, err := date.New(2023, 2, 29)
	fmt.Println(errors.Is(err, date.ErrInvalidCalendarDate))
	d, _ := date.New(2024, 2, 29)
	fmt.Println(d, d.Weekday())
	fmt.Printf("%+v\n", d)
	// Output:
	// true
	// 2024-02-29 Thursday
	// date: 2024-02-29 (days=19782)
}

func ExampleDate_PostIncrement() {
	d := date.MustNew(2024, 12, 31)
	prev := d.PostIncrement()
	fmt.Println(prev, d)
	next := d.Increment()
	fmt.Println(next, d)
	// Output:
	// 2024-12-31 2025-01-01
	// 2025-01-02 2025-01-02
}
