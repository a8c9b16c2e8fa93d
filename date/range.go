// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date

import (
	"iter"
	"slices"
)

// Range returns an iterator that yields each Date from from up to, but
// not including, to. Nothing is yielded if to is not after from.
func Range(from, to Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := from; d < to; d++ {
			if !yield(d) {
				return
			}
		}
	}
}

// Dates returns the dates yielded by Range(from, to) as a slice.
func Dates(from, to Date) []Date {
	if to <= from {
		return nil
	}
	return slices.Collect(Range(from, to))
}

// Sort sorts the supplied dates in chronological order.
func Sort(dates []Date) {
	slices.Sort(dates)
}
