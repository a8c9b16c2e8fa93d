// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package span provides a non-owning, fixed length view over contiguous
// memory with both unchecked and bounds checked element access.
package span

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfRange is returned by At for an index outside of the span.
var ErrOutOfRange = errors.New("span: index out of range")

// Span is a view over the elements of a slice or array. It does not copy
// the elements and writes via Set are visible to all views of the same
// memory. The zero value is an empty span.
type Span[T any] struct {
	data []T
}

// New returns a Span over data. Arrays can be viewed via arr[:].
func New[T any](data []T) Span[T] {
	return Span[T]{data: data[:len(data):len(data)]}
}

// Len returns the number of elements in the span.
func (s Span[T]) Len() int {
	return len(s.data)
}

// Index returns the i'th element without any checks beyond those performed
// by the Go runtime, ie. it panics if i is out of range. Use At for
// checked access.
func (s Span[T]) Index(i int) T {
	return s.data[i]
}

// Set assigns v to the i'th element, it panics if i is out of range.
func (s Span[T]) Set(i int, v T) {
	s.data[i] = v
}

// At returns the i'th element or an error wrapping ErrOutOfRange if
// i < 0 or i >= Len().
func (s Span[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.data) {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(s.data))
	}
	return s.data[i], nil
}

// All returns an iterator over the index and value of each element from
// first to last.
func (s Span[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over each element from first to last.
func (s Span[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns the memory viewed by the span.
func (s Span[T]) Slice() []T {
	return s.data
}
