// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cloudeng.io/daycount/date"
	"cloudeng.io/daycount/span"
	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

type indexedDate struct {
	Index int       `json:"index" yaml:"index"`
	Date  date.Date `json:"date" yaml:"date"`
}

func newDatesCmd() *cobra.Command {
	rf := &rangeFlags{}
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "Print each date in the range [from, to)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			from, to, err := rf.dates(cmd.Flags(), cfg)
			if err != nil {
				return err
			}
			ctxlog.Logger(ctx).Debug("dates", "from", from, "to", to)
			var listing []indexedDate
			i := 0
			for d := range date.Range(from, to) {
				listing = append(listing, indexedDate{Index: i, Date: d})
				i++
			}
			return printDates(cmd.OutOrStdout(), cfg.Output, listing)
		},
	}
	rf.register(cmd.Flags())
	return cmd
}

func newSpanDatesCmd() *cobra.Command {
	rf := &rangeFlags{}
	cmd := &cobra.Command{
		Use:   "span-dates",
		Short: "Collect the dates in the range [from, to) and print them via a span",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			from, to, err := rf.dates(cmd.Flags(), cfg)
			if err != nil {
				return err
			}
			dates := span.New(date.Dates(from, to))
			ctxlog.Logger(ctx).Debug("span-dates", "from", from, "to", to, "len", dates.Len())
			listing := make([]indexedDate, dates.Len())
			for i := 0; i < dates.Len(); i++ {
				listing[i] = indexedDate{Index: i, Date: dates.Index(i)}
			}
			return printDates(cmd.OutOrStdout(), cfg.Output, listing)
		},
	}
	rf.register(cmd.Flags())
	return cmd
}

func printDates(w io.Writer, format string, listing []indexedDate) error {
	if listing == nil {
		listing = []indexedDate{}
	}
	return render(w, format, listing, func(w io.Writer) error {
		for _, l := range listing {
			if _, err := fmt.Fprintf(w, "%d: %v\n", l.Index, l.Date); err != nil {
				return err
			}
		}
		return nil
	})
}
