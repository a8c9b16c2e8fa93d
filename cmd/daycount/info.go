// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cloudeng.io/daycount/date"
	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type infoResult struct {
	Date    date.Date         `json:"date" yaml:"date"`
	Days    int32             `json:"days" yaml:"days"`
	YMD     date.CalendarDate `json:"ymd" yaml:"ymd"`
	Weekday string            `json:"weekday" yaml:"weekday"`
	Leap    bool              `json:"leap_year" yaml:"leap_year"`
}

func newInfoCmd() *cobra.Command {
	var ymd []int
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the day count, weekday and leap year status of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			d, err := infoDate(cmd.Flags(), ymd, cfg.Range.From)
			if err != nil {
				return err
			}
			ctxlog.Logger(ctx).Debug("info", "date", d)
			result := infoResult{
				Date:    d,
				Days:    d.Days(),
				YMD:     d.CalendarDate(),
				Weekday: d.Weekday().String(),
				Leap:    date.IsLeap(d.Year()),
			}
			return render(cmd.OutOrStdout(), cfg.Output, result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "date:    %v\ndays:    %d\nweekday: %v\nleap:    %v\n",
					result.Date, result.Days, result.Weekday, result.Leap)
				return err
			})
		},
	}
	cmd.Flags().IntSliceVar(&ymd, "date", nil, "date as year,month,day, defaults to the start of the configured range")
	return cmd
}

func infoDate(fs *pflag.FlagSet, ymd []int, def date.CalendarDate) (date.Date, error) {
	cd := def
	if fs.Changed("date") {
		var err error
		if cd, err = calendarDate("date", ymd); err != nil {
			return 0, err
		}
	}
	return cd.Date()
}
