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
)

type diffResult struct {
	From date.Date `json:"from" yaml:"from"`
	To   date.Date `json:"to" yaml:"to"`
	Days int64     `json:"days" yaml:"days"`
}

func newDiffCmd() *cobra.Command {
	rf := &rangeFlags{}
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Print the number of days from one date to another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			from, to, err := rf.dates(cmd.Flags(), cfg)
			if err != nil {
				return err
			}
			result := diffResult{From: from, To: to, Days: to.Sub(from)}
			ctxlog.Logger(ctx).Debug("diff", "from", from, "to", to, "days", result.Days)
			return render(cmd.OutOrStdout(), cfg.Output, result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%d\n", result.Days)
				return err
			})
		},
	}
	rf.register(cmd.Flags())
	return cmd
}
