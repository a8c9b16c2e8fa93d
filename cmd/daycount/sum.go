// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"cloudeng.io/daycount/span"
	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

type sumResult struct {
	Values []int `json:"values" yaml:"values"`
	Total  int   `json:"total" yaml:"total"`
}

func sum(values span.Span[int]) int {
	total := 0
	for v := range values.Values() {
		total += v
	}
	return total
}

func newSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum [value...]",
		Short: "Print the sum of the supplied integers, or of the configured values",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			values := cfg.Values
			if len(args) > 0 {
				values = make([]int, len(args))
				for i, a := range args {
					v, err := strconv.Atoi(a)
					if err != nil {
						return fmt.Errorf("invalid value %q: %w", a, err)
					}
					values[i] = v
				}
			}
			total := sum(span.New(values))
			ctxlog.Logger(ctx).Debug("sum", "values", len(values), "total", total)
			result := sumResult{Values: values, Total: total}
			return render(cmd.OutOrStdout(), cfg.Output, result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "total = %d\n", total)
				return err
			})
		},
	}
}
