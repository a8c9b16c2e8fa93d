// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command daycount prints and computes with calendar dates and spans of
// values, for example:
//
//	daycount dates --from=2025,8,25 --to=2025,9,5
//	daycount span-dates --format=json
//	daycount sum 1 2 3
//	daycount diff --from=2025,8,25 --to=2025,9,5
//	daycount info --date=2024,2,29
//
// Dates are specified as comma separated year, month and day values on
// the command line or as year, month and day fields in the YAML config
// file specified via --config.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		cmdutil.Exit("%v", err)
	}
}
