// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/daycount/date"
	"cloudeng.io/daycount/internal/config"
	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type globalFlags struct {
	configFile string
	format     string
	logLevel   int
}

type cfgKey struct{}

func configFromContext(ctx context.Context) config.Config {
	cfg, ok := ctx.Value(cfgKey{}).(config.Config)
	if !ok {
		return config.Default()
	}
	return cfg
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	var logger *cmdutil.Logger
	root := &cobra.Command{
		Use:           "daycount",
		Short:         "Work with calendar dates and spans of values",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := gf.config(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err = cfg.Logging.NewLogger()
			if err != nil {
				return err
			}
			ctx := ctxlog.WithLogger(cmd.Context(), logger.Logger)
			ctx = ctxlog.WithAttributes(ctx, "command", cmd.Name())
			ctx = context.WithValue(ctx, cfgKey{}, cfg)
			cmd.SetContext(ctx)
			ctxlog.Logger(ctx).Debug("configured", "output", cfg.Output)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logger == nil {
				return nil
			}
			return logger.Close()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&gf.configFile, "config", "", "YAML config file")
	pf.StringVar(&gf.format, "format", "", "output format: text, json or yaml")
	pf.IntVar(&gf.logLevel, "log-level", 0, "logging level: 0=error, 1=warn, 2=info, 3=debug")

	root.AddCommand(
		newDatesCmd(),
		newSpanDatesCmd(),
		newSumCmd(),
		newDiffCmd(),
		newInfoCmd(),
	)
	return root
}

// config returns the configuration from the config file, if any, with
// any explicitly set flags applied on top.
func (gf *globalFlags) config(fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if len(gf.configFile) > 0 {
		var err error
		if cfg, err = config.ParseFile(gf.configFile); err != nil {
			return config.Config{}, err
		}
	}
	if fs.Changed("format") {
		cfg.Output = gf.format
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = gf.logLevel
	}
	return cfg, cfg.Validate()
}

// rangeFlags allows for the range in the config file to be overridden.
type rangeFlags struct {
	from, to []int
}

func (rf *rangeFlags) register(fs *pflag.FlagSet) {
	fs.IntSliceVar(&rf.from, "from", nil, "first date as year,month,day")
	fs.IntSliceVar(&rf.to, "to", nil, "date after the last date as year,month,day")
}

func (rf *rangeFlags) dates(fs *pflag.FlagSet, cfg config.Config) (from, to date.Date, err error) {
	r := cfg.Range
	if fs.Changed("from") {
		if r.From, err = calendarDate("from", rf.from); err != nil {
			return
		}
	}
	if fs.Changed("to") {
		if r.To, err = calendarDate("to", rf.to); err != nil {
			return
		}
	}
	return r.Dates()
}

func calendarDate(name string, ymd []int) (date.CalendarDate, error) {
	if len(ymd) != 3 {
		return date.CalendarDate{}, fmt.Errorf("--%s: expected year,month,day, got %v values", name, len(ymd))
	}
	return date.NewCalendarDate(ymd[0], date.Month(ymd[1]), ymd[2]), nil
}
