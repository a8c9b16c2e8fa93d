// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config provides the YAML configuration used by the daycount
// command.
package config

import (
	"context"
	"fmt"
	"slices"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/daycount/date"
	"cloudeng.io/errors"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var formats = []string{FormatText, FormatJSON, FormatYAML}

// Range represents a half open range of dates, [From, To).
type Range struct {
	From date.CalendarDate `yaml:"from"`
	To   date.CalendarDate `yaml:"to"`
}

// Dates returns the from and to dates for the range.
func (r Range) Dates() (from, to date.Date, err error) {
	if from, err = r.From.Date(); err != nil {
		return 0, 0, fmt.Errorf("from: %w", err)
	}
	if to, err = r.To.Date(); err != nil {
		return 0, 0, fmt.Errorf("to: %w", err)
	}
	return from, to, nil
}

// Config represents the configuration for the daycount command. Dates
// are specified as year, month and day values, eg:
//
//	logging:
//	  level: 2
//	  format: text
//	range:
//	  from: {year: 2025, month: 8, day: 25}
//	  to: {year: 2025, month: 9, day: 5}
//	values: [1, 2, 3]
//	output: json
type Config struct {
	Logging cmdutil.LoggingConfig `yaml:"logging"`
	Range   Range                 `yaml:"range"`
	Values  []int                 `yaml:"values"`
	Output  string                `yaml:"output"`
}

// Default returns the configuration used when no config file is supplied.
func Default() Config {
	return Config{
		Logging: cmdutil.LoggingConfig{
			Level:  0,
			Format: "text",
		},
		Range: Range{
			From: date.NewCalendarDate(2025, 8, 25),
			To:   date.NewCalendarDate(2025, 9, 5),
		},
		Values: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		Output: FormatText,
	}
}

// Parse parses the supplied YAML spec on top of the default configuration
// and validates the result.
func Parse(spec []byte) (Config, error) {
	cfg := Default()
	if err := cmdyaml.ParseConfig(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ParseFile is like Parse but reads the spec from the named file.
func ParseFile(filename string) (Config, error) {
	cfg := Default()
	if err := cmdyaml.ParseConfigFile(context.Background(), filename, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate returns an error describing every invalid field in the
// configuration.
func (c Config) Validate() error {
	var errs errors.M
	if _, err := c.Range.From.Date(); err != nil {
		errs.Append(fmt.Errorf("range.from: %w", err))
	}
	if _, err := c.Range.To.Date(); err != nil {
		errs.Append(fmt.Errorf("range.to: %w", err))
	}
	if !slices.Contains(formats, c.Output) {
		errs.Append(fmt.Errorf("output: unsupported format %q, must be one of %v", c.Output, formats))
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		errs.Append(fmt.Errorf("logging.format: unsupported format %q", c.Logging.Format))
	}
	return errs.Err()
}
