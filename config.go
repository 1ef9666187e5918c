// SPDX-FileCopyrightText : © 2026 vd3planes contributors.
// SPDX-License-Identifier: BSD-2-Clause

package vd

// config.go reduces the VD API footprint using functional options, the
// same pattern the teacher repo uses for its engine configuration.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis
//      https://commandcenter.blogspot.ca/2014/01/self-referential-functions-and-design.html

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Config contains configuration attributes that can be set by the caller
// before running VD.
type Config struct {
	workers int          // concurrent workers for the per-plane outer loop; 0 or 1 means sequential.
	logger  *slog.Logger // nil silences logging.
	trace   bool         // set by WithTrace; VD does not read it and returns no event maps.
}

// configDefaults matches spec.md §5: single-threaded and synchronous
// unless a caller opts into parallelizing the outer loop over planes.
var configDefaults = Config{
	workers: 1,
	logger:  slog.Default(),
	trace:   false,
}

// Option defines optional attributes that can be used to configure VD.
//
//	cells, stats, err := vd.VD(planes,
//	    vd.Workers(4),
//	    vd.WithTrace(),
//	)
type Option func(*Config)

// Workers sets how many planes are processed concurrently by the outer
// loop in VD. Values less than 1 are clamped to 1 (sequential). Per-plane
// maps stay thread-local; only the final cell list aggregation
// synchronizes (spec.md §5).
func Workers(n int) Option {
	return func(c *Config) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// Logger overrides the default logger. Passing nil silences logging.
func Logger(l *slog.Logger) Option {
	return func(c *Config) { c.logger = l }
}

// WithTrace sets the trace flag in Config. VD does not read the flag:
// neither VD nor VD2D returns the points_above/points_below event maps
// described in spec.md §4.6 (vd2d builds them per call in a Trace value
// that VD2D discards).
func WithTrace() Option {
	return func(c *Config) { c.trace = true }
}

// OptionSet is the YAML-decodable form of Config, for callers that keep
// engine tuning in a configuration document rather than Go literals.
type OptionSet struct {
	Workers int  `yaml:"workers"`
	Trace   bool `yaml:"trace"`
}

// LoadOptions parses a YAML document into an OptionSet and returns the
// equivalent Option values. This is an in-memory parsing API, not a file
// watcher or CLI flag parser: the caller owns opening/closing r.
func LoadOptions(r io.Reader) ([]Option, error) {
	var set OptionSet
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("vd: LoadOptions: %w", err)
	}
	opts := []Option{Workers(set.Workers)}
	if set.Trace {
		opts = append(opts, WithTrace())
	}
	return opts, nil
}
