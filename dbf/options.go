// SPDX-License-Identifier: MIT

package dbf

import (
	"io"

	"github.com/charmbracelet/log"
)

const (
	// DefaultGenerator is the flow generator used when none is configured.
	DefaultGenerator = Canonical

	// DefaultLogPrefix tags every record written by the flow logger.
	DefaultLogPrefix = "dbf"
)

const (
	panicUnknownGenerator = "dbf: WithGenerator: unknown generator"
	panicNilLogger        = "dbf: WithLogger: logger must be non-nil"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective flow configuration.
type Options struct {
	generator Generator
	logger    *log.Logger
}

// WithGenerator selects the generator Step uses.
func WithGenerator(g Generator) Option {
	if !g.valid() {
		panic(panicUnknownGenerator)
	}

	return func(o *Options) { o.generator = g }
}

// WithLogger routes per-step debug records to l.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		generator: DefaultGenerator,
		logger:    log.NewWithOptions(io.Discard, log.Options{Prefix: DefaultLogPrefix}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
