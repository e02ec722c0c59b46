package main

import "github.com/jcorbin/gobf/internal/tape"

// Option customizes compilation or execution.
type Option interface{ apply(o *options) }

type options struct {
	tapeSize  int
	stepLimit uint64
	logfn     func(mess string, args ...interface{})
}

var defaultOptions = options{
	tapeSize: tape.DefaultSize,
}

func (o *options) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(o)
		}
	}
}

func (o options) logf(mess string, args ...interface{}) {
	if o.logfn != nil {
		o.logfn(mess, args...)
	}
}

// WithTapeSize sets the number of tape cells, which must be positive.
func WithTapeSize(size int) Option { return tapeSizeOption(size) }

// WithStepLimit bounds execution to n steps, failing with ErrStepLimit past
// that; 0 means unlimited.
func WithStepLimit(n uint64) Option { return stepLimitOption(n) }

// WithLogf enables trace logging.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

type tapeSizeOption int
type stepLimitOption uint64
type withLogfn func(mess string, args ...interface{})

func (size tapeSizeOption) apply(o *options) { o.tapeSize = int(size) }
func (lim stepLimitOption) apply(o *options) { o.stepLimit = uint64(lim) }
func (logfn withLogfn) apply(o *options)     { o.logfn = logfn }
