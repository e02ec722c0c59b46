package vm

import (
	"context"
	"fmt"
)

// Option customizes a Machine.
type Option interface{ apply(m *Machine) }

// WithContext stops execution with the context's error once it is done.
func WithContext(ctx context.Context) Option { return ctxOption{ctx} }

// WithStepLimit stops execution with ErrStepLimit after n steps; 0 means no limit.
func WithStepLimit(n uint64) Option { return stepLimitOption(n) }

// WithLogf enables trace logging.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

type ctxOption struct{ context.Context }
type stepLimitOption uint64
type withLogfn func(mess string, args ...interface{})

func (o ctxOption) apply(m *Machine)         { m.ctx = o.Context }
func (lim stepLimitOption) apply(m *Machine) { m.stepLimit = uint64(lim) }
func (logfn withLogfn) apply(m *Machine)     { m.logfn = logfn }

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
