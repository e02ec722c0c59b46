package vm

import (
	"iter"

	"github.com/jcorbin/gobf/internal/panicerr"
)

// Run returns the output of code executed on m. Execution only advances while
// the sequence is being pulled: nothing after a write runs until its byte has
// been consumed. A failure is delivered as the final element, after any
// output produced before it.
//
// The sequence supports a single pass, since it consumes m.
func Run(code Code, m *Machine) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		if m.yield != nil {
			yield(0, errReused)
			return
		}
		m.yield = func(b byte) bool { return yield(b, nil) }
		err := panicerr.CatchHalt(func() {
			m.checkContext()
			code(m)
		})
		m.yield = func(byte) bool { return false }
		if err == errAbandoned {
			return
		}
		if err != nil {
			yield(0, err)
			return
		}
		m.logf("#", "done after %v steps", m.steps)
	}
}

var errReused = reuseError{}

type reuseError struct{}

func (reuseError) Error() string {
	return "machine already ran; output sequences support a single pass"
}
