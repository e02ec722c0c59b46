package panicerr

import "fmt"

// Halt aborts the current computation with err; it must be called beneath
// CatchHalt, which turns it back into a returned error.
func Halt(err error) {
	panic(haltError{err})
}

// CatchHalt runs f, returning any error passed to Halt. Any other panic
// continues unwinding past CatchHalt, since it does not belong to us.
func CatchHalt(f func()) (err error) {
	defer func() {
		if e := recover(); e != nil {
			he, ok := e.(haltError)
			if !ok {
				panic(e)
			}
			err = he.error
			if err == nil {
				err = errHalted
			}
		}
	}()
	f()
	return nil
}

var errHalted = haltError{}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}

func (err haltError) Unwrap() error { return err.error }
