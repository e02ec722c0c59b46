// Package panicerr converts abnormal control flow, panics and
// runtime.Goexit, into plain error values.
package panicerr

// Recover runs f in a new goroutine wrapped in defer logic to recover any
// abnormal exits or panics as non-nil error returns.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer func() {
			// only reached empty by runtime.Goexit; every other path has sent
			select {
			case errch <- goexitError{name}:
			default:
			}
		}()
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}
