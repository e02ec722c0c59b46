package panicerr

import (
	"errors"
	"fmt"
)

// goexitError reports a goroutine that ended through runtime.Goexit rather
// than by returning, e.g. a testing FailNow called beneath Recover.
type goexitError struct{ name string }

func (ge goexitError) Error() string {
	if ge.name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", ge.name)
}

// IsExit returns true if err indicates a recovered goroutine exit.
func IsExit(err error) bool {
	var ge goexitError
	return errors.As(err, &ge)
}
