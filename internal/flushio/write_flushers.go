package flushio

import "io"

// Tee combines any number of WriteFlusher-s into a single one that writes into
// and flushes all of them, in order; nil entries are ignored.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		if many, ok := wf.(tee); ok {
			all = append(all, many...)
		} else if wf != nil {
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return discardWriteFlusher
	case 1:
		return all[0]
	default:
		return all
	}
}

type tee []WriteFlusher

func (t tee) Write(p []byte) (n int, err error) {
	for _, wf := range t {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

// Flush flushes every writer, even after one fails, returning the first error.
func (t tee) Flush() (err error) {
	for _, wf := range t {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
