// Package logio adapts printf-style logging functions to io.Writer, so that
// line oriented output, like that of a slog handler, can be routed into
// something like testing.T.Logf.
package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a formatted logging function.
type Writer struct {
	Logf func(string, ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, then passes every completed line through Logf, minus its
// line ending. It is safe to call from multiple goroutines.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Close passes any final partial line through Logf.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		line := lw.buf.Bytes()
		i := bytes.IndexByte(line, '\n')
		if i < 0 {
			if !all {
				return
			}
			i = len(line)
		}
		lw.Logf("%s", bytes.TrimSuffix(line[:i], []byte{'\r'}))
		lw.buf.Next(i)
		if lw.buf.Len() > 0 {
			lw.buf.Next(1)
		}
	}
}
