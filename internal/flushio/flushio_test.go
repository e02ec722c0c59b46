package flushio_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gobf/internal/flushio"
)

type plainWriter struct{ buf bytes.Buffer }

func (pw *plainWriter) Write(p []byte) (int, error) { return pw.buf.Write(p) }

func TestNewWriteFlusher(t *testing.T) {
	var sb strings.Builder
	wf := flushio.NewWriteFlusher(&sb)
	require.NoError(t, flushio.WriteByte(wf, 'a'))
	assert.Equal(t, "a", sb.String(), "buffers are written through")

	var pw plainWriter
	wf = flushio.NewWriteFlusher(&pw)
	_, isBuffered := wf.(*bufio.Writer)
	assert.True(t, isBuffered, "expected a bufio.Writer around a plain writer")
	require.NoError(t, flushio.WriteByte(wf, 'b'))
	assert.Equal(t, "", pw.buf.String(), "expected buffered write")
	require.NoError(t, wf.Flush())
	assert.Equal(t, "b", pw.buf.String(), "expected flushed write")

	bw := bufio.NewWriter(&pw)
	assert.Same(t, bw, flushio.NewWriteFlusher(bw), "expected an existing WriteFlusher to be returned")

	require.NoError(t, flushio.NewWriteFlusher(io.Discard).Flush())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("nope") }

func TestWriteByte(t *testing.T) {
	var pw plainWriter
	require.NoError(t, flushio.WriteByte(&pw, 'x'))
	assert.Equal(t, "x", pw.buf.String())
	assert.EqualError(t, flushio.WriteByte(failWriter{}, 'y'), "nope")
}

func TestTee(t *testing.T) {
	var a, b plainWriter
	wa, wb := bufio.NewWriter(&a), bufio.NewWriter(&b)
	wf := flushio.Tee(wa, nil, flushio.Tee(wb))

	_, err := wf.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "", a.buf.String())
	require.NoError(t, wf.Flush())
	assert.Equal(t, "hello", a.buf.String())
	assert.Equal(t, "hello", b.buf.String())

	assert.Same(t, wa, flushio.Tee(nil, wa), "expected a single writer to be returned as is")
	require.NoError(t, flushio.Tee().Flush())
}
