package main

import (
	"bufio"
	"bytes"
	"io"
	"iter"

	"github.com/jcorbin/gobf/internal/flushio"
	"github.com/jcorbin/gobf/internal/tape"
)

// Bytes returns an input that yields each of b in turn.
func Bytes(b []byte) io.ByteReader { return bytes.NewReader(b) }

// Ints returns an input that yields each of values reduced modulo 256.
func Ints(values ...int) io.ByteReader { return &intsReader{values} }

type intsReader struct{ values []int }

func (ir *intsReader) ReadByte() (byte, error) {
	if len(ir.values) == 0 {
		return 0, io.EOF
	}
	v := ir.values[0]
	ir.values = ir.values[1:]
	return byte(tape.Wrap(v, 256)), nil
}

// Reader returns an input reading bytes from r, buffering unless r is
// already an io.ByteReader.
func Reader(r io.Reader) io.ByteReader {
	if br, is := r.(io.ByteReader); is {
		return br
	}
	return bufio.NewReader(r)
}

// Collect drains output, returning every byte produced before any error.
func Collect(output iter.Seq2[byte, error]) ([]byte, error) {
	var out []byte
	for b, err := range output {
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, nil
}

// WriteTo drains output into w, flushing once done or failed.
func WriteTo(w io.Writer, output iter.Seq2[byte, error]) (n int64, rerr error) {
	wf := flushio.NewWriteFlusher(w)
	defer func() {
		if err := wf.Flush(); rerr == nil {
			rerr = err
		}
	}()
	for b, err := range output {
		if err != nil {
			return n, err
		}
		if err := flushio.WriteByte(wf, b); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// flushingInput flushes pending output before every read, so that any prompt
// is visible before input is waited on.
type flushingInput struct {
	io.ByteReader
	out flushio.WriteFlusher
}

func (fi flushingInput) ReadByte() (byte, error) {
	if err := fi.out.Flush(); err != nil {
		return 0, err
	}
	return fi.ByteReader.ReadByte()
}
