// Package vm executes generated code against a tape, pulling input on demand
// and handing each written byte to its consumer as soon as it is produced.
package vm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gobf/internal/panicerr"
	"github.com/jcorbin/gobf/internal/tape"
)

var (
	// ErrInputExhausted is returned when a read finds no more input.
	ErrInputExhausted = errors.New("input exhausted")

	// ErrStepLimit is returned when a run exceeds its step budget.
	ErrStepLimit = errors.New("step limit exceeded")
)

// Code is an executable program, as produced by the codegen package.
type Code func(m *Machine)

// Machine owns the state of a single execution: the tape, the input it reads
// from, and the consumer it writes to. It must not be shared or reused.
type Machine struct {
	*tape.Tape
	logging

	in    io.ByteReader
	yield func(byte) bool

	ctx       context.Context
	stepLimit uint64
	steps     uint64
	reads     int
	writes    int
}

// ctxCheckInterval is how many steps may pass between context checks; the
// context is also checked once before the first step.
const ctxCheckInterval = 1 << 12

// New creates a machine around t, reading from in; a nil input behaves as an
// empty one.
func New(t *tape.Tape, in io.ByteReader, opts ...Option) *Machine {
	m := &Machine{Tape: t, in: in}
	if m.in == nil {
		m.in = strings.NewReader("")
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(m)
		}
	}
	return m
}

// Steps returns the number of steps taken so far.
func (m *Machine) Steps() uint64 { return m.steps }

// Step accounts for one unit of execution, halting the machine once any step
// limit has been reached or its context is done.
func (m *Machine) Step() {
	m.steps++
	if m.stepLimit != 0 && m.steps > m.stepLimit {
		m.halt(fmt.Errorf("%w after %v steps", ErrStepLimit, m.stepLimit))
	}
	if m.steps%ctxCheckInterval == 0 {
		m.checkContext()
	}
}

func (m *Machine) checkContext() {
	if m.ctx != nil {
		if err := m.ctx.Err(); err != nil {
			m.halt(err)
		}
	}
}

// Test takes a step and reports whether the current cell is non-zero.
func (m *Machine) Test() bool {
	m.Step()
	return m.Cell() != 0
}

// Write hands the current cell to the consumer, returning only once the
// consumer asks for more.
func (m *Machine) Write() {
	b := m.Cell()
	m.writes++
	m.logf(".", "write #%v %v @%v", m.writes, b, m.Ptr())
	if !m.yield(b) {
		m.halt(errAbandoned)
	}
}

// Read sets the current cell from the next input byte.
func (m *Machine) Read() {
	b, err := m.in.ReadByte()
	if err == io.EOF {
		m.halt(fmt.Errorf("read #%v: %w", m.reads+1, ErrInputExhausted))
	} else if err != nil {
		m.halt(fmt.Errorf("read #%v failed: %w", m.reads+1, err))
	}
	m.reads++
	m.logf(",", "read #%v %v @%v", m.reads, b, m.Ptr())
	m.Set(b)
}

// errAbandoned halts a machine whose consumer stopped pulling output.
var errAbandoned = errors.New("output abandoned")

func (m *Machine) halt(err error) {
	if err != errAbandoned {
		// ignore any panics while logging
		func() {
			defer func() { recover() }()
			m.logf("#", "halt error: %v", err)
		}()
	}
	panicerr.Halt(err)
}
