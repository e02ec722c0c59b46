package main

import (
	"context"
	"io"
	"iter"

	"github.com/jcorbin/gobf/internal/codegen"
	"github.com/jcorbin/gobf/internal/ops"
	"github.com/jcorbin/gobf/internal/syntax"
	"github.com/jcorbin/gobf/internal/tape"
	"github.com/jcorbin/gobf/internal/vm"
)

var (
	// ErrSyntax matches any *SyntaxError returned by Compile.
	ErrSyntax = syntax.ErrSyntax

	// ErrInputExhausted ends an output sequence whose program read past the
	// end of its input.
	ErrInputExhausted = vm.ErrInputExhausted

	// ErrStepLimit ends an output sequence that exceeded WithStepLimit.
	ErrStepLimit = vm.ErrStepLimit
)

// SyntaxError reports an unmatched bracket and its source position.
type SyntaxError = syntax.SyntaxError

// Program is compiled source, ready to run any number of times.
type Program struct {
	tree ops.Program
	code vm.Code
	opts options
}

// Compile parses source and generates code for it. Any characters other than
// the eight operators are ignored; an unmatched bracket is a *SyntaxError.
func Compile(source string, opts ...Option) (*Program, error) {
	prog := Program{opts: defaultOptions}
	prog.opts.apply(opts...)
	if err := tape.CheckSize(prog.opts.tapeSize); err != nil {
		return nil, err
	}

	tree, err := syntax.ParseString(source)
	if err != nil {
		return nil, err
	}
	prog.tree = tree

	code, err := codegen.Generate(tree, prog.opts.tapeSize)
	if err != nil {
		return nil, err
	}
	prog.code = code

	prog.opts.logf("compiled %v nodes, tape size %v, has io: %v",
		tree.Count(), prog.opts.tapeSize, tree.HasIO())
	return &prog, nil
}

// Tree returns the parsed operation tree.
func (prog *Program) Tree() ops.Program { return prog.tree }

// Run executes prog on a fresh tape, returning its output sequence; see
// Execution.Output. Options given here override those given to Compile,
// except for tape size which is fixed at compile time.
func (prog *Program) Run(ctx context.Context, in io.ByteReader, opts ...Option) iter.Seq2[byte, error] {
	return prog.Start(ctx, in, opts...).Output()
}

// Execution is a single run of a Program, owning its own tape.
type Execution struct {
	m    *vm.Machine
	code vm.Code
}

// Start prepares a run of prog; nothing executes until Output is pulled.
func (prog *Program) Start(ctx context.Context, in io.ByteReader, opts ...Option) *Execution {
	o := prog.opts
	o.apply(opts...)
	o.tapeSize = prog.opts.tapeSize
	return &Execution{
		m: vm.New(tape.New(o.tapeSize), in,
			vm.WithContext(ctx),
			vm.WithStepLimit(o.stepLimit),
			vm.WithLogf(o.logfn)),
		code: prog.code,
	}
}

// Output returns the bytes written by the program, produced lazily: each
// write suspends execution until its byte is pulled, and breaking out of the
// sequence abandons the run. A runtime failure, such as ErrInputExhausted, is
// the final element. Output may only be ranged over once.
func (ex *Execution) Output() iter.Seq2[byte, error] {
	return vm.Run(ex.code, ex.m)
}

// Tape returns a copy of the tape cells and the pointer.
func (ex *Execution) Tape() (cells []byte, ptr int) { return ex.m.Dump() }

// Steps returns how many steps the execution has taken.
func (ex *Execution) Steps() uint64 { return ex.m.Steps() }
