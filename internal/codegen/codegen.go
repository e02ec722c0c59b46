// Package codegen turns an ops.Program into vm.Code: a tree of closures with
// one closure per node, so that running a program never revisits its source.
package codegen

import (
	"fmt"

	"github.com/jcorbin/gobf/internal/ops"
	"github.com/jcorbin/gobf/internal/tape"
	"github.com/jcorbin/gobf/internal/vm"
)

// Generate returns code for prog, to be run on a tape of tapeSize cells.
// Pointer deltas are reduced modulo tapeSize here, so the code must not be
// run against a tape of any other size.
func Generate(prog ops.Program, tapeSize int) (vm.Code, error) {
	if err := tape.CheckSize(tapeSize); err != nil {
		return nil, err
	}
	g := generator{tapeSize: tapeSize}
	code := g.block(prog)
	if g.err != nil {
		return nil, g.err
	}
	return code, nil
}

type generator struct {
	tapeSize int
	err      error
}

func nop(*vm.Machine) {}

func (g *generator) block(prog ops.Program) vm.Code {
	codes := make([]vm.Code, 0, len(prog))
	for _, n := range prog {
		codes = append(codes, g.node(n)...)
	}
	switch len(codes) {
	case 0:
		return nop
	case 1:
		return codes[0]
	}
	return func(m *vm.Machine) {
		for _, code := range codes {
			code(m)
		}
	}
}

func (g *generator) node(n ops.Node) []vm.Code {
	switch n := n.(type) {
	case ops.MemoryOp:
		return []vm.Code{memory(tape.Wrap(n.Delta, 256))}

	case ops.PointerOp:
		return []vm.Code{pointer(tape.Wrap(n.Delta, g.tapeSize))}

	case ops.IOOp:
		codes := make([]vm.Code, 0, len(n.Actions))
		for _, act := range n.Actions {
			switch act {
			case ops.Write:
				codes = append(codes, write)
			case ops.Read:
				codes = append(codes, read)
			default:
				g.fail(fmt.Errorf("invalid io action %v", act))
			}
		}
		return codes

	case ops.Loop:
		return []vm.Code{loop(g.block(n.Body))}

	default:
		g.fail(fmt.Errorf("invalid operation node %T", n))
		return nil
	}
}

func (g *generator) fail(err error) {
	if g.err == nil {
		g.err = err
	}
}

func memory(delta int) vm.Code {
	return func(m *vm.Machine) {
		m.Step()
		m.Add(delta)
	}
}

func pointer(delta int) vm.Code {
	return func(m *vm.Machine) {
		m.Step()
		m.Move(delta)
	}
}

func write(m *vm.Machine) {
	m.Step()
	m.Write()
}

func read(m *vm.Machine) {
	m.Step()
	m.Read()
}

// loop tests the cell before every iteration, including the first; an empty
// body is kept as is, spinning until a step limit or context stops it.
func loop(body vm.Code) vm.Code {
	return func(m *vm.Machine) {
		for m.Test() {
			body(m)
		}
	}
}
