package ops

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes prog to out, one node per line, indenting loop bodies.
func Dump(out io.Writer, prog Program) error {
	dump := dumper{out: out}
	dump.program(prog)
	return dump.err
}

func (prog Program) String() string {
	var sb strings.Builder
	Dump(&sb, prog)
	return sb.String()
}

type dumper struct {
	out   io.Writer
	depth int
	err   error
}

func (dump *dumper) program(prog Program) {
	for _, n := range prog {
		dump.node(n)
	}
}

func (dump *dumper) node(n Node) {
	switch n := n.(type) {
	case MemoryOp:
		dump.printf("mem %+d", n.Delta)
	case PointerOp:
		dump.printf("ptr %+d", n.Delta)
	case IOOp:
		parts := make([]string, len(n.Actions))
		for i, act := range n.Actions {
			parts[i] = act.String()
		}
		dump.printf("io %v", strings.Join(parts, " "))
	case Loop:
		if len(n.Body) == 0 {
			dump.printf("loop {}")
			return
		}
		dump.printf("loop {")
		dump.depth++
		dump.program(n.Body)
		dump.depth--
		dump.printf("}")
	default:
		dump.printf("??? %T", n)
	}
}

func (dump *dumper) printf(mess string, args ...interface{}) {
	if dump.err != nil {
		return
	}
	_, dump.err = fmt.Fprintf(dump.out, "%s%s\n",
		strings.Repeat("  ", dump.depth),
		fmt.Sprintf(mess, args...))
}
