// Package ops defines the operation tree that a parsed program is made of.
//
// Every node covers a maximal run of same category source symbols: memory
// and pointer runs are collapsed into a single net delta, while IO runs keep
// each action in source order.
package ops

// Node is one of MemoryOp, PointerOp, IOOp, or Loop.
type Node interface{ node() }

// Program is an ordered sequence of nodes; it is never mutated after parsing.
type Program []Node

// MemoryOp adds Delta to the current cell.
type MemoryOp struct{ Delta int }

// PointerOp adds Delta to the tape pointer.
type PointerOp struct{ Delta int }

// IOOp performs its actions in order.
type IOOp struct{ Actions []Action }

// Loop runs Body while the current cell is non-zero. An empty Body is valid,
// and loops forever unless the cell is already zero.
type Loop struct{ Body Program }

func (MemoryOp) node()  {}
func (PointerOp) node() {}
func (IOOp) node()      {}
func (Loop) node()      {}

// Action is a single IO step.
type Action uint8

// Actions; symbols '.' and ',' respectively.
const (
	Write Action = iota + 1
	Read
)

func (act Action) String() string {
	switch act {
	case Write:
		return "write"
	case Read:
		return "read"
	}
	return "invalid"
}

// HasIO returns true if any IOOp occurs anywhere in prog, loop bodies included.
func (prog Program) HasIO() bool {
	for _, n := range prog {
		switch n := n.(type) {
		case IOOp:
			if len(n.Actions) > 0 {
				return true
			}
		case Loop:
			if n.Body.HasIO() {
				return true
			}
		}
	}
	return false
}

// Count returns the total number of nodes in prog, loop bodies included.
func (prog Program) Count() (n int) {
	for _, nd := range prog {
		n++
		if loop, ok := nd.(Loop); ok {
			n += loop.Body.Count()
		}
	}
	return n
}
