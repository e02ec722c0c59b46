// Package tape implements the machine's fixed-size byte memory and its
// wrapping pointer.
package tape

import "fmt"

// DefaultSize is the number of cells used when none is configured.
const DefaultSize = 1024

// SizeError indicates an unusable tape size.
type SizeError int

func (size SizeError) Error() string {
	return fmt.Sprintf("invalid tape size %v, must be positive", int(size))
}

// CheckSize returns a SizeError unless size is positive.
func CheckSize(size int) error {
	if size <= 0 {
		return SizeError(size)
	}
	return nil
}

// Tape is an array of cells along with a pointer that always stays within it.
// Cell values wrap modulo 256, and the pointer wraps modulo the tape length.
type Tape struct {
	cells []byte
	ptr   int
}

// New allocates a zeroed tape; size must be positive, see CheckSize.
func New(size int) *Tape {
	if err := CheckSize(size); err != nil {
		panic(err)
	}
	return &Tape{cells: make([]byte, size)}
}

// Size returns the number of cells.
func (t *Tape) Size() int { return len(t.cells) }

// Ptr returns the pointer, always in [0, Size()).
func (t *Tape) Ptr() int { return t.ptr }

// Cell returns the value of the current cell.
func (t *Tape) Cell() byte { return t.cells[t.ptr] }

// Set overwrites the current cell.
func (t *Tape) Set(value byte) { t.cells[t.ptr] = value }

// Add adds delta to the current cell, modulo 256.
func (t *Tape) Add(delta int) {
	t.cells[t.ptr] = byte(int(t.cells[t.ptr]) + Wrap(delta, 256))
}

// Move adds delta to the pointer, modulo the tape size.
func (t *Tape) Move(delta int) {
	t.ptr = Wrap(t.ptr+Wrap(delta, len(t.cells)), len(t.cells))
}

// Load returns the cell at addr, which wraps like the pointer does.
func (t *Tape) Load(addr int) byte {
	return t.cells[Wrap(addr, len(t.cells))]
}

// Stor writes values into consecutive cells starting at addr, wrapping around
// the end of the tape.
func (t *Tape) Stor(addr int, values ...byte) {
	for i, v := range values {
		t.cells[Wrap(addr+i, len(t.cells))] = v
	}
}

// Dump returns a copy of the cells and the pointer, for tests and tracing.
func (t *Tape) Dump() (cells []byte, ptr int) {
	return append([]byte(nil), t.cells...), t.ptr
}

// Wrap reduces n into [0, m), rounding towards negative infinity so that
// negative values land at the top of the range.
func Wrap(n, m int) int {
	if n %= m; n < 0 {
		n += m
	}
	return n
}
