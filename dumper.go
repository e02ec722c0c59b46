package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/gobf/internal/ops"
)

func dumpProgram(out io.Writer, prog *Program) {
	var buf strings.Builder
	ops.Dump(&buf, prog.Tree())
	for _, line := range strings.SplitAfter(buf.String(), "\n") {
		if line != "" {
			fmt.Fprintf(out, "  %s", line)
		}
	}
}

// dumpTape writes rows of 16 cells in hex, skipping all-zero rows, and
// marking the pointer's cell with a '*'.
func dumpTape(out io.Writer, ex *Execution) {
	const rowSize = 16

	cells, ptr := ex.Tape()
	fmt.Fprintf(out, "# Tape @%v after %v steps\n", ptr, ex.Steps())

	addrWidth := len(strconv.Itoa(len(cells)))
	var buf strings.Builder
	for addr := 0; addr < len(cells); addr += rowSize {
		end := addr + rowSize
		if end > len(cells) {
			end = len(cells)
		}
		row := cells[addr:end]
		if isZero(row) && (ptr < addr || ptr >= end) {
			continue
		}

		buf.Reset()
		fmt.Fprintf(&buf, "  @%*v", addrWidth, addr)
		for i, c := range row {
			mark := ' '
			if addr+i == ptr {
				mark = '*'
			}
			fmt.Fprintf(&buf, " %c%02x", mark, c)
		}
		buf.WriteByte('\n')
		io.WriteString(out, buf.String())
	}
}

func isZero(row []byte) bool {
	for _, c := range row {
		if c != 0 {
			return false
		}
	}
	return true
}
