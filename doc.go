// Command gobf compiles and runs programs written in the eight operator tape
// language commonly known as brainfuck.
//
// The machine has a tape of byte cells (1024 by default) and a pointer into it:
//
//	+ -   add to, or subtract from, the current cell; values wrap modulo 256
//	> <   move the pointer right or left; it wraps around the tape's ends
//	.     write the current cell to output
//	,     read one input byte into the current cell
//	[ ]   repeat the enclosed code while the current cell is non-zero
//
// Every other character is a comment.
//
// Compilation happens in stages. Source is first reduced to just its operator
// symbols (internal/syntax Scan), which are then grouped into maximal runs of one
// category and parsed into a tree (internal/syntax Parse, internal/ops). Memory
// and pointer runs collapse into a single net delta, so "++--" is one memory
// operation that does nothing; IO runs keep every read and write in order. Each
// node of the tree then becomes a Go closure (internal/codegen), and loops wrap
// their body's closure in a "while the cell is non-zero" test.
//
// Running compiled code (internal/vm) is demand driven: its output is an
// iter.Seq2 of bytes, and execution only proceeds while the consumer keeps
// pulling. Each write suspends the machine until its byte is taken; reads pull
// from an io.ByteReader, and reading past the end of input is an error
// (ErrInputExhausted) rather than some stand-in value. An unmatched bracket is
// the only compile error (*SyntaxError).
//
// Nothing is done to detect programs that never halt; "+[]" spins forever. Use a
// step limit or a timeout to bound such programs:
//
//	gobf -step-limit 1000000 -timeout 2s prog.b < input
//
// Settings may also be given in a TOML file with -config; flags take precedence:
//
//	tape-size = 30000
//	step-limit = 1000000
//	timeout = "2s"
//	trace = true
package main
