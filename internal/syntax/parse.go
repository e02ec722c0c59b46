// Package syntax turns source text into an ops.Program.
package syntax

import (
	"errors"
	"fmt"

	"github.com/jcorbin/gobf/internal/ops"
)

// ErrSyntax is matched by every *SyntaxError.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports an unmatched loop bracket.
type SyntaxError struct {
	Pos     Pos
	Bracket byte
}

func (err *SyntaxError) Error() string {
	if err.Bracket == '[' {
		return fmt.Sprintf("%v: unmatched '[' @%v", ErrSyntax, err.Pos)
	}
	return fmt.Sprintf("%v: unmatched ']' @%v", ErrSyntax, err.Pos)
}

func (err *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// ParseString sanitizes src and parses it.
func ParseString(src string) (ops.Program, error) {
	return Parse(Scan(src))
}

// Parse groups toks into maximal same category runs, recursing into loops.
// Tokens must already be limited to the operator alphabet, as Scan does.
func Parse(toks []Token) (ops.Program, error) {
	p := parser{toks: toks}
	prog, err := p.program(false)
	if err != nil {
		return nil, err
	}
	return prog, nil
}

type category uint8

const (
	catNone category = iota
	catMemory
	catPointer
	catIO
	catOpen
	catClose
)

func categorize(c byte) category {
	switch c {
	case '+', '-':
		return catMemory
	case '>', '<':
		return catPointer
	case '.', ',':
		return catIO
	case '[':
		return catOpen
	case ']':
		return catClose
	}
	return catNone
}

type parser struct {
	toks []Token
	i    int
}

// program parses nodes until the input ends or a ']' is met; nested calls
// consume their closing bracket, while a top level call rejects it.
func (p *parser) program(nested bool) (prog ops.Program, err error) {
	for p.i < len(p.toks) {
		tok := p.toks[p.i]
		switch categorize(tok.Sym) {
		case catMemory:
			prog = append(prog, ops.MemoryOp{Delta: p.delta('+', '-', catMemory)})

		case catPointer:
			prog = append(prog, ops.PointerOp{Delta: p.delta('>', '<', catPointer)})

		case catIO:
			prog = append(prog, p.io())

		case catOpen:
			p.i++
			body, err := p.program(true)
			if err != nil {
				return nil, err
			}
			if p.i >= len(p.toks) {
				return nil, &SyntaxError{tok.Pos, '['}
			}
			p.i++ // ]
			prog = append(prog, ops.Loop{Body: body})

		case catClose:
			if !nested {
				return nil, &SyntaxError{tok.Pos, ']'}
			}
			return prog, nil

		default:
			return nil, fmt.Errorf("unexpected %q @%v", tok.Sym, tok.Pos)
		}
	}
	return prog, nil
}

func (p *parser) delta(up, down byte, cat category) (delta int) {
	for ; p.i < len(p.toks) && categorize(p.toks[p.i].Sym) == cat; p.i++ {
		switch p.toks[p.i].Sym {
		case up:
			delta++
		case down:
			delta--
		}
	}
	return delta
}

func (p *parser) io() (op ops.IOOp) {
	for ; p.i < len(p.toks) && categorize(p.toks[p.i].Sym) == catIO; p.i++ {
		if p.toks[p.i].Sym == '.' {
			op.Actions = append(op.Actions, ops.Write)
		} else {
			op.Actions = append(op.Actions, ops.Read)
		}
	}
	return op
}
