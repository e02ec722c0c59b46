package syntax

import "fmt"

// Pos locates a symbol within the raw source text.
type Pos struct {
	Offset int // byte offset, from 0
	Line   int // from 1
	Col    int // in bytes, from 1
}

func (pos Pos) String() string { return fmt.Sprintf("%v:%v", pos.Line, pos.Col) }

// Token is one alphabet symbol together with its source position.
type Token struct {
	Sym byte
	Pos Pos
}

// IsSymbol returns true if c is one of the eight operator symbols.
func IsSymbol(c byte) bool {
	switch c {
	case '+', '-', '>', '<', '.', ',', '[', ']':
		return true
	}
	return false
}

// Scan returns every operator symbol in src, in order; everything else is a
// comment and is dropped.
func Scan(src string) []Token {
	toks := make([]Token, 0, len(src))
	pos := Pos{Line: 1, Col: 1}
	for i := 0; i < len(src); i++ {
		c := src[i]
		pos.Offset = i
		if IsSymbol(c) {
			toks = append(toks, Token{c, pos})
		}
		if c == '\n' {
			pos.Line++
			pos.Col = 1
		} else {
			pos.Col++
		}
	}
	return toks
}

// Sanitize returns the operator symbol subsequence of src.
func Sanitize(src string) string {
	buf := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		if c := src[i]; IsSymbol(c) {
			buf = append(buf, c)
		}
	}
	return string(buf)
}
