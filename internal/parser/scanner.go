package parser

import "unicode/utf8"

// tokenType identifies the lexical class of a token.
type tokenType int

const (
	tokEOF tokenType = iota
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokDot
	tokName
)

func (t tokenType) String() string {
	switch t {
	case tokEOF:
		return "end of input"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	case tokDot:
		return "'.'"
	case tokName:
		return "name"
	}
	return "unknown token"
}

type token struct {
	Type tokenType
	Text string
	Line int
	Col  int
}

// scanner splits an H-expression into delimiter, dot and name tokens.
// A name is any maximal run of characters that is not whitespace, not a
// bracket delimiter and not '.', so operation names like "+", "-" and
// "my-operation_2" scan as single tokens.
type scanner struct {
	src  string
	pos  int
	line int
	col  int
}

func newScanner(src string) *scanner {
	return &scanner{src: src, line: 1, col: 1}
}

func isDelimiter(r rune) bool {
	switch r {
	case '(', ')', '{', '}', '[', ']', '.':
		return true
	}
	return false
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func (s *scanner) next() token {
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !isSpace(r) {
			break
		}
		s.advance(r, size)
	}
	if s.pos >= len(s.src) {
		return token{Type: tokEOF, Line: s.line, Col: s.col}
	}

	line, col := s.line, s.col
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])

	switch r {
	case '(':
		s.advance(r, size)
		return token{Type: tokLParen, Text: "(", Line: line, Col: col}
	case ')':
		s.advance(r, size)
		return token{Type: tokRParen, Text: ")", Line: line, Col: col}
	case '{':
		s.advance(r, size)
		return token{Type: tokLBrace, Text: "{", Line: line, Col: col}
	case '}':
		s.advance(r, size)
		return token{Type: tokRBrace, Text: "}", Line: line, Col: col}
	case '[':
		s.advance(r, size)
		return token{Type: tokLBracket, Text: "[", Line: line, Col: col}
	case ']':
		s.advance(r, size)
		return token{Type: tokRBracket, Text: "]", Line: line, Col: col}
	case '.':
		s.advance(r, size)
		return token{Type: tokDot, Text: ".", Line: line, Col: col}
	}

	start := s.pos
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if isSpace(r) || isDelimiter(r) {
			break
		}
		s.advance(r, size)
	}
	return token{Type: tokName, Text: s.src[start:s.pos], Line: line, Col: col}
}

func (s *scanner) advance(r rune, size int) {
	s.pos += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
}
