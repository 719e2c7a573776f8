// Package parser turns H-expression source text into an ast.Expr.
//
// Grammar:
//
//	expr        = composition | tensor | frobenius | operation
//	composition = "(" expr* ")"
//	tensor      = "{" expr* "}"
//	frobenius   = "[" variable* "." variable* "]"
//	            | "[" variable* "]"            -- identity shorthand
//	variable    = "_" | name
//	operation   = name
//
// The identity shorthand [x y] expands to [x y . x y]. A name is any
// run of characters excluding whitespace, brackets and '.'. Malformed
// text is rejected here with a ParseError; structural rules such as
// non-empty composition belong to the translator.
package parser

import (
	"errors"
	"fmt"

	"github.com/hexlang/hexc/internal/ast"
)

// ParseError describes a syntax error with its source position.
type ParseError struct {
	Line    int
	Col     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col, e.Message)
}

// IsParseError reports whether err is a ParseError.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

type parser struct {
	sc  *scanner
	tok token
}

// Parse parses one H-expression and requires the whole input to be
// consumed.
func Parse(src string) (ast.Expr, error) {
	p := &parser{sc: newScanner(src)}
	p.next()

	if p.tok.Type == tokEOF {
		return nil, p.errorf("empty input, expected an expression")
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != tokEOF {
		return nil, p.errorf("unexpected %s after expression", p.tok.Type)
	}
	return expr, nil
}

func (p *parser) next() {
	p.tok = p.sc.next()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{
		Line:    p.tok.Line,
		Col:     p.tok.Col,
		Message: fmt.Sprintf(format, args...),
	}
}

func (p *parser) parseExpr() (ast.Expr, error) {
	switch p.tok.Type {
	case tokLParen:
		return p.parseSequence(tokRParen)
	case tokLBrace:
		return p.parseSequence(tokRBrace)
	case tokLBracket:
		return p.parseFrobenius()
	case tokName:
		op := &ast.Operation{Name: p.tok.Text}
		p.next()
		return op, nil
	default:
		return nil, p.errorf("unexpected %s, expected an expression", p.tok.Type)
	}
}

// parseSequence parses the elements of a composition or tensor up to
// the given closing delimiter. Empty sequences parse successfully; the
// translator decides whether they are meaningful.
func (p *parser) parseSequence(closing tokenType) (ast.Expr, error) {
	open := p.tok
	p.next()

	var exprs []ast.Expr
	for p.tok.Type != closing {
		if p.tok.Type == tokEOF {
			return nil, &ParseError{
				Line:    open.Line,
				Col:     open.Col,
				Message: fmt.Sprintf("unclosed %s", open.Type),
			}
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	p.next()

	if closing == tokRParen {
		return &ast.Composition{Exprs: exprs}, nil
	}
	return &ast.Tensor{Exprs: exprs}, nil
}

func (p *parser) parseFrobenius() (ast.Expr, error) {
	open := p.tok
	p.next()

	var inputs, outputs []ast.Variable
	sawDot := false
	current := &inputs

	for p.tok.Type != tokRBracket {
		switch p.tok.Type {
		case tokDot:
			if sawDot {
				return nil, p.errorf("second '.' inside Frobenius node")
			}
			sawDot = true
			current = &outputs
			p.next()
		case tokName:
			v := ast.Named(p.tok.Text)
			if p.tok.Text == "_" {
				v = ast.Variable{}
			}
			*current = append(*current, v)
			p.next()
		case tokEOF:
			return nil, &ParseError{
				Line:    open.Line,
				Col:     open.Col,
				Message: "unclosed '['",
			}
		default:
			return nil, p.errorf("unexpected %s inside Frobenius node", p.tok.Type)
		}
	}
	p.next()

	if !sawDot {
		// Identity shorthand: [x y] means [x y . x y].
		outputs = append([]ast.Variable(nil), inputs...)
	}
	return &ast.Frobenius{Inputs: inputs, Outputs: outputs}, nil
}
