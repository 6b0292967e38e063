// Package parser turns a single assignment statement into an ast tree.
package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type parser struct {
	input string
	lex   *lexer.Lexer

	prevToken lexer.Token
	curToken  lexer.Token

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

func newParser(input string) *parser {
	p := &parser{
		input: input,
		lex:   lexer.New(input),

		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},
	}
	p.createTokenLookups()
	p.nextToken()
	return p
}

// Parse parses a line of the form `<identifier> <op> <expression>`
// where op is one of =, +=, -=, *=, /=.
// Failures are reported as *SyntaxError.
func Parse(line string) (*ast.Assignment, error) {
	return parseAssignment(newParser(line))
}

// ParseExpr parses a standalone expression.
func ParseExpr(input string) (ast.Expr, error) {
	p := newParser(input)
	if p.curToken.Type == lexer.TokEOF {
		return nil, p.errorf("missing expression")
	}
	expr, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokEOF); err != nil {
		return nil, err
	}
	return expr, nil
}

// nextToken advances to the next significant token, whitespaces are skipped.
func (p *parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	p.curToken = p.lex.NextToken()
	for p.curToken.Type == lexer.TokWhitespace {
		p.curToken = p.lex.NextToken()
	}
	return p.curToken
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(kind ...lexer.TokenType) error {
	if p.curToken.Type.IsOneOf(kind...) {
		return nil
	}
	return p.unexpected()
}

// unexpected reports the current token as a syntax error.
func (p *parser) unexpected() error {
	switch p.curToken.Type {
	case lexer.TokError:
		return p.errorf("%s", p.curToken.Value)
	case lexer.TokEOF:
		return p.errorf("unexpected end of input")
	}
	return p.errorf("unexpected %q", p.curToken.Value)
}
