package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

func parseAssignment(p *parser) (*ast.Assignment, error) {
	if p.curToken.Type != lexer.TokIdentifier {
		if p.curToken.Type == lexer.TokEOF {
			return nil, p.errorf("missing assignment target")
		}
		return nil, p.errorf("assignment target must be a variable, got %q", p.curToken.Value)
	}
	target, err := p.parseVariable()
	if err != nil {
		return nil, err
	}

	if !p.curToken.Type.IsAssignment() {
		if p.curToken.Type == lexer.TokError {
			return nil, p.unexpected()
		}
		return nil, p.errorf("expected assignment operator after %q", target.Name)
	}
	assignType := assignmentTypes[p.curToken.Type]
	p.nextToken()

	if p.curToken.Type == lexer.TokEOF {
		return nil, p.errorf("missing expression after %q", assignType.String())
	}
	expression, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokEOF); err != nil {
		return nil, err
	}

	stmt, err := ast.NewAssignment(target, assignType, expression)
	if err != nil {
		return nil, p.errorf("%s", err)
	}
	return stmt, nil
}
