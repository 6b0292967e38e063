package parser

import (
	"strconv"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

func parseExpr(p *parser, bp bindingPower) (ast.Expr, error) {
	// Parse the primary expression, always start with nud.
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		return nil, p.unexpected()
	}
	left, err := nudFn(p)
	if err != nil {
		return nil, err
	}

	// While we have tokens with a higher binding power, parse them using led.
	// Stopping on equal binding power makes operators left-associative.
	for p.bindingPowerLookupTable[p.curToken.Type] > bp {
		ledFn := p.ledLookupTable[p.curToken.Type]
		left, err = ledFn(p, left, p.bindingPowerLookupTable[p.curToken.Type])
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func parsePrimaryExpr(p *parser) (ast.Expr, error) {
	switch p.curToken.Type {
	case lexer.TokNumber:
		lit, err := p.parseNumber(p.curToken.Value)
		if err != nil {
			return nil, err
		}
		p.nextToken()
		return lit, nil
	case lexer.TokIdentifier:
		v, err := p.parseVariable()
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, p.unexpected()
	}
}

// parseSignedNumberExpr handles a sign directly attached to a number, e.g. -5.
// It is only allowed where no additive operator precedes it: at the start of
// an expression, after '(' or after * / %.
// A sign in front of anything else, or separated from its number, is an error.
func parseSignedNumberExpr(p *parser) (ast.Expr, error) {
	sign := p.curToken
	// Right after + or - the sign would be a second additive operator, e.g. 5 + +3.
	if p.prevToken.Type.IsOneOf(lexer.TokPlus, lexer.TokDash) {
		return nil, p.errorAt(sign, "unexpected %q after %q", sign.Value, p.prevToken.Value)
	}
	p.nextToken()
	if p.curToken.Type != lexer.TokNumber || p.curToken.Pos != sign.End() {
		return nil, p.errorAt(sign, "sign %q must be directly followed by a number", sign.Value)
	}
	lit, err := p.parseNumber(sign.Value + p.curToken.Value)
	if err != nil {
		return nil, err
	}
	p.nextToken()
	return lit, nil
}

func (p *parser) parseNumber(val string) (*ast.Literal, error) {
	number, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil, p.errorf("invalid number %q", val)
	}
	lit, err := ast.NewLiteral(number)
	if err != nil {
		return nil, p.errorf("invalid number %q", val)
	}
	return lit, nil
}

// parseVariable consumes the current identifier token.
func (p *parser) parseVariable() (*ast.Variable, error) {
	if err := p.expect(lexer.TokIdentifier); err != nil {
		return nil, err
	}
	v, err := ast.NewVariable(p.curToken.Value)
	if err != nil {
		return nil, p.errorf("%s", err)
	}
	p.nextToken()
	return v, nil
}

func parseGroupingExpr(p *parser) (ast.Expr, error) {
	open := p.curToken
	p.nextToken()
	if p.curToken.Type == lexer.TokParenRight {
		return nil, p.errorAt(open, "empty parentheses")
	}
	inner, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.TokParenRight {
		if p.curToken.Type == lexer.TokEOF {
			return nil, p.errorAt(open, "unmatched parenthesis")
		}
		return nil, p.unexpected()
	}
	p.nextToken()
	return inner, nil
}

// parsePrefixExpr parses ++x and --x. The operand can only be a variable.
func parsePrefixExpr(p *parser) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()
	if p.curToken.Type != lexer.TokIdentifier {
		return nil, p.errorAt(operator, "operand of %q must be a variable", operator.Value)
	}
	operand, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	unary, err := ast.NewUnary(unaryOperators[operator.Type], operand, true)
	if err != nil {
		return nil, p.errorAt(operator, "%s", err)
	}
	return unary, nil
}

// parsePostfixExpr parses x++ and x--. The operand must be a bare identifier:
// neither a literal, a parenthesized expression nor another increment.
func parsePostfixExpr(p *parser, left ast.Expr, _ bindingPower) (ast.Expr, error) {
	operator := p.curToken
	operand, ok := left.(*ast.Variable)
	if !ok || p.prevToken.Type != lexer.TokIdentifier {
		return nil, p.errorAt(operator, "operand of %q must be a variable", operator.Value)
	}
	unary, err := ast.NewUnary(unaryOperators[operator.Type], operand, false)
	if err != nil {
		return nil, p.errorAt(operator, "%s", err)
	}
	p.nextToken()
	return unary, nil
}

func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()
	if p.curToken.Type == lexer.TokEOF {
		return nil, p.errorAt(operator, "missing right operand for %q", operator.Value)
	}
	right, err := parseExpr(p, bp)
	if err != nil {
		return nil, err
	}

	binary, err := ast.NewBinary(left, binaryOperators[operator.Type], right)
	if err != nil {
		return nil, p.errorAt(operator, "%s", err)
	}
	return binary, nil
}
