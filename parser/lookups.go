package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type bindingPower int

const (
	bpDefault bindingPower = iota
	bpAdditive
	bpMultiplicative
	bpPostfix
	bpPrimary
)

type nudHandler func(*parser) (ast.Expr, error)
type ledHandler func(*parser, ast.Expr, bindingPower) (ast.Expr, error)

type lookupTable[T any] map[lexer.TokenType]T

var binaryOperators = map[lexer.TokenType]ast.BinaryOperator{
	lexer.TokPlus:     ast.OpAdd,
	lexer.TokDash:     ast.OpSubtract,
	lexer.TokMultiply: ast.OpMultiply,
	lexer.TokSlash:    ast.OpDivide,
	lexer.TokModulo:   ast.OpModulo,
}

var unaryOperators = map[lexer.TokenType]ast.UnaryOperator{
	lexer.TokIncrement: ast.OpIncrement,
	lexer.TokDecrement: ast.OpDecrement,
}

var assignmentTypes = map[lexer.TokenType]ast.AssignmentType{
	lexer.TokAssign:         ast.Assign,
	lexer.TokAddAssign:      ast.AddAssign,
	lexer.TokSubtractAssign: ast.SubtractAssign,
	lexer.TokMultiplyAssign: ast.MultiplyAssign,
	lexer.TokDivideAssign:   ast.DivideAssign,
}

func (p *parser) led(kind lexer.TokenType, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[kind]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bp
}

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

func (p *parser) createTokenLookups() {
	// Additive & multiplicative.
	p.led(lexer.TokPlus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokDash, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokMultiply, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokSlash, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokModulo, bpMultiplicative, parseBinaryExpr)

	// Postfix increment & decrement.
	p.led(lexer.TokIncrement, bpPostfix, parsePostfixExpr)
	p.led(lexer.TokDecrement, bpPostfix, parsePostfixExpr)

	// Literals & symbols.
	p.nud(lexer.TokNumber, parsePrimaryExpr)
	p.nud(lexer.TokIdentifier, parsePrimaryExpr)
	p.nud(lexer.TokParenLeft, parseGroupingExpr)
	p.nud(lexer.TokPlus, parseSignedNumberExpr)
	p.nud(lexer.TokDash, parseSignedNumberExpr)
	p.nud(lexer.TokIncrement, parsePrefixExpr)
	p.nud(lexer.TokDecrement, parsePrefixExpr)
}
