package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Identifiers + literals.
	TokIdentifier
	TokNumber

	// Arithmetic operators.
	TokPlus     // '+'.
	TokDash     // '-'.
	TokMultiply // '*'.
	TokSlash    // '/'.
	TokModulo   // '%'.

	// Increment / decrement.
	TokIncrement // '++'.
	TokDecrement // '--'.

	// Assignments.
	TokAssign         // '='.
	TokAddAssign      // '+='.
	TokSubtractAssign // '-='.
	TokMultiplyAssign // '*='.
	TokDivideAssign   // '/='.

	// Delimiters.
	TokWhitespace
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokIdentifier: "IDENTIFIER",
	TokNumber:     "NUMBER",

	TokPlus:     "+",
	TokDash:     "-",
	TokMultiply: "*",
	TokSlash:    "/",
	TokModulo:   "%",

	TokIncrement: "++",
	TokDecrement: "--",

	TokAssign:         "=",
	TokAddAssign:      "+=",
	TokSubtractAssign: "-=",
	TokMultiplyAssign: "*=",
	TokDivideAssign:   "/=",

	TokWhitespace: "WHITESPACE",
	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsAssignment reports whether the token type is one of the assignment operators.
func (tt TokenType) IsAssignment() bool {
	return tt.IsOneOf(TokAssign, TokAddAssign, TokSubtractAssign, TokMultiplyAssign, TokDivideAssign)
}

// Token represents a lexical token of a statement.
type Token struct {
	Type  TokenType
	Value string

	Pos int // Byte offset of the start of the token in the input.
}

// End returns the offset right after the token.
func (t Token) End() int {
	return t.Pos + len(t.Value)
}

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return t.errorString()
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d]: %.16q", t.Type, t.Pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.Pos, t.Value)
}

func (t Token) errorString() string {
	return fmt.Sprintf("ERROR [%d]: %s", t.Pos, t.Value)
}
