package parser

import (
	"fmt"
	"strings"

	"go.creack.net/calc/lexer"
)

// SyntaxError is returned when a line does not match the statement grammar.
type SyntaxError struct {
	Input     string // The whole line.
	Offending string // The part of the line where parsing failed.
	Pos       int    // Byte offset of Offending in Input.
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d near %q: %s", e.Pos, e.Offending, e.Msg)
}

// errorf reports an error at the current token.
func (p *parser) errorf(format string, args ...any) error {
	return p.errorAt(p.curToken, format, args...)
}

func (p *parser) errorAt(tok lexer.Token, format string, args ...any) error {
	pos := min(max(tok.Pos, 0), len(p.input))
	offending := strings.TrimSpace(p.input[pos:])
	if offending == "" {
		// Nothing left, point at what came last.
		offending = p.prevToken.Value
	}
	if offending == "" {
		offending = p.input
	}
	return &SyntaxError{
		Input:     p.input,
		Offending: offending,
		Pos:       pos,
		Msg:       fmt.Sprintf(format, args...),
	}
}
