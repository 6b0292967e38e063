package lexer

import "strings"

type stateFn func(*Lexer) stateFn

func lexText(l *Lexer) stateFn {
	if l.atEOF {
		return l.emit(TokEOF)
	}

	// List of runes that just advance one and emit a token.
	singles := map[rune]TokenType{
		'(': TokParenLeft,
		')': TokParenRight,
		'%': TokModulo,
		'=': TokAssign,
	}

	switch r := l.peek(); {
	case r == 0 && l.pos >= len(l.input):
		return l.emit(TokEOF)
	case strings.ContainsRune(whitespaceChars, r):
		l.acceptRun(whitespaceChars)
		return l.emit(TokWhitespace)
	case r == '.' || strings.ContainsRune(digits, r):
		return lexNumber
	case strings.ContainsRune(identStartChars, r):
		return lexIdentifier
	case r == '+':
		return lexSign(r, TokPlus, TokIncrement, TokAddAssign)
	case r == '-':
		return lexSign(r, TokDash, TokDecrement, TokSubtractAssign)
	case r == '*':
		return lexFactor(TokMultiply, TokMultiplyAssign)
	case r == '/':
		return lexFactor(TokSlash, TokDivideAssign)
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorf("unexpected character: %q", r)
	}
}

// lexNumber scans a decimal number with optional fraction and exponent.
// Validation of the value itself is left to the parser.
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	if l.accept(".") {
		l.acceptRun(digits)
	}
	// Only consume the exponent if it is well formed, "2e" is the number 2 followed by "e".
	if r := l.peek(); r == 'e' || r == 'E' {
		mark := l.pos
		l.next()
		l.accept("+-")
		if !l.acceptRun(digits) {
			l.pos = mark
		}
	}
	return l.emit(TokNumber)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(identChars)
	return l.emit(TokIdentifier)
}

// lexSign handles runs of '+' or '-'.
// A single one is the arithmetic operator (or the compound assignment when followed by '='),
// a pair is increment/decrement and anything longer is rejected.
func lexSign(sign rune, single, double, assign TokenType) stateFn {
	return func(l *Lexer) stateFn {
		l.acceptRun(string(sign))
		switch n := l.pos - l.start; {
		case n == 1:
			if l.accept("=") {
				return l.emit(assign)
			}
			return l.emit(single)
		case n == 2:
			return l.emit(double)
		default:
			return l.errorf("invalid operator %q", l.input[l.start:l.pos])
		}
	}
}

func lexFactor(single, assign TokenType) stateFn {
	return func(l *Lexer) stateFn {
		l.next()
		if l.accept("=") {
			return l.emit(assign)
		}
		return l.emit(single)
	}
}
