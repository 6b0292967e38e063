package ast

import "fmt"

// BinaryOperator is an arithmetic operator taking two operands.
type BinaryOperator int

const (
	OpAdd BinaryOperator = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
)

var binaryOperatorStrings = map[BinaryOperator]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
	OpModulo:   "%",
}

func (op BinaryOperator) String() string {
	if s, ok := binaryOperatorStrings[op]; ok {
		return s
	}
	return fmt.Sprintf("BinaryOperator(%d)", int(op))
}

// UnaryOperator mutates its variable operand by one.
type UnaryOperator int

const (
	OpIncrement UnaryOperator = iota + 1
	OpDecrement
)

func (op UnaryOperator) String() string {
	switch op {
	case OpIncrement:
		return "++"
	case OpDecrement:
		return "--"
	}
	return fmt.Sprintf("UnaryOperator(%d)", int(op))
}

// Delta is the amount the operator adds to its operand.
func (op UnaryOperator) Delta() float64 {
	if op == OpDecrement {
		return -1
	}
	return 1
}

type Literal struct {
	Value float64
}

func (*Literal) node() {}
func (*Literal) expr() {}

func (l *Literal) String() string { return FormatNumber(l.Value) }

type Variable struct {
	Name string
}

func (*Variable) node() {}
func (*Variable) expr() {}

func (v *Variable) String() string { return v.Name }

type BinaryOperation struct {
	Left     Expr
	Operator BinaryOperator
	Right    Expr
}

func (*BinaryOperation) node() {}
func (*BinaryOperation) expr() {}

func (b *BinaryOperation) String() string {
	// a - -5 doesn't parse back, keep the sign of the right operand grouped.
	if lit, ok := b.Right.(*Literal); ok && lit.Value < 0 && (b.Operator == OpAdd || b.Operator == OpSubtract) {
		return fmt.Sprintf("(%s %s (%s))", b.Left, b.Operator, b.Right)
	}
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Operator, b.Right)
}

// UnaryOperation is an increment or decrement of a variable, e.g. ++x or x--.
type UnaryOperation struct {
	Operator UnaryOperator
	Operand  *Variable
	Prefix   bool
}

func (*UnaryOperation) node() {}
func (*UnaryOperation) expr() {}

func (u *UnaryOperation) String() string {
	if u.Prefix {
		return u.Operator.String() + u.Operand.String()
	}
	return u.Operand.String() + u.Operator.String()
}
