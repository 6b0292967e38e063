package ast

import "fmt"

// AssignmentType is the operator of an assignment: plain or compound.
type AssignmentType int

const (
	Assign AssignmentType = iota + 1
	AddAssign
	SubtractAssign
	MultiplyAssign
	DivideAssign
)

var assignmentTypeStrings = map[AssignmentType]string{
	Assign:         "=",
	AddAssign:      "+=",
	SubtractAssign: "-=",
	MultiplyAssign: "*=",
	DivideAssign:   "/=",
}

func (t AssignmentType) String() string {
	if s, ok := assignmentTypeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("AssignmentType(%d)", int(t))
}

// Compound returns the operator combining the current value with the assigned one.
// It returns false for a plain assignment.
func (t AssignmentType) Compound() (BinaryOperator, bool) {
	switch t {
	case AddAssign:
		return OpAdd, true
	case SubtractAssign:
		return OpSubtract, true
	case MultiplyAssign:
		return OpMultiply, true
	case DivideAssign:
		return OpDivide, true
	}
	return 0, false
}

// Assignment binds the value of an expression to a variable, e.g. x += a * 2.
type Assignment struct {
	Variable *Variable
	Type     AssignmentType
	Value    Expr
}

func (*Assignment) node() {}
func (*Assignment) stmt() {}

func (a *Assignment) String() string {
	return fmt.Sprintf("%s %s %s", a.Variable, a.Type, a.Value)
}
