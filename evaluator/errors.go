package evaluator

import "fmt"

// UndefinedVariableError is returned when reading a variable that was never assigned.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

// DivisionByZeroError is returned when the right operand of /, % or /= is zero.
type DivisionByZeroError struct {
	Operator string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero (%s)", e.Operator)
}
