// Package ast defines the tree produced by the parser for a single assignment statement.
//
// Node kinds are closed: only the types of this package implement Expr and Stmt.
package ast

import (
	"math"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// Node is implemented by every node of the tree.
type Node interface {
	// String renders the node back to its canonical textual form.
	String() string
	node()
}

// Expr is one of Literal, Variable, BinaryOperation or UnaryOperation.
type Expr interface {
	Node
	expr()
}

// Stmt is a top level statement. Assignment is the only one for now.
type Stmt interface {
	Node
	stmt()
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// IsIdentifier reports whether name is a valid variable name.
func IsIdentifier(name string) bool {
	return identifierRe.MatchString(name)
}

// NewVariable returns a Variable node after validating its name.
func NewVariable(name string) (*Variable, error) {
	if !IsIdentifier(name) {
		return nil, errors.Errorf("invalid identifier %q", name)
	}
	return &Variable{Name: name}, nil
}

// NewLiteral returns a Literal node. The value must be finite.
func NewLiteral(value float64) (*Literal, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return nil, errors.Errorf("invalid number %s", FormatNumber(value))
	}
	return &Literal{Value: value}, nil
}

func NewBinary(left Expr, op BinaryOperator, right Expr) (*BinaryOperation, error) {
	if _, ok := binaryOperatorStrings[op]; !ok {
		return nil, errors.Errorf("unknown binary operator %s", op)
	}
	if left == nil || right == nil {
		return nil, errors.Errorf("missing operand for %s", op)
	}
	return &BinaryOperation{Left: left, Operator: op, Right: right}, nil
}

func NewUnary(op UnaryOperator, operand *Variable, prefix bool) (*UnaryOperation, error) {
	if op != OpIncrement && op != OpDecrement {
		return nil, errors.Errorf("unknown unary operator %s", op)
	}
	if operand == nil {
		return nil, errors.Errorf("missing operand for %s", op)
	}
	return &UnaryOperation{Operator: op, Operand: operand, Prefix: prefix}, nil
}

func NewAssignment(target *Variable, typ AssignmentType, value Expr) (*Assignment, error) {
	if _, ok := assignmentTypeStrings[typ]; !ok {
		return nil, errors.Errorf("unknown assignment type %s", typ)
	}
	if target == nil || value == nil {
		return nil, errors.Errorf("incomplete assignment %s", typ)
	}
	return &Assignment{Variable: target, Type: typ, Value: value}, nil
}

// FormatNumber renders a value in its shortest decimal form.
// Whole numbers don't get a decimal point.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Walk traverses expr depth first, calling fn on each node before its children.
// Children are skipped when fn returns false.
func Walk(expr Expr, fn func(Expr) bool) {
	if expr == nil || !fn(expr) {
		return
	}
	switch e := expr.(type) {
	case *BinaryOperation:
		Walk(e.Left, fn)
		Walk(e.Right, fn)
	case *UnaryOperation:
		Walk(e.Operand, fn)
	}
}

// Variables returns the names referenced by expr, in order of first appearance.
func Variables(expr Expr) []string {
	var names []string
	seen := map[string]struct{}{}
	Walk(expr, func(e Expr) bool {
		if v, ok := e.(*Variable); ok {
			if _, dup := seen[v.Name]; !dup {
				seen[v.Name] = struct{}{}
				names = append(names, v.Name)
			}
		}
		return true
	})
	return names
}
