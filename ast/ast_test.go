package ast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{name: "literal", node: &Literal{Value: 5}, want: "5"},
		{name: "decimal literal", node: &Literal{Value: 3.14}, want: "3.14"},
		{name: "negative literal", node: &Literal{Value: -2.5}, want: "-2.5"},
		{name: "variable", node: &Variable{Name: "x"}, want: "x"},
		{
			name: "binary",
			node: &BinaryOperation{Left: &Variable{Name: "a"}, Operator: OpAdd, Right: &Literal{Value: 1}},
			want: "(a + 1)",
		},
		{
			name: "nested binary",
			node: &BinaryOperation{
				Left:     &BinaryOperation{Left: &Variable{Name: "a"}, Operator: OpSubtract, Right: &Variable{Name: "b"}},
				Operator: OpModulo,
				Right:    &Literal{Value: 3},
			},
			want: "((a - b) % 3)",
		},
		{
			name: "negative right operand of minus",
			node: &BinaryOperation{Left: &Variable{Name: "a"}, Operator: OpSubtract, Right: &Literal{Value: -5}},
			want: "(a - (-5))",
		},
		{
			name: "negative right operand of times",
			node: &BinaryOperation{Left: &Variable{Name: "a"}, Operator: OpMultiply, Right: &Literal{Value: -5}},
			want: "(a * -5)",
		},
		{name: "prefix", node: &UnaryOperation{Operator: OpIncrement, Operand: &Variable{Name: "i"}, Prefix: true}, want: "++i"},
		{name: "postfix", node: &UnaryOperation{Operator: OpDecrement, Operand: &Variable{Name: "i"}}, want: "i--"},
		{
			name: "assignment",
			node: &Assignment{
				Variable: &Variable{Name: "x"},
				Type:     DivideAssign,
				Value:    &BinaryOperation{Left: &Literal{Value: 2}, Operator: OpMultiply, Right: &Variable{Name: "y"}},
			},
			want: "x /= (2 * y)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestOperatorStrings(t *testing.T) {
	assert.Equal(t, "%", OpModulo.String())
	assert.Equal(t, "BinaryOperator(42)", BinaryOperator(42).String())
	assert.Equal(t, "--", OpDecrement.String())
	assert.Equal(t, "-=", SubtractAssign.String())
	assert.Equal(t, "AssignmentType(0)", AssignmentType(0).String())
}

func TestCompound(t *testing.T) {
	_, ok := Assign.Compound()
	assert.False(t, ok)

	for typ, want := range map[AssignmentType]BinaryOperator{
		AddAssign:      OpAdd,
		SubtractAssign: OpSubtract,
		MultiplyAssign: OpMultiply,
		DivideAssign:   OpDivide,
	} {
		op, ok := typ.Compound()
		require.True(t, ok, "%s should be compound", typ)
		assert.Equal(t, want, op, "%s", typ)
	}
}

func TestNewVariable(t *testing.T) {
	for _, name := range []string{"x", "_tmp", "$el", "camelCase2", "A_B$9"} {
		v, err := NewVariable(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, v.Name)
	}
	for _, name := range []string{"", "1x", "a-b", "a b", "é"} {
		_, err := NewVariable(name)
		assert.Error(t, err, "%q should be rejected", name)
	}
}

func TestVariables(t *testing.T) {
	// (a + ++b) * (a - c--)
	expr := &BinaryOperation{
		Left: &BinaryOperation{
			Left:     &Variable{Name: "a"},
			Operator: OpAdd,
			Right:    &UnaryOperation{Operator: OpIncrement, Operand: &Variable{Name: "b"}, Prefix: true},
		},
		Operator: OpMultiply,
		Right: &BinaryOperation{
			Left:     &Variable{Name: "a"},
			Operator: OpSubtract,
			Right:    &UnaryOperation{Operator: OpDecrement, Operand: &Variable{Name: "c"}},
		},
	}
	assert.Equal(t, []string{"a", "b", "c"}, Variables(expr))
	assert.Empty(t, Variables(&Literal{Value: 1}))
}

func TestWalkSkipChildren(t *testing.T) {
	expr := &BinaryOperation{Left: &Variable{Name: "a"}, Operator: OpAdd, Right: &Variable{Name: "b"}}
	var visited int
	Walk(expr, func(Expr) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestConstructors(t *testing.T) {
	x, err := NewVariable("x")
	require.NoError(t, err)
	five, err := NewLiteral(5)
	require.NoError(t, err)

	bin, err := NewBinary(x, OpMultiply, five)
	require.NoError(t, err)
	inc, err := NewUnary(OpIncrement, x, false)
	require.NoError(t, err)
	sum, err := NewBinary(inc, OpAdd, bin)
	require.NoError(t, err)
	stmt, err := NewAssignment(x, AddAssign, sum)
	require.NoError(t, err)
	assert.Equal(t, "x += (x++ + (x * 5))", stmt.String())

	tests := []struct {
		name string
		fn   func() error
	}{
		{name: "infinite literal", fn: func() error { _, err := NewLiteral(math.Inf(1)); return err }},
		{name: "nan literal", fn: func() error { _, err := NewLiteral(math.NaN()); return err }},
		{name: "unknown binary operator", fn: func() error { _, err := NewBinary(x, BinaryOperator(42), five); return err }},
		{name: "missing left operand", fn: func() error { _, err := NewBinary(nil, OpAdd, five); return err }},
		{name: "missing right operand", fn: func() error { _, err := NewBinary(x, OpAdd, nil); return err }},
		{name: "unknown unary operator", fn: func() error { _, err := NewUnary(UnaryOperator(0), x, true); return err }},
		{name: "missing unary operand", fn: func() error { _, err := NewUnary(OpDecrement, nil, true); return err }},
		{name: "unknown assignment type", fn: func() error { _, err := NewAssignment(x, AssignmentType(9), five); return err }},
		{name: "missing target", fn: func() error { _, err := NewAssignment(nil, Assign, five); return err }},
		{name: "missing value", fn: func() error { _, err := NewAssignment(x, Assign, nil); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.fn())
		})
	}
}
