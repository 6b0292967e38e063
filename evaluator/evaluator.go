// Package evaluator executes parsed statements against a variable store.
//
// Evaluation is left to right. A statement is all or nothing: its writes
// (increments, decrements and the assignment itself) are staged and only
// reach the store once the whole statement succeeded.
package evaluator

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/store"
)

// Evaluator runs statements against one store.
// Reads of a statement happen before its single Commit without holding the
// store lock, so evaluators sharing a store can lose each other's updates.
// Use one evaluator per store, or serialize Execute calls.
type Evaluator struct {
	store  *store.Store
	logger *zap.Logger
}

type Option func(*Evaluator)

// WithLogger sets the logger used to trace committed statements.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New returns an Evaluator working on s. The store is not owned by the evaluator.
func New(s *store.Store, opts ...Option) *Evaluator {
	e := &Evaluator{
		store:  s,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs stmt against s and returns the assigned value.
func Execute(stmt ast.Stmt, s *store.Store) (float64, error) {
	return New(s).Execute(stmt)
}

// Evaluate computes expr against s. Side effects of increments and decrements are applied to s.
func Evaluate(expr ast.Expr, s *store.Store) (float64, error) {
	return New(s).Evaluate(expr)
}

// Execute runs stmt and returns the value stored in its target.
// On error the store is left untouched.
func (e *Evaluator) Execute(stmt ast.Stmt) (float64, error) {
	f := newFrame(e.store)
	var (
		value float64
		err   error
	)
	switch s := stmt.(type) {
	case *ast.Assignment:
		value, err = f.assign(s)
	default:
		err = errors.Errorf("unsupported statement %T", stmt)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "execute %q", stmt)
	}
	e.commit(f, stmt)
	return value, nil
}

// Evaluate computes expr. On error the store is left untouched.
func (e *Evaluator) Evaluate(expr ast.Expr) (float64, error) {
	f := newFrame(e.store)
	value, err := f.eval(expr)
	if err != nil {
		return 0, errors.Wrapf(err, "evaluate %q", expr)
	}
	e.commit(f, expr)
	return value, nil
}

func (e *Evaluator) commit(f *frame, node ast.Node) {
	e.store.Commit(f.writes)
	e.logger.Debug("committed", zap.Stringer("node", node), zap.Int("writes", len(f.writes)))
}

// frame stages the writes of a single statement on top of the store.
type frame struct {
	base   *store.Store
	writes []store.Entry
	index  map[string]int
}

func newFrame(base *store.Store) *frame {
	return &frame{base: base, index: map[string]int{}}
}

func (f *frame) get(name string) (float64, bool) {
	if i, ok := f.index[name]; ok {
		return f.writes[i].Value, true
	}
	return f.base.Get(name)
}

func (f *frame) set(name string, value float64) {
	if i, ok := f.index[name]; ok {
		f.writes[i].Value = value
		return
	}
	f.index[name] = len(f.writes)
	f.writes = append(f.writes, store.Entry{Name: name, Value: value})
}

func (f *frame) lookup(name string) (float64, error) {
	v, ok := f.get(name)
	if !ok {
		return 0, &UndefinedVariableError{Name: name}
	}
	return v, nil
}

func (f *frame) assign(a *ast.Assignment) (float64, error) {
	// The right hand side is always evaluated first, so its errors win.
	value, err := f.eval(a.Value)
	if err != nil {
		return 0, err
	}
	if op, ok := a.Type.Compound(); ok {
		current, err := f.lookup(a.Variable.Name)
		if err != nil {
			return 0, err
		}
		if op == ast.OpDivide && value == 0 {
			return 0, &DivisionByZeroError{Operator: a.Type.String()}
		}
		if value, err = apply(op, current, value); err != nil {
			return 0, err
		}
	}
	f.set(a.Variable.Name, value)
	return value, nil
}

func (f *frame) eval(expr ast.Expr) (float64, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Variable:
		return f.lookup(e.Name)
	case *ast.BinaryOperation:
		left, err := f.eval(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := f.eval(e.Right)
		if err != nil {
			return 0, err
		}
		return apply(e.Operator, left, right)
	case *ast.UnaryOperation:
		old, err := f.lookup(e.Operand.Name)
		if err != nil {
			return 0, err
		}
		updated := old + e.Operator.Delta()
		f.set(e.Operand.Name, updated)
		if e.Prefix {
			return updated, nil
		}
		return old, nil
	default:
		return 0, errors.Errorf("unsupported expression %T", expr)
	}
}

func apply(op ast.BinaryOperator, left, right float64) (float64, error) {
	switch op {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSubtract:
		return left - right, nil
	case ast.OpMultiply:
		return left * right, nil
	case ast.OpDivide:
		if right == 0 {
			return 0, &DivisionByZeroError{Operator: op.String()}
		}
		return left / right, nil
	case ast.OpModulo:
		if right == 0 {
			return 0, &DivisionByZeroError{Operator: op.String()}
		}
		return math.Mod(left, right), nil
	default:
		return 0, errors.Errorf("unsupported binary operator %s", op)
	}
}
