// Package eval evaluates boolean expressions: single assignments, exhaustive
// truth tables and equivalence checks. All operations are pure functions over
// immutable inputs; the only intrinsic cost is the 2^n enumeration, which is
// capped by MaxVariables.
package eval

import (
	"github.com/rfaulhaber/ttt/expr"
)

// MaxVariables caps the number of distinct variables accepted by Table,
// Equivalence and the minimizer. 2^20 rows is about one million; beyond that
// the enumeration is rejected up front rather than allowed to consume
// unbounded time and memory.
const MaxVariables = 20

// Assignment maps variable names to boolean values. Callers must supply a
// complete assignment over the expression's variables; a missing binding is
// a programming error, reported as MissingVariableError.
type Assignment map[string]bool

// Evaluate computes the value of e under the given assignment.
func Evaluate(e expr.Expr, a Assignment) (bool, error) {
	switch n := e.(type) {
	case expr.Var:
		v, ok := a[n.Name]
		if !ok {
			return false, &MissingVariableError{Name: n.Name}
		}
		return v, nil
	case expr.Not:
		v, err := Evaluate(n.X, a)
		return !v, err
	case expr.And:
		l, err := Evaluate(n.L, a)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(n.R, a)
		return l && r, err
	case expr.Or:
		l, err := Evaluate(n.L, a)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(n.R, a)
		return l || r, err
	case expr.Xor:
		l, err := Evaluate(n.L, a)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(n.R, a)
		return l != r, err
	case expr.Implies:
		l, err := Evaluate(n.L, a)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(n.R, a)
		return !l || r, err
	case expr.Const:
		return n.Value, nil
	}
	return false, &UnsupportedNodeError{Node: e}
}

// assignFromIndex fills a with the assignment encoded by minterm index i
// over vars: the first variable is the most significant bit.
func assignFromIndex(a Assignment, vars []string, i int) {
	n := len(vars)
	for k, name := range vars {
		a[name] = (i>>(n-1-k))&1 == 1
	}
}

// bitsFromIndex returns the bit pattern of minterm index i over n positions,
// most significant first.
func bitsFromIndex(i, n int) []bool {
	bits := make([]bool, n)
	for k := 0; k < n; k++ {
		bits[k] = (i>>(n-1-k))&1 == 1
	}
	return bits
}
