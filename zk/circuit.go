// Package zk builds zero-knowledge satisfiability proofs for boolean
// expressions. A proof shows that the prover knows an assignment making the
// expression evaluate to a claimed public output, without revealing the
// assignment itself.
package zk

import (
	"github.com/consensys/gnark/frontend"

	"github.com/rfaulhaber/ttt/eval"
	"github.com/rfaulhaber/ttt/expr"
)

// Circuit arithmetizes a boolean expression over {0, 1} wires. Inputs holds
// one secret wire per variable, in first-appearance order; Output is the
// public evaluation result.
type Circuit struct {
	Inputs []frontend.Variable
	Output frontend.Variable `gnark:",public"`

	root expr.Expr
	vars map[string]int
}

// NewCircuit builds the circuit skeleton for e. The returned value carries
// the expression structure only; use NewWitness for assignments.
func NewCircuit(e expr.Expr) *Circuit {
	names := expr.Variables(e)
	vars := make(map[string]int, len(names))
	for i, name := range names {
		vars[name] = i
	}
	return &Circuit{
		Inputs: make([]frontend.Variable, len(names)),
		root:   e,
		vars:   vars,
	}
}

// NewWitness builds a witness assignment for e: each input wire set to 0 or
// 1 from the assignment, and Output set to the evaluation result.
func NewWitness(e expr.Expr, assignment eval.Assignment) (*Circuit, bool, error) {
	result, err := eval.Evaluate(e, assignment)
	if err != nil {
		return nil, false, err
	}

	c := NewCircuit(e)
	for name, i := range c.vars {
		c.Inputs[i] = bit(assignment[name])
	}
	c.Output = bit(result)
	return c, result, nil
}

// Define encodes the expression as rank-1 constraints. Each boolean
// connective has a polynomial identity over {0, 1}:
//
//	not a      = 1 - a
//	a and b    = ab
//	a or b     = a + b - ab
//	a xor b    = a + b - 2ab
//	a -> b     = 1 - a + ab
func (c *Circuit) Define(api frontend.API) error {
	for _, in := range c.Inputs {
		api.AssertIsBoolean(in)
	}
	api.AssertIsEqual(c.Output, c.compile(api, c.root))
	return nil
}

func (c *Circuit) compile(api frontend.API, e expr.Expr) frontend.Variable {
	switch n := e.(type) {
	case expr.Var:
		return c.Inputs[c.vars[n.Name]]
	case expr.Const:
		return bit(n.Value)
	case expr.Not:
		return api.Sub(1, c.compile(api, n.X))
	case expr.And:
		return api.Mul(c.compile(api, n.L), c.compile(api, n.R))
	case expr.Or:
		l, r := c.compile(api, n.L), c.compile(api, n.R)
		return api.Sub(api.Add(l, r), api.Mul(l, r))
	case expr.Xor:
		l, r := c.compile(api, n.L), c.compile(api, n.R)
		return api.Sub(api.Add(l, r), api.Mul(2, l, r))
	case expr.Implies:
		l, r := c.compile(api, n.L), c.compile(api, n.R)
		return api.Add(api.Sub(1, l), api.Mul(l, r))
	}
	panic("zk: unknown expression node")
}

func bit(v bool) frontend.Variable {
	if v {
		return 1
	}
	return 0
}
