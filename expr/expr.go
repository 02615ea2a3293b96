// Package expr defines the boolean expression tree shared by the parser,
// the evaluator and the minimizer. Trees are immutable once built: every
// operation that transforms an expression returns a fresh tree.
package expr

import "strings"

// Expr is a node in a boolean expression tree. The concrete variants are
// Var, Not, And, Or, Xor, Implies and the two constants True and False.
// Algorithms dispatch over them with a type switch.
type Expr interface {
	// String renders the canonical form using the symbols ∧ ∨ ¬ ⊕ →.
	// Every binary subexpression is fully parenthesized; ¬ applied
	// directly to a variable carries no parentheses.
	String() string

	node()
}

// Var is a named boolean variable.
type Var struct {
	Name string
}

// Not negates its operand.
type Not struct {
	X Expr
}

// And is a conjunction of two operands.
type And struct {
	L, R Expr
}

// Or is a disjunction of two operands.
type Or struct {
	L, R Expr
}

// Xor is true when exactly one operand is true.
type Xor struct {
	L, R Expr
}

// Implies is the material conditional: Implies(p, q) ≡ ¬p ∨ q.
type Implies struct {
	L, R Expr
}

// Const is a zero-ary constant leaf. It never appears in parsed input;
// the minimizer produces it for tautologies and contradictions.
type Const struct {
	Value bool
}

// True and False are the constant leaves returned by reduction.
var (
	True  Expr = Const{Value: true}
	False Expr = Const{Value: false}
)

func (Var) node()     {}
func (Not) node()     {}
func (And) node()     {}
func (Or) node()      {}
func (Xor) node()     {}
func (Implies) node() {}
func (Const) node()   {}

func (v Var) String() string { return v.Name }

func (n Not) String() string {
	switch x := n.X.(type) {
	case Var:
		return "¬" + x.Name
	case And, Or, Xor, Implies:
		// Binary nodes already parenthesize themselves.
		return "¬" + x.String()
	default:
		return "¬(" + x.String() + ")"
	}
}

func (a And) String() string     { return binary(a.L, "∧", a.R) }
func (o Or) String() string      { return binary(o.L, "∨", o.R) }
func (x Xor) String() string     { return binary(x.L, "⊕", x.R) }
func (i Implies) String() string { return binary(i.L, "→", i.R) }

func (c Const) String() string {
	if c.Value {
		return "⊤"
	}
	return "⊥"
}

func binary(l Expr, op string, r Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(l.String())
	b.WriteByte(' ')
	b.WriteString(op)
	b.WriteByte(' ')
	b.WriteString(r.String())
	b.WriteByte(')')
	return b.String()
}

// Variables returns the deduplicated variable names of e in order of first
// appearance during a pre-order traversal. This order fixes the column order
// of truth tables and the bit position (first variable = most significant)
// used when encoding minterms.
func Variables(e Expr) []string {
	var names []string
	seen := make(map[string]bool)
	walk(e, func(v Var) {
		if !seen[v.Name] {
			seen[v.Name] = true
			names = append(names, v.Name)
		}
	})
	return names
}

func walk(e Expr, visit func(Var)) {
	switch n := e.(type) {
	case Var:
		visit(n)
	case Not:
		walk(n.X, visit)
	case And:
		walk(n.L, visit)
		walk(n.R, visit)
	case Or:
		walk(n.L, visit)
		walk(n.R, visit)
	case Xor:
		walk(n.L, visit)
		walk(n.R, visit)
	case Implies:
		walk(n.L, visit)
		walk(n.R, visit)
	case Const:
	}
}

// Equal reports whether two expressions are structurally identical.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name
	case Not:
		y, ok := b.(Not)
		return ok && Equal(x.X, y.X)
	case And:
		y, ok := b.(And)
		return ok && Equal(x.L, y.L) && Equal(x.R, y.R)
	case Or:
		y, ok := b.(Or)
		return ok && Equal(x.L, y.L) && Equal(x.R, y.R)
	case Xor:
		y, ok := b.(Xor)
		return ok && Equal(x.L, y.L) && Equal(x.R, y.R)
	case Implies:
		y, ok := b.(Implies)
		return ok && Equal(x.L, y.L) && Equal(x.R, y.R)
	case Const:
		y, ok := b.(Const)
		return ok && x.Value == y.Value
	}
	return false
}
