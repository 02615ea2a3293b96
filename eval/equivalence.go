package eval

import (
	"github.com/holiman/uint256"

	"github.com/rfaulhaber/ttt/expr"
)

// Difference records one assignment of the union domain on which the two
// sides disagree. Bits is parallel to the Equivalence's variable order.
type Difference struct {
	Bits  []bool
	Left  bool
	Right bool
}

// Equivalence is the outcome of comparing two expressions over the union of
// their variable domains.
type Equivalence struct {
	Equivalent  bool
	Variables   []string
	Differences []Difference
}

// CheckEquivalence checks whether left and right agree on every assignment of
// the union of their variables. The union order is left's variables in their
// order followed by the variables unique to right in right's order, so it is
// deterministic and independent of evaluation order. Differences are
// collected in ascending enumeration order.
func CheckEquivalence(left, right expr.Expr) (*Equivalence, error) {
	vars := unionVariables(left, right)
	n := len(vars)
	if n > MaxVariables {
		return nil, &LimitError{Limit: MaxVariables, Requested: n}
	}

	if n <= SignatureMaxVariables {
		return signatureEquivalence(left, right, vars)
	}

	eq := &Equivalence{Equivalent: true, Variables: vars}
	a := make(Assignment, n)
	for i := 0; i < 1<<n; i++ {
		assignFromIndex(a, vars, i)
		lv, err := Evaluate(left, a)
		if err != nil {
			return nil, err
		}
		rv, err := Evaluate(right, a)
		if err != nil {
			return nil, err
		}
		if lv != rv {
			eq.Equivalent = false
			eq.Differences = append(eq.Differences, Difference{Bits: bitsFromIndex(i, n), Left: lv, Right: rv})
		}
	}
	return eq, nil
}

// signatureEquivalence compares the packed result columns of both sides.
// The xor of the two signatures marks exactly the differing assignments, so
// differences fall out of the packed words without a second evaluation pass.
func signatureEquivalence(left, right expr.Expr, vars []string) (*Equivalence, error) {
	ls, err := Signature(left, vars)
	if err != nil {
		return nil, err
	}
	rs, err := Signature(right, vars)
	if err != nil {
		return nil, err
	}

	eq := &Equivalence{Variables: vars}
	diff := new(uint256.Int).Xor(ls, rs)
	if diff.IsZero() {
		eq.Equivalent = true
		return eq, nil
	}

	n := len(vars)
	for i := 0; i < 1<<n; i++ {
		if testBit(diff, i) {
			eq.Differences = append(eq.Differences, Difference{
				Bits:  bitsFromIndex(i, n),
				Left:  testBit(ls, i),
				Right: testBit(rs, i),
			})
		}
	}
	return eq, nil
}

func unionVariables(left, right expr.Expr) []string {
	vars := expr.Variables(left)
	seen := make(map[string]bool, len(vars))
	for _, name := range vars {
		seen[name] = true
	}
	for _, name := range expr.Variables(right) {
		if !seen[name] {
			seen[name] = true
			vars = append(vars, name)
		}
	}
	return vars
}
