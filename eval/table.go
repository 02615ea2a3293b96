package eval

import (
	"github.com/holiman/uint256"

	"github.com/rfaulhaber/ttt/expr"
)

// SignatureMaxVariables is the largest variable count whose full result
// column fits in a 256-bit word.
const SignatureMaxVariables = 8

// Row is one line of a truth table: the assignment bit pattern (parallel to
// the table's variable order, first variable most significant) and the
// expression's value under it.
type Row struct {
	Bits   []bool
	Result bool
}

// TruthTable is the exhaustive evaluation of an expression: 2^n rows in
// ascending binary counting order. Tables are derived, disposable values;
// nothing caches them implicitly.
type TruthTable struct {
	Variables []string
	Rows      []Row
}

// Table enumerates every assignment of e's variables and evaluates e at
// each. An expression with no variables yields a single row. Expressions
// over more than MaxVariables variables are rejected with LimitError.
func Table(e expr.Expr) (*TruthTable, error) {
	vars := expr.Variables(e)
	n := len(vars)
	if n > MaxVariables {
		return nil, &LimitError{Limit: MaxVariables, Requested: n}
	}

	rows := make([]Row, 0, 1<<n)
	a := make(Assignment, n)
	for i := 0; i < 1<<n; i++ {
		assignFromIndex(a, vars, i)
		result, err := Evaluate(e, a)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Bits: bitsFromIndex(i, n), Result: result})
	}
	return &TruthTable{Variables: vars, Rows: rows}, nil
}

// Minterms returns the indices of rows whose result is true, ascending.
func (t *TruthTable) Minterms() []int {
	var ms []int
	for i, row := range t.Rows {
		if row.Result {
			ms = append(ms, i)
		}
	}
	return ms
}

// Signature packs the result column into a single 256-bit word, bit i being
// row i's result. It exists for tables of at most SignatureMaxVariables
// variables; the second return is false otherwise. Two expressions over the
// same variable order are equivalent iff their signatures are equal, which
// makes the signature a compact function fingerprint.
func (t *TruthTable) Signature() (*uint256.Int, bool) {
	if len(t.Variables) > SignatureMaxVariables {
		return nil, false
	}
	sig := new(uint256.Int)
	for i, row := range t.Rows {
		if row.Result {
			setBit(sig, i)
		}
	}
	return sig, true
}

// Signature evaluates e over every assignment of vars and packs the result
// column, without materializing a table. vars must cover e's variables and
// hold at most SignatureMaxVariables names.
func Signature(e expr.Expr, vars []string) (*uint256.Int, error) {
	n := len(vars)
	if n > SignatureMaxVariables {
		return nil, &LimitError{Limit: SignatureMaxVariables, Requested: n}
	}
	sig := new(uint256.Int)
	a := make(Assignment, n)
	for i := 0; i < 1<<n; i++ {
		assignFromIndex(a, vars, i)
		v, err := Evaluate(e, a)
		if err != nil {
			return nil, err
		}
		if v {
			setBit(sig, i)
		}
	}
	return sig, nil
}

var oneWord = uint256.NewInt(1)

func setBit(x *uint256.Int, i int) {
	bit := new(uint256.Int).Lsh(oneWord, uint(i))
	x.Or(x, bit)
}

func testBit(x *uint256.Int, i int) bool {
	bit := new(uint256.Int).Lsh(oneWord, uint(i))
	return !new(uint256.Int).And(x, bit).IsZero()
}
