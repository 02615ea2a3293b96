package qm

import (
	"sort"

	"github.com/rfaulhaber/ttt/eval"
	"github.com/rfaulhaber/ttt/expr"
)

// Reduction is the outcome of minimizing an expression. Reduced is always a
// fresh tree; Simplified reports whether it differs structurally from the
// input.
type Reduction struct {
	Original   expr.Expr
	Reduced    expr.Expr
	Simplified bool
}

// Reduce minimizes e to a sum of prime implicants equivalent to it over its
// own variables. A contradiction reduces to the constant ⊥ and a tautology
// to ⊤. The variable ceiling of the eval package applies.
func Reduce(e expr.Expr) (*Reduction, error) {
	table, err := eval.Table(e)
	if err != nil {
		return nil, err
	}

	vars := table.Variables
	n := len(vars)
	minterms := table.Minterms()

	var reduced expr.Expr
	switch {
	case len(minterms) == 0:
		reduced = expr.False
	case len(minterms) == 1<<n:
		reduced = expr.True
	default:
		primes := PrimeImplicants(minterms, n)
		chosen := Cover(primes, minterms)
		reduced = buildExpr(chosen, vars)
	}

	return &Reduction{
		Original:   e,
		Reduced:    reduced,
		Simplified: !expr.Equal(e, reduced),
	}, nil
}

// PrimeImplicants combines the given true-minterms until no two implicants
// can merge, and returns every implicant that never took part in a merge.
// minterms must be ascending; the result preserves discovery order.
func PrimeImplicants(minterms []int, n int) []Implicant {
	current := make([]Implicant, 0, len(minterms))
	for _, m := range minterms {
		current = append(current, minterm(m, n))
	}

	var primes []Implicant
	seenPrime := make(map[Implicant]bool)

	for len(current) > 0 {
		used := make([]bool, len(current))
		var next []Implicant
		seenNext := make(map[Implicant]bool)

		// Group by count of 1-valued fixed bits; only adjacent groups
		// can differ in exactly one fixed position.
		groups := make(map[int][]int)
		for i, im := range current {
			ones := im.fixedOnes()
			groups[ones] = append(groups[ones], i)
		}
		counts := make([]int, 0, len(groups))
		for c := range groups {
			counts = append(counts, c)
		}
		sort.Ints(counts)

		for _, c := range counts {
			upper, ok := groups[c+1]
			if !ok {
				continue
			}
			for _, i := range groups[c] {
				for _, j := range upper {
					merged, ok := combine(current[i], current[j])
					if !ok {
						continue
					}
					used[i] = true
					used[j] = true
					if !seenNext[merged] {
						seenNext[merged] = true
						next = append(next, merged)
					}
				}
			}
		}

		for i, im := range current {
			if !used[i] && !seenPrime[im] {
				seenPrime[im] = true
				primes = append(primes, im)
			}
		}
		current = next
	}
	return primes
}

// Cover selects a covering subset of the prime implicants: first every
// essential implicant (the unique cover of some minterm), discovered by
// scanning the minterms in ascending order, then greedy picks of the
// implicant covering the most uncovered minterms. Greedy ties break toward
// fewer don't-care bits, then the lexicographically smallest (Mask, Bits)
// pair, so selection is fully deterministic. The greedy phase approximates
// minimum set cover; it does not guarantee a globally minimal result.
func Cover(primes []Implicant, minterms []int) []Implicant {
	chosen := make(map[Implicant]bool)
	covered := make(map[int]bool)
	var result []Implicant

	pick := func(im Implicant) {
		chosen[im] = true
		result = append(result, im)
		for _, m := range minterms {
			if im.Covers(m) {
				covered[m] = true
			}
		}
	}

	for _, m := range minterms {
		var only Implicant
		count := 0
		for _, im := range primes {
			if im.Covers(m) {
				only = im
				count++
			}
		}
		if count == 1 && !chosen[only] {
			pick(only)
		}
	}

	for {
		remaining := 0
		for _, m := range minterms {
			if !covered[m] {
				remaining++
			}
		}
		if remaining == 0 {
			return result
		}

		best := Implicant{}
		bestGain := 0
		for _, im := range primes {
			if chosen[im] {
				continue
			}
			gain := 0
			for _, m := range minterms {
				if !covered[m] && im.Covers(m) {
					gain++
				}
			}
			if gain == 0 {
				continue
			}
			if gain > bestGain ||
				(gain == bestGain && im.Literals() > best.Literals()) ||
				(gain == bestGain && im.Literals() == best.Literals() && less(im, best)) {
				best = im
				bestGain = gain
			}
		}
		if bestGain == 0 {
			// Unreachable for prime implicants derived from minterms.
			return result
		}
		pick(best)
	}
}

// buildExpr rebuilds the chosen implicants as a left-associative sum of
// products over the original variable ordering.
func buildExpr(chosen []Implicant, vars []string) expr.Expr {
	n := len(vars)
	var sum expr.Expr
	for _, im := range chosen {
		term := buildTerm(im, vars, n)
		if sum == nil {
			sum = term
		} else {
			sum = expr.Or{L: sum, R: term}
		}
	}
	return sum
}

func buildTerm(im Implicant, vars []string, n int) expr.Expr {
	var term expr.Expr
	for k, name := range vars {
		pos := uint(n - 1 - k)
		if im.Mask&(1<<pos) == 0 {
			continue
		}
		var lit expr.Expr = expr.Var{Name: name}
		if im.Bits&(1<<pos) == 0 {
			lit = expr.Not{X: lit}
		}
		if term == nil {
			term = lit
		} else {
			term = expr.And{L: term, R: lit}
		}
	}
	return term
}
