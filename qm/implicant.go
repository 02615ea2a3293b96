// Package qm minimizes boolean expressions with the Quine-McCluskey
// algorithm: true-minterms are combined into prime implicants, a minimal
// cover is selected (essential implicants first, then a deterministic greedy
// pass) and the cover is rebuilt into a fresh expression tree.
package qm

import "math/bits"

// Implicant is a product term over n bit positions. A set Mask bit marks a
// fixed position; Bits holds the fixed positions' values and is zero on
// don't-care positions. Variable k of the table's ordering lives at bit
// position n-1-k, matching the minterm encoding. Two implicants are equal
// iff both words match.
type Implicant struct {
	Mask uint32
	Bits uint32
}

// minterm returns the trivial implicant fixing every one of the n positions.
func minterm(index, n int) Implicant {
	return Implicant{Mask: uint32(1<<n) - 1, Bits: uint32(index)}
}

// Covers reports whether the implicant matches minterm index m.
func (im Implicant) Covers(m int) bool {
	return uint32(m)&im.Mask == im.Bits
}

// fixedOnes counts the 1-valued fixed positions, the grouping key for the
// combination passes.
func (im Implicant) fixedOnes() int {
	return bits.OnesCount32(im.Bits)
}

// Literals counts the fixed positions, i.e. the literals of the product term.
func (im Implicant) Literals() int {
	return bits.OnesCount32(im.Mask)
}

// combine merges two implicants with identical don't-care masks whose fixed
// bits differ in exactly one position, marking that position don't-care.
func combine(a, b Implicant) (Implicant, bool) {
	if a.Mask != b.Mask {
		return Implicant{}, false
	}
	diff := a.Bits ^ b.Bits
	if bits.OnesCount32(diff) != 1 {
		return Implicant{}, false
	}
	return Implicant{Mask: a.Mask &^ diff, Bits: a.Bits &^ diff}, true
}

// less orders implicants lexicographically by (Mask, Bits); the final greedy
// tie-break.
func less(a, b Implicant) bool {
	if a.Mask != b.Mask {
		return a.Mask < b.Mask
	}
	return a.Bits < b.Bits
}
