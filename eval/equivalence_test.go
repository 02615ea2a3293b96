package eval

import (
	"errors"
	"testing"
)

func TestEquivalent(t *testing.T) {
	tests := []struct {
		left, right string
	}{
		{"a -> b", "not a or b"},
		{"a and b", "b and a"},
		{"not (a or b)", "not a and not b"},
		{"a xor b", "(a or b) and not (a and b)"},
		{"a", "a"},
	}

	for _, tt := range tests {
		eq, err := CheckEquivalence(mustParse(t, tt.left), mustParse(t, tt.right))
		if err != nil {
			t.Errorf("CheckEquivalence(%q, %q) failed: %v", tt.left, tt.right, err)
			continue
		}
		if !eq.Equivalent {
			t.Errorf("%q and %q reported non-equivalent; differences: %v", tt.left, tt.right, eq.Differences)
		}
		if len(eq.Differences) != 0 {
			t.Errorf("equivalent pair carries %d differences", len(eq.Differences))
		}
	}
}

func TestNotEquivalentDifferences(t *testing.T) {
	eq, err := CheckEquivalence(mustParse(t, "a or b"), mustParse(t, "a and b"))
	if err != nil {
		t.Fatalf("CheckEquivalence failed: %v", err)
	}
	if eq.Equivalent {
		t.Fatal("∨ and ∧ reported equivalent")
	}

	// They disagree exactly on the two mixed assignments, in row order.
	if len(eq.Differences) != 2 {
		t.Fatalf("got %d differences, want 2", len(eq.Differences))
	}
	first := eq.Differences[0]
	if first.Bits[0] != false || first.Bits[1] != true {
		t.Errorf("first difference bits = %v, want [false true]", first.Bits)
	}
	if !first.Left || first.Right {
		t.Errorf("first difference values = (%v, %v), want (true, false)", first.Left, first.Right)
	}
	second := eq.Differences[1]
	if second.Bits[0] != true || second.Bits[1] != false {
		t.Errorf("second difference bits = %v, want [true false]", second.Bits)
	}
}

func TestEquivalenceSymmetric(t *testing.T) {
	left := mustParse(t, "a or b")
	right := mustParse(t, "a and b")

	fwd, err := CheckEquivalence(left, right)
	if err != nil {
		t.Fatalf("CheckEquivalence failed: %v", err)
	}
	rev, err := CheckEquivalence(right, left)
	if err != nil {
		t.Fatalf("CheckEquivalence failed: %v", err)
	}

	if fwd.Equivalent != rev.Equivalent {
		t.Fatal("verdict depends on argument order")
	}
	if len(fwd.Differences) != len(rev.Differences) {
		t.Fatalf("difference counts differ: %d vs %d", len(fwd.Differences), len(rev.Differences))
	}
	for i := range fwd.Differences {
		if fwd.Differences[i].Left != rev.Differences[i].Right ||
			fwd.Differences[i].Right != rev.Differences[i].Left {
			t.Errorf("difference %d not mirrored", i)
		}
	}
}

func TestEquivalenceUnionDomain(t *testing.T) {
	eq, err := CheckEquivalence(mustParse(t, "a and b"), mustParse(t, "c or a"))
	if err != nil {
		t.Fatalf("CheckEquivalence failed: %v", err)
	}

	want := []string{"a", "b", "c"}
	if len(eq.Variables) != len(want) {
		t.Fatalf("Variables = %v, want %v", eq.Variables, want)
	}
	for i := range want {
		if eq.Variables[i] != want[i] {
			t.Errorf("Variables[%d] = %q, want %q", i, eq.Variables[i], want[i])
		}
	}
	if eq.Equivalent {
		t.Error("a∧b and c∨a reported equivalent")
	}
}

func TestEquivalenceAboveSignatureCeiling(t *testing.T) {
	// Nine variables forces the plain enumeration path.
	left := chainOr(SignatureMaxVariables + 1)
	eq, err := CheckEquivalence(mustParse(t, left), mustParse(t, left))
	if err != nil {
		t.Fatalf("CheckEquivalence failed: %v", err)
	}
	if !eq.Equivalent {
		t.Error("expression not equivalent to itself")
	}
}

func TestEquivalenceLimit(t *testing.T) {
	big := mustParse(t, chainOr(MaxVariables+1))
	_, err := CheckEquivalence(big, big)

	var limit *LimitError
	if !errors.As(err, &limit) {
		t.Fatalf("got %v, want LimitError", err)
	}
}

func TestVacuousDomainDifference(t *testing.T) {
	// A variable present on one side only still participates: a and a∧b
	// differ where a=T, b=F.
	eq, err := CheckEquivalence(mustParse(t, "a"), mustParse(t, "a and b"))
	if err != nil {
		t.Fatalf("CheckEquivalence failed: %v", err)
	}
	if eq.Equivalent {
		t.Fatal("a and a∧b reported equivalent")
	}
	if len(eq.Differences) != 1 {
		t.Fatalf("got %d differences, want 1", len(eq.Differences))
	}
	d := eq.Differences[0]
	if d.Bits[0] != true || d.Bits[1] != false || !d.Left || d.Right {
		t.Errorf("difference = %+v, want a=T b=F left=T right=F", d)
	}
}
