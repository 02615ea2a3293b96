package format

import (
	"fmt"
	"strings"

	"github.com/rfaulhaber/ttt/eval"
	"github.com/rfaulhaber/ttt/qm"
)

// tableFormatter is the human-readable default: aligned T/F columns and
// check/cross verdicts.
type tableFormatter struct{}

func (tableFormatter) TruthTable(t *eval.TruthTable) (string, error) {
	var b strings.Builder

	for _, name := range t.Variables {
		fmt.Fprintf(&b, "%4s", name)
	}
	fmt.Fprintf(&b, "%8s\n", "Result")

	b.WriteString(strings.Repeat("----", len(t.Variables)))
	b.WriteString("--------\n")

	for _, row := range t.Rows {
		for _, bit := range row.Bits {
			fmt.Fprintf(&b, "%4s", tf(bit))
		}
		fmt.Fprintf(&b, "%8s\n", tf(row.Result))
	}
	return b.String(), nil
}

func (tableFormatter) Equivalence(eq *eval.Equivalence, left, right string) (string, error) {
	var b strings.Builder

	if eq.Equivalent {
		b.WriteString("✓ Expressions are equivalent\n")
	} else {
		b.WriteString("✗ Expressions are not equivalent\n")
	}
	fmt.Fprintf(&b, "  Left:  %s\n", left)
	fmt.Fprintf(&b, "  Right: %s\n", right)

	if !eq.Equivalent {
		b.WriteString("\nDifferences:\n")
		for i, diff := range eq.Differences {
			if i == MaxDifferencesShown {
				fmt.Fprintf(&b, "  ... and %d more differences\n", len(eq.Differences)-MaxDifferencesShown)
				break
			}
			b.WriteString("  ")
			for k, name := range eq.Variables {
				fmt.Fprintf(&b, "%s=%s ", name, tf(diff.Bits[k]))
			}
			fmt.Fprintf(&b, "→ Left=%s, Right=%s\n", tf(diff.Left), tf(diff.Right))
		}
	}
	return b.String(), nil
}

func (tableFormatter) Reduction(r *qm.Reduction) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Expression: %s\n", r.Original)
	if r.Simplified {
		fmt.Fprintf(&b, "Reduced form: %s\n", r.Reduced)
	} else {
		fmt.Fprintf(&b, "Reduced form: %s (already minimal)\n", r.Reduced)
	}
	return b.String(), nil
}
