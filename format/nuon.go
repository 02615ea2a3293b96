package format

import (
	"fmt"
	"strings"

	"github.com/rfaulhaber/ttt/eval"
	"github.com/rfaulhaber/ttt/qm"
)

// nuonFormatter renders object notation: JSON-shaped but with bare keys.
type nuonFormatter struct{}

func (nuonFormatter) TruthTable(t *eval.TruthTable) (string, error) {
	var b strings.Builder
	b.WriteString("[\n")
	for i, row := range t.Rows {
		b.WriteString("  {")
		for k, name := range t.Variables {
			if k > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %s", name, truefalse(row.Bits[k]))
		}
		if len(t.Variables) > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "result: %s}", truefalse(row.Result))
		if i < len(t.Rows)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("]\n")
	return b.String(), nil
}

func (nuonFormatter) Equivalence(eq *eval.Equivalence, left, right string) (string, error) {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  equivalent: %s,\n", truefalse(eq.Equivalent))
	fmt.Fprintf(&b, "  left_expression: %q,\n", left)
	fmt.Fprintf(&b, "  right_expression: %q,\n", right)
	b.WriteString("  differences: [\n")
	for i, diff := range eq.Differences {
		b.WriteString("    {")
		for k, name := range eq.Variables {
			if k > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %s", name, truefalse(diff.Bits[k]))
		}
		fmt.Fprintf(&b, ", left_value: %s, right_value: %s}", truefalse(diff.Left), truefalse(diff.Right))
		if i < len(eq.Differences)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  ]\n")
	b.WriteString("}\n")
	return b.String(), nil
}

func (nuonFormatter) Reduction(r *qm.Reduction) (string, error) {
	return fmt.Sprintf("{\n  original: %q,\n  reduced: %q,\n  simplified: %s\n}\n",
		r.Original.String(), r.Reduced.String(), truefalse(r.Simplified)), nil
}
