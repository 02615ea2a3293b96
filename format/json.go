package format

import (
	"encoding/json"

	"github.com/rfaulhaber/ttt/eval"
	"github.com/rfaulhaber/ttt/qm"
)

// jsonFormatter renders pretty-printed JSON with named assignments, so rows
// stay self-describing when detached from the column order.
type jsonFormatter struct{}

type jsonRow struct {
	Assignment map[string]bool `json:"assignment"`
	Result     bool            `json:"result"`
}

type jsonTruthTable struct {
	Variables []string  `json:"variables"`
	Rows      []jsonRow `json:"rows"`
}

type jsonDifference struct {
	Assignment map[string]bool `json:"assignment"`
	LeftValue  bool            `json:"left_value"`
	RightValue bool            `json:"right_value"`
}

type jsonEquivalence struct {
	Equivalent      bool             `json:"equivalent"`
	LeftExpression  string           `json:"left_expression"`
	RightExpression string           `json:"right_expression"`
	Differences     []jsonDifference `json:"differences"`
}

type jsonReduction struct {
	Original   string `json:"original"`
	Reduced    string `json:"reduced"`
	Simplified bool   `json:"simplified"`
}

func assignmentMap(vars []string, bits []bool) map[string]bool {
	m := make(map[string]bool, len(vars))
	for k, name := range vars {
		m[name] = bits[k]
	}
	return m
}

func (jsonFormatter) TruthTable(t *eval.TruthTable) (string, error) {
	out := jsonTruthTable{Variables: t.Variables, Rows: make([]jsonRow, 0, len(t.Rows))}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, jsonRow{
			Assignment: assignmentMap(t.Variables, row.Bits),
			Result:     row.Result,
		})
	}
	return marshal(out)
}

func (jsonFormatter) Equivalence(eq *eval.Equivalence, left, right string) (string, error) {
	out := jsonEquivalence{
		Equivalent:      eq.Equivalent,
		LeftExpression:  left,
		RightExpression: right,
		Differences:     make([]jsonDifference, 0, len(eq.Differences)),
	}
	for _, diff := range eq.Differences {
		out.Differences = append(out.Differences, jsonDifference{
			Assignment: assignmentMap(eq.Variables, diff.Bits),
			LeftValue:  diff.Left,
			RightValue: diff.Right,
		})
	}
	return marshal(out)
}

func (jsonFormatter) Reduction(r *qm.Reduction) (string, error) {
	return marshal(jsonReduction{
		Original:   r.Original.String(),
		Reduced:    r.Reduced.String(),
		Simplified: r.Simplified,
	})
}

func marshal(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
