package format

import (
	"encoding/csv"
	"strings"

	"github.com/rfaulhaber/ttt/eval"
	"github.com/rfaulhaber/ttt/qm"
)

// csvFormatter renders comma-separated values suitable for spreadsheets.
type csvFormatter struct{}

func (csvFormatter) TruthTable(t *eval.TruthTable) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := append(append([]string{}, t.Variables...), "result")
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, row := range t.Rows {
		record := make([]string, 0, len(row.Bits)+1)
		for _, bit := range row.Bits {
			record = append(record, truefalse(bit))
		}
		record = append(record, truefalse(row.Result))
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

func (csvFormatter) Equivalence(eq *eval.Equivalence, left, right string) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"equivalent", "left_expression", "right_expression"}); err != nil {
		return "", err
	}
	if err := w.Write([]string{truefalse(eq.Equivalent), left, right}); err != nil {
		return "", err
	}

	if len(eq.Differences) > 0 {
		header := append(append([]string{}, eq.Variables...), "left_value", "right_value")
		if err := w.Write(header); err != nil {
			return "", err
		}
		for _, diff := range eq.Differences {
			record := make([]string, 0, len(diff.Bits)+2)
			for _, bit := range diff.Bits {
				record = append(record, truefalse(bit))
			}
			record = append(record, truefalse(diff.Left), truefalse(diff.Right))
			if err := w.Write(record); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

func (csvFormatter) Reduction(r *qm.Reduction) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"original", "reduced", "simplified"}); err != nil {
		return "", err
	}
	if err := w.Write([]string{r.Original.String(), r.Reduced.String(), truefalse(r.Simplified)}); err != nil {
		return "", err
	}
	w.Flush()
	return b.String(), w.Error()
}
