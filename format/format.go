// Package format renders truth tables, equivalence verdicts and reductions
// as text. The core packages produce plain data values; every formatting
// opinion lives here.
package format

import (
	"fmt"

	"github.com/rfaulhaber/ttt/eval"
	"github.com/rfaulhaber/ttt/qm"
)

// Format selects an output rendering.
type Format int

const (
	// FormatTable is the human-readable default.
	FormatTable Format = iota
	// FormatJSON renders pretty-printed JSON.
	FormatJSON
	// FormatCSV renders comma-separated values.
	FormatCSV
	// FormatNuon renders object notation.
	FormatNuon
)

// MaxDifferencesShown caps the differences printed by the table formatter;
// the structured formats always include all of them.
const MaxDifferencesShown = 5

// ParseFormat resolves a format name from the command line.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "nuon":
		return FormatNuon, nil
	}
	return 0, fmt.Errorf("unknown output format %q (want table, json, csv or nuon)", name)
}

func (f Format) String() string {
	switch f {
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatNuon:
		return "nuon"
	}
	return "unknown"
}

// Formatter renders the three result kinds the CLI emits. Equivalence takes
// the original source spellings of both sides so the verdict can echo them.
type Formatter interface {
	TruthTable(t *eval.TruthTable) (string, error)
	Equivalence(eq *eval.Equivalence, left, right string) (string, error)
	Reduction(r *qm.Reduction) (string, error)
}

// New returns the formatter for f.
func New(f Format) Formatter {
	switch f {
	case FormatJSON:
		return jsonFormatter{}
	case FormatCSV:
		return csvFormatter{}
	case FormatNuon:
		return nuonFormatter{}
	default:
		return tableFormatter{}
	}
}

func tf(v bool) string {
	if v {
		return "T"
	}
	return "F"
}

func truefalse(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
