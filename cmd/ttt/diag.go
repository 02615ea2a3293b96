package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rfaulhaber/ttt/expr"
	"github.com/rfaulhaber/ttt/parser"
)

// parseExpr parses source text, decorating any diagnostic with the offending
// line and a caret under the reported span.
func parseExpr(src string) (expr.Expr, error) {
	e, err := parser.Parse(src)
	if err != nil {
		var d parser.Diagnostic
		if errors.As(err, &d) {
			return nil, fmt.Errorf("%v\n%s", err, caret(src, d.Pos()))
		}
		return nil, err
	}
	return e, nil
}

// caret renders the source line with ^ markers under the span. Offsets are
// rune positions, so the markers line up for multibyte operators too.
func caret(src string, span parser.Span) string {
	length := len([]rune(src))
	start := span.Start
	if start > length {
		start = length
	}
	end := span.End
	if end <= start {
		end = start + 1
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(src)
	b.WriteString("\n  ")
	b.WriteString(strings.Repeat(" ", start))
	b.WriteString(strings.Repeat("^", end-start))
	return b.String()
}
