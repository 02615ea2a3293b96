package eval

import (
	"fmt"

	"github.com/rfaulhaber/ttt/expr"
)

// MissingVariableError reports evaluation against an incomplete assignment.
// Callers that derive assignments from expr.Variables never see it.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("assignment lacks binding for variable %q", e.Name)
}

// LimitError reports an operation that would enumerate more variables than
// the configured ceiling allows.
type LimitError struct {
	Limit     int
	Requested int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("expression has %d variables, limit is %d", e.Requested, e.Limit)
}

// UnsupportedNodeError reports an Expr implementation outside this module.
type UnsupportedNodeError struct {
	Node expr.Expr
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported expression node %T", e.Node)
}
