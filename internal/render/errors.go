package render

import (
	"fmt"

	"github.com/mathpict/mathpict/internal/ast"
	"github.com/mathpict/mathpict/internal/i18n"
)

// DomainConstraintError reports input that parses fine but cannot be
// drawn under the operation's rules: uneven division outside surplus
// mode, a non-positive divisor, more than the allowed replica boxes,
// fractional quantities where items must be counted, or chains crossing
// out more items than a box may display. Fatal for the failing style
// render only.
type DomainConstraintError struct {
	Key  string
	Args map[string]any
}

func (e *DomainConstraintError) Error() string {
	return fmt.Sprintf("domain constraint violated: %s %v", e.Key, e.Args)
}

// Translate renders the error through the localization seam.
func (e *DomainConstraintError) Translate(t i18n.Translator) string {
	return t(e.Key, e.Args)
}

func constraintErr(key string, args map[string]any) *DomainConstraintError {
	return &DomainConstraintError{Key: key, Args: args}
}

// UnsupportedOperationError reports an operation kind no renderer
// understands. Fatal for the failing style render only.
type UnsupportedOperationError struct {
	Kind ast.Kind
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation %q", e.Kind)
}

// Translate renders the error through the localization seam.
func (e *UnsupportedOperationError) Translate(t i18n.Translator) string {
	return t(i18n.KeyUnsupportedOp, map[string]any{"kind": string(e.Kind)})
}
