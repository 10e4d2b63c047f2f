package render

import (
	"context"

	"github.com/mathpict/mathpict/internal/ast"
	"github.com/mathpict/mathpict/internal/i18n"
	"github.com/mathpict/mathpict/internal/layout"
)

// renderIdentity draws a single entity with no operators, equals sign
// or placeholder. The intuitive style wraps it in a result box only
// when the node carries a result container.
func (r *Renderer) renderIdentity(ctx context.Context, n *ast.Node, ox, oy float64) (region, error) {
	if len(n.Operands) != 1 {
		return region{}, constraintErr(i18n.KeyOperandCount, map[string]any{
			"kind": string(n.Kind), "count": len(n.Operands),
		})
	}
	if nested, ok := n.Operands[0].(*ast.Node); ok {
		return r.renderNode(ctx, nested, ox, oy)
	}

	e := n.Operands[0].(*ast.Entity)
	layout.ClassifyAll([]*ast.Entity{e}, r.consts)
	layout.AssignGrid([]*ast.Entity{e})
	terms := []layout.Term{{Entity: e}}
	row := layout.PlaceRow(terms, r.consts, layout.RowOptions{})

	if r.style == StyleIntuitive && n.Result != nil {
		pad := r.consts.BoxPadding
		inner, err := r.drawRow(row, ox+pad, oy+pad-row.MinY, nil)
		if err != nil {
			return region{}, err
		}
		return r.wrapResult(inner, ox, oy, n.Result), nil
	}
	return r.drawRow(row, ox, oy-row.MinY, nil)
}
