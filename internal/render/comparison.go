package render

import (
	"context"

	"github.com/mathpict/mathpict/internal/ast"
	"github.com/mathpict/mathpict/internal/i18n"
	"github.com/mathpict/mathpict/internal/scene"
)

// renderComparison renders both sides independently at a horizontal
// offset and joins them with a balance scale whose plate widths match
// each side's rendered extent. The canvas grows downward to include
// the scale.
func (r *Renderer) renderComparison(ctx context.Context, n *ast.Node, ox, oy float64) (region, error) {
	if len(n.Operands) != 2 {
		return region{}, constraintErr(i18n.KeyOperandCount, map[string]any{
			"kind": string(n.Kind), "count": len(n.Operands),
		})
	}

	left, err := r.renderSide(ctx, n.Operands[0], ox, oy)
	if err != nil {
		return region{}, err
	}
	sideGap := 2 * r.consts.BoxPadding
	rightX := ox + left.W + sideGap
	right, err := r.renderSide(ctx, n.Operands[1], rightX, oy)
	if err != nil {
		return region{}, err
	}

	tallest := left.H
	if right.H > tallest {
		tallest = right.H
	}
	r.drawScale(ox, oy+tallest+r.consts.BoxPadding, left.W, rightX-ox, right.W)

	total := region{
		W: left.W + sideGap + right.W,
		H: tallest + r.consts.BoxPadding + 2*r.consts.Unit + 6,
	}
	return total, nil
}

// renderSide renders one comparison operand, wrapping a bare entity as
// an identity node.
func (r *Renderer) renderSide(ctx context.Context, op ast.Operand, ox, oy float64) (region, error) {
	switch v := op.(type) {
	case *ast.Node:
		return r.renderNode(ctx, v, ox, oy)
	case *ast.Entity:
		wrapped := &ast.Node{Kind: ast.KindIdentity, Operands: []ast.Operand{v}}
		return r.renderNode(ctx, wrapped, ox, oy)
	}
	return region{}, constraintErr(i18n.KeyOperandCount, map[string]any{
		"kind": string(ast.KindComparison),
	})
}

// drawScale draws the balance under the two sides: one plate per side
// sized to the side's width, posts down to the beam, and a central
// fulcrum with a base.
func (r *Renderer) drawScale(leftX, plateY, leftW, rightOffset, rightW float64) {
	stroke := r.theme.ScaleColor
	unit := r.consts.Unit
	beamY := plateY + unit
	leftCenter := leftX + leftW/2
	rightCenter := leftX + rightOffset + rightW/2
	mid := (leftCenter + rightCenter) / 2

	r.canvas.Add(
		// Plates.
		scene.Line{X1: leftX, Y1: plateY, X2: leftX + leftW, Y2: plateY, Stroke: stroke, StrokeWidth: 5},
		scene.Line{X1: leftX + rightOffset, Y1: plateY, X2: leftX + rightOffset + rightW, Y2: plateY, Stroke: stroke, StrokeWidth: 5},
		// Posts from plate centers down to the beam.
		scene.Line{X1: leftCenter, Y1: plateY, X2: leftCenter, Y2: beamY, Stroke: stroke, StrokeWidth: 3},
		scene.Line{X1: rightCenter, Y1: plateY, X2: rightCenter, Y2: beamY, Stroke: stroke, StrokeWidth: 3},
		// Beam.
		scene.Line{X1: leftCenter, Y1: beamY, X2: rightCenter, Y2: beamY, Stroke: stroke, StrokeWidth: 4},
		// Fulcrum and base.
		scene.Line{X1: mid, Y1: beamY, X2: mid, Y2: beamY + unit, Stroke: stroke, StrokeWidth: 4},
		scene.Line{X1: mid - unit, Y1: beamY + unit, X2: mid + unit, Y2: beamY + unit, Stroke: stroke, StrokeWidth: 5},
	)
}
