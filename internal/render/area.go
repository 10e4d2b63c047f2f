package render

import (
	"context"
	"fmt"

	"github.com/mathpict/mathpict/internal/ast"
	"github.com/mathpict/mathpict/internal/i18n"
	"github.com/mathpict/mathpict/internal/scene"
)

// renderArea draws a length-by-width shape: the result container names
// the shape icon, stretched to the length:width aspect ratio with the
// longer edge capped at the maximum display size, with the two
// dimensions labeled at the shape edges. A missing shape icon degrades
// to a filled placeholder rectangle; a missing result container is
// fatal because nothing at all could be drawn.
func (r *Renderer) renderArea(ctx context.Context, n *ast.Node, ox, oy float64) (region, error) {
	if len(n.Operands) != 2 {
		return region{}, constraintErr(i18n.KeyOperandCount, map[string]any{
			"kind": string(n.Kind), "count": len(n.Operands),
		})
	}
	lengthE, ok1 := n.Operands[0].(*ast.Entity)
	widthE, ok2 := n.Operands[1].(*ast.Entity)
	if !ok1 || !ok2 {
		return region{}, constraintErr(i18n.KeyNestedOperand, map[string]any{
			"kind": string(n.Kind),
		})
	}
	if n.Result == nil {
		return region{}, constraintErr(i18n.KeyMissingShape, nil)
	}

	length, width := lengthE.Quantity, widthE.Quantity
	if length <= 0 || width <= 0 {
		return region{}, constraintErr(i18n.KeyBadDimensions, map[string]any{
			"length": length, "width": width,
		})
	}

	longer := length
	if width > longer {
		longer = width
	}
	scale := r.consts.MaxAreaSide / longer
	w := length * scale
	h := width * scale

	shape := n.Result.EntityType
	if shape == "" {
		shape = n.Result.ContainerName
	}
	path, found, err := r.resolveIcon(shape)
	if err != nil {
		return region{}, err
	}
	if found {
		r.canvas.Add(scene.Icon{X: ox, Y: oy, W: w, H: h, Path: path})
	} else {
		r.canvas.Add(scene.Rect{
			X: ox, Y: oy, W: w, H: h,
			Fill: r.theme.PlaceholderColor, Stroke: r.theme.BoxColor, StrokeWidth: 2,
		})
	}

	r.canvas.Add(
		scene.Text{
			X: ox + w/2, Y: oy + h + labelOffset,
			Content: dimensionLabel(lengthE), Size: labelSize,
			Fill: r.theme.LabelColor, Anchor: "middle",
		},
		scene.Text{
			X: ox + w + 8, Y: oy + h/2 + labelSize/2,
			Content: dimensionLabel(widthE), Size: labelSize,
			Fill: r.theme.LabelColor,
		},
	)
	r.canvas.Extend(ox+w+8+8*float64(len(dimensionLabel(widthE))), oy+h+labelOffset+6)
	return region{W: w, H: h + labelOffset + 6}, nil
}

func dimensionLabel(e *ast.Entity) string {
	label := e.Label()
	if label == "" {
		return ast.FormatQuantity(e.Quantity)
	}
	return fmt.Sprintf("%s: %s", label, ast.FormatQuantity(e.Quantity))
}
