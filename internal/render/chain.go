package render

import (
	"context"

	"github.com/mathpict/mathpict/internal/ast"
	"github.com/mathpict/mathpict/internal/i18n"
	"github.com/mathpict/mathpict/internal/layout"
	"github.com/mathpict/mathpict/internal/scene"
)

// renderChain draws addition/subtraction expressions. The formal style
// lays the flattened terms out as one algebraic row with operator and
// bracket glyphs; the intuitive style drops the symbols, crosses out
// subtracted items and wraps everything in a result box.
func (r *Renderer) renderChain(ctx context.Context, n *ast.Node, ox, oy float64) (region, error) {
	terms := layout.Flatten(n)
	leaves := make([]*ast.Entity, len(terms))
	for i, t := range terms {
		leaves[i] = t.Entity
	}
	layout.ClassifyAll(leaves, r.consts)
	layout.AssignGrid(leaves)

	if r.style == StyleFormal {
		row := layout.PlaceRow(terms, r.consts, layout.RowOptions{
			InlineOperators: true,
			AppendResult:    true,
		})
		return r.drawRow(row, ox, oy-row.MinY, nil)
	}

	marks, err := r.allocateCrossouts(terms)
	if err != nil {
		return region{}, err
	}
	row := layout.PlaceRow(terms, r.consts, layout.RowOptions{})

	pad := r.consts.BoxPadding
	inner, err := r.drawRow(row, ox+pad, oy+pad-row.MinY, marks)
	if err != nil {
		return region{}, err
	}
	return r.wrapResult(inner, ox, oy, n.Result), nil
}

// drawRow draws a placed row: boxes with their items, inline operator
// and bracket glyphs when present, and the trailing equals/placeholder
// slots. marks carries cross-out overlays keyed by term index.
func (r *Renderer) drawRow(row layout.Row, ox, oy float64, marks map[int][]crossMark) (region, error) {
	for i, t := range row.Terms {
		if err := r.drawEntityBox(t.Entity, ox, oy, marks[i]); err != nil {
			return region{}, err
		}
	}
	for _, slot := range row.Operators {
		if err := r.drawOperator(slot, ox, oy, slot.Kind); err != nil {
			return region{}, err
		}
	}
	for _, g := range row.Brackets {
		r.drawBracket(g, ox, oy)
	}
	if row.Equals != nil {
		if err := r.drawSymbolSlot(*row.Equals, ox, oy, "equal", "="); err != nil {
			return region{}, err
		}
	}
	if row.Placeholder != nil {
		if err := r.drawSymbolSlot(*row.Placeholder, ox, oy, "question", "?"); err != nil {
			return region{}, err
		}
	}
	return region{W: row.Width, H: row.Height() + labelOffset + 6}, nil
}

// allocateCrossouts distributes each subtrahend's quantity over the
// most recent matching-type addends, walking backward, and returns the
// per-term cross-out marks. Each subtraction operation takes the next
// palette color. Quantities that cannot be shown item-by-item reject
// the whole render.
func (r *Renderer) allocateCrossouts(terms []layout.Term) (map[int][]crossMark, error) {
	marks := make(map[int][]crossMark)
	crossed := make(map[int]int)
	var addends []int

	maxItems := float64(r.consts.MaxItems)
	for i, t := range terms {
		if t.Op != ast.KindSubtraction {
			if t.Op != "" && t.Op != ast.KindAddition {
				return nil, constraintErr(i18n.KeyNestedOperand, map[string]any{
					"kind": string(t.Op),
				})
			}
			addends = append(addends, i)
			continue
		}

		sub := t.Entity
		if !sub.IntegerQuantity() {
			return nil, constraintErr(i18n.KeyNonIntegerQuantity, map[string]any{
				"name": sub.Label(), "quantity": sub.Quantity,
			})
		}
		if sub.Quantity > maxItems {
			return nil, constraintErr(i18n.KeyTooManyItems, map[string]any{
				"name": sub.Label(), "quantity": sub.Quantity,
			})
		}

		remaining := int(sub.Quantity)
		color := r.nextPaletteColor()
		for j := len(addends) - 1; j >= 0 && remaining > 0; j-- {
			idx := addends[j]
			addend := terms[idx].Entity
			if addend.EntityType != sub.EntityType {
				continue
			}
			if !addend.IntegerQuantity() {
				return nil, constraintErr(i18n.KeyNonIntegerQuantity, map[string]any{
					"name": addend.Label(), "quantity": addend.Quantity,
				})
			}
			if addend.Quantity > maxItems {
				return nil, constraintErr(i18n.KeyTooManyItems, map[string]any{
					"name": addend.Label(), "quantity": addend.Quantity,
				})
			}
			avail := int(addend.Quantity) - crossed[idx]
			if avail <= 0 {
				continue
			}
			take := avail
			if remaining < take {
				take = remaining
			}
			from := int(addend.Quantity) - crossed[idx] - take
			marks[idx] = append(marks[idx], crossMark{From: from, Count: take, Color: color})
			crossed[idx] += take
			remaining -= take
		}
		if remaining > 0 {
			return nil, constraintErr(i18n.KeySubtractionExceeds, map[string]any{
				"name": sub.Label(), "short": remaining,
			})
		}
	}
	return marks, nil
}

// wrapResult draws the intuitive style's outer box around content that
// was rendered with one BoxPadding of inset, labels it from the result
// container and attaches the "?" badge.
func (r *Renderer) wrapResult(inner region, ox, oy float64, result *ast.Entity) region {
	pad := r.consts.BoxPadding
	w := inner.W + 2*pad
	h := inner.H + 2*pad

	r.canvas.Add(scene.Rect{
		X: ox, Y: oy, W: w, H: h,
		Stroke: r.theme.ResultBoxColor, StrokeWidth: 2, Rx: 6, Dash: "8,4",
	})

	if result != nil {
		if label := result.Label(); label != "" {
			r.canvas.Add(scene.Text{
				X: ox + w/2, Y: oy + h + labelOffset,
				Content: label, Size: labelSize,
				Fill: r.theme.LabelColor, Anchor: "middle", Weight: "bold",
			})
			r.canvas.Extend(ox+w, oy+h+labelOffset+4)
		}
	}

	const badgeR = 16
	r.canvas.Add(
		scene.Circle{X: ox + w, Y: oy, R: badgeR, Fill: r.theme.BadgeColor},
		scene.Text{
			X: ox + w, Y: oy + 6,
			Content: "?", Size: 18, Fill: "#ffffff", Anchor: "middle", Weight: "bold",
		},
	)
	return region{W: w + badgeR, H: h + labelOffset + 6}
}
