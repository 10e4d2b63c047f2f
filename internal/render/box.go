package render

import (
	"github.com/mathpict/mathpict/internal/ast"
	"github.com/mathpict/mathpict/internal/layout"
	"github.com/mathpict/mathpict/internal/scene"
)

const (
	labelSize   = 14
	labelOffset = 18
)

// crossMark crosses out a run of items inside a box: Count items
// starting at item index From, drawn in Color.
type crossMark struct {
	From  int
	Count int
	Color string
}

// drawEntityBox draws one sized entity box at the row origin (ox, oy):
// the outline, the items (or the large/multiplier summary), the label
// underneath, and any cross-out overlays.
func (r *Renderer) drawEntityBox(e *ast.Entity, ox, oy float64, marks []crossMark) error {
	x, y := ox+e.X, oy+e.Y
	r.canvas.Add(scene.Rect{
		X: x, Y: y, W: e.Width, H: e.Height,
		Stroke: r.theme.BoxColor, StrokeWidth: 2, Rx: 4,
	})

	switch e.Class {
	case ast.ClassMultiplier:
		r.canvas.Add(scene.Text{
			X: x + e.Width/2, Y: y + e.Height/2 + 8,
			Content: "× " + ast.FormatQuantity(e.Quantity),
			Size:    24, Fill: r.theme.LabelColor, Anchor: "middle", Weight: "bold",
		})
	case ast.ClassLarge:
		if err := r.drawLargeContent(e, x, y); err != nil {
			return err
		}
	default:
		if err := r.drawItems(e, ox, oy, marks); err != nil {
			return err
		}
	}

	if label := e.Label(); label != "" {
		r.canvas.Add(scene.Text{
			X: x + e.Width/2, Y: y + e.Height + labelOffset,
			Content: label, Size: labelSize,
			Fill: r.theme.LabelColor, Anchor: "middle",
		})
		r.canvas.Extend(x+e.Width, y+e.Height+labelOffset+4)
	}
	return nil
}

// drawLargeContent renders the large-quantity summary: one doubled icon
// with the quantity as text, instead of item-by-item cells.
func (r *Renderer) drawLargeContent(e *ast.Entity, x, y float64) error {
	iconSize := 2 * r.consts.Item
	iconX := x + (e.Width-iconSize)/2
	iconY := y + r.consts.ItemPadding

	path, ok, err := r.resolveIcon(e.EntityType)
	if err != nil {
		return err
	}
	if ok {
		r.canvas.Add(scene.Icon{X: iconX, Y: iconY, W: iconSize, H: iconSize, Path: path})
	} else {
		r.canvas.Add(scene.Circle{
			X: iconX + iconSize/2, Y: iconY + iconSize/2, R: iconSize / 2,
			Stroke: r.theme.ItemStroke, StrokeWidth: 2,
		})
	}
	r.canvas.Add(scene.Text{
		X: x + e.Width/2, Y: y + e.Height - r.consts.ItemPadding,
		Content: "× " + ast.FormatQuantity(e.Quantity),
		Size:    20, Fill: r.theme.LabelColor, Anchor: "middle", Weight: "bold",
	})
	return nil
}

// drawItems fills a normal, row or column box with its item icons and
// overlays the cross-out marks.
func (r *Renderer) drawItems(e *ast.Entity, ox, oy float64, marks []crossMark) error {
	cells := layout.ItemCells(e, r.consts)
	if len(cells) == 0 {
		return nil
	}

	path, ok, err := r.resolveIcon(e.EntityType)
	if err != nil {
		return err
	}
	item := r.consts.Item
	for _, cell := range cells {
		cx, cy := ox+cell[0], oy+cell[1]
		if ok {
			r.canvas.Add(scene.Icon{X: cx, Y: cy, W: item, H: item, Path: path})
		} else {
			r.canvas.Add(scene.Circle{
				X: cx + item/2, Y: cy + item/2, R: item / 2,
				Stroke: r.theme.ItemStroke, StrokeWidth: 2,
			})
		}
	}

	for _, mark := range marks {
		for i := mark.From; i < mark.From+mark.Count && i < len(cells); i++ {
			cx, cy := ox+cells[i][0], oy+cells[i][1]
			r.canvas.Add(
				scene.Line{X1: cx, Y1: cy, X2: cx + item, Y2: cy + item, Stroke: mark.Color, StrokeWidth: 3},
				scene.Line{X1: cx, Y1: cy + item, X2: cx + item, Y2: cy, Stroke: mark.Color, StrokeWidth: 3},
			)
		}
	}
	return nil
}

// operatorIconNames maps operation kinds to the logical icon names
// looked up through the asset chain.
var operatorIconNames = map[ast.Kind]string{
	ast.KindAddition:       "plus",
	ast.KindSubtraction:    "minus",
	ast.KindMultiplication: "multiply",
	ast.KindDivision:       "divide",
	ast.KindSurplus:        "divide",
}

// operatorGlyphs are the drawn fallbacks when an operator icon is not
// resolvable.
var operatorGlyphs = map[ast.Kind]string{
	ast.KindAddition:       "+",
	ast.KindSubtraction:    "−",
	ast.KindMultiplication: "×",
	ast.KindDivision:       "÷",
	ast.KindSurplus:        "÷",
}

// drawOperator draws an operator slot: the resolved icon when present,
// a text glyph otherwise.
func (r *Renderer) drawOperator(slot layout.OperatorSlot, ox, oy float64, kind ast.Kind) error {
	return r.drawSymbolSlot(slot, ox, oy, operatorIconNames[kind], operatorGlyphs[kind])
}

func (r *Renderer) drawSymbolSlot(slot layout.OperatorSlot, ox, oy float64, iconName, glyph string) error {
	x, y := ox+slot.X, oy+slot.Y
	if path, ok := r.resolveSymbol(iconName); ok {
		r.canvas.Add(scene.Icon{X: x, Y: y, W: slot.Size, H: slot.Size, Path: path})
		return nil
	}
	r.canvas.Add(scene.Text{
		X: x + slot.Size/2, Y: y + slot.Size*0.85,
		Content: glyph, Size: slot.Size,
		Fill: r.theme.LabelColor, Anchor: "middle",
	})
	return nil
}

// drawBracket draws one literal bracket glyph sized to the row height.
func (r *Renderer) drawBracket(g layout.Glyph, ox, oy float64) {
	r.canvas.Add(scene.Text{
		X: ox + g.X, Y: oy + g.Y + g.Size*0.8,
		Content: g.Text, Size: g.Size,
		Fill: r.theme.LabelColor,
	})
}
