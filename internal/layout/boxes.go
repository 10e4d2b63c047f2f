package layout

import "github.com/mathpict/mathpict/internal/ast"

// SizeBox computes the box dimensions of a classified entity and writes
// them onto the entity. refHeight is the height multiplier boxes adopt;
// pass 0 when no reference box exists yet.
func SizeBox(e *ast.Entity, c Constants, refHeight float64) {
	cell := c.Item + c.ItemPadding
	switch e.Class {
	case ast.ClassMultiplier:
		e.Width = 2 * c.Unit
		if refHeight > 0 {
			e.Height = refHeight
		} else {
			e.Height = 2 * c.Unit
		}
	case ast.ClassLarge:
		side := 4*c.Item + 2*c.ItemPadding
		e.Width = side
		e.Height = side
	case ast.ClassRow:
		e.Width = e.Quantity*cell + c.ItemPadding
		e.Height = cell + c.ItemPadding
	case ast.ClassColumn:
		e.Width = cell + c.ItemPadding
		e.Height = e.Quantity*cell + c.ItemPadding
	default: // normal
		e.Width = float64(e.Cols)*cell + c.ItemPadding
		e.Height = float64(e.Rows)*cell + c.ItemPadding
	}
}

// ItemCells returns the top-left corner of each drawn item inside a
// sized entity box, in fill order (row-major for normal boxes). The
// count is the integral quantity, capped at the box's cell capacity.
func ItemCells(e *ast.Entity, c Constants) [][2]float64 {
	cell := c.Item + c.ItemPadding
	count := int(e.Quantity)
	if count <= 0 {
		return nil
	}
	var cols int
	switch e.Class {
	case ast.ClassRow:
		cols = count
	case ast.ClassColumn:
		cols = 1
	case ast.ClassNormal:
		cols = e.Cols
	default:
		return nil
	}
	if cols <= 0 {
		return nil
	}

	cells := make([][2]float64, 0, count)
	for i := 0; i < count; i++ {
		col := i % cols
		row := i / cols
		x := e.X + c.ItemPadding + float64(col)*cell
		y := e.Y + c.ItemPadding + float64(row)*cell
		cells = append(cells, [2]float64{x, y})
	}
	return cells
}
