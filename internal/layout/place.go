package layout

import "github.com/mathpict/mathpict/internal/ast"

// OperatorSlot is a reserved square for an operator, equals or
// placeholder glyph, vertically centered against the row's reference
// height.
type OperatorSlot struct {
	Kind ast.Kind
	X    float64
	Y    float64
	Size float64
}

// Glyph is a literal bracket character placed in the row.
type Glyph struct {
	Text string
	X    float64
	Y    float64
	Size float64
}

// RowOptions selects the row features that differ between styles.
type RowOptions struct {
	// InlineOperators reserves slots for operator glyphs between
	// operands and emits bracket glyphs (the formal style).
	InlineOperators bool
	// AppendResult reserves the "=" and "?" slots after the last
	// operand. Identity renders drop them.
	AppendResult bool
}

// Row is a fully placed left-to-right operand sequence. Coordinates are
// relative to the row origin; MinY can be negative when a box is taller
// than the leading one.
type Row struct {
	Terms       []Term
	Operators   []OperatorSlot
	Brackets    []Glyph
	Equals      *OperatorSlot
	Placeholder *OperatorSlot
	Width       float64
	MinY        float64
	MaxY        float64
}

// Height returns the vertical extent of the row.
func (r Row) Height() float64 {
	return r.MaxY - r.MinY
}

// PlaceRow sizes every term's box and walks them left to right with the
// configured gap, vertically centering everything against the first
// box's height. Entities must already be classified and grid-assigned.
func PlaceRow(terms []Term, c Constants, opts RowOptions) Row {
	row := Row{Terms: terms}
	if len(terms) == 0 {
		return row
	}

	// The first box sets the reference height; multiplier boxes adopt it.
	first := terms[0].Entity
	SizeBox(first, c, 0)
	refH := first.Height
	for _, t := range terms[1:] {
		SizeBox(t.Entity, c, refH)
	}

	x := 0.0
	centered := func(h float64) float64 { return (refH - h) / 2 }
	slot := func(kind ast.Kind) OperatorSlot {
		s := OperatorSlot{Kind: kind, X: x, Y: centered(c.Operator), Size: c.Operator}
		x += c.Operator + c.Gap
		return s
	}
	bracket := func(text string) {
		row.Brackets = append(row.Brackets, Glyph{Text: text, X: x, Y: 0, Size: refH})
		x += c.Operator/2 + c.Gap
	}

	for i := range terms {
		t := &terms[i]
		if opts.InlineOperators && t.Op != "" {
			row.Operators = append(row.Operators, slot(t.Op))
		}
		if opts.InlineOperators {
			for j := 0; j < t.Open; j++ {
				bracket("(")
			}
		}
		t.Entity.X = x
		t.Entity.Y = centered(t.Entity.Height)
		x += t.Entity.Width + c.Gap
		if opts.InlineOperators {
			for j := 0; j < t.Close; j++ {
				bracket(")")
			}
		}
	}

	if opts.AppendResult {
		eq := slot("")
		row.Equals = &eq
		ph := slot("")
		row.Placeholder = &ph
	}

	row.Width = x - c.Gap
	row.MinY = 0
	row.MaxY = refH
	for _, t := range terms {
		if t.Entity.Y < row.MinY {
			row.MinY = t.Entity.Y
		}
		if bottom := t.Entity.Y + t.Entity.Height; bottom > row.MaxY {
			row.MaxY = bottom
		}
	}
	return row
}
