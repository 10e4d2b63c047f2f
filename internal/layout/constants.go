// Package layout turns classified entities into concrete box geometry:
// shared item grids, per-class box sizes, left-to-right placement with
// operator slots, and precedence-driven bracketing.
package layout

// Constants is the canonical measurement set shared by both diagram
// styles. The two historical renderers this replaces carried slightly
// diverging numbers; this single table is authoritative and theme files
// may override individual values by name.
type Constants struct {
	// Unit is the base measurement everything else derives from.
	Unit float64
	// Item is the rendered edge length of one item icon.
	Item float64
	// ItemPadding separates items inside a box and items from box edges.
	ItemPadding float64
	// BoxPadding separates major layout blocks.
	BoxPadding float64
	// Operator is the edge length of operator, equals and placeholder glyphs.
	Operator float64
	// Margin frames the finished document.
	Margin float64
	// Gap separates adjacent operands and operator glyphs.
	Gap float64
	// MaxItems is the largest quantity drawn item-by-item; larger (or
	// fractional) quantities switch the entity to the large rendering.
	MaxItems int
	// MaxReplicas caps replica boxes in multiplication and division.
	MaxReplicas int
	// MaxAreaSide caps the longer edge of an area shape.
	MaxAreaSide float64
}

// Defaults returns the canonical constant set.
func Defaults() Constants {
	const unit = 40
	return Constants{
		Unit:        unit,
		Item:        0.75 * unit,
		ItemPadding: 0.25 * unit,
		BoxPadding:  unit,
		Operator:    30,
		Margin:      50,
		Gap:         20,
		MaxItems:    10,
		MaxReplicas: 12,
		MaxAreaSide: 8 * unit,
	}
}
