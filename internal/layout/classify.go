package layout

import (
	"math"

	"github.com/mathpict/mathpict/internal/ast"
)

// Classify assigns the layout class of a single leaf entity.
func Classify(e *ast.Entity, c Constants) ast.Class {
	switch {
	case e.EntityType == "multiplier":
		return ast.ClassMultiplier
	case e.Quantity > float64(c.MaxItems) || !e.IntegerQuantity():
		return ast.ClassLarge
	case e.ContainerType == "row" || e.AttrType == "row":
		return ast.ClassRow
	case e.ContainerType == "column" || e.AttrType == "column":
		return ast.ClassColumn
	default:
		return ast.ClassNormal
	}
}

// ClassifyAll classifies every entity in place.
func ClassifyAll(entities []*ast.Entity, c Constants) {
	for _, e := range entities {
		e.Class = Classify(e, c)
	}
}

// AssignGrid gives all normal-class entities that are laid out together
// one shared grid derived from the largest quantity among them, so
// visually compared boxes stay grid-aligned even when quantities
// differ. cols = ceil(sqrt(maxQty)), rows = ceil(maxQty/cols).
func AssignGrid(entities []*ast.Entity) {
	maxQty := 0.0
	for _, e := range entities {
		if e.Class == ast.ClassNormal && e.Quantity > maxQty {
			maxQty = e.Quantity
		}
	}
	if maxQty == 0 {
		maxQty = 1
	}
	cols := int(math.Ceil(math.Sqrt(maxQty)))
	rows := int(math.Ceil(maxQty / float64(cols)))
	for _, e := range entities {
		if e.Class == ast.ClassNormal {
			e.Cols = cols
			e.Rows = rows
		}
	}
}
