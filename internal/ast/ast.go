// Package ast defines the operation tree produced by the DSL parser and
// consumed by the layout planner and renderers.
//
// The tree is built once per render request. Because the duplicate-name
// resolution pass and the layout planner write derived fields into
// entities, each style render must operate on its own deep copy (see
// Clone). Trace paths used for UI mapping are kept in a request-scoped
// side table (Trace) instead of being injected into entities.
package ast

// Kind identifies an operation node.
type Kind string

const (
	KindAddition       Kind = "addition"
	KindSubtraction    Kind = "subtraction"
	KindMultiplication Kind = "multiplication"
	KindDivision       Kind = "division"
	KindSurplus        Kind = "surplus"
	KindArea           Kind = "area"
	KindUnitTrans      Kind = "unittrans"
	KindComparison     Kind = "comparison"
	KindIdentity       Kind = "identity"
)

// Known reports whether k is one of the operation kinds the renderers
// understand. Unknown kinds parse fine and fail at render time.
func (k Kind) Known() bool {
	switch k {
	case KindAddition, KindSubtraction, KindMultiplication, KindDivision,
		KindSurplus, KindArea, KindUnitTrans, KindComparison, KindIdentity:
		return true
	}
	return false
}

// Priority returns the bracketing precedence of the kind. Kinds outside
// the precedence table share the lowest priority.
func (k Kind) Priority() int {
	switch k {
	case KindMultiplication, KindDivision:
		return 2
	case KindAddition, KindSubtraction:
		return 1
	}
	return 0
}

// Bracket side markers set by the layout planner on the first and last
// leaf entity of a bracketed subexpression.
const (
	BracketLeft  = "left"
	BracketRight = "right"
)

// Entity is a named container holding a typed, quantified set of items.
// The geometry fields are derived by the layout planner and meaningless
// before planning.
type Entity struct {
	Name          string
	EntityType    string
	Quantity      float64
	ContainerName string
	ContainerType string
	AttrName      string
	AttrType      string

	// Unit conversion carried over from a collapsed unittrans operand.
	UnitTransUnit  string
	UnitTransValue float64

	// Attrs holds unrecognized DSL keys verbatim, so future keys pass
	// through the parser without a grammar change.
	Attrs map[string]string

	// Bracket is BracketLeft or BracketRight when this entity opens or
	// closes a bracketed subexpression, else empty.
	Bracket string

	// Derived layout state.
	Class  Class
	X      float64
	Y      float64
	Width  float64
	Height float64
	Cols   int
	Rows   int
}

// Class is the per-entity rendering strategy chosen by the classifier.
type Class string

const (
	ClassNormal     Class = "normal"
	ClassRow        Class = "row"
	ClassColumn     Class = "column"
	ClassLarge      Class = "large"
	ClassMultiplier Class = "multiplier"
)

// Label returns the text shown on an entity box: the entity name,
// extended with the collapsed unit conversion when one is present.
func (e *Entity) Label() string {
	name := e.Name
	if name == "" {
		name = e.ContainerName
	}
	if e.UnitTransUnit != "" {
		return name + " (" + FormatQuantity(e.UnitTransValue) + " " + e.UnitTransUnit + ")"
	}
	return name
}

// IntegerQuantity reports whether the quantity carries no fractional part.
func (e *Entity) IntegerQuantity() bool {
	return e.Quantity == float64(int64(e.Quantity))
}

// Operand is either an *Entity leaf or a nested *Node.
type Operand interface {
	isOperand()
}

func (*Entity) isOperand() {}
func (*Node) isOperand()   {}

// Node is one operation over ordered operands. Non-identity,
// non-comparison nodes have exactly two operands; identity has one;
// comparison has two recursive sides.
type Node struct {
	Kind     Kind
	Operands []Operand

	// Result describes the container the outcome is presented in. It is
	// optional everywhere except area, where it names the shape icon.
	Result *Entity
}

// Entities returns the leaf entities of the node's direct operands, in
// order, skipping nested nodes.
func (n *Node) Entities() []*Entity {
	out := make([]*Entity, 0, len(n.Operands))
	for _, op := range n.Operands {
		if e, ok := op.(*Entity); ok {
			out = append(out, e)
		}
	}
	return out
}

// Walk calls fn for every node in the tree, parent before children.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, op := range n.Operands {
		if child, ok := op.(*Node); ok {
			child.Walk(fn)
		}
	}
}

// Leaves returns every leaf entity in the subtree, left to right.
func (n *Node) Leaves() []*Entity {
	var out []*Entity
	for _, op := range n.Operands {
		switch v := op.(type) {
		case *Entity:
			out = append(out, v)
		case *Node:
			out = append(out, v.Leaves()...)
		}
	}
	return out
}
