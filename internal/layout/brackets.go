package layout

import "github.com/mathpict/mathpict/internal/ast"

// Term is one element of a flattened expression: the entity, the
// operator applied before it (empty Kind for the leading term) and how
// many brackets open before or close after it.
type Term struct {
	Op     ast.Kind
	Entity *ast.Entity
	Open   int
	Close  int
}

// Flatten linearizes a nested operation tree into a left-to-right term
// sequence, inserting bracket markers by operator precedence. A nested
// child is bracketed when its priority is below the parent's, or when
// priorities tie and the pair is not an associative same-kind pair
// (addition inside addition, multiplication inside multiplication).
func Flatten(n *ast.Node) []Term {
	var terms []Term
	flattenInto(n, "", &terms)

	// Mirror the bracket markers onto the entities so the data model's
	// left/right bracket fields stay populated for consumers that read
	// entities directly.
	for i := range terms {
		if terms[i].Open > 0 {
			terms[i].Entity.Bracket = ast.BracketLeft
		}
		if terms[i].Close > 0 {
			terms[i].Entity.Bracket = ast.BracketRight
		}
	}
	return terms
}

func flattenInto(n *ast.Node, leadOp ast.Kind, terms *[]Term) {
	for i, operand := range n.Operands {
		op := n.Kind
		if i == 0 {
			op = leadOp
		}
		switch child := operand.(type) {
		case *ast.Entity:
			*terms = append(*terms, Term{Op: op, Entity: child})
		case *ast.Node:
			start := len(*terms)
			flattenInto(child, op, terms)
			if len(*terms) > start && needsBrackets(n.Kind, child.Kind) {
				(*terms)[start].Open++
				(*terms)[len(*terms)-1].Close++
			}
		}
	}
}

func needsBrackets(parent, child ast.Kind) bool {
	pp, cp := parent.Priority(), child.Priority()
	if pp > cp {
		return true
	}
	if pp != cp {
		return false
	}
	associative := parent == child &&
		(parent == ast.KindAddition || parent == ast.KindMultiplication)
	return !associative
}
