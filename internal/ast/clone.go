package ast

// Clone returns a deep copy of the node. The duplicate-resolution pass
// and the layout planner mutate entities in place, so the formal and
// intuitive renders of one request each take their own copy.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Kind:     n.Kind,
		Operands: make([]Operand, len(n.Operands)),
		Result:   n.Result.Clone(),
	}
	for i, op := range n.Operands {
		switch v := op.(type) {
		case *Entity:
			out.Operands[i] = v.Clone()
		case *Node:
			out.Operands[i] = v.Clone()
		}
	}
	return out
}

// CloneTraced deep-copies the tree while carrying each entity's trace
// path over to its copy, so per-style tree copies stay addressable
// through the one request-scoped trace table.
func (n *Node) CloneTraced(t *Trace) *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind}
	if n.Result != nil {
		out.Result = n.Result.Clone()
		t.Inherit(out.Result, n.Result)
	}
	out.Operands = make([]Operand, len(n.Operands))
	for i, op := range n.Operands {
		switch v := op.(type) {
		case *Entity:
			c := v.Clone()
			t.Inherit(c, v)
			out.Operands[i] = c
		case *Node:
			out.Operands[i] = v.CloneTraced(t)
		}
	}
	return out
}

// Clone returns a deep copy of the entity.
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	out := *e
	if e.Attrs != nil {
		out.Attrs = make(map[string]string, len(e.Attrs))
		for k, v := range e.Attrs {
			out.Attrs[k] = v
		}
	}
	return &out
}
