package ast

import (
	"fmt"
	"strings"
)

// Trace is a request-scoped side table mapping entities to the stable
// path tokens the UI uses to relate diagram boxes back to DSL operands.
// Keeping paths out of the entities themselves keeps the tree free of
// UI concerns and lets cloned trees share one table per request.
type Trace struct {
	paths   map[*Entity]string
	counter int
}

// NewTrace returns an empty trace table.
func NewTrace() *Trace {
	return &Trace{paths: make(map[*Entity]string)}
}

// Assign records a path for an entity, generating one from the running
// counter when path is empty.
func (t *Trace) Assign(e *Entity, path string) string {
	if path == "" {
		path = fmt.Sprintf("operand-%d", t.counter)
	}
	t.counter++
	t.paths[e] = path
	return path
}

// Inherit copies the path of src onto dst. Clones keep the path of the
// entity they were copied from.
func (t *Trace) Inherit(dst, src *Entity) {
	if p, ok := t.paths[src]; ok {
		t.paths[dst] = p
	}
}

// Derive records a path for a replica entity, suffixing the origin's
// path with the replica index, e.g. "operand-0[2]".
func (t *Trace) Derive(replica, origin *Entity, index int) string {
	base := t.paths[origin]
	if base == "" {
		base = t.Assign(origin, "")
	}
	path := fmt.Sprintf("%s[%d]", base, index)
	t.paths[replica] = path
	return path
}

// Path returns the recorded path for an entity, or "" when none exists.
func (t *Trace) Path(e *Entity) string {
	return t.paths[e]
}

// AssignTree walks the tree and assigns positional paths to every leaf
// entity that has none yet, e.g. "0.1" for the second operand of the
// first child.
func (t *Trace) AssignTree(root *Node) {
	var walk func(n *Node, prefix string)
	walk = func(n *Node, prefix string) {
		for i, op := range n.Operands {
			seg := fmt.Sprintf("%d", i)
			if prefix != "" {
				seg = prefix + "." + seg
			}
			switch v := op.(type) {
			case *Entity:
				if _, ok := t.paths[v]; !ok {
					t.Assign(v, seg)
				}
			case *Node:
				walk(v, seg)
			}
		}
		if n.Result != nil {
			if _, ok := t.paths[n.Result]; !ok {
				path := "result"
				if prefix != "" {
					path = prefix + ".result"
				}
				t.Assign(n.Result, path)
			}
		}
	}
	walk(root, "")
}

// FormatQuantity renders a quantity the way the DSL writes it: integers
// without a decimal point, fractions with one.
func FormatQuantity(q float64) string {
	s := fmt.Sprintf("%g", q)
	// %g may switch to exponent form for extreme values; quantities in
	// word problems never get there, but keep the output sane anyway.
	if strings.ContainsAny(s, "eE") {
		s = fmt.Sprintf("%f", q)
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}
