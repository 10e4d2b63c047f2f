package dsl

import (
	"sort"
	"strings"

	"github.com/mathpict/mathpict/internal/ast"
)

// Serialize emits the normal form of a tree: canonical property order,
// single spacing, identity wrappers unwrapped. Serialize∘Parse is
// stable for any well-formed input, which the tests rely on.
func Serialize(n *ast.Node) string {
	if n == nil {
		return ""
	}
	if n.Kind == ast.KindIdentity && len(n.Operands) == 1 {
		return serializeOperand(n.Operands[0])
	}
	return serializeNode(n)
}

func serializeNode(n *ast.Node) string {
	var sb strings.Builder
	sb.WriteString(string(n.Kind))
	sb.WriteByte('(')
	for i, op := range n.Operands {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(serializeOperand(op))
	}
	if n.Result != nil {
		sb.WriteString(", ")
		sb.WriteString(serializeEntity(n.Result))
	}
	sb.WriteByte(')')
	return sb.String()
}

func serializeOperand(op ast.Operand) string {
	switch v := op.(type) {
	case *ast.Entity:
		return serializeEntity(v)
	case *ast.Node:
		return serializeNode(v)
	}
	return ""
}

func serializeEntity(e *ast.Entity) string {
	var props []string
	add := func(key, value string) {
		if value != "" {
			props = append(props, key+": "+value)
		}
	}

	add("entity_name", e.Name)
	add("entity_type", e.EntityType)
	props = append(props, "entity_quantity: "+ast.FormatQuantity(e.Quantity))
	add("container_type", e.ContainerType)
	add("attr_name", e.AttrName)
	add("attr_type", e.AttrType)
	add("unittrans_unit", e.UnitTransUnit)
	if e.UnitTransUnit != "" {
		props = append(props, "unittrans_value: "+ast.FormatQuantity(e.UnitTransValue))
	}

	extra := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		extra = append(extra, k)
	}
	sort.Strings(extra)
	for _, k := range extra {
		add(k, e.Attrs[k])
	}

	return e.ContainerName + "[" + strings.Join(props, ", ") + "]"
}
