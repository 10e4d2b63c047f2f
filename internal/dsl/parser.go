// Package dsl parses the textual problem language into an operation tree.
//
// The grammar is small:
//
//	Operand := Bare | Call
//	Call    := ident "(" Operand ("," Operand)* ")"
//	Bare    := ident "[" (key ":" value ("," key ":" value)*)? "]"
//
// A bare entity at the top level is wrapped as an identity node, and
// unittrans(main, unit) collapses the unit operand into the main one.
// Unknown operation names parse fine and are rejected by the renderers,
// so the parser stays purely about grammar.
package dsl

import (
	"strconv"
	"strings"

	"github.com/mathpict/mathpict/internal/ast"
)

// Parse turns DSL text into an operation tree. It either returns a
// complete tree or a *ParseError, never partial output.
func Parse(input string) (*ast.Node, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, parseErrf(input, keyEmptyOperand)
	}
	op, err := parseOperand(s)
	if err != nil {
		return nil, err
	}
	switch v := op.(type) {
	case *ast.Node:
		return v, nil
	case *ast.Entity:
		return &ast.Node{Kind: ast.KindIdentity, Operands: []ast.Operand{v}}, nil
	}
	return nil, parseErrf(s, keyParseFailed)
}

func parseOperand(s string) (ast.Operand, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, parseErrf(s, keyEmptyOperand)
	}

	paren := strings.IndexByte(s, '(')
	bracket := strings.IndexByte(s, '[')

	switch {
	case paren >= 0 && (bracket < 0 || paren < bracket):
		return parseCall(s, paren)
	case bracket >= 0:
		return parseBare(s, bracket)
	default:
		return nil, parseErrf(s, keyParseFailed)
	}
}

func parseCall(s string, open int) (ast.Operand, error) {
	name := strings.TrimSpace(s[:open])
	if name == "" {
		return nil, parseErrf(s, keyMissingOperation)
	}
	closing := matchClose(s, open)
	if closing < 0 || strings.TrimSpace(s[closing+1:]) != "" {
		return nil, parseErrf(s, keyUnbalanced)
	}

	inner := s[open+1 : closing]
	if strings.TrimSpace(inner) == "" {
		return nil, parseErrf(s, keyEmptyOperand)
	}
	args, err := splitTop(inner)
	if err != nil {
		return nil, err
	}

	operands := make([]ast.Operand, 0, len(args))
	for _, arg := range args {
		if arg == "" {
			return nil, parseErrf(s, keyEmptyOperand)
		}
		op, err := parseOperand(arg)
		if err != nil {
			return nil, err
		}
		operands = append(operands, op)
	}

	kind := ast.Kind(name)
	if kind == ast.KindUnitTrans {
		return collapseUnitTrans(s, operands)
	}

	node := &ast.Node{Kind: kind, Operands: operands}

	// A trailing bare operand beyond the operation's two working
	// operands describes the container the result is presented in.
	if kind != ast.KindComparison && kind != ast.KindIdentity && len(node.Operands) > 2 {
		last := node.Operands[len(node.Operands)-1]
		if result, ok := last.(*ast.Entity); ok {
			node.Result = result
			node.Operands = node.Operands[:len(node.Operands)-1]
		}
	}
	return node, nil
}

// collapseUnitTrans folds unittrans(main, unit) into the main entity:
// the unit operand contributes only its name and quantity and is then
// discarded.
func collapseUnitTrans(s string, operands []ast.Operand) (ast.Operand, error) {
	if len(operands) != 2 {
		return nil, parseErrf(s, keyEmptyOperand)
	}
	main, ok := operands[0].(*ast.Entity)
	if !ok {
		return nil, parseErrf(s, keyParseFailed)
	}
	unit, ok := operands[1].(*ast.Entity)
	if !ok {
		return nil, parseErrf(s, keyParseFailed)
	}
	main.UnitTransUnit = unit.Name
	main.UnitTransValue = unit.Quantity
	return main, nil
}

func parseBare(s string, open int) (*ast.Entity, error) {
	name := strings.TrimSpace(s[:open])
	if name == "" {
		return nil, parseErrf(s, keyEmptyOperand)
	}
	closing := matchClose(s, open)
	if closing < 0 || strings.TrimSpace(s[closing+1:]) != "" {
		return nil, parseErrf(s, keyUnbalanced)
	}

	e := &ast.Entity{ContainerName: name}
	inner := strings.TrimSpace(s[open+1 : closing])
	if inner == "" {
		return e, nil
	}

	props, err := splitTop(inner)
	if err != nil {
		return nil, err
	}
	for _, prop := range props {
		key, value, found := strings.Cut(prop, ":")
		if !found {
			return nil, parseErrf(prop, keyBadProperty)
		}
		setProperty(e, strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return e, nil
}

func setProperty(e *ast.Entity, key, value string) {
	switch key {
	case "entity_name":
		e.Name = value
	case "entity_type":
		e.EntityType = value
	case "entity_quantity":
		e.Quantity = parseQuantity(value)
	case "container_name":
		e.ContainerName = value
	case "container_type":
		e.ContainerType = value
	case "attr_name":
		e.AttrName = value
	case "attr_type":
		e.AttrType = value
	case "unittrans_unit":
		e.UnitTransUnit = value
	case "unittrans_value":
		e.UnitTransValue = parseQuantity(value)
	default:
		if e.Attrs == nil {
			e.Attrs = make(map[string]string)
		}
		e.Attrs[key] = value
	}
}

// parseQuantity parses integers when no decimal point is present and
// floats otherwise, defaulting to 0 on any failure. Quantities are
// counts of items, so negative values clamp to 0 as well.
func parseQuantity(value string) float64 {
	q := 0.0
	if !strings.Contains(value, ".") {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			q = float64(n)
		}
	} else if f, err := strconv.ParseFloat(value, 64); err == nil {
		q = f
	}
	if q < 0 {
		return 0
	}
	return q
}
