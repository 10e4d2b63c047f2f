package dsl_test

import (
	"errors"
	"testing"

	"github.com/mathpict/mathpict/internal/ast"
	"github.com/mathpict/mathpict/internal/dsl"
	"github.com/mathpict/mathpict/internal/i18n"
	"github.com/stretchr/testify/require"
)

func TestParse_Addition(t *testing.T) {
	input := `addition(container1[entity_name: red apples, entity_type: apple, entity_quantity: 3], container2[entity_name: green apples, entity_type: apple, entity_quantity: 4])`

	root, err := dsl.Parse(input)
	require.NoError(t, err)
	require.Equal(t, ast.KindAddition, root.Kind)
	require.Len(t, root.Operands, 2)
	require.Nil(t, root.Result)

	first, ok := root.Operands[0].(*ast.Entity)
	require.True(t, ok)
	require.Equal(t, "red apples", first.Name)
	require.Equal(t, "apple", first.EntityType)
	require.Equal(t, 3.0, first.Quantity)
	require.Equal(t, "container1", first.ContainerName)

	second, ok := root.Operands[1].(*ast.Entity)
	require.True(t, ok)
	require.Equal(t, "green apples", second.Name)
	require.Equal(t, 4.0, second.Quantity)
}

func TestParse_BareEntityWrapsAsIdentity(t *testing.T) {
	root, err := dsl.Parse(`basket[entity_name: pears, entity_type: pear, entity_quantity: 5]`)
	require.NoError(t, err)
	require.Equal(t, ast.KindIdentity, root.Kind)
	require.Len(t, root.Operands, 1)

	e, ok := root.Operands[0].(*ast.Entity)
	require.True(t, ok)
	require.Equal(t, "pears", e.Name)
	require.Equal(t, "basket", e.ContainerName)
}

func TestParse_NestedOperations(t *testing.T) {
	input := `subtraction(addition(a[entity_quantity: 3], b[entity_quantity: 4]), c[entity_quantity: 2])`

	root, err := dsl.Parse(input)
	require.NoError(t, err)
	require.Equal(t, ast.KindSubtraction, root.Kind)
	require.Len(t, root.Operands, 2)

	inner, ok := root.Operands[0].(*ast.Node)
	require.True(t, ok)
	require.Equal(t, ast.KindAddition, inner.Kind)
	require.Len(t, inner.Operands, 2)
}

func TestParse_TrailingOperandBecomesResult(t *testing.T) {
	input := `division(plate[entity_type: cake, entity_quantity: 6], guest[entity_type: guest, entity_quantity: 3], share[entity_name: per guest])`

	root, err := dsl.Parse(input)
	require.NoError(t, err)
	require.Len(t, root.Operands, 2)
	require.NotNil(t, root.Result)
	require.Equal(t, "per guest", root.Result.Name)
	require.Equal(t, "share", root.Result.ContainerName)
}

func TestParse_ComparisonKeepsAllOperands(t *testing.T) {
	input := `comparison(addition(a[entity_quantity: 1], b[entity_quantity: 2]), c[entity_quantity: 3])`

	root, err := dsl.Parse(input)
	require.NoError(t, err)
	require.Equal(t, ast.KindComparison, root.Kind)
	require.Len(t, root.Operands, 2)
	require.Nil(t, root.Result)
}

func TestParse_UnitTransCollapses(t *testing.T) {
	input := `unittrans(bottle[entity_name: juice, entity_type: juice, entity_quantity: 2], unit[entity_name: milliliter, entity_quantity: 2000])`

	root, err := dsl.Parse(input)
	require.NoError(t, err)
	require.Equal(t, ast.KindIdentity, root.Kind)
	require.Len(t, root.Operands, 1)

	e, ok := root.Operands[0].(*ast.Entity)
	require.True(t, ok)
	require.Equal(t, "juice", e.Name)
	require.Equal(t, 2.0, e.Quantity)
	require.Equal(t, "milliliter", e.UnitTransUnit)
	require.Equal(t, 2000.0, e.UnitTransValue)
	require.Equal(t, "juice (2000 milliliter)", e.Label())
}

func TestParse_UnknownKindIsAccepted(t *testing.T) {
	root, err := dsl.Parse(`frobnicate(a[entity_quantity: 1], b[entity_quantity: 2])`)
	require.NoError(t, err)
	require.Equal(t, ast.Kind("frobnicate"), root.Kind)
	require.False(t, root.Kind.Known())
}

func TestParse_Quantities(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  float64
	}{
		{name: "integer", value: "7", want: 7},
		{name: "float", value: "2.5", want: 2.5},
		{name: "garbage defaults to zero", value: "many", want: 0},
		{name: "negative integer clamps to zero", value: "-3", want: 0},
		{name: "negative float clamps to zero", value: "-2.5", want: 0},
		{name: "empty defaults to zero", value: "", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := dsl.Parse("box[entity_quantity: " + tc.value + "]")
			require.NoError(t, err)
			e := root.Operands[0].(*ast.Entity)
			require.Equal(t, tc.want, e.Quantity)
		})
	}
}

func TestParse_UnknownPropertyGoesToAttrs(t *testing.T) {
	root, err := dsl.Parse(`box[entity_name: marbles, color: blue]`)
	require.NoError(t, err)
	e := root.Operands[0].(*ast.Entity)
	require.Equal(t, map[string]string{"color": "blue"}, e.Attrs)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantKey string
	}{
		{name: "empty input", input: "   ", wantKey: i18n.KeyEmptyOperand},
		{name: "unbalanced call", input: "addition(a[entity_quantity: 1]", wantKey: i18n.KeyUnbalanced},
		{name: "unbalanced entity", input: "a[entity_quantity: 1", wantKey: i18n.KeyUnbalanced},
		{name: "trailing junk", input: "a[entity_quantity: 1] extra", wantKey: i18n.KeyUnbalanced},
		{name: "missing operation name", input: "(a[entity_quantity: 1], b[entity_quantity: 2])", wantKey: i18n.KeyMissingOperation},
		{name: "empty operand", input: "addition(, b[entity_quantity: 2])", wantKey: i18n.KeyEmptyOperand},
		{name: "empty call body", input: "addition()", wantKey: i18n.KeyEmptyOperand},
		{name: "property without colon", input: "a[entity_quantity]", wantKey: i18n.KeyBadProperty},
		{name: "no structure at all", input: "hello world", wantKey: i18n.KeyParseFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := dsl.Parse(tc.input)
			require.Nil(t, root)
			require.Error(t, err)

			var perr *dsl.ParseError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, tc.wantKey, perr.Key)
			require.Contains(t, perr.Translate(i18n.Default), tc.wantKey)
		})
	}
}
