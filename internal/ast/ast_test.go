package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mathpict/mathpict/internal/ast"
	"github.com/stretchr/testify/require"
)

func entity(name, typ string, qty float64) *ast.Entity {
	return &ast.Entity{Name: name, EntityType: typ, Quantity: qty, ContainerName: name}
}

func TestKind_Priority(t *testing.T) {
	require.Equal(t, 2, ast.KindMultiplication.Priority())
	require.Equal(t, 2, ast.KindDivision.Priority())
	require.Equal(t, 1, ast.KindAddition.Priority())
	require.Equal(t, 1, ast.KindSubtraction.Priority())
	require.Equal(t, 0, ast.KindComparison.Priority())
	require.Equal(t, 0, ast.Kind("frobnicate").Priority())
}

func TestEntity_IntegerQuantity(t *testing.T) {
	require.True(t, entity("a", "apple", 3).IntegerQuantity())
	require.True(t, entity("a", "apple", 0).IntegerQuantity())
	require.False(t, entity("a", "apple", 2.5).IntegerQuantity())
}

func TestNode_Leaves(t *testing.T) {
	a, b, c := entity("a", "apple", 3), entity("b", "apple", 4), entity("c", "apple", 2)
	root := &ast.Node{
		Kind: ast.KindSubtraction,
		Operands: []ast.Operand{
			&ast.Node{Kind: ast.KindAddition, Operands: []ast.Operand{a, b}},
			c,
		},
	}

	leaves := root.Leaves()
	require.Equal(t, []*ast.Entity{a, b, c}, leaves)
}

func TestNode_Clone_IsDeep(t *testing.T) {
	a := entity("a", "apple", 3)
	a.Attrs = map[string]string{"color": "red"}
	root := &ast.Node{
		Kind:     ast.KindAddition,
		Operands: []ast.Operand{a, entity("b", "apple", 4)},
		Result:   entity("r", "apple", 0),
	}

	clone := root.Clone()
	require.Empty(t, cmp.Diff(root, clone))

	clone.Leaves()[0].Quantity = 99
	clone.Leaves()[0].Attrs["color"] = "green"
	clone.Result.Name = "changed"
	require.Equal(t, 3.0, a.Quantity)
	require.Equal(t, "red", a.Attrs["color"])
	require.Equal(t, "r", root.Result.Name)
}

func TestTrace_CloneTracedInheritsPaths(t *testing.T) {
	a, b := entity("a", "apple", 3), entity("b", "apple", 4)
	root := &ast.Node{Kind: ast.KindAddition, Operands: []ast.Operand{a, b}}

	trace := ast.NewTrace()
	trace.AssignTree(root)
	require.Equal(t, "0", trace.Path(a))
	require.Equal(t, "1", trace.Path(b))

	clone := root.CloneTraced(trace)
	leaves := clone.Leaves()
	require.Equal(t, "0", trace.Path(leaves[0]))
	require.Equal(t, "1", trace.Path(leaves[1]))
}

func TestTrace_AssignTreePaths(t *testing.T) {
	a, b, c := entity("a", "apple", 3), entity("b", "apple", 4), entity("c", "apple", 2)
	r := entity("r", "apple", 0)
	root := &ast.Node{
		Kind: ast.KindSubtraction,
		Operands: []ast.Operand{
			&ast.Node{Kind: ast.KindAddition, Operands: []ast.Operand{a, b}},
			c,
		},
		Result: r,
	}

	trace := ast.NewTrace()
	trace.AssignTree(root)
	require.Equal(t, "0.0", trace.Path(a))
	require.Equal(t, "0.1", trace.Path(b))
	require.Equal(t, "1", trace.Path(c))
	require.Equal(t, "result", trace.Path(r))
}

func TestTrace_Derive(t *testing.T) {
	origin := entity("a", "apple", 6)
	trace := ast.NewTrace()
	trace.Assign(origin, "0")

	replica := origin.Clone()
	path := trace.Derive(replica, origin, 2)
	require.Equal(t, "0[2]", path)
	require.Equal(t, "0[2]", trace.Path(replica))
}

func TestResolveDuplicates(t *testing.T) {
	t.Run("second container of a shared type is renumbered", func(t *testing.T) {
		a := &ast.Entity{ContainerName: "left", ContainerType: "basket", Quantity: 3}
		b := &ast.Entity{ContainerName: "right", ContainerType: "basket", Quantity: 4}
		root := &ast.Node{Kind: ast.KindAddition, Operands: []ast.Operand{a, b}}

		ast.ResolveDuplicates(root)
		require.Equal(t, "basket", a.ContainerType)
		require.Equal(t, "basket-2", b.ContainerType)
	})

	t.Run("same container keeps its type", func(t *testing.T) {
		a := &ast.Entity{ContainerName: "shelf", ContainerType: "shelf", Quantity: 3}
		b := &ast.Entity{ContainerName: "shelf", ContainerType: "shelf", Quantity: 4}
		root := &ast.Node{Kind: ast.KindAddition, Operands: []ast.Operand{a, b}}

		ast.ResolveDuplicates(root)
		require.Equal(t, "shelf", a.ContainerType)
		require.Equal(t, "shelf", b.ContainerType)
	})

	t.Run("result name collision gains a suffix", func(t *testing.T) {
		a := &ast.Entity{ContainerName: "box", Name: "pears", Quantity: 3}
		b := &ast.Entity{ContainerName: "crate", Quantity: 4}
		r := &ast.Entity{ContainerName: "box", Name: "pears"}
		root := &ast.Node{Kind: ast.KindAddition, Operands: []ast.Operand{a, b}, Result: r}

		ast.ResolveDuplicates(root)
		require.Equal(t, "box (result)", r.ContainerName)
		require.Equal(t, "pears (result)", r.Name)
		require.Equal(t, "box", a.ContainerName)
	})
}

func TestFormatQuantity(t *testing.T) {
	require.Equal(t, "3", ast.FormatQuantity(3))
	require.Equal(t, "2.5", ast.FormatQuantity(2.5))
	require.Equal(t, "0", ast.FormatQuantity(0))
	require.Equal(t, "1000000", ast.FormatQuantity(1e6))
}
