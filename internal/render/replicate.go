package render

import (
	"context"

	"github.com/mathpict/mathpict/internal/ast"
	"github.com/mathpict/mathpict/internal/i18n"
	"github.com/mathpict/mathpict/internal/layout"
)

// replicationPlan is the shared shape of multiplication, division and
// surplus: some source entity replicated count times with perBox items
// in each box, plus an optional remainder box.
type replicationPlan struct {
	source *ast.Entity
	count  int
	perBox float64
	// remainder is the surplus item count, or -1 outside surplus mode.
	remainder int
}

// planReplication validates a multiplication/division/surplus node and
// derives its replication plan. The validation runs for both styles:
// divisibility and replica caps are properties of the operation, not of
// one layout.
func (r *Renderer) planReplication(n *ast.Node) (*replicationPlan, error) {
	if len(n.Operands) != 2 {
		return nil, constraintErr(i18n.KeyOperandCount, map[string]any{
			"kind": string(n.Kind), "count": len(n.Operands),
		})
	}
	first, ok1 := n.Operands[0].(*ast.Entity)
	second, ok2 := n.Operands[1].(*ast.Entity)
	if !ok1 || !ok2 {
		return nil, constraintErr(i18n.KeyNestedOperand, map[string]any{
			"kind": string(n.Kind),
		})
	}

	if n.Kind == ast.KindMultiplication {
		return r.planMultiplication(first, second)
	}
	return r.planDivision(n.Kind, first, second)
}

func (r *Renderer) planMultiplication(operand, multiplier *ast.Entity) (*replicationPlan, error) {
	if multiplier.EntityType != "multiplier" {
		return nil, constraintErr(i18n.KeyNotAMultiplier, map[string]any{
			"name": multiplier.Label(),
		})
	}
	if !multiplier.IntegerQuantity() {
		return nil, constraintErr(i18n.KeyNonIntegerQuantity, map[string]any{
			"name": multiplier.Label(), "quantity": multiplier.Quantity,
		})
	}
	count := int(multiplier.Quantity)
	if count < 1 {
		return nil, constraintErr(i18n.KeyNotAMultiplier, map[string]any{
			"name": multiplier.Label(),
		})
	}
	if count > r.consts.MaxReplicas {
		return nil, constraintErr(i18n.KeyTooManyReplicas, map[string]any{
			"count": count, "max": r.consts.MaxReplicas,
		})
	}
	return &replicationPlan{
		source:    operand,
		count:     count,
		perBox:    operand.Quantity,
		remainder: -1,
	}, nil
}

func (r *Renderer) planDivision(kind ast.Kind, dividendE, divisorE *ast.Entity) (*replicationPlan, error) {
	if !dividendE.IntegerQuantity() || !divisorE.IntegerQuantity() {
		return nil, constraintErr(i18n.KeyNonIntegerQuantity, map[string]any{
			"kind": string(kind),
		})
	}
	dividend := int(dividendE.Quantity)
	divisor := int(divisorE.Quantity)
	if divisor <= 0 {
		return nil, constraintErr(i18n.KeyDivisorNotPositive, map[string]any{
			"divisor": divisor,
		})
	}

	quotient := dividend / divisor
	remainder := dividend % divisor
	if kind == ast.KindDivision && remainder != 0 {
		return nil, constraintErr(i18n.KeyUnevenDivision, map[string]any{
			"dividend": dividend, "divisor": divisor,
		})
	}

	plan := &replicationPlan{source: dividendE, remainder: -1}
	if dividendE.EntityType == divisorE.EntityType {
		// Sharing a type means "split N items into groups of size D":
		// quotient boxes holding the divisor each.
		plan.count = quotient
		plan.perBox = float64(divisor)
	} else {
		// Distinct types mean "split N items over D containers":
		// divisor boxes holding the quotient each.
		plan.count = divisor
		plan.perBox = float64(quotient)
	}
	if plan.count > r.consts.MaxReplicas {
		return nil, constraintErr(i18n.KeyTooManyReplicas, map[string]any{
			"count": plan.count, "max": r.consts.MaxReplicas,
		})
	}
	if kind == ast.KindSurplus {
		plan.remainder = remainder
	}
	return plan, nil
}

// renderReplication draws multiplication, division and surplus. The
// formal style stays algebraic (two operand boxes, operator, equals,
// placeholder); the intuitive style shows the outcome as replica boxes
// and, in surplus mode, a trailing remainder box.
func (r *Renderer) renderReplication(ctx context.Context, n *ast.Node, ox, oy float64) (region, error) {
	plan, err := r.planReplication(n)
	if err != nil {
		return region{}, err
	}

	if r.style == StyleFormal {
		entities := []*ast.Entity{
			n.Operands[0].(*ast.Entity),
			n.Operands[1].(*ast.Entity),
		}
		layout.ClassifyAll(entities, r.consts)
		layout.AssignGrid(entities)
		terms := []layout.Term{
			{Entity: entities[0]},
			{Op: n.Kind, Entity: entities[1]},
		}
		row := layout.PlaceRow(terms, r.consts, layout.RowOptions{
			InlineOperators: true,
			AppendResult:    true,
		})
		return r.drawRow(row, ox, oy-row.MinY, nil)
	}

	replicas := make([]*ast.Entity, 0, plan.count+1)
	for i := 0; i < plan.count; i++ {
		replica := plan.source.Clone()
		replica.Quantity = plan.perBox
		r.trace.Derive(replica, plan.source, i)
		replicas = append(replicas, replica)
	}
	if plan.remainder >= 0 {
		rem := plan.source.Clone()
		rem.Quantity = float64(plan.remainder)
		rem.Name = r.translate("Remainder", nil)
		rem.ContainerName = rem.Name
		r.trace.Derive(rem, plan.source, plan.count)
		replicas = append(replicas, rem)
	}

	layout.ClassifyAll(replicas, r.consts)
	layout.AssignGrid(replicas)
	terms := make([]layout.Term, len(replicas))
	for i, replica := range replicas {
		terms[i] = layout.Term{Entity: replica}
	}
	row := layout.PlaceRow(terms, r.consts, layout.RowOptions{})

	pad := r.consts.BoxPadding
	inner, err := r.drawRow(row, ox+pad, oy+pad-row.MinY, nil)
	if err != nil {
		return region{}, err
	}
	return r.wrapResult(inner, ox, oy, n.Result), nil
}
