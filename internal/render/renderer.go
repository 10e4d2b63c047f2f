// Package render turns an operation tree into a drawing scene. One
// strategy exists per operation kind, composed two ways: the formal
// style lays the expression out as a single algebraic row with inline
// operator glyphs, and the intuitive style draws grouped boxes with
// cross-out overlays and replica sub-boxes instead of symbols.
package render

import (
	"context"
	"errors"

	"github.com/mathpict/mathpict/internal/assets"
	"github.com/mathpict/mathpict/internal/ast"
	"github.com/mathpict/mathpict/internal/ctxlog"
	"github.com/mathpict/mathpict/internal/i18n"
	"github.com/mathpict/mathpict/internal/layout"
	"github.com/mathpict/mathpict/internal/scene"
	"github.com/mathpict/mathpict/internal/theme"
)

// Style selects how the per-kind strategies are composed.
type Style string

const (
	StyleFormal    Style = "formal"
	StyleIntuitive Style = "intuitive"
)

// Options carries the request-scoped collaborators of a renderer.
// Missing and Trace are shared across the two style renders of one
// request; everything else is read-only.
type Options struct {
	Theme     *theme.Theme
	Resolver  *assets.Resolver
	Missing   *assets.MissingList
	Trace     *ast.Trace
	IconDir   string
	Translate i18n.Translator
}

// region is the extent of one drawn block, relative to its origin.
type region struct {
	W float64
	H float64
}

type handler func(ctx context.Context, n *ast.Node, ox, oy float64) (region, error)

// Renderer draws one style for one request. It is not safe for reuse
// across requests; build a fresh one per render.
type Renderer struct {
	style       Style
	consts      layout.Constants
	translate   i18n.Translator
	theme       *theme.Theme
	resolver    *assets.Resolver
	missing     *assets.MissingList
	trace       *ast.Trace
	iconDir     string
	canvas      *scene.Canvas
	handlers    map[ast.Kind]handler
	paletteNext int
}

// New builds a renderer for the given style.
func New(style Style, opts Options) *Renderer {
	t := opts.Theme
	if t == nil {
		t = theme.Default()
	}
	tr := opts.Trace
	if tr == nil {
		tr = ast.NewTrace()
	}
	missing := opts.Missing
	if missing == nil {
		missing = assets.NewMissingList()
	}
	translate := opts.Translate
	if translate == nil {
		translate = i18n.Default
	}
	r := &Renderer{
		style:     style,
		translate: translate,
		consts:    t.Constants(),
		theme:     t,
		resolver:  opts.Resolver,
		missing:   missing,
		trace:     tr,
		iconDir:   opts.IconDir,
		canvas:    &scene.Canvas{},
	}
	r.handlers = map[ast.Kind]handler{
		ast.KindIdentity:       r.renderIdentity,
		ast.KindAddition:       r.renderChain,
		ast.KindSubtraction:    r.renderChain,
		ast.KindMultiplication: r.renderReplication,
		ast.KindDivision:       r.renderReplication,
		ast.KindSurplus:        r.renderReplication,
		ast.KindArea:           r.renderArea,
		ast.KindComparison:     r.renderComparison,
	}
	return r
}

// Render draws the tree and returns the finished scene. Any error
// leaves the scene unusable; the other style of the same request is
// unaffected because it owns its own tree copy and renderer.
func (r *Renderer) Render(ctx context.Context, root *ast.Node) (*scene.Canvas, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Render started.", "style", string(r.style), "kind", string(root.Kind))

	if _, err := r.renderNode(ctx, root, 0, 0); err != nil {
		return nil, err
	}

	bounds := r.canvas.Bounds()
	logger.Debug("Render finished.", "style", string(r.style),
		"width", bounds.MaxX, "height", bounds.MaxY)
	return r.canvas, nil
}

// Margin returns the document margin the scene should be framed with.
func (r *Renderer) Margin() float64 {
	return r.consts.Margin
}

func (r *Renderer) renderNode(ctx context.Context, n *ast.Node, ox, oy float64) (region, error) {
	h, ok := r.handlers[n.Kind]
	if !ok {
		return region{}, &UnsupportedOperationError{Kind: n.Kind}
	}
	return h(ctx, n, ox, oy)
}

// resolveIcon resolves an icon name, recording misses. The bool result
// reports whether a path is available; the error is reserved for real
// I/O failures.
func (r *Renderer) resolveIcon(name string) (string, bool, error) {
	if name == "" || r.resolver == nil {
		return "", false, nil
	}
	path, err := r.resolver.Resolve(name, r.iconDir)
	if err != nil {
		var missing *assets.MissingAssetError
		if errors.As(err, &missing) {
			r.missing.Record(missing.Name)
			return "", false, nil
		}
		return "", false, err
	}
	return path, true, nil
}

// resolveSymbol is resolveIcon for operator, equals and placeholder
// roles: a drawn text glyph always exists for them, so a miss is not
// recorded in the missing-assets list.
func (r *Renderer) resolveSymbol(name string) (string, bool) {
	if name == "" || r.resolver == nil {
		return "", false
	}
	path, err := r.resolver.Resolve(name, r.iconDir)
	if err != nil {
		return "", false
	}
	return path, true
}

// nextPaletteColor hands out the cross-out color for the next
// subtraction, never repeating within one render until the palette is
// exhausted.
func (r *Renderer) nextPaletteColor() string {
	c := r.theme.PaletteColor(r.paletteNext)
	r.paletteNext++
	return c
}
