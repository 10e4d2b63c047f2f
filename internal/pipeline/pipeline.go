// Package pipeline composes the full DSL-to-diagram transform: parse
// once, resolve duplicate container names, then render the formal and
// intuitive styles independently, each on its own deep copy of the
// tree. A fatal error in one style never prevents the other from
// succeeding or failing on its own terms.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/mathpict/mathpict/internal/assets"
	"github.com/mathpict/mathpict/internal/ast"
	"github.com/mathpict/mathpict/internal/ctxlog"
	"github.com/mathpict/mathpict/internal/dsl"
	"github.com/mathpict/mathpict/internal/i18n"
	"github.com/mathpict/mathpict/internal/render"
	"github.com/mathpict/mathpict/internal/theme"
)

// Request is one render invocation. The caller hands over already
// validated DSL text and icon directory; the pipeline performs no
// validation beyond its own grammar and domain rules.
type Request struct {
	DSL     string
	IconDir string
	// Theme is optional; nil uses the built-in defaults.
	Theme *theme.Theme
	// Styles selects which variants to render; empty renders both.
	Styles []render.Style
	// Translate is the localization seam; nil uses i18n.Default.
	Translate i18n.Translator
}

// StyleResult is the outcome of one style render.
type StyleResult struct {
	Success bool
	// SVG holds the finished document when Success is true.
	SVG []byte
	// ErrorMessage is the translated failure message, empty on success.
	ErrorMessage string
}

// Result is the composed outcome of a request: per-style results plus
// the request-wide missing-assets list (deduplicated, insertion order).
type Result struct {
	Styles        map[render.Style]StyleResult
	MissingAssets []string
}

// Success reports whether at least one requested style rendered.
func (r *Result) Success() bool {
	for _, sr := range r.Styles {
		if sr.Success {
			return true
		}
	}
	return false
}

// translatable is implemented by every error the pipeline produces for
// users.
type translatable interface {
	Translate(i18n.Translator) string
}

// Render runs the pipeline. It always returns a composed Result; the
// error is reserved for failures outside the request's control, such
// as an unreadable icon directory.
func Render(ctx context.Context, req Request) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	translate := req.Translate
	if translate == nil {
		translate = i18n.Default
	}
	styles := req.Styles
	if len(styles) == 0 {
		styles = []render.Style{render.StyleFormal, render.StyleIntuitive}
	}
	th := req.Theme
	if th == nil {
		th = theme.Default()
	}

	result := &Result{Styles: make(map[render.Style]StyleResult, len(styles))}

	root, err := dsl.Parse(req.DSL)
	if err != nil {
		// A grammar failure aborts before any rendering.
		logger.Warn("DSL parse failed.", "error", err)
		message := translateError(err, translate)
		for _, style := range styles {
			result.Styles[style] = StyleResult{ErrorMessage: message}
		}
		return result, nil
	}

	trace := ast.NewTrace()
	trace.AssignTree(root)

	missing := assets.NewMissingList()
	resolver := assets.NewResolver(th.IconAliases)

	for _, style := range styles {
		// Each style owns a deep copy: the duplicate-resolution pass and
		// the layout planner both mutate entities in place.
		tree := root.CloneTraced(trace)
		ast.ResolveDuplicates(tree)

		r := render.New(style, render.Options{
			Theme:     th,
			Resolver:  resolver,
			Missing:   missing,
			Trace:     trace,
			IconDir:   req.IconDir,
			Translate: translate,
		})
		canvas, err := r.Render(ctx, tree)
		if err != nil {
			logger.Warn("Style render failed.", "style", string(style), "error", err)
			result.Styles[style] = StyleResult{ErrorMessage: translateError(err, translate)}
			continue
		}

		var buf bytes.Buffer
		if err := canvas.WriteSVG(&buf, r.Margin()); err != nil {
			result.MissingAssets = missing.Names()
			return result, fmt.Errorf("failed to emit %s SVG: %w", style, err)
		}
		result.Styles[style] = StyleResult{Success: true, SVG: buf.Bytes()}
		logger.Debug("Style render succeeded.", "style", string(style), "bytes", buf.Len())
	}

	result.MissingAssets = missing.Names()
	return result, nil
}

func translateError(err error, t i18n.Translator) string {
	var tr translatable
	if errors.As(err, &tr) {
		return tr.Translate(t)
	}
	return err.Error()
}
