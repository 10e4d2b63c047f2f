package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mathpict/mathpict/internal/ctxlog"
	"github.com/mathpict/mathpict/internal/pipeline"
)

// Run executes the main application logic: read the DSL file, render
// the requested styles, and write one .svg per successful style. It
// fails only when every requested style failed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	text, err := os.ReadFile(a.config.DSLPath)
	if err != nil {
		return fmt.Errorf("failed to read DSL file: %w", err)
	}

	result, err := pipeline.Render(ctx, pipeline.Request{
		DSL:     string(text),
		IconDir: a.config.IconDir,
		Theme:   a.theme,
		Styles:  a.styles(),
	})
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if len(result.MissingAssets) > 0 {
		a.logger.Warn("Some icons could not be resolved.",
			"missing", result.MissingAssets)
	}

	if err := os.MkdirAll(a.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(a.config.DSLPath), filepath.Ext(a.config.DSLPath))
	for style, sr := range result.Styles {
		if !sr.Success {
			a.logger.Error("Style failed to render.",
				"style", string(style), "message", sr.ErrorMessage)
			continue
		}
		outPath := filepath.Join(a.config.OutputDir, fmt.Sprintf("%s.%s.svg", base, style))
		if err := os.WriteFile(outPath, sr.SVG, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		a.logger.Info("Diagram written.", "style", string(style), "path", outPath)
	}

	if !result.Success() {
		return fmt.Errorf("no style rendered successfully")
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}
