// Package app wires the compiler's pieces together for the CLI: it
// owns the logger, loads the theme, and drives the pipeline from input
// file to rendered .svg documents.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mathpict/mathpict/internal/ctxlog"
	"github.com/mathpict/mathpict/internal/render"
	"github.com/mathpict/mathpict/internal/theme"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	theme  *theme.Theme
}

// NewApp is the constructor for the main application. It returns a
// fully initialized App instance with its own isolated logger and the
// resolved theme.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	th, err := theme.Load(ctx, cfg.ThemePath)
	if err != nil {
		// A broken theme file is a fatal startup error.
		panic(fmt.Errorf("failed to load theme: %w", err))
	}
	logger.Debug("Theme resolved.", "name", th.Name)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		theme:  th,
	}
}

// styles translates the configured style selector into render styles.
func (a *App) styles() []render.Style {
	switch a.config.Style {
	case "formal":
		return []render.Style{render.StyleFormal}
	case "intuitive":
		return []render.Style{render.StyleIntuitive}
	default:
		return []render.Style{render.StyleFormal, render.StyleIntuitive}
	}
}
