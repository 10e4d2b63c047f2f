package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mathpict/mathpict/internal/app"
	"github.com/stretchr/testify/require"
)

const additionDSL = `addition(container1[entity_name: red apples, entity_type: apple, entity_quantity: 3], container2[entity_name: green apples, entity_type: apple, entity_quantity: 4])`

// writeWorkspace lays out a DSL file and icon directory for a run.
func writeWorkspace(t *testing.T, dslText string, icons ...string) (dslPath, iconDir, outDir string) {
	t.Helper()
	dir := t.TempDir()
	dslPath = filepath.Join(dir, "problem.dsl")
	require.NoError(t, os.WriteFile(dslPath, []byte(dslText), 0o644))

	iconDir = filepath.Join(dir, "icons")
	require.NoError(t, os.MkdirAll(iconDir, 0o755))
	for _, name := range icons {
		path := filepath.Join(iconDir, name+".svg")
		require.NoError(t, os.WriteFile(path, []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`), 0o644))
	}
	return dslPath, iconDir, filepath.Join(dir, "out")
}

func TestNewConfig_Validation(t *testing.T) {
	_, err := app.NewConfig(app.Config{IconDir: "icons"})
	require.Error(t, err)

	_, err = app.NewConfig(app.Config{DSLPath: "problem.dsl"})
	require.Error(t, err)

	cfg, err := app.NewConfig(app.Config{DSLPath: "problem.dsl", IconDir: "icons"})
	require.NoError(t, err)
	require.Equal(t, ".", cfg.OutputDir)
	require.Equal(t, "both", cfg.Style)
}

func TestApp_Run_WritesBothStyles(t *testing.T) {
	dslPath, iconDir, outDir := writeWorkspace(t, additionDSL, "apple")
	cfg, err := app.NewConfig(app.Config{
		DSLPath:   dslPath,
		IconDir:   iconDir,
		OutputDir: outDir,
		LogLevel:  "error",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	a := app.NewApp(&out, cfg)
	require.NoError(t, a.Run(context.Background()))

	for _, name := range []string{"problem.formal.svg", "problem.intuitive.svg"} {
		content, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, "expected %s to be written", name)
		require.Contains(t, string(content), "<svg")
	}
}

func TestApp_Run_SingleStyle(t *testing.T) {
	dslPath, iconDir, outDir := writeWorkspace(t, additionDSL, "apple")
	cfg, err := app.NewConfig(app.Config{
		DSLPath:   dslPath,
		IconDir:   iconDir,
		OutputDir: outDir,
		Style:     "formal",
		LogLevel:  "error",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, app.NewApp(&out, cfg).Run(context.Background()))

	_, err = os.Stat(filepath.Join(outDir, "problem.formal.svg"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "problem.intuitive.svg"))
	require.True(t, os.IsNotExist(err))
}

func TestApp_Run_AllStylesFailing(t *testing.T) {
	dslPath, iconDir, outDir := writeWorkspace(t, `division(a[entity_type: egg, entity_quantity: 7], b[entity_type: egg, entity_quantity: 2])`, "egg")
	cfg, err := app.NewConfig(app.Config{
		DSLPath:   dslPath,
		IconDir:   iconDir,
		OutputDir: outDir,
		LogLevel:  "error",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	err = app.NewApp(&out, cfg).Run(context.Background())
	require.ErrorContains(t, err, "no style rendered successfully")
}

func TestApp_Run_MissingDSLFile(t *testing.T) {
	_, iconDir, outDir := writeWorkspace(t, additionDSL)
	cfg, err := app.NewConfig(app.Config{
		DSLPath:   filepath.Join(outDir, "nope.dsl"),
		IconDir:   iconDir,
		OutputDir: outDir,
		LogLevel:  "error",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	err = app.NewApp(&out, cfg).Run(context.Background())
	require.ErrorContains(t, err, "failed to read DSL file")
}

func TestNewApp_PanicsOnBrokenTheme(t *testing.T) {
	dslPath, iconDir, outDir := writeWorkspace(t, additionDSL, "apple")
	themePath := filepath.Join(filepath.Dir(dslPath), "theme.hcl")
	require.NoError(t, os.WriteFile(themePath, []byte(`theme "broken" {`), 0o644))

	cfg, err := app.NewConfig(app.Config{
		DSLPath:   dslPath,
		IconDir:   iconDir,
		ThemePath: themePath,
		OutputDir: outDir,
		LogLevel:  "error",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	require.Panics(t, func() { app.NewApp(&out, cfg) })
}
