package theme_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mathpict/mathpict/internal/theme"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	th, err := theme.Load(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "default", th.Name)
	require.Len(t, th.Palette, 8)
	require.Equal(t, "#34495e", th.BoxColor)
}

func TestLoad_AppliesThemeFile(t *testing.T) {
	path := writeTheme(t, `
theme "default" {
  palette     = ["#111111", "#222222"]
  box_color   = "#000000"
  icon_aliases = {
    plus = "add"
  }

  constants {
    unit = 50
    gap  = 10
  }
}
`)

	th, err := theme.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, []string{"#111111", "#222222"}, th.Palette)
	require.Equal(t, "#000000", th.BoxColor)
	require.Equal(t, "#2c3e50", th.LabelColor) // untouched default
	require.Equal(t, map[string]string{"plus": "add"}, th.IconAliases)

	c := th.Constants()
	require.Equal(t, 50.0, c.Unit)
	require.Equal(t, 10.0, c.Gap)
	require.Equal(t, 30.0, c.Item) // not overridden
	require.Equal(t, 10, c.MaxItems)
}

func TestLoad_PicksDefaultNamedTheme(t *testing.T) {
	path := writeTheme(t, `
theme "midnight" {
  box_color = "#101010"
}

theme "default" {
  box_color = "#fafafa"
}
`)

	th, err := theme.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "default", th.Name)
	require.Equal(t, "#fafafa", th.BoxColor)
}

func TestLoad_FallsBackToOnlyTheme(t *testing.T) {
	path := writeTheme(t, `
theme "midnight" {
  box_color = "#101010"
}
`)

	th, err := theme.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "midnight", th.Name)
	require.Equal(t, "#101010", th.BoxColor)
}

func TestLoad_RejectsMalformedFile(t *testing.T) {
	path := writeTheme(t, `theme "broken" {`)
	_, err := theme.Load(context.Background(), path)
	require.Error(t, err)
}

func TestLoad_RejectsNonNumericConstant(t *testing.T) {
	path := writeTheme(t, `
theme "default" {
  constants {
    unit = "wide"
  }
}
`)
	_, err := theme.Load(context.Background(), path)
	require.Error(t, err)
}

func TestTheme_PaletteColorCycles(t *testing.T) {
	th := theme.Default()
	require.Equal(t, th.Palette[0], th.PaletteColor(0))
	require.Equal(t, th.Palette[1], th.PaletteColor(1))
	require.Equal(t, th.Palette[0], th.PaletteColor(len(th.Palette)))
}
