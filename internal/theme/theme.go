// Package theme loads rendering themes from HCL files: the cross-out
// palette, box and label colors, icon aliases and named overrides for
// the layout constant table. Absent a theme file the built-in defaults
// apply, so the pipeline never requires one.
package theme

import (
	"github.com/mathpict/mathpict/internal/layout"
)

// Theme is the resolved appearance configuration for one render.
type Theme struct {
	Name string

	// Palette is cycled through by subtraction cross-out overlays; a
	// color is never reused within one render.
	Palette []string

	BoxColor         string
	LabelColor       string
	ItemStroke       string
	PlaceholderColor string
	ResultBoxColor   string
	BadgeColor       string
	ScaleColor       string

	// IconAliases maps logical icon names to replacement names consulted
	// before the resolver's fallback chain.
	IconAliases map[string]string

	// Overrides holds named layout constant overrides from the theme's
	// constants block.
	Overrides map[string]float64
}

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{
		Name: "default",
		Palette: []string{
			"#e74c3c", "#3498db", "#27ae60", "#9b59b6",
			"#f39c12", "#16a085", "#d35400", "#8e44ad",
		},
		BoxColor:         "#34495e",
		LabelColor:       "#2c3e50",
		ItemStroke:       "#95a5a6",
		PlaceholderColor: "#e67e22",
		ResultBoxColor:   "#7f8c8d",
		BadgeColor:       "#c0392b",
		ScaleColor:       "#555555",
	}
}

// Constants returns the layout constant table with the theme's named
// overrides applied on top of the canonical defaults.
func (t *Theme) Constants() layout.Constants {
	c := layout.Defaults()
	for name, value := range t.Overrides {
		switch name {
		case "unit":
			c.Unit = value
		case "item":
			c.Item = value
		case "item_padding":
			c.ItemPadding = value
		case "box_padding":
			c.BoxPadding = value
		case "operator":
			c.Operator = value
		case "margin":
			c.Margin = value
		case "gap":
			c.Gap = value
		case "max_items":
			c.MaxItems = int(value)
		case "max_replicas":
			c.MaxReplicas = int(value)
		case "max_area_side":
			c.MaxAreaSide = value
		}
	}
	return c
}

// PaletteColor returns the cross-out color for the i-th subtraction
// operation, cycling when the palette is exhausted.
func (t *Theme) PaletteColor(i int) string {
	if len(t.Palette) == 0 {
		return "#e74c3c"
	}
	return t.Palette[i%len(t.Palette)]
}
