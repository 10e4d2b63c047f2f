package theme

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/mathpict/mathpict/internal/ctxlog"
	"github.com/mathpict/mathpict/internal/fsutil"
)

// hclFile is the top-level structure of a theme file for decoding.
type hclFile struct {
	Themes []*hclTheme `hcl:"theme,block"`
}

type hclTheme struct {
	Name             string            `hcl:"name,label"`
	Palette          []string          `hcl:"palette,optional"`
	BoxColor         string            `hcl:"box_color,optional"`
	LabelColor       string            `hcl:"label_color,optional"`
	ItemStroke       string            `hcl:"item_stroke,optional"`
	PlaceholderColor string            `hcl:"placeholder_color,optional"`
	ResultBoxColor   string            `hcl:"result_box_color,optional"`
	BadgeColor       string            `hcl:"badge_color,optional"`
	ScaleColor       string            `hcl:"scale_color,optional"`
	IconAliases      map[string]string `hcl:"icon_aliases,optional"`
	Constants        *hclConstants     `hcl:"constants,block"`
}

// hclConstants keeps its attributes undeclared so themes can override
// any named layout constant without a schema change here.
type hclConstants struct {
	Body hcl.Body `hcl:",remain"`
}

// Load reads theme definitions from an .hcl file or a directory of
// them, merging the theme named "default" (or the only theme present)
// onto the built-in defaults. An empty path returns the defaults.
func Load(ctx context.Context, path string) (*Theme, error) {
	base := Default()
	if path == "" {
		return base, nil
	}
	logger := ctxlog.FromContext(ctx)

	filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to locate theme files: %w", err)
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl theme files found, using defaults.", "path", path)
		return base, nil
	}

	parser := hclparse.NewParser()
	var themes []*hclTheme
	for _, filePath := range filePaths {
		file, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse theme file %s: %w", filePath, diags)
		}
		var parsed hclFile
		if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode theme file %s: %w", filePath, diags)
		}
		themes = append(themes, parsed.Themes...)
	}

	chosen := pickTheme(themes)
	if chosen == nil {
		logger.Warn("Theme files contained no theme blocks, using defaults.", "path", path)
		return base, nil
	}
	if err := applyTheme(base, chosen); err != nil {
		return nil, err
	}
	logger.Debug("Theme loaded.", "name", base.Name, "files", len(filePaths))
	return base, nil
}

func pickTheme(themes []*hclTheme) *hclTheme {
	for _, t := range themes {
		if t.Name == "default" {
			return t
		}
	}
	if len(themes) > 0 {
		return themes[0]
	}
	return nil
}

func applyTheme(dst *Theme, src *hclTheme) error {
	dst.Name = src.Name
	if len(src.Palette) > 0 {
		dst.Palette = src.Palette
	}
	setIf(&dst.BoxColor, src.BoxColor)
	setIf(&dst.LabelColor, src.LabelColor)
	setIf(&dst.ItemStroke, src.ItemStroke)
	setIf(&dst.PlaceholderColor, src.PlaceholderColor)
	setIf(&dst.ResultBoxColor, src.ResultBoxColor)
	setIf(&dst.BadgeColor, src.BadgeColor)
	setIf(&dst.ScaleColor, src.ScaleColor)
	if len(src.IconAliases) > 0 {
		dst.IconAliases = src.IconAliases
	}
	if src.Constants == nil {
		return nil
	}

	attrs, diags := src.Constants.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("failed to read theme constants: %w", diags)
	}
	dst.Overrides = make(map[string]float64, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("failed to evaluate theme constant %s: %w", name, diags)
		}
		num, err := convert.Convert(val, cty.Number)
		if err != nil {
			return fmt.Errorf("theme constant %s is not a number: %w", name, err)
		}
		f, _ := num.AsBigFloat().Float64()
		dst.Overrides[name] = f
	}
	return nil
}

func setIf(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
