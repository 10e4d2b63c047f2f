package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// DSLPath is the file containing the problem text to compile.
	DSLPath string
	// IconDir is the resource directory holding <entity_type>.svg icons.
	IconDir string
	// ThemePath optionally points at an .hcl theme file or directory.
	ThemePath string
	// OutputDir receives the rendered .svg documents.
	OutputDir string
	// Style is "formal", "intuitive" or "both".
	Style string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DSLPath == "" {
		return nil, errors.New("DSLPath is a required configuration field and cannot be empty")
	}
	if cfg.IconDir == "" {
		return nil, errors.New("IconDir is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Style == "" {
		cfg.Style = "both"
	}
	return &cfg, nil
}
