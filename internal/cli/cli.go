package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mathpict/mathpict/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly,
// or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mathpict", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
mathpict - compile arithmetic word-problem DSL into SVG diagrams.

Usage:
  mathpict [options] [DSL_PATH]

Arguments:
  DSL_PATH
    Path to a file containing the problem DSL text.

Options:
`)
		flagSet.PrintDefaults()
	}

	dslFlag := flagSet.String("dsl", "", "Path to the DSL input file.")
	iconsFlag := flagSet.String("icons", "icons", "Resource directory containing <entity_type>.svg icons.")
	themeFlag := flagSet.String("theme", "", "Path to an .hcl theme file or directory. Optional.")
	outFlag := flagSet.String("out", "out", "Output directory for rendered diagrams.")
	styleFlag := flagSet.String("style", "both", "Diagram style to render. Options: 'formal', 'intuitive' or 'both'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := *dslFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		slog.Debug("No DSL path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	style := strings.ToLower(*styleFlag)
	switch style {
	case "formal", "intuitive", "both":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid style: must be 'formal', 'intuitive' or 'both'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		DSLPath:   path,
		IconDir:   *iconsFlag,
		ThemePath: *themeFlag,
		OutputDir: *outFlag,
		Style:     style,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
