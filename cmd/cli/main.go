package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mathpict/mathpict/internal/app"
	"github.com/mathpict/mathpict/internal/cli"
)

// main is the entrypoint for the mathpict command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and
// error handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (a broken theme file);
	// recover here to provide a clean exit message to the user.
	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("a critical startup error occurred: %v", r)
			}
		}()
		mathpictApp := app.NewApp(outW, appConfig)
		runErr = mathpictApp.Run(context.Background())
	}()
	return runErr
}
