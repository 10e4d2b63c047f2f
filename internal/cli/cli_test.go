package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mathpict/mathpict/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullFlagSet(t *testing.T) {
	var out bytes.Buffer
	config, shouldExit, err := cli.Parse([]string{
		"-dsl", "problem.dsl",
		"-icons", "assets/icons",
		"-theme", "themes/default.hcl",
		"-out", "build",
		"-style", "formal",
		"-log-format", "json",
		"-log-level", "debug",
	}, &out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.NotNil(t, config)
	assert.Equal(t, "problem.dsl", config.DSLPath)
	assert.Equal(t, "assets/icons", config.IconDir)
	assert.Equal(t, "themes/default.hcl", config.ThemePath)
	assert.Equal(t, "build", config.OutputDir)
	assert.Equal(t, "formal", config.Style)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestParse_PositionalDSLPath(t *testing.T) {
	var out bytes.Buffer
	config, shouldExit, err := cli.Parse([]string{"problem.dsl"}, &out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "problem.dsl", config.DSLPath)
	assert.Equal(t, "icons", config.IconDir)
	assert.Equal(t, "out", config.OutputDir)
	assert.Equal(t, "both", config.Style)
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	config, shouldExit, err := cli.Parse(nil, &out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, config)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_HelpFlag(t *testing.T) {
	var out bytes.Buffer
	config, shouldExit, err := cli.Parse([]string{"-h"}, &out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, config)
}

func TestParse_InvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown style", args: []string{"-style", "cubist", "problem.dsl"}},
		{name: "unknown log format", args: []string{"-log-format", "xml", "problem.dsl"}},
		{name: "unknown log level", args: []string{"-log-level", "verbose", "problem.dsl"}},
		{name: "unknown flag", args: []string{"-frobnicate"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			config, shouldExit, err := cli.Parse(tc.args, &out)

			require.Nil(t, config)
			require.False(t, shouldExit)
			require.Error(t, err)

			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr))
			require.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParse_StyleIsCaseInsensitive(t *testing.T) {
	var out bytes.Buffer
	config, _, err := cli.Parse([]string{"-style", "Intuitive", "problem.dsl"}, &out)

	require.NoError(t, err)
	require.Equal(t, "intuitive", config.Style)
}
