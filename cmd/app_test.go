package cmd_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/gocalc/cmd"
	"github.com/leonardinius/gocalc/internal/calcerrors"
)

func TestMainOneShot(t *testing.T) {
	testcases := []struct {
		name string
		args []string
		code int
		out  string
		err  string
	}{
		{name: "single argument", args: []string{"2 + 3 * (4 - 1) ^ 2"}, code: 0, out: "29\n"},
		{name: "split arguments", args: []string{"2", "+", "3"}, code: 0, out: "5\n"},
		{name: "percent", args: []string{"50% + 1"}, code: 0, out: "1.5\n"},
		{name: "division by zero", args: []string{"10 / 0"}, code: 64, err: "Error: [col 4] eval error at '/': division by zero"},
		{name: "mismatched parens", args: []string{"(1 + 2"}, code: 64, err: "mismatched parentheses"},
		{name: "unknown flag", args: []string{"-nope"}, code: 64},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			var out, errOut strings.Builder
			app := cmd.NewCalcApp(
				cmd.WithStdout(&out),
				cmd.WithStderr(&errOut),
				cmd.WithErrorReporter(calcerrors.NewErrReporter(&errOut)),
			)

			code := app.Main(tc.args)

			assert.Equal(tt, tc.code, code)
			if tc.out != "" {
				assert.Equal(tt, tc.out, out.String())
			}
			if tc.err != "" {
				assert.Contains(tt, errOut.String(), tc.err)
			}
		})
	}
}

func TestMainHelpFlag(t *testing.T) {
	var out, errOut strings.Builder
	app := cmd.NewCalcApp(
		cmd.WithStdout(&out),
		cmd.WithStderr(&errOut),
		cmd.WithErrorReporter(calcerrors.NewErrReporter(&errOut)),
	)

	code := app.Main([]string{"-h"})

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut.String(), "Usage: gocalc [flags] [expression]")
}

func TestMainDebugLogsStages(t *testing.T) {
	var out, errOut strings.Builder
	app := cmd.NewCalcApp(
		cmd.WithStdout(&out),
		cmd.WithStderr(&errOut),
		cmd.WithErrorReporter(calcerrors.NewErrReporter(&errOut)),
	)

	code := app.Main([]string{"-debug", "1 + 2 * 3"})

	assert.Equal(t, 0, code)
	assert.Equal(t, "7\n", out.String())
	assert.Contains(t, errOut.String(), "level=DEBUG")
	assert.Contains(t, errOut.String(), `postfix="1 2 3 * +"`)
}

func TestMainLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "gocalc.log")
	var out, errOut strings.Builder
	app := cmd.NewCalcApp(
		cmd.WithStdout(&out),
		cmd.WithStderr(&errOut),
		cmd.WithErrorReporter(calcerrors.NewErrReporter(&errOut)),
	)

	code := app.Main([]string{"-log-file", logPath, "2 ^ 10"})

	assert.Equal(t, 0, code)
	assert.Equal(t, "1024\n", out.String())

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "msg=scanned")
	// without -debug the terminal handler stays quiet
	assert.NotContains(t, errOut.String(), "level=DEBUG")
}
