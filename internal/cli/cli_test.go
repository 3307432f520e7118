package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/seatfinder/internal/app"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected *app.Config
	}{
		{
			name: "positional path with defaults",
			args: []string{"passes.txt"},
			expected: &app.Config{
				InputPath: "passes.txt", Format: "text",
				LogFormat: "text", LogLevel: "warn", WorkerCount: 1,
			},
		},
		{
			name: "all flags",
			args: []string{"-input", "in.txt", "-layout", "cabin.hcl", "-format", "JSON", "-log-format", "json", "-log-level", "DEBUG", "-workers", "4"},
			expected: &app.Config{
				InputPath: "in.txt", LayoutPath: "cabin.hcl", Format: "json",
				LogFormat: "json", LogLevel: "debug", WorkerCount: 4,
			},
		},
		{
			name: "shorthand wins over positional",
			args: []string{"-i", "a.txt", "b.txt"},
			expected: &app.Config{
				InputPath: "a.txt", Format: "text",
				LogFormat: "text", LogLevel: "warn", WorkerCount: 1,
			},
		},
		{
			name: "stdin",
			args: []string{"-"},
			expected: &app.Config{
				InputPath: "-", Format: "text",
				LogFormat: "text", LogLevel: "warn", WorkerCount: 1,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestParse_Exits(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}} {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse(args, out)

		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		errContains string
	}{
		{name: "unknown flag", args: []string{"--nope"}, errContains: "flag provided but not defined: -nope"},
		{name: "bad log format", args: []string{"-log-format", "xml", "in.txt"}, errContains: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "loud", "in.txt"}, errContains: "invalid log-level"},
		{name: "bad report format", args: []string{"-format", "xml", "in.txt"}, errContains: "unknown report format"},
		{name: "no workers", args: []string{"-workers", "0", "in.txt"}, errContains: "WorkerCount must be at least 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "expected *ExitError, got %T", err)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.errContains)
		})
	}
}
