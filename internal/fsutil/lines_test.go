package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLinesFrom(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "trailing newline", input: "BFFFBBFRRR\nFFFBBBFRRR\n", expected: []string{"BFFFBBFRRR", "FFFBBBFRRR"}},
		{name: "no trailing newline", input: "BFFFBBFRRR\nFFFBBBFRRR", expected: []string{"BFFFBBFRRR", "FFFBBBFRRR"}},
		{name: "crlf", input: "BFFFBBFRRR\r\nFFFBBBFRRR\r\n", expected: []string{"BFFFBBFRRR", "FFFBBBFRRR"}},
		{name: "blank line kept", input: "BFFFBBFRRR\n\nFFFBBBFRRR\n", expected: []string{"BFFFBBFRRR", "", "FFFBBBFRRR"}},
		{name: "empty", input: "", expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := ReadLinesFrom(context.Background(), strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, lines)
		})
	}
}

func TestReadLinesFrom_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadLinesFrom(ctx, strings.NewReader("BFFFBBFRRR\n"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestReadLines(t *testing.T) {
	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "passes.txt")
	require.NoError(t, os.WriteFile(path, []byte("BFFFBBFRRR\nBBFFBBFRLL\n"), 0600))

	// --- Act ---
	lines, err := ReadLines(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"BFFFBBFRRR", "BBFFBBFRLL"}, lines)
}

func TestReadLines_MissingFile(t *testing.T) {
	_, err := ReadLines(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to open input")
}
