// Package fsutil provides file system utility functions.
package fsutil

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/seatfinder/internal/ctxlog"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ReadLines returns the lines of the file at path, without line terminators.
// The path "-" reads from os.Stdin.
func ReadLines(ctx context.Context, path string) ([]string, error) {
	if path == Stdin {
		return ReadLinesFrom(ctx, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	lines, err := ReadLinesFrom(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// ReadLinesFrom splits r into lines. A trailing "\r" is dropped from each
// line and a final newline does not produce an empty line. Blank lines in the
// middle of the input are kept.
func ReadLinesFrom(ctx context.Context, r io.Reader) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	logger.Debug("Input lines read.", "count", len(lines))
	return lines, nil
}
