// Package input loads puzzle input files.
package input

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Normalize converts CRLF line endings to LF and drops one trailing
// newline.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSuffix(s, "\n")
}

// Read loads and normalizes the file at path. A path of "-" reads
// standard input.
func Read(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return Normalize(string(data)), nil
}
