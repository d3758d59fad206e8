package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/matzehuels/gotsort/pkg/errors"
	"github.com/matzehuels/gotsort/pkg/pipeline"
)

// stdinName is the display name used when input comes from stdin.
const stdinName = "stdin"

// readInput reads the full input from path, or from stdin when path is
// empty or "-". It returns the contents and a display name for messages.
func readInput(path string) (string, string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), stdinName, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "no such file: %s", path)
		}
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), path, nil
}

// detectInputFormat guesses the input format from the file extension.
// Stdin and unknown extensions default to adjacency text.
func detectInputFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return pipeline.InputTOML
	case ".json":
		return pipeline.InputJSON
	default:
		return pipeline.InputText
	}
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
