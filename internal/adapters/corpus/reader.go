// Package corpus implements ports.CorpusReader for local corpus files.
package corpus

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.trai.ch/tinystr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CorpusReader = (*FileReader)(nil)

// FileReader reads newline-delimited token corpora from the filesystem.
// Files ending in .gz are decompressed transparently.
type FileReader struct{}

// NewFileReader creates a new FileReader.
func NewFileReader() *FileReader {
	return &FileReader{}
}

// Tokens returns the non-empty lines of the corpus at path.
func (r *FileReader) Tokens(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open corpus"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	var src io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to open gzip corpus"), "path", path)
		}
		defer gz.Close() //nolint:errcheck // Best effort close in defer
		src = gz
	}

	var tokens []string
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens = append(tokens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read corpus"), "path", path)
	}

	return tokens, nil
}
