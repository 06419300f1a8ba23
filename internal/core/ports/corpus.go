// Package ports defines the interfaces the tinystr tooling is built around.
package ports

import "context"

// CorpusReader reads token corpora for footprint analysis.
//
//go:generate go run go.uber.org/mock/mockgen -source=corpus.go -destination=mocks/mock_corpus.go -package=mocks
type CorpusReader interface {
	// Tokens returns the tokens of the corpus at path, one per
	// non-empty line. Implementations may decompress transparently.
	Tokens(ctx context.Context, path string) ([]string, error)
}
