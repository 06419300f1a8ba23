// Package domain holds the corpus footprint model for the tinystr tooling.
package domain

import (
	"math/bits"

	"go.trai.ch/tinystr"
)

// headerSize is the size of a conventional string handle (pointer + length),
// which is also the total size of a tinystr.String.
const headerSize = 2 * bits.UintSize / 8

// CorpusReport describes the memory footprint of one token corpus when held
// as tinystr strings versus conventional strings.
type CorpusReport struct {
	// Path is the corpus file the report was computed from.
	Path string `yaml:"path,omitempty"`
	// Tokens is the number of tokens representable as a tinystr.String.
	Tokens int `yaml:"tokens"`
	// Distinct counts distinct token contents, by content hash.
	Distinct int `yaml:"distinct"`
	// Oversize counts tokens above tinystr.MaxLen, which are skipped.
	Oversize int `yaml:"oversize,omitempty"`
	// Inline and Heap split Tokens by storage mode.
	Inline int `yaml:"inline"`
	Heap   int `yaml:"heap"`
	// ContentBytes is the total byte length of all counted tokens.
	ContentBytes int `yaml:"contentBytes"`
	// CompactBytes is the footprint as tinystr strings: one two-word value
	// per token plus a buffer for heap-mode content only.
	CompactBytes int `yaml:"compactBytes"`
	// StringBytes is the footprint as conventional strings: a two-word
	// header per token plus a content allocation for every token.
	StringBytes int `yaml:"stringBytes"`
	// SavedBytes is StringBytes minus CompactBytes.
	SavedBytes int `yaml:"savedBytes"`
}

// AnalyzeCorpus builds a footprint report for one corpus. Each token is run
// through the real construction and release paths, so the inline/heap split
// reflects exactly what the type would do with this workload.
func AnalyzeCorpus(path string, tokens []string) CorpusReport {
	r := CorpusReport{Path: path}
	distinct := make(map[uint64]struct{}, len(tokens))

	for _, tok := range tokens {
		s, err := tinystr.New(tok)
		if err != nil {
			// Longer than the length byte can express; such a token
			// would stay a conventional string.
			r.Oversize++
			continue
		}

		r.Tokens++
		r.ContentBytes += s.Len()
		if s.Len() <= tinystr.MaxInline {
			r.Inline++
		} else {
			r.Heap++
			r.CompactBytes += s.Len()
		}
		distinct[s.Hash()] = struct{}{}
		s.Free()
	}

	r.Distinct = len(distinct)
	r.CompactBytes += r.Tokens * headerSize
	r.StringBytes = r.Tokens*headerSize + r.ContentBytes
	r.SavedBytes = r.StringBytes - r.CompactBytes
	return r
}

// Report aggregates corpus reports with a running total.
type Report struct {
	Corpora []CorpusReport `yaml:"corpora"`
	Total   CorpusReport   `yaml:"total"`
}

// Add appends c and folds it into the total.
func (r *Report) Add(c CorpusReport) {
	r.Corpora = append(r.Corpora, c)

	r.Total.Tokens += c.Tokens
	r.Total.Distinct += c.Distinct
	r.Total.Oversize += c.Oversize
	r.Total.Inline += c.Inline
	r.Total.Heap += c.Heap
	r.Total.ContentBytes += c.ContentBytes
	r.Total.CompactBytes += c.CompactBytes
	r.Total.StringBytes += c.StringBytes
	r.Total.SavedBytes += c.SavedBytes
}
