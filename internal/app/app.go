// Package app implements the application layer for the tinystr tooling.
package app

import (
	"context"
	"runtime"

	"go.trai.ch/tinystr"
	"go.trai.ch/tinystr/internal/core/domain"
	"go.trai.ch/tinystr/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App orchestrates corpus analysis.
type App struct {
	reader ports.CorpusReader
	logger ports.Logger
}

// New creates a new App instance.
func New(reader ports.CorpusReader, logger ports.Logger) *App {
	return &App{
		reader: reader,
		logger: logger,
	}
}

// Report reads every corpus and aggregates a footprint report. Corpora are
// read concurrently; the report keeps the input order.
func (a *App) Report(ctx context.Context, paths []string) (*domain.Report, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoCorporaSpecified
	}

	reports := make([]domain.CorpusReport, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			tokens, err := a.reader.Tokens(gctx, path)
			if err != nil {
				return zerr.Wrap(err, "failed to read corpus")
			}
			reports[i] = domain.AnalyzeCorpus(path, tokens)
			a.logger.Info(tinystr.Concat("analyzed corpus ", path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &domain.Report{}
	for _, r := range reports {
		rep.Add(r)
	}
	return rep, nil
}
