package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Batch generates reports for multiple runs concurrently.
// Each request must target a distinct output file; the generator itself
// is stateless across requests, so concurrency is bounded only by the
// configured limit.
type Batch struct {
	generator   *Generator
	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a Batch.
type BatchOption func(*Batch)

// WithConcurrency sets the maximum number of concurrent generations.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *Batch) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *Batch) {
		b.logger = logger
	}
}

// NewBatch creates a Batch over the given generator.
func NewBatch(generator *Generator, opts ...BatchOption) *Batch {
	b := &Batch{
		generator:   generator,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Run generates every requested report and returns the output paths in
// request order. The first failure cancels the remaining requests;
// reports already written stay on disk.
func (b *Batch) Run(ctx context.Context, requests []*Request) ([]string, error) {
	b.logger.Info("generating reports", "count", len(requests), "concurrency", b.concurrency)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(b.concurrency)

	// Indexed result slots: each goroutine writes only its own slot,
	// so no mutex is needed.
	paths := make([]string, len(requests))
	for i, req := range requests {
		i, req := i, req
		eg.Go(func() error {
			path, err := b.generator.Run(egCtx, req)
			if err != nil {
				return fmt.Errorf("report %d (%s): %w", i, req.Kind, err)
			}
			paths[i] = path
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
