package generator

import (
	"context"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/vampirenirmal/pitchforge/internal/tags"
)

// BatchConfig controls concurrent batch generation.
type BatchConfig struct {
	Count         int
	MaxConcurrent int
	Retry         RetryConfig
	// Limiter optionally paces run starts. Nil disables pacing.
	Limiter *rate.Limiter
}

// DefaultBatchConfig returns the reference batch shape: six ideas at a time.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		Count:         6,
		MaxConcurrent: 3,
		Retry:         DefaultRetryConfig(),
	}
}

// GenerateBatch runs cfg.Count independent retry-controlled generations
// concurrently. Every run gets its own pool clone and its own engine with a
// derived random source, so no mutable state is shared; the matrix is
// read-only and shared by all runs. Failed runs are logged and skipped, not
// fatal to the batch; the only batch-level error is context cancellation.
func (e *Engine) GenerateBatch(ctx context.Context, canonical tags.Pool, p Params, cfg BatchConfig) ([]*Idea, error) {
	if cfg.Count < 1 {
		return []*Idea{}, nil
	}
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}

	// Derive per-run seeds up front: the engine's rng is not safe for
	// concurrent use.
	seeds := make([]int64, cfg.Count)
	for i := range seeds {
		seeds[i] = e.rng.Int63()
	}

	ideas := make([]*Idea, cfg.Count)
	var mu sync.Mutex
	failed := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.MaxConcurrent)

	for i := 0; i < cfg.Count; i++ {
		i := i
		g.Go(func() error {
			if cfg.Limiter != nil {
				if err := cfg.Limiter.Wait(ctx); err != nil {
					return err
				}
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			runner := NewEngine(e.matrix,
				WithRand(rand.New(rand.NewSource(seeds[i]))),
				WithLogger(e.logger),
			)
			idea, err := runner.GenerateWithRetry(canonical, p, cfg.Retry)
			if err != nil {
				e.logger.Warn("batch run produced no idea",
					"run", i,
					"error", err,
				)
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			ideas[i] = idea
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*Idea, 0, cfg.Count)
	for _, idea := range ideas {
		if idea != nil {
			out = append(out, idea)
		}
	}
	e.logger.Info("batch generation completed",
		"requested", cfg.Count,
		"produced", len(out),
		"failed", failed,
	)
	return out, nil
}
