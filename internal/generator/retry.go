package generator

import (
	"github.com/vampirenirmal/pitchforge/internal/tags"
)

// RetryConfig bounds the retry controller: how many full generation attempts
// to make and the total score an attempt must reach to be accepted early.
type RetryConfig struct {
	MaxAttempts    int
	MinAcceptScore float64
}

// DefaultRetryConfig returns the reference retry bounds.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		MinAcceptScore: 44.0,
	}
}

// GenerateWithRetry repeats full generation attempts, each against an
// independent deep copy of the canonical pool, until one clears the
// acceptance score or the attempt bound is hit. When no attempt qualifies it
// returns the last attempt's result as-is, which may be a failure. The
// caller's pool is never mutated.
func (e *Engine) GenerateWithRetry(canonical tags.Pool, p Params, cfg RetryConfig) (*Idea, error) {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	var (
		lastIdea *Idea
		lastErr  error
	)
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		idea, err := e.Generate(canonical.Clone(), p)
		lastIdea, lastErr = idea, err
		if err != nil {
			e.logger.Debug("generation attempt failed",
				"attempt", attempt,
				"error", err,
			)
			continue
		}
		if idea.TotalScore >= cfg.MinAcceptScore {
			e.logger.Debug("generation attempt accepted",
				"attempt", attempt,
				"total_score", idea.TotalScore,
			)
			return idea, nil
		}
		e.logger.Debug("generation attempt below acceptance score",
			"attempt", attempt,
			"total_score", idea.TotalScore,
			"min_accept_score", cfg.MinAcceptScore,
		)
	}
	return lastIdea, lastErr
}
