package generator

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vampirenirmal/pitchforge/internal/tags"
)

// Engine assembles movie concept ideas from a tag pool, guided by the
// compatibility matrix. The matrix is read-only and may be shared across
// engines; the random source is not safe for concurrent use, so concurrent
// runs need one engine each (see GenerateBatch).
type Engine struct {
	matrix tags.Matrix
	rng    *rand.Rand
	logger *slog.Logger
}

// Option customizes engine construction.
type Option func(*Engine)

// WithRand sets the random source, mainly for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine over the given compatibility matrix.
func NewEngine(matrix tags.Matrix, opts ...Option) *Engine {
	e := &Engine{
		matrix: matrix,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate runs the seven-stage selection pipeline once. It takes ownership
// of pool and mutates it destructively; callers must pass a Clone of their
// canonical pool. A fatal stage returns (nil, *SelectionError) and the
// partial selection is discarded; underfilled optional slots only add
// warnings to the idea.
func (e *Engine) Generate(pool tags.Pool, p Params) (*Idea, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	fallback := p.FallbackThreshold()
	idea := &Idea{ID: uuid.NewString()}
	var selected []tags.Tag

	// Stage 1: genres. The first pick is unconstrained (vacuous filter);
	// each subsequent genre must clear the threshold against everything
	// selected so far.
	for n := 0; n < p.NumGenres; n++ {
		g, err := e.pickMandatory(pool, tags.Genres, selected, p.MinScore, fallback, n+1)
		if err != nil {
			return nil, err
		}
		idea.Genres = append(idea.Genres, g)
		selected = append(selected, g)
		pool.Remove(tags.Genres, g)
	}
	idea.GenreWeights = pickGenreWeights(e.rng, len(idea.Genres))

	// Stage 2: setting.
	setting, err := e.pickMandatory(pool, tags.Setting, selected, p.MinScore, fallback, 1)
	if err != nil {
		return nil, err
	}
	idea.Setting = setting
	selected = append(selected, setting)
	pool.Remove(tags.Setting, setting)

	// Stage 3: protagonist.
	prot, err := e.pickMandatory(pool, tags.Protagonist, selected, p.MinScore, fallback, 1)
	if err != nil {
		return nil, err
	}
	idea.Protagonist = prot
	selected = append(selected, prot)
	pool.Remove(tags.Protagonist, prot)

	// Stage 4: themes/events. First pick is mandatory with fallback; later
	// picks are strict-only and stop the slot with a warning when unfillable.
	for n := 0; n < p.NumThemes; n++ {
		var theme tags.Tag
		if n == 0 {
			theme, err = e.pickMandatory(pool, tags.ThemeAndEvents, selected, p.MinScore, fallback, 1)
			if err != nil {
				return nil, err
			}
		} else {
			t, ok := e.pickOptional(pool, tags.ThemeAndEvents, selected, p.MinScore)
			if !ok {
				idea.Warnings = append(idea.Warnings, fmt.Sprintf("themes: filled %d of %d target slots", n, p.NumThemes))
				break
			}
			theme = t
		}
		idea.Themes = append(idea.Themes, theme)
		selected = append(selected, theme)
		pool.Remove(tags.ThemeAndEvents, theme)
	}

	// Stage 5: finales, same two-tier policy as themes.
	for n := 0; n < p.NumFinales; n++ {
		var finale tags.Tag
		if n == 0 {
			finale, err = e.pickMandatory(pool, tags.Finale, selected, p.MinScore, fallback, 1)
			if err != nil {
				return nil, err
			}
		} else {
			f, ok := e.pickOptional(pool, tags.Finale, selected, p.MinScore)
			if !ok {
				idea.Warnings = append(idea.Warnings, fmt.Sprintf("finales: filled %d of %d target slots", n, p.NumFinales))
				break
			}
			finale = f
		}
		idea.Finales = append(idea.Finales, finale)
		selected = append(selected, finale)
		pool.Remove(tags.Finale, finale)
	}

	// Stage 6: antagonist, optional and strict-only.
	if p.WantsAntagonist() {
		if pool.Count(tags.Antagonist) == 0 {
			idea.Warnings = append(idea.Warnings, "antagonist: no tags left in pool")
		} else if a, ok := e.pickOptional(pool, tags.Antagonist, selected, p.MinScore); ok {
			idea.Antagonist = a
			selected = append(selected, a)
			pool.Remove(tags.Antagonist, a)
		} else {
			idea.Warnings = append(idea.Warnings, "antagonist: no compatible candidate")
		}
	}

	// Stage 7: supporting characters, optional and strict-only.
	for n := 0; n < p.SupportTarget(); n++ {
		c, ok := e.pickOptional(pool, tags.SupportingCharacter, selected, p.MinScore)
		if !ok {
			idea.Warnings = append(idea.Warnings, fmt.Sprintf("supporting characters: filled %d of %d target slots", n, p.SupportTarget()))
			break
		}
		idea.Supporting = append(idea.Supporting, c)
		selected = append(selected, c)
		pool.Remove(tags.SupportingCharacter, c)
	}

	idea.AllTags = append([]tags.Tag(nil), selected...)
	idea.TotalScore = TotalScore(e.matrix, selected, idea.genreWeightMap())

	e.logger.Debug("idea generated",
		"idea_id", idea.ID,
		"tag_count", len(selected),
		"total_score", idea.TotalScore,
		"warning_count", len(idea.Warnings),
	)

	return idea, nil
}

// pickMandatory draws one compatible tag from the category at random, trying
// the strict threshold first and the relaxed fallback threshold second. It
// fails when the pool is exhausted or even the fallback pass yields nothing.
func (e *Engine) pickMandatory(pool tags.Pool, cat tags.Category, selected []tags.Tag, strict, fallback float64, pick int) (tags.Tag, error) {
	avail := pool.Tags(cat)
	if len(avail) == 0 {
		return "", &SelectionError{Slot: cat, Pick: pick, Cause: ErrPoolExhausted}
	}
	cands := tags.FilterCompatible(e.matrix, avail, selected, strict)
	if len(cands) == 0 {
		e.logger.Debug("strict pass empty, relaxing threshold",
			"slot", cat.String(),
			"strict", strict,
			"fallback", fallback,
		)
		cands = tags.FilterCompatible(e.matrix, avail, selected, fallback)
	}
	if len(cands) == 0 {
		return "", &SelectionError{Slot: cat, Pick: pick, Cause: ErrNoCompatible}
	}
	return cands[e.rng.Intn(len(cands))], nil
}

// pickOptional draws one compatible tag at random using only the strict
// threshold. It reports false when nothing qualifies; the caller records a
// warning and stops populating the slot.
func (e *Engine) pickOptional(pool tags.Pool, cat tags.Category, selected []tags.Tag, strict float64) (tags.Tag, bool) {
	cands := tags.FilterCompatible(e.matrix, pool.Tags(cat), selected, strict)
	if len(cands) == 0 {
		return "", false
	}
	return cands[e.rng.Intn(len(cands))], true
}
