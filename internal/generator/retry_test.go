package generator

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"testing"

	"github.com/vampirenirmal/pitchforge/internal/tags"
)

// recordingHandler captures log messages so tests can count attempts.
type recordingHandler struct {
	mu       sync.Mutex
	messages []string
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, r.Message)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) count(message string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, m := range h.messages {
		if m == message {
			n++
		}
	}
	return n
}

func fullyCompatibleMatrix() tags.Matrix {
	m := tags.Matrix{}
	linkAll(m, 5.0, "GENRES_ACTION", "GENRES_COMEDY", "SETTING_SPACE", "PROTAGONIST_DETECTIVE", "THEME_REVENGE", "FINALE_TWIST")
	return m
}

func TestRetryExhaustsBoundAndReturnsLastResult(t *testing.T) {
	// Every attempt succeeds but can never reach the acceptance score, so
	// the controller must run exactly MaxAttempts times and still hand back
	// the final sub-threshold idea instead of nil.
	handler := &recordingHandler{}
	e := NewEngine(fullyCompatibleMatrix(),
		WithRand(rand.New(rand.NewSource(7))),
		WithLogger(slog.New(handler)),
	)

	cfg := RetryConfig{MaxAttempts: 3, MinAcceptScore: 1000}
	idea, err := e.GenerateWithRetry(basePool(), baseParams(), cfg)
	if err != nil {
		t.Fatalf("GenerateWithRetry() error = %v", err)
	}
	if idea == nil {
		t.Fatal("GenerateWithRetry() = nil, want the last attempt's idea")
	}
	if idea.TotalScore >= cfg.MinAcceptScore {
		t.Fatalf("total score %v unexpectedly cleared the acceptance bar", idea.TotalScore)
	}
	if got := handler.count("generation attempt below acceptance score"); got != 3 {
		t.Errorf("attempt count = %d, want exactly 3", got)
	}
}

func TestRetryAcceptsFirstQualifyingAttempt(t *testing.T) {
	handler := &recordingHandler{}
	e := NewEngine(fullyCompatibleMatrix(),
		WithRand(rand.New(rand.NewSource(7))),
		WithLogger(slog.New(handler)),
	)

	idea, err := e.GenerateWithRetry(basePool(), baseParams(), RetryConfig{MaxAttempts: 3, MinAcceptScore: 1})
	if err != nil {
		t.Fatalf("GenerateWithRetry() error = %v", err)
	}
	if idea == nil {
		t.Fatal("GenerateWithRetry() = nil, want idea")
	}
	if got := handler.count("generation attempt accepted"); got != 1 {
		t.Errorf("accepted count = %d, want 1", got)
	}
	if got := handler.count("generation attempt below acceptance score"); got != 0 {
		t.Errorf("rejected count = %d, want 0", got)
	}
}

func TestRetryLeavesCanonicalPoolUntouched(t *testing.T) {
	canonical := basePool()
	e := NewEngine(fullyCompatibleMatrix(), WithRand(rand.New(rand.NewSource(3))))

	if _, err := e.GenerateWithRetry(canonical, baseParams(), RetryConfig{MaxAttempts: 3, MinAcceptScore: 1000}); err != nil {
		t.Fatalf("GenerateWithRetry() error = %v", err)
	}

	if canonical.Count(tags.Genres) != 2 || canonical.Count(tags.Setting) != 1 {
		t.Errorf("canonical pool mutated across attempts: %v", canonical)
	}
}

func TestGenerateBatch(t *testing.T) {
	canonical := basePool()
	e := NewEngine(fullyCompatibleMatrix(), WithRand(rand.New(rand.NewSource(11))))

	cfg := BatchConfig{
		Count:         4,
		MaxConcurrent: 2,
		Retry:         RetryConfig{MaxAttempts: 2, MinAcceptScore: 1},
	}
	ideas, err := e.GenerateBatch(context.Background(), canonical, baseParams(), cfg)
	if err != nil {
		t.Fatalf("GenerateBatch() error = %v", err)
	}
	if len(ideas) != 4 {
		t.Fatalf("batch produced %d ideas, want 4", len(ideas))
	}

	seen := map[string]bool{}
	for _, idea := range ideas {
		if idea.ID == "" || seen[idea.ID] {
			t.Errorf("idea IDs must be unique and non-empty, got %q", idea.ID)
		}
		seen[idea.ID] = true
	}

	if canonical.Count(tags.Genres) != 2 {
		t.Errorf("canonical pool mutated by batch: %v", canonical)
	}
}
