package generator

import (
	"testing"

	"github.com/vampirenirmal/pitchforge/internal/tags"
)

func TestTotalScoreUnweighted(t *testing.T) {
	m := tags.Matrix{
		"A": {"B": 2},
		"B": {"A": 1},
		"C": {"B": 3},
	}
	selected := []tags.Tag{"A", "B", "C"}

	// Pairs: (A,B)=2+1, (A,C)=0+0, (B,C)=0+3 -> 6.0
	got := TotalScore(m, selected, nil)
	if got != 6.0 {
		t.Errorf("TotalScore() = %v, want 6.0", got)
	}
}

func TestTotalScoreGenreWeighted(t *testing.T) {
	m := tags.Matrix{
		"A": {"B": 2, "C": 0.5},
		"B": {"A": 1},
		"C": {"B": 3},
	}
	selected := []tags.Tag{"A", "B", "C"}
	weights := map[tags.Tag]float64{"A": 0.5}

	// (A,B): 2*0.5 + 1*1 = 2.0
	// (A,C): 0.5*0.5 + 0  = 0.25
	// (B,C): 0 + 3*1      = 3.0
	// Total 5.25, rounded to 5.3.
	got := TotalScore(m, selected, weights)
	if got != 5.3 {
		t.Errorf("TotalScore() = %v, want 5.3", got)
	}
}

func TestTotalScoreDeterministic(t *testing.T) {
	m := tags.Matrix{
		"A": {"B": 1.7},
		"B": {"C": 2.2},
	}
	selected := []tags.Tag{"A", "B", "C"}
	weights := map[tags.Tag]float64{"A": 0.65}

	first := TotalScore(m, selected, weights)
	for i := 0; i < 100; i++ {
		if got := TotalScore(m, selected, weights); got != first {
			t.Fatalf("TotalScore() = %v on call %d, want %v every time", got, i, first)
		}
	}
}

func TestTotalScoreEmptyAndSingle(t *testing.T) {
	m := tags.Matrix{"A": {"B": 5}}

	if got := TotalScore(m, nil, nil); got != 0 {
		t.Errorf("TotalScore(empty) = %v, want 0", got)
	}
	if got := TotalScore(m, []tags.Tag{"A"}, nil); got != 0 {
		t.Errorf("TotalScore(single) = %v, want 0", got)
	}
}
