package generator

import (
	"math"

	"github.com/vampirenirmal/pitchforge/internal/tags"
)

// TotalScore computes the aggregate compatibility score over every unordered
// pair of selected tags. Each directional term is weighted by the genre
// weight of its source tag; tags without a genre weight contribute at weight
// 1.0. The sum is rounded to one decimal. The pass is exact, never sampled,
// and fully deterministic for a fixed input.
func TotalScore(m tags.Matrix, selected []tags.Tag, genreWeights map[tags.Tag]float64) float64 {
	weight := func(t tags.Tag) float64 {
		if w, ok := genreWeights[t]; ok {
			return w
		}
		return 1.0
	}

	var total float64
	for i := 0; i < len(selected); i++ {
		for j := i + 1; j < len(selected); j++ {
			a, b := selected[i], selected[j]
			total += m.Score(a, b)*weight(a) + m.Score(b, a)*weight(b)
		}
	}
	return round1(total)
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
