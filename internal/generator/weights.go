package generator

import "math/rand"

// genreWeightTable holds the fixed weight tuples per genre count. One of the
// tuples for the count is chosen uniformly at random; the tuple order matches
// the genre selection order, so the first genre always carries the largest
// share. Each tuple sums to 1.0.
var genreWeightTable = map[int][][]float64{
	1: {
		{1.0},
	},
	2: {
		{0.5, 0.5},
		{0.65, 0.35},
		{0.8, 0.2},
	},
	3: {
		{0.4, 0.3, 0.3},
		{0.6, 0.2, 0.2},
	},
}

// pickGenreWeights returns a copy of a randomly chosen weight tuple for the
// given genre count. Counts outside the table yield equal weights.
func pickGenreWeights(rng *rand.Rand, count int) []float64 {
	tuples, ok := genreWeightTable[count]
	if !ok || len(tuples) == 0 {
		out := make([]float64, count)
		for i := range out {
			out[i] = 1.0 / float64(count)
		}
		return out
	}
	chosen := tuples[rng.Intn(len(tuples))]
	out := make([]float64, len(chosen))
	copy(out, chosen)
	return out
}
