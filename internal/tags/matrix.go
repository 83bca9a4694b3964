package tags

// Matrix is a sparse, directional compatibility matrix. Score(A,B) need not
// equal Score(B,A). It is read-only reference data, loaded once and safely
// shared across concurrent generation runs.
type Matrix map[Tag]map[Tag]float64

// Score returns the directional compatibility score from a to b, or 0 when
// no entry exists.
func (m Matrix) Score(a, b Tag) float64 {
	if row, ok := m[a]; ok {
		return row[b]
	}
	return 0
}

// PairScore returns the direction-independent acceptability score for a pair:
// the max of both directional scores.
func (m Matrix) PairScore(a, b Tag) float64 {
	ab := m.Score(a, b)
	ba := m.Score(b, a)
	if ab >= ba {
		return ab
	}
	return ba
}
