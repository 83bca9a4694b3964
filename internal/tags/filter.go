package tags

// IsCompatible reports whether candidate clears the threshold against every
// tag in existing. A pair clears when the max of both directional scores
// meets the threshold. An empty existing set passes vacuously, which is what
// makes the first pick in each slot unconstrained.
func IsCompatible(m Matrix, candidate Tag, existing []Tag, threshold float64) bool {
	for _, t := range existing {
		if m.PairScore(candidate, t) < threshold {
			return false
		}
	}
	return true
}

// FilterCompatible returns the candidates that individually pass IsCompatible
// against existing, preserving input order.
func FilterCompatible(m Matrix, candidates []Tag, existing []Tag, threshold float64) []Tag {
	out := make([]Tag, 0, len(candidates))
	for _, c := range candidates {
		if IsCompatible(m, c, existing, threshold) {
			out = append(out, c)
		}
	}
	return out
}
