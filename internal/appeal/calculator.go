package appeal

import (
	"math"
	"sort"

	"github.com/vampirenirmal/pitchforge/internal/tags"
)

const (
	// interestThreshold is the appeal bar a segment must clear to count as
	// an interested audience.
	interestThreshold = 2.5
	// audienceFallbackCount caps the top-N fallback when no segment clears
	// the bar.
	audienceFallbackCount = 2
	// matchThreshold is the score bar for a "good" advertiser match.
	matchThreshold = 13.0
	// advertiserFallbackCount caps the top-N fallback when no advertiser
	// clears the bar.
	advertiserFallbackCount = 3
	// noOverlapPenalty halves an advertiser's quality when none of its
	// targeted segments is interested.
	noOverlapPenalty = 0.5
	// indexScale converts the weighted appeal sums into the 1..5 index
	// range.
	indexScale = 5.0
)

// AverageAppeal computes the per-segment appeal of a tag set: the mean of
// the weights of the tags that actually define a numeric weight for the
// segment. Segments with no contributing tag score 0, as does an empty tag
// set. Every segment known to groups appears in the result.
func AverageAppeal(selected []tags.Tag, weights AudienceWeights, groups AudienceGroups) map[string]float64 {
	appeal := make(map[string]float64, len(groups))
	for segment := range groups {
		var sum float64
		contributors := 0
		for _, t := range selected {
			tw, ok := weights[string(t)]
			if !ok {
				continue
			}
			v, ok := parseWeight(tw.Weights[segment])
			if !ok {
				continue
			}
			sum += v
			contributors++
		}
		if contributors > 0 {
			appeal[segment] = sum / float64(contributors)
		} else {
			appeal[segment] = 0
		}
	}
	return appeal
}

// ArtisticCommercialScore derives the artistic and commercial indices from
// an appeal profile: appeal weighted by the segment coefficients over
// positive-appeal segments, scaled, clamped to [1,5] and rounded to one
// decimal.
func ArtisticCommercialScore(appeal map[string]float64, groups AudienceGroups) (artistic, commercial float64) {
	var art, com float64
	for segment, a := range appeal {
		if a <= 0 {
			continue
		}
		g, ok := groups[segment]
		if !ok {
			continue
		}
		if w, ok := parseWeight(g.ArtWeight); ok {
			art += a * w
		}
		if w, ok := parseWeight(g.CommercialWeight); ok {
			com += a * w
		}
	}
	artistic = round1(clamp(art*indexScale, 1, 5))
	commercial = round1(clamp(com*indexScale, 1, 5))
	return artistic, commercial
}

// Match is one ranked advertiser with its rounded match score.
type Match struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// MatchResult is the outcome of matching an appeal profile against the
// advertiser roster.
type MatchResult struct {
	InterestedAudiences    []string `json:"interestedAudiences"`
	UsedAudienceFallback   bool     `json:"usedAudienceFallback"`
	TopAdvertisers         []Match  `json:"topAdvertisers"`
	UsedAdvertiserFallback bool     `json:"usedAdvertiserFallback"`
}

// InterestedAudiences returns the segments whose appeal clears the interest
// bar, ordered by appeal descending. When none clear it, it falls back to
// the top segments among those with positive appeal and reports the
// fallback.
func InterestedAudiences(appeal map[string]float64) ([]string, bool) {
	ranked := rankSegments(appeal)

	var interested []string
	for _, s := range ranked {
		if appeal[s] >= interestThreshold {
			interested = append(interested, s)
		}
	}
	if len(interested) > 0 {
		return interested, false
	}

	var fallback []string
	for _, s := range ranked {
		if appeal[s] <= 0 {
			break
		}
		fallback = append(fallback, s)
		if len(fallback) == audienceFallbackCount {
			break
		}
	}
	return fallback, true
}

// AdvertiserMatches ranks the roster against an appeal profile. Advertisers
// whose targeted segments overlap the interested set score quality plus the
// importance-weighted appeal over the overlap; the rest score half their
// quality. Good matches clear the match threshold; when none do, the top
// advertisers are returned regardless, with the fallback flagged.
func AdvertiserMatches(appeal map[string]float64, roster Roster) MatchResult {
	interested, audienceFallback := InterestedAudiences(appeal)
	iset := make(map[string]bool, len(interested))
	for _, s := range interested {
		iset[s] = true
	}

	type scored struct {
		name string
		raw  float64
	}
	all := make([]scored, 0, len(roster))
	for id, adv := range roster {
		quality, _ := parseWeight(adv.Quality)
		overlap := false
		var sum float64
		for segment, importance := range adv.TargetAudience {
			if !iset[segment] {
				continue
			}
			overlap = true
			if v, ok := parseWeight(importance); ok {
				sum += v * appeal[segment]
			}
		}
		raw := quality * noOverlapPenalty
		if overlap {
			raw = quality + sum
		}
		all = append(all, scored{name: adv.name(id), raw: raw})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].raw != all[j].raw {
			return all[i].raw > all[j].raw
		}
		return all[i].name < all[j].name
	})

	var good []scored
	for _, s := range all {
		if s.raw >= matchThreshold {
			good = append(good, s)
		}
	}

	advertiserFallback := false
	if len(good) == 0 && len(all) > 0 {
		n := advertiserFallbackCount
		if n > len(all) {
			n = len(all)
		}
		good = all[:n]
		advertiserFallback = true
	}

	matches := make([]Match, 0, len(good))
	for _, s := range good {
		matches = append(matches, Match{Name: s.name, Score: round1(s.raw)})
	}

	return MatchResult{
		InterestedAudiences:    interested,
		UsedAudienceFallback:   audienceFallback,
		TopAdvertisers:         matches,
		UsedAdvertiserFallback: advertiserFallback,
	}
}

// rankSegments orders segment names by appeal descending, breaking ties by
// name so the ordering is stable across runs.
func rankSegments(appeal map[string]float64) []string {
	segments := make([]string, 0, len(appeal))
	for s := range appeal {
		segments = append(segments, s)
	}
	sort.Slice(segments, func(i, j int) bool {
		if appeal[segments[i]] != appeal[segments[j]] {
			return appeal[segments[i]] > appeal[segments[j]]
		}
		return segments[i] < segments[j]
	})
	return segments
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
