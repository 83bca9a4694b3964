package appeal

import (
	"fmt"

	"github.com/vampirenirmal/pitchforge/internal/tags"
)

// Results carries the computed scores of a calculation. Error is set when
// the computation itself failed after validation passed.
type Results struct {
	ArtisticScore          float64  `json:"artisticScore"`
	CommercialScore        float64  `json:"commercialScore"`
	InterestedAudiences    []string `json:"interestedAudiences"`
	TopAdvertisers         []Match  `json:"topAdvertisers"`
	UsedAudienceFallback   bool     `json:"usedAudienceFallback"`
	UsedAdvertiserFallback bool     `json:"usedAdvertiserFallback"`
	Error                  string   `json:"error,omitempty"`
}

// CalculationResult is what the caller always receives: the validation
// outcome, and the computed results when validation passed. Results stays
// nil when validation fails.
type CalculationResult struct {
	Validation Validation `json:"validation"`
	Results    *Results   `json:"results"`
}

// RunCalculation validates the selection first and short-circuits on
// failure. When valid, it chains the appeal average into the index scores
// and the advertiser matching. Unexpected computation failures are recovered
// and surfaced as a result-level error rather than propagated.
func RunCalculation(selection map[tags.Category][]tags.Tag, weights AudienceWeights, groups AudienceGroups, roster Roster) (result CalculationResult) {
	result.Validation = ValidateSelection(selection)
	if !result.Validation.IsValid {
		return result
	}

	defer func() {
		if r := recover(); r != nil {
			result.Results = &Results{Error: fmt.Sprintf("calculation failed: %v", r)}
		}
	}()

	selected := flatten(selection)
	appeal := AverageAppeal(selected, weights, groups)
	artistic, commercial := ArtisticCommercialScore(appeal, groups)
	matches := AdvertiserMatches(appeal, roster)

	result.Results = &Results{
		ArtisticScore:          artistic,
		CommercialScore:        commercial,
		InterestedAudiences:    matches.InterestedAudiences,
		TopAdvertisers:         matches.TopAdvertisers,
		UsedAudienceFallback:   matches.UsedAudienceFallback,
		UsedAdvertiserFallback: matches.UsedAdvertiserFallback,
	}
	return result
}

// flatten lists the selection's tags in stable category order.
func flatten(selection map[tags.Category][]tags.Tag) []tags.Tag {
	var out []tags.Tag
	for _, cat := range tags.AllCategories() {
		out = append(out, selection[cat]...)
	}
	return out
}
