package appeal

import (
	"strconv"
	"strings"
)

// TagWeights holds the string-encoded per-segment appeal weights for one
// tag, exactly as they appear in the reference data.
type TagWeights struct {
	Weights map[string]string `json:"weights"`
}

// AudienceWeights maps a tag to its per-segment weights.
type AudienceWeights map[string]TagWeights

// AudienceGroup carries the artistic and commercial coefficients of one
// audience segment.
type AudienceGroup struct {
	ArtWeight        string `json:"artWeight"`
	CommercialWeight string `json:"commercialWeight"`
}

// AudienceGroups maps a segment name to its metadata. Its key set defines
// the known segments.
type AudienceGroups map[string]AudienceGroup

// Advertiser is one entry of the advertiser roster.
type Advertiser struct {
	DisplayName    string            `json:"displayName"`
	Quality        string            `json:"quality"`
	TargetAudience map[string]string `json:"targetAudience"`
}

// Roster is the advertiser roster, keyed by advertiser id.
type Roster map[string]Advertiser

// name resolves the advertiser's output name: display name when present,
// roster key otherwise.
func (a Advertiser) name(id string) string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return id
}

// parseWeight parses a string-encoded numeric weight. Missing or
// unparseable entries are skipped rather than treated as errors.
func parseWeight(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
