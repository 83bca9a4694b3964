package generator

import (
	"github.com/vampirenirmal/pitchforge/internal/tags"
)

// Idea is the output of a successful generation run. It is fully built in
// one pass and not mutated afterwards, except for the enrichment fields the
// calculator stage may attach.
type Idea struct {
	ID           string     `json:"id"`
	Genres       []tags.Tag `json:"genres"`
	GenreWeights []float64  `json:"genre_weights"` // parallel to Genres, sums to 1.0
	Setting      tags.Tag   `json:"setting"`
	Protagonist  tags.Tag   `json:"protagonist"`
	Antagonist   tags.Tag   `json:"antagonist,omitempty"`
	Supporting   []tags.Tag `json:"supporting_characters"`
	Finales      []tags.Tag `json:"finales"`
	Themes       []tags.Tag `json:"themes"`
	TotalScore   float64    `json:"total_score"`
	AllTags      []tags.Tag `json:"all_tags"` // selection order
	Warnings     []string   `json:"warnings,omitempty"`

	// Enrichment fields, attached by the appeal calculator stage.
	InterestedAudiences    []string          `json:"interested_audiences,omitempty"`
	TopAdvertisers         []AdvertiserScore `json:"top_advertisers,omitempty"`
	UsedAudienceFallback   bool              `json:"used_audience_fallback,omitempty"`
	UsedAdvertiserFallback bool              `json:"used_advertiser_fallback,omitempty"`
}

// AdvertiserScore is an enrichment entry: an advertiser name with its
// rounded match score.
type AdvertiserScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Selection groups the idea's tags by category, in the shape the appeal
// calculator validates and scores.
func (i *Idea) Selection() map[tags.Category][]tags.Tag {
	sel := map[tags.Category][]tags.Tag{
		tags.Genres:         append([]tags.Tag(nil), i.Genres...),
		tags.Setting:        {i.Setting},
		tags.Protagonist:    {i.Protagonist},
		tags.ThemeAndEvents: append([]tags.Tag(nil), i.Themes...),
	}
	if len(i.Finales) > 0 {
		// Calculator cardinality allows at most one finale; the first pick
		// is the primary one.
		sel[tags.Finale] = []tags.Tag{i.Finales[0]}
	}
	if i.Antagonist != "" {
		sel[tags.Antagonist] = []tags.Tag{i.Antagonist}
	}
	if len(i.Supporting) > 0 {
		sel[tags.SupportingCharacter] = append([]tags.Tag(nil), i.Supporting...)
	}
	return sel
}

// genreWeightMap returns the per-tag weight lookup used by the scoring
// stage. Non-genre tags default to weight 1.0 at lookup time.
func (i *Idea) genreWeightMap() map[tags.Tag]float64 {
	m := make(map[tags.Tag]float64, len(i.Genres))
	for n, g := range i.Genres {
		if n < len(i.GenreWeights) {
			m[g] = i.GenreWeights[n]
		}
	}
	return m
}
