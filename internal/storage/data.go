package storage

import (
	"fmt"
	"log/slog"

	"github.com/vampirenirmal/pitchforge/internal/appeal"
	"github.com/vampirenirmal/pitchforge/internal/tags"
)

// LoadPool reads a tag pool file: a JSON object mapping category names to
// tag lists. Unknown category keys are skipped with a warning so stale data
// files degrade instead of failing the load.
func (fs *FileSystem) LoadPool(path string) (tags.Pool, error) {
	var raw map[string][]string
	if err := fs.LoadJSON(path, &raw); err != nil {
		return nil, fmt.Errorf("loading tag pool: %w", err)
	}

	pool := make(tags.Pool, len(raw))
	for name, list := range raw {
		cat, ok := tags.ParseCategory(name)
		if !ok {
			slog.Warn("skipping unknown tag category", "category", name, "tag_count", len(list))
			continue
		}
		converted := make([]tags.Tag, len(list))
		for i, t := range list {
			converted[i] = tags.Tag(t)
		}
		pool[cat] = converted
	}
	return pool, nil
}

// LoadMatrix reads a compatibility matrix file: a JSON object mapping source
// tag to target tag to score.
func (fs *FileSystem) LoadMatrix(path string) (tags.Matrix, error) {
	var raw map[string]map[string]float64
	if err := fs.LoadJSON(path, &raw); err != nil {
		return nil, fmt.Errorf("loading compatibility matrix: %w", err)
	}

	matrix := make(tags.Matrix, len(raw))
	for src, row := range raw {
		converted := make(map[tags.Tag]float64, len(row))
		for dst, score := range row {
			converted[tags.Tag(dst)] = score
		}
		matrix[tags.Tag(src)] = converted
	}
	return matrix, nil
}

// LoadAudienceWeights reads the per-tag audience weight table.
func (fs *FileSystem) LoadAudienceWeights(path string) (appeal.AudienceWeights, error) {
	var weights appeal.AudienceWeights
	if err := fs.LoadJSON(path, &weights); err != nil {
		return nil, fmt.Errorf("loading audience weights: %w", err)
	}
	return weights, nil
}

// LoadAudienceGroups reads the audience segment metadata table.
func (fs *FileSystem) LoadAudienceGroups(path string) (appeal.AudienceGroups, error) {
	var groups appeal.AudienceGroups
	if err := fs.LoadJSON(path, &groups); err != nil {
		return nil, fmt.Errorf("loading audience groups: %w", err)
	}
	return groups, nil
}

// LoadRoster reads the advertiser roster.
func (fs *FileSystem) LoadRoster(path string) (appeal.Roster, error) {
	var roster appeal.Roster
	if err := fs.LoadJSON(path, &roster); err != nil {
		return nil, fmt.Errorf("loading advertiser roster: %w", err)
	}
	return roster, nil
}
