package tags

// Tag is an opaque identifier for a narrative element, conventionally
// prefixed with its category (e.g. GENRES_ACTION).
type Tag string

// Pool holds the available tags per category. A generation run receives its
// own working copy and mutates it destructively; the caller's canonical pool
// is never touched. Pools must not be shared between concurrent runs.
type Pool map[Category][]Tag

// Clone returns a deep copy of the pool. Each run gets a fresh clone so
// removals never leak across runs.
func (p Pool) Clone() Pool {
	if p == nil {
		return nil
	}
	out := make(Pool, len(p))
	for cat, list := range p {
		cp := make([]Tag, len(list))
		copy(cp, list)
		out[cat] = cp
	}
	return out
}

// Tags returns the available tags for a category. The returned slice is the
// pool's backing storage; callers that keep it must not mutate the pool.
func (p Pool) Tags(cat Category) []Tag {
	return p[cat]
}

// Remove deletes a tag from a category. It is a no-op when the tag is not
// present.
func (p Pool) Remove(cat Category, tag Tag) {
	list := p[cat]
	for i, t := range list {
		if t == tag {
			p[cat] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Count returns how many tags remain in a category.
func (p Pool) Count(cat Category) int {
	return len(p[cat])
}
