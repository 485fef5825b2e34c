package catalog

import "sort"

// Favorites is the set of starred record ids.
type Favorites struct {
	ids map[string]struct{}
}

// NewFavorites builds a set from ids, ignoring blanks.
func NewFavorites(ids ...string) *Favorites {
	f := &Favorites{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id == "" {
			continue
		}
		f.ids[id] = struct{}{}
	}
	return f
}

// Has reports whether id is starred.
func (f *Favorites) Has(id string) bool {
	_, ok := f.ids[id]
	return ok
}

// Toggle removes id if present, adds it otherwise, and returns the new state.
func (f *Favorites) Toggle(id string) bool {
	if _, ok := f.ids[id]; ok {
		delete(f.ids, id)
		return false
	}
	f.ids[id] = struct{}{}
	return true
}

// IDs returns the starred ids sorted, for stable persistence.
func (f *Favorites) IDs() []string {
	out := make([]string, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of starred ids.
func (f *Favorites) Len() int {
	return len(f.ids)
}
