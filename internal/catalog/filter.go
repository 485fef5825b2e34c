package catalog

import (
	"sort"
	"strings"
)

// TagSet is the set of tags selected as a filter.
type TagSet map[string]struct{}

// NewTagSet builds a set from tags, ignoring blanks.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		s[t] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Toggle adds or removes tag and returns whether it is now present.
func (s TagSet) Toggle(tag string) bool {
	if _, ok := s[tag]; ok {
		delete(s, tag)
		return false
	}
	s[tag] = struct{}{}
	return true
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy.
func (s TagSet) Clone() TagSet {
	out := make(TagSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// --- Filter State ---

// FilterState is the full set of narrowing criteria plus the search term.
type FilterState struct {
	Search        string
	Topic         string
	Subtopic      string
	Difficulty    string
	Tags          TagSet
	FavoritesOnly bool
}

// DefaultFilterState returns a state that matches every record.
func DefaultFilterState() FilterState {
	return FilterState{
		Topic:      All,
		Subtopic:   All,
		Difficulty: All,
		Tags:       TagSet{},
	}
}

// Clone returns a copy whose tag set is not shared.
func (s FilterState) Clone() FilterState {
	out := s
	out.Tags = s.Tags.Clone()
	return out
}

// IsDefault reports whether no criterion narrows the result set.
func (s FilterState) IsDefault() bool {
	return strings.TrimSpace(s.Search) == "" &&
		s.Topic == All && s.Subtopic == All && s.Difficulty == All &&
		len(s.Tags) == 0 && !s.FavoritesOnly
}

// FavoriteChecker reports whether an id is favorited.
type FavoriteChecker interface {
	Has(id string) bool
}

// --- Filter Engine ---

// Filter returns the records passing every criterion of state, in their
// original order. The result is always a new slice.
func Filter(records []Record, state FilterState, favorites FavoriteChecker) []Record {
	term := strings.ToLower(state.Search)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if matches(r, state, term, favorites) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single record passes state.
func Matches(r Record, state FilterState, favorites FavoriteChecker) bool {
	return matches(r, state, strings.ToLower(state.Search), favorites)
}

func matches(r Record, state FilterState, term string, favorites FavoriteChecker) bool {
	if state.Topic != All && r.Topic != state.Topic {
		return false
	}
	if state.Subtopic != All && r.Subtopic != state.Subtopic {
		return false
	}
	if state.Difficulty != All && string(r.Difficulty) != state.Difficulty {
		return false
	}
	if len(state.Tags) > 0 && !intersects(r.Tags, state.Tags) {
		return false
	}
	if state.FavoritesOnly && (favorites == nil || !favorites.Has(r.ID)) {
		return false
	}
	return term == "" || searchMatch(r, term)
}

func searchMatch(r Record, term string) bool {
	fields := []string{r.QuestionText, r.SolutionText, r.Topic, r.Subtopic}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func intersects(tags []string, set TagSet) bool {
	for _, t := range tags {
		if set.Has(t) {
			return true
		}
	}
	return false
}
