package catalog

// Store is the immutable-after-load record collection.
type Store struct {
	records []Record
	byID    map[string]int
}

// NewStore copies records into a store and indexes them by id.
// Later duplicates of an id are reachable by position only.
func NewStore(records []Record) *Store {
	owned := make([]Record, len(records))
	copy(owned, records)
	byID := make(map[string]int, len(owned))
	for i, r := range owned {
		if _, ok := byID[r.ID]; !ok {
			byID[r.ID] = i
		}
	}
	return &Store{records: owned, byID: byID}
}

// Records returns the full collection in load order. Callers must not mutate it.
func (s *Store) Records() []Record {
	return s.records
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Lookup finds a record by id.
func (s *Store) Lookup(id string) (Record, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}

// Topics returns "all" followed by distinct topics.
func (s *Store) Topics() []string {
	return DistinctTopics(s.records)
}

// Subtopics returns "all" followed by the distinct subtopics of topic.
func (s *Store) Subtopics(topic string) []string {
	return DistinctSubtopics(s.records, topic)
}

// Difficulties returns "all" followed by distinct difficulties.
func (s *Store) Difficulties() []string {
	return distinct(s.records, func(r Record) (string, bool) {
		return string(r.Difficulty), true
	})
}

// Tags returns every distinct tag in first-seen order, without the sentinel.
func (s *Store) Tags() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range s.records {
		for _, t := range r.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// --- Index Helpers ---

// DistinctTopics returns ["all", ...unique topics in first-seen order].
func DistinctTopics(records []Record) []string {
	return distinct(records, func(r Record) (string, bool) {
		return r.Topic, true
	})
}

// DistinctSubtopics returns ["all"] when topic is "all", otherwise "all"
// followed by the unique subtopics of records under topic.
func DistinctSubtopics(records []Record, topic string) []string {
	if topic == All {
		return []string{All}
	}
	return distinct(records, func(r Record) (string, bool) {
		return r.Subtopic, r.Topic == topic
	})
}

// ValidTopic reports whether topic is "all" or present in records.
func ValidTopic(records []Record, topic string) bool {
	return contains(DistinctTopics(records), topic)
}

// ValidSubtopic reports whether subtopic is a legal selection under topic.
func ValidSubtopic(records []Record, topic, subtopic string) bool {
	return contains(DistinctSubtopics(records, topic), subtopic)
}

func distinct(records []Record, key func(Record) (string, bool)) []string {
	out := []string{All}
	seen := map[string]struct{}{All: {}}
	for _, r := range records {
		v, ok := key(r)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
