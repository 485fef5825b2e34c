package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinctTopicsFirstSeenOrder(t *testing.T) {
	records := []Record{
		{ID: "1", Topic: "Geometry", Subtopic: "Circles"},
		{ID: "2", Topic: "Algebra", Subtopic: "Linear"},
		{ID: "3", Topic: "Geometry", Subtopic: "Triangles"},
		{ID: "4", Topic: "Geometry", Subtopic: "Circles"},
	}
	assert.Equal(t, []string{All, "Geometry", "Algebra"}, DistinctTopics(records))
	assert.Equal(t, []string{All, "Circles", "Triangles"}, DistinctSubtopics(records, "Geometry"))
	assert.Equal(t, []string{All}, DistinctSubtopics(records, All))
	assert.Equal(t, []string{All}, DistinctSubtopics(records, "Missing"))
	assert.Equal(t, []string{All}, DistinctTopics(nil))
}

func TestValidSubtopic(t *testing.T) {
	records := mixedRecords()
	assert.True(t, ValidSubtopic(records, "Algebra", "Linear"))
	assert.True(t, ValidSubtopic(records, "Algebra", All))
	assert.False(t, ValidSubtopic(records, "Algebra", "Circles"))
	assert.False(t, ValidSubtopic(records, All, "Linear"))
	assert.True(t, ValidTopic(records, "Geometry"))
	assert.False(t, ValidTopic(records, "Calculus"))
}

func TestStoreLookupAndIndexes(t *testing.T) {
	records := mixedRecords()
	s := NewStore(records)
	records[0].ID = "changed"

	assert.Equal(t, 4, s.Len())
	r, ok := s.Lookup("1")
	assert.True(t, ok)
	assert.Equal(t, "Linear", r.Subtopic)
	_, ok = s.Lookup("nope")
	assert.False(t, ok)

	assert.Equal(t, []string{All, "Algebra", "Geometry"}, s.Topics())
	assert.Equal(t, []string{All, "Linear", "Quadratic"}, s.Subtopics("Algebra"))
	assert.Equal(t, []string{All, "easy", "hard", "medium"}, s.Difficulties())
	assert.Equal(t, []string{"intro", "advanced", "area", "angles", "Intro"}, s.Tags())
}

func TestRecordYouTubeID(t *testing.T) {
	r := Record{SolutionVideoURL: "https://www.youtube.com/watch?v=abc123&t=10"}
	assert.Equal(t, "abc123", r.YouTubeID())
	assert.Equal(t, "", Record{}.YouTubeID())
	assert.Equal(t, "", Record{SolutionVideoURL: "://bad"}.YouTubeID())
	assert.True(t, sampleRecords()[1].HasTag("advanced"))
	assert.False(t, sampleRecords()[0].HasTag("advanced"))
}
