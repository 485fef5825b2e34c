package catalog

import (
	"net/url"
	"strings"
)

// All is the selector sentinel meaning "no narrowing".
const All = "all"

// Difficulty is the externally defined difficulty level of a record.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// --- Record ---

// Record is one catalog entry: a question, its solution and metadata.
type Record struct {
	ID               string     `json:"id" validate:"required"`
	Topic            string     `json:"topic" validate:"required"`
	Subtopic         string     `json:"subtopic" validate:"required"`
	Difficulty       Difficulty `json:"difficulty" validate:"required"`
	QuestionText     string     `json:"question_text" validate:"required"`
	SolutionText     string     `json:"solution_text" validate:"required"`
	Tags             []string   `json:"tags"`
	QuestionImages   []string   `json:"question_images,omitempty"`
	SolutionImages   []string   `json:"solution_images,omitempty"`
	SolutionVideoURL string     `json:"solution_video_url,omitempty"`
}

// HasTag reports whether the record carries tag.
func (r Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// YouTubeID returns the "v" parameter of the solution video URL.
func (r Record) YouTubeID() string {
	raw := strings.TrimSpace(r.SolutionVideoURL)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Query().Get("v")
}
