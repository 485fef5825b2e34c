package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gravitrone/qbank/internal/catalog"
)

// filterFlags are the narrowing flags shared by list and random.
type filterFlags struct {
	search     string
	topic      string
	subtopic   string
	difficulty string
	tags       []string
	favorites  bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "free-text search over question, solution, topic and tags")
	cmd.Flags().StringVarP(&f.topic, "topic", "t", catalog.All, "topic to show")
	cmd.Flags().StringVar(&f.subtopic, "subtopic", catalog.All, "subtopic of --topic to show")
	cmd.Flags().StringVarP(&f.difficulty, "difficulty", "d", catalog.All, "difficulty to show (easy, medium, hard)")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "tag to match; repeat for any-of")
	cmd.Flags().BoolVarP(&f.favorites, "favorites", "f", false, "only starred questions")
}

// apply replaces the engine's filters with the flags and warns on stderr
// when a selector was not legal for the loaded records.
func (f filterFlags) apply(e *catalog.Engine, stderr io.Writer) {
	e.ClearFilters()
	e.ApplyTopic(f.topic)
	e.ApplySubtopic(f.subtopic)
	e.ApplyDifficulty(f.difficulty)
	e.SetTags(f.tags)
	e.SetFavoritesOnly(f.favorites)
	e.ApplySearch(f.search)

	state := e.State()
	if topic := catalog.SelectorOrAll(f.topic); state.Topic != topic {
		fmt.Fprintf(stderr, "unknown topic %q, showing all topics\n", topic)
	}
	if subtopic := catalog.SelectorOrAll(f.subtopic); state.Subtopic != subtopic {
		fmt.Fprintf(stderr, "subtopic %q is not under topic %q, showing all subtopics\n", subtopic, state.Topic)
	}
}
