package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/qbank/internal/catalog"
)

// TopicsCmd returns the `qbank topics` command.
func TopicsCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "Print the topic and subtopic index",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			env, err := LoadEnv(opts)
			if err != nil {
				return err
			}
			defer env.Close()

			records, err := env.Source.Load(c.Context())
			if err != nil {
				return err
			}
			store := catalog.NewStore(records)
			counts := make(map[[2]string]int)
			for _, rec := range store.Records() {
				counts[[2]string{rec.Topic, rec.Subtopic}]++
			}

			out := c.OutOrStdout()
			for _, topic := range store.Topics()[1:] {
				fmt.Fprintln(out, topic)
				for _, sub := range store.Subtopics(topic)[1:] {
					fmt.Fprintf(out, "  %s (%d)\n", sub, counts[[2]string{topic, sub}])
				}
			}
			if tags := store.Tags(); len(tags) > 0 {
				fmt.Fprintf(out, "\ntags: %v\n", tags)
			}
			return nil
		},
	}
}
