package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RandomCmd returns the `qbank random` command.
func RandomCmd(opts *Options) *cobra.Command {
	var filters filterFlags
	var hideSolution bool
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print one random question matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			env, err := LoadEnv(opts)
			if err != nil {
				return err
			}
			defer env.Close()

			engine, err := env.DryRunEngine(c.Context())
			if err != nil {
				return err
			}
			filters.apply(engine, c.ErrOrStderr())

			rec, _, ok := engine.PickRandom()
			if !ok {
				return fmt.Errorf("no questions match your filters")
			}

			out := c.OutOrStdout()
			fmt.Fprintf(out, "%s  %s > %s  (%s)\n\n", rec.ID, rec.Topic, rec.Subtopic, rec.Difficulty)
			fmt.Fprintln(out, rec.QuestionText)
			for _, img := range rec.QuestionImages {
				fmt.Fprintf(out, "image: %s\n", img)
			}
			if hideSolution {
				return nil
			}
			fmt.Fprintf(out, "\nsolution:\n%s\n", rec.SolutionText)
			for _, img := range rec.SolutionImages {
				fmt.Fprintf(out, "image: %s\n", img)
			}
			if id := rec.YouTubeID(); id != "" {
				fmt.Fprintf(out, "video: https://www.youtube.com/watch?v=%s\n", id)
			} else if rec.SolutionVideoURL != "" {
				fmt.Fprintf(out, "video: %s\n", rec.SolutionVideoURL)
			}
			return nil
		},
	}
	filters.register(cmd)
	cmd.Flags().BoolVar(&hideSolution, "no-solution", false, "print only the question")
	return cmd
}
