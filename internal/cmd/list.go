package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/qbank/internal/catalog"
)

// ListCmd returns the `qbank list` command.
func ListCmd(opts *Options) *cobra.Command {
	var filters filterFlags
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the questions matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if page < 1 {
				return fmt.Errorf("--page must be at least 1")
			}
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
			for engine.Page() < page && engine.AdvancePage() {
			}

			out := c.OutOrStdout()
			visible := engine.Visible()
			if len(visible) == 0 {
				fmt.Fprintln(out, "No questions match your filters.")
				return nil
			}
			for _, rec := range visible {
				printRecordLine(out, rec, engine.IsFavorite(rec.ID))
			}
			fmt.Fprintf(out, "\nshowing %d of %d", len(visible), len(engine.Results()))
			if engine.HasMore() {
				fmt.Fprintf(out, " (more with --page %d)", engine.Page()+1)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
	filters.register(cmd)
	cmd.Flags().IntVarP(&page, "page", "p", 1, "reveal this many pages")
	return cmd
}

func printRecordLine(out io.Writer, rec catalog.Record, favorite bool) {
	star := " "
	if favorite {
		star = "*"
	}
	line := fmt.Sprintf("%s %-6s %s > %s  (%s)  %s", star, rec.ID, rec.Topic, rec.Subtopic, rec.Difficulty, oneLine(rec.QuestionText))
	if len(rec.Tags) > 0 {
		line += "  [" + strings.Join(rec.Tags, ", ") + "]"
	}
	fmt.Fprintln(out, line)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
