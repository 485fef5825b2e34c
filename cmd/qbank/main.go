package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitrone/qbank/internal/cmd"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	opts := &cmd.Options{}
	root := &cobra.Command{
		Use:   "qbank",
		Short: "qbank - question bank browser",
		Long:  "qbank: browse, filter and star practice questions, or pick one at random.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.RunTUI(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.Source, "source", "", "question file path or http(s) URL (overrides config)")
	root.PersistentFlags().IntVar(&opts.PageSize, "page-size", 0, "questions per page (overrides config)")

	root.AddCommand(cmd.ListCmd(opts))
	root.AddCommand(cmd.RandomCmd(opts))
	root.AddCommand(cmd.TopicsCmd(opts))
	root.AddCommand(cmd.FavCmd(opts))
	root.AddCommand(cmd.InitCmd(opts))
	return root
}
