package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// FavCmd returns the `qbank fav` command.
func FavCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "fav <id>",
		Short: "Star or unstar a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			env, err := LoadEnv(opts)
			if err != nil {
				return err
			}
			defer env.Close()

			engine, err := env.Engine(c.Context(), env.KV)
			if err != nil {
				return err
			}
			id := args[0]
			if _, ok := engine.Store().Lookup(id); !ok {
				return fmt.Errorf("unknown question id %q", id)
			}
			if engine.ToggleFavorite(id) {
				fmt.Fprintf(c.OutOrStdout(), "starred %s\n", id)
			} else {
				fmt.Fprintf(c.OutOrStdout(), "unstarred %s\n", id)
			}
			return nil
		},
	}
}
