package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stackrox/cdn-migrator/migrator/cdn"
)

func statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the network serves content from the CDN",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			pool, err := connect(c.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			state, err := cdn.Status(c.Context(), newStore(pool))
			if err != nil {
				return err
			}
			printStatus(c, state)
			return nil
		},
	}
}

func printStatus(c *cobra.Command, state cdn.State) {
	if state.Migrated {
		fmt.Fprintf(c.OutOrStdout(), "Migrated to %s\n", state.CDNURL)
		return
	}
	fmt.Fprintln(c.OutOrStdout(), "Not migrated")
}
