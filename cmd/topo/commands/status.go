package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether the cache matches the inventory version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := c.app.Status(cmd.Context())

			out := cmd.OutOrStdout()
			state := "fresh"
			if st.Stale {
				state = "stale"
			}
			_, _ = fmt.Fprintf(out, "cache: %s (%s)\n", state, st.Reason)
			_, _ = fmt.Fprintf(out, "local version: %s\n", orNone(st.Local))
			_, _ = fmt.Fprintf(out, "remote version: %s\n", orNone(st.Remote))
			if st.Err != nil {
				_, _ = fmt.Fprintf(out, "cause: %v\n", st.Err)
			}
			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "<none>"
	}
	return s
}
