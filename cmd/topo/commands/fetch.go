package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/topo/internal/app"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the inventory into the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			sites, _ := cmd.Flags().GetStringSlice("site")

			topo, err := c.app.Fetch(cmd.Context(), app.FetchOptions{
				Force: force,
				Sites: sites,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, site := range topo.Sites() {
				hosts := 0
				for _, h := range topo.Hosts[site] {
					hosts += len(h)
				}
				_, _ = fmt.Fprintf(out, "%s: %d clusters, %d hosts, %d equipment\n",
					site, len(topo.Hosts[site]), hosts, len(topo.Equipment[site]))
			}
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Refetch the inventory even when the cache is current")
	cmd.Flags().StringSliceP("site", "s", nil, "Restrict the output to these sites (repeatable)")
	return cmd
}
