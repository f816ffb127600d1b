package commands

import (
	"github.com/spf13/cobra"
)

const formatUsage = "Output format: json or yaml"

func (c *CLI) newBackboneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backbone",
		Short: "Print the inter-site backbone graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("output")

			g, err := c.app.BackboneGraph(cmd.Context())
			if err != nil {
				return err
			}
			return c.app.Export(cmd.OutOrStdout(), g, format)
		},
	}
	cmd.Flags().StringP("output", "o", "json", formatUsage)
	return cmd
}

func (c *CLI) newSiteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site <site>",
		Short: "Print the graph of one site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")

			res, err := c.app.SiteGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.app.Export(cmd.OutOrStdout(), res.Graph, format)
		},
	}
	cmd.Flags().StringP("output", "o", "json", formatUsage)
	return cmd
}
