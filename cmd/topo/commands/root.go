// Package commands implements the CLI commands for the topo tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/topo/internal/app"
	"go.trai.ch/topo/internal/build"
	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/topo/internal/engine/builder"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for topo.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Fetch(ctx context.Context, opts app.FetchOptions) (*domain.Topology, error)
	Status(ctx context.Context) domain.Staleness
	BackboneGraph(ctx context.Context) (*domain.Graph, error)
	SiteGraph(ctx context.Context, site string) (builder.SiteResult, error)
	Export(w io.Writer, g *domain.Graph, format string) error
	Clean() error
	SetLatency(latency float64)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "topo",
		Short:         "Build network topology graphs of the testbed",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Float64("latency", domain.DefaultLatency,
		"Latency in seconds given to every edge (overrides the config file)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		flag := cmd.Flags().Lookup("latency")
		if flag == nil || !flag.Changed {
			return nil
		}
		latency, err := cmd.Flags().GetFloat64("latency")
		if err != nil {
			return zerr.Wrap(err, "invalid latency flag")
		}
		c.app.SetLatency(latency)
		return nil
	}

	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newBackboneCmd())
	rootCmd.AddCommand(c.newSiteCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
