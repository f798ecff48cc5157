package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/familytree/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// The CLI logger is attached to the command context before any subcommand
// runs, so commands retrieve it with loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Familytree lays out family trees and renders them as diagrams",
		Long: `Familytree arranges the members of a family into generations, connects
parents to their children and renders the result as SVG, PDF, PNG, JSON
or Graphviz output. It also serves the same pipeline over HTTP.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}
