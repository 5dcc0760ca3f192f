package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/endlabel/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Endlabel places collision-free labels at the end of line-chart series",
		Long: `Endlabel lays out the labels at the right edge of a line chart so that
they do not overlap, draws connectors back to each series endpoint, and
renders the result as SVG, PNG or PDF. It can run once from the command
line or as an HTTP service.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.focusCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
