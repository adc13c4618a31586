package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/synsetree/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Synsetree explores the WordNet hypernym hierarchy as trees",
		Long: `Synsetree loads the noun hypernym graph of a WordNet lexicon, counts how many
senses sit below each one, and shows the hierarchy under any sense as a
bounded tree you can render, browse and drill into.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/synsetree/config.toml)")

	root.AddCommand(c.importCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.pathsCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
