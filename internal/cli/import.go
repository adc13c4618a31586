package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/synsetree/pkg/config"
	"github.com/matzehuels/synsetree/pkg/lexicon/oewn"
	"github.com/matzehuels/synsetree/pkg/pipeline"
)

// importCommand creates the import command, which loads an Open English
// WordNet release into the lexicon database.
func (c *CLI) importCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "import [source]",
		Short: "Import a WordNet release into the lexicon database",
		Long: `Import an Open English WordNet release into the lexicon database.

The source may be an http(s) URL, a GWN-LMF JSON file (optionally gzipped) or
a directory of OEWN per-file JSON. Without a source the configured
lexicon.url is used. Downloads are retried and cached.`,
		Example: `  synsetree import
  synsetree import ./english-wordnet-2024.json.gz
  synsetree import --refresh https://en-word.net/static/english-wordnet-2024.json.gz`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.config()
			if err != nil {
				return err
			}
			src := cfg.Lexicon.URL
			if len(args) == 1 {
				src = args[0]
			}
			if src == "" {
				src = config.DefaultLexiconURL
			}

			ch, err := newCache(ctx, cfg.Cache)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer ch.Close()

			store, err := createLexicon(cfg.Lexicon.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			spinner := newSpinnerWithContext(ctx, "Importing "+src+"...")
			spinner.Start()
			res, err := pipeline.Import(ctx, store, src, oewn.NewFetcher(ch, cfg.Cache.TTL, c.Logger), refresh, c.Logger)
			spinner.Stop()
			if err != nil {
				return err
			}

			printSuccess("Imported %d synsets in %s", res.Written.Synsets, elapsed(res.Duration))
			printKeyValue("Source", res.Source)
			printKeyValue("Database", cfg.Lexicon.Path)
			printKeyValue("Lemmas", fmt.Sprint(res.Written.Lemmas))
			printKeyValue("Hypernyms", fmt.Sprint(res.Written.Hypernyms))
			if res.Parsed.Skipped > 0 {
				printWarning("skipped %d malformed entries", res.Parsed.Skipped)
			}
			printNextStep("Next", appName+" show entity")
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore the download cache")
	return cmd
}
