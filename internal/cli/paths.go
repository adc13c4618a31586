package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pathsCommand creates the paths command, which lists every hypernym path
// from a root down to a sense.
func (c *CLI) pathsCommand() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:     "paths <sense-key|lemma>",
		Short:   "List hypernym paths from the roots to a sense",
		Example: "  synsetree paths dog.n.01\n  synsetree paths --lang cmn 狗",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()
			if lang == "" {
				lang = c.cfg.Graph.Language
			}

			senses, err := runner.Resolve(ctx, args[0], lang)
			if err != nil {
				return err
			}
			for _, s := range senses {
				info, err := runner.Describe(ctx, s.Key, lang)
				if err != nil {
					return err
				}
				fmt.Println(StyleTitle.Render(info.Name) + " " + kindLabel(info.Kind))
				for _, path := range info.Paths {
					printDetail("%s", formatPath(path))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "display language (default from config)")
	return cmd
}
