package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/synsetree/pkg/errors"
	"github.com/matzehuels/synsetree/pkg/pipeline"
)

// searchCommand creates the search command, which finds lemmas containing
// a keyword and lists their senses.
func (c *CLI) searchCommand() *cobra.Command {
	var (
		lang  string
		limit int
	)

	cmd := &cobra.Command{
		Use:     "search <keyword>",
		Short:   "Search lemmas and list their senses",
		Example: "  synsetree search dog\n  synsetree search --lang cmn 狗",
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

			lemmas, err := runner.Search(ctx, args[0], lang)
			if err != nil {
				return err
			}
			if len(lemmas) == 0 {
				printInfo("No lemmas match %q", args[0])
				return nil
			}
			if limit > 0 && len(lemmas) > limit {
				lemmas = lemmas[:limit]
			}

			var rows [][]string
			for _, lemma := range lemmas {
				senses, err := runner.Resolve(ctx, lemma, lang)
				if errors.Is(err, pipeline.ErrEmptySelection) || apperrors.Is(err, apperrors.ErrCodeEmptySelection) {
					continue
				}
				if err != nil {
					return err
				}
				for _, s := range senses {
					rows = append(rows, []string{lemma, s.Key, s.Kind.Label(), fmt.Sprint(s.Size), truncate(s.Definition, 50)})
				}
			}
			fmt.Println(searchTable(rows).Render())
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "search language (default from config)")
	cmd.Flags().IntVarP(&limit, "max", "n", 20, "maximum lemmas to list (0 for all)")
	return cmd
}

func searchTable(rows [][]string) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Lemma", "Sense", "Kind", "Size", "Definition").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 1:
				return StyleHighlight
			case col == 4:
				return StyleDim
			}
			return lipgloss.NewStyle()
		})
}

// truncate shortens s to at most n runes, marking the cut with "…".
func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
