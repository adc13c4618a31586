package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/synsetree/pkg/errors"
	"github.com/matzehuels/synsetree/pkg/pipeline"
	"github.com/matzehuels/synsetree/pkg/session"
)

// browseCommand creates the browse command, an interactive drill-down
// through the hyponym trees. The last position is saved for --resume.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		limit  int
		lang   string
		resume bool
	)

	cmd := &cobra.Command{
		Use:   "browse [sense-key|lemma]",
		Short: "Browse the hypernym hierarchy interactively",
		Example: `  synsetree browse entity.n.01
  synsetree browse --resume`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			store, err := session.NewCLIStore(c.cfg.Session.Dir)
			if err != nil {
				return err
			}

			var sess *session.Session
			switch {
			case resume:
				if sess, err = store.GetSession(ctx); err != nil {
					return err
				}
				if sess == nil {
					return apperrors.New(apperrors.ErrCodeSessionNotFound, "no saved browse session, start one with `%s browse <sense>`", appName)
				}
			case len(args) == 1:
				if lang == "" {
					lang = c.cfg.Graph.Language
				}
				if limit == 0 {
					limit = c.cfg.Graph.NodeLimit
				}
				if sess, err = newBrowseSession(ctx, runner, args[0], lang, limit, c.cfg.Session.TTL); err != nil {
					return err
				}
			default:
				return apperrors.New(apperrors.ErrCodeEmptySelection, "give a sense or lemma to start from, or --resume")
			}

			model, err := NewBrowseModel(ctx, runner, sess)
			if err != nil {
				return err
			}
			final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}

			sess = final.(BrowseModel).Session
			sess.Extend(c.cfg.Session.TTL)
			if err := store.SaveSession(ctx, sess); err != nil {
				c.Logger.Warn("could not save browse session", "error", err)
				return nil
			}
			printInfo("Stopped at %s", sess.Current())
			printNextStep("Continue", appName+" browse --resume")
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum distinct senses per tree (default graph_node_limit)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "display language (default from config)")
	cmd.Flags().BoolVar(&resume, "resume", false, "continue the last browse session")
	return cmd
}

// newBrowseSession resolves input to its first sense in the graph and
// starts a session there.
func newBrowseSession(ctx context.Context, runner *pipeline.Runner, input, lang string, limit int, ttl time.Duration) (*session.Session, error) {
	senses, err := runner.Resolve(ctx, input, lang)
	if err != nil {
		return nil, err
	}
	return session.New(senses[0].Key, lang, limit, ttl), nil
}
