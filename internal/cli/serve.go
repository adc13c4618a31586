package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/synsetree/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP API and the
// drill-down web page.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tree API and web viewer over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			cfg := c.cfg
			store, err := newSessionStore(ctx, cfg.Session)
			if err != nil {
				return err
			}
			defer store.Close()

			if addr == "" {
				addr = cfg.Server.Addr
			}
			srv := server.New(runner, store, server.Options{
				DefaultLimit:    cfg.Graph.NodeLimit,
				MaxLimit:        cfg.Server.MaxLimit,
				DefaultLanguage: cfg.Graph.Language,
				SessionTTL:      cfg.Session.TTL,
				ReadTimeout:     cfg.Server.ReadTimeout,
				WriteTimeout:    cfg.Server.WriteTimeout,
				ShutdownTimeout: cfg.Server.ShutdownTimeout,
			}, c.Logger)

			printInfo("Listening on %s", StyleHighlight.Render("http://"+addr))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr)")
	return cmd
}
