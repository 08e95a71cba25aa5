package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-sigstudio/pkg/server"
)

// serveCommand creates the serve command.
func (a *app) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP preview service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			s, err := a.cfg.Store.Open(ctx)
			if err != nil {
				return err
			}
			defer closeQuietly(ctx, s)

			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			srv, err := server.New(
				server.WithAddr(addr),
				server.WithStudio(a.newStudio()),
				server.WithStore(s),
				server.WithLogger(logger),
				server.WithSecureCookie(a.cfg.Server.SecureCookie),
				server.WithSessionTTL(a.cfg.Server.SessionTTL),
				server.WithDefaults(a.cfg.TemplateKind(), a.cfg.SizeProfile()),
			)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to config)")
	return cmd
}
