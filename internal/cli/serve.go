package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jennyflying-25/cisco-checker-app/internal/server"
)

type serveOptions struct {
	Addr string
}

func newServeCommand() *cobra.Command {
	opts := serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the compatibility checker over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Addr, "addr", ":8080", "Listen address")
	_ = viper.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func runServe(ctx context.Context, opts serveOptions) error {
	service, err := newAppService(ctx)
	if err != nil {
		return err
	}
	// A failed initial load is not fatal: the server comes up unhealthy and
	// a later reload can recover it.
	if err := service.Load(ctx); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("initial dataset load failed")
	}

	addr := viper.GetString("addr")
	if addr == "" {
		addr = opts.Addr
	}
	log.Ctx(ctx).Info().Str("addr", addr).Msg("starting checker server")
	return server.Start(ctx, server.New(service), addr)
}
