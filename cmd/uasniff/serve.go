package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uasniff/pkg/httpserver"
	"github.com/dmitrymomot/uasniff/pkg/logger"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve user agent classification over HTTP",
		Long: `Serve user agent classification over HTTP.

  GET  /v1/detect              classify the calling client
  POST /v1/detect              classify {"user_agent": ..., "headers": {...}}
  GET  /v1/is/{category}       check the calling client against a category
  GET  /v1/version/{property}  read a version from the calling client
  GET  /healthz, /readyz       liveness and readiness probes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.HTTP.Addr = addr
			}
			srv := httpserver.NewFromConfig(a.cfg.HTTP,
				httpserver.WithLogger(a.log.With(logger.Component("http"))),
			)
			return srv.Run(cmd.Context(), a.routes())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
