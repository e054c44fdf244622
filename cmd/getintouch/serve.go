package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fezwebco/getintouch/pkg/config"
	"github.com/fezwebco/getintouch/pkg/httpserver"
	"github.com/fezwebco/getintouch/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Serves POST /api/get-in-touch plus /healthz, /readyz and /metrics until SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}

			log := newLogger(cfg, cmd.OutOrStdout())
			logger.SetAsDefault(log)

			a, err := newApp(cfg, log)
			if err != nil {
				log.Error("failed to initialize", logger.Error(err))
				return err
			}

			log.Info("starting",
				logger.Provider(cfg.Email.Provider),
				slog.Bool("metrics", a.metrics != nil),
				slog.String("timezone", cfg.Contact.Timezone),
			)

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(cmd.Context(), a.router)
		},
	}
}
