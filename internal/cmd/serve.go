package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/emergent-company/showcase/internal/catalog"
	"github.com/emergent-company/showcase/internal/config"
	"github.com/emergent-company/showcase/internal/content"
	"github.com/emergent-company/showcase/internal/handlers"
	"github.com/emergent-company/showcase/internal/logger"
	"github.com/emergent-company/showcase/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			config.LoadDotEnv()

			app := fx.New(
				fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
					return &fxevent.SlogLogger{Logger: log}
				}),

				logger.Module,
				config.Module,
				catalog.Module,
				content.Module,
				handlers.Module,
				server.Module,
			)
			if err := app.Err(); err != nil {
				return err
			}

			// Blocks until SIGINT/SIGTERM, then runs the stop hooks.
			app.Run()
			return nil
		},
	}
}
