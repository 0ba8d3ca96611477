package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/relaybot/pkg/log"
	"github.com/sandevgo/relaybot/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the configured chat transports",
	Long:  `Loads <runtime>/.env, builds the responder and starts the Telegram bot and/or the console chat.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting relaybot")

		app := NewApp(ctx)
		services, err := app.Transports(ctx, stop)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize transports")
		}
		services = append(services, app.cleanup...)

		srv.StartServices(ctx, services)

		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("relaybot has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
