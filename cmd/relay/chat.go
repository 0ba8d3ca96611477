package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/relaybot/internal/transport/cli"
	"github.com/sandevgo/relaybot/pkg/log"
	"github.com/sandevgo/relaybot/pkg/srv"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the bot in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		app := NewApp(ctx)
		defer srv.ShutdownNow(ctx, app.cleanup)

		console, err := cli.NewReadLine(app.cfg.GetRuntimePath(), app.responder, app.router, app.store)
		if err != nil {
			log.FromCtx(ctx).Error().Err(err).Msg("failed to open console")
			return err
		}
		defer console.Shutdown(ctx)

		return console.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
