package main

import (
	"github.com/sandevgo/relaybot/internal/config"
	"github.com/sandevgo/relaybot/internal/service/installer"
	"github.com/sandevgo/relaybot/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Create the runtime directory and .env interactively",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		cfg, err := config.LoadAppConfig()
		if err != nil {
			return err
		}

		logger.Info().Str("path", cfg.GetRuntimePath()).Msg("starting installation")
		if _, err := installer.RunWizard(cfg); err != nil {
			return err
		}

		logger.Info().Str("env", cfg.GetEnvPath()).Msg("installation complete, run 'relay start'")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
