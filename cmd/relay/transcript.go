package main

import (
	"fmt"
	"strconv"

	"github.com/sandevgo/relaybot/internal/config"
	"github.com/sandevgo/relaybot/internal/storage/sqlite"
	"github.com/sandevgo/relaybot/pkg/log"
	"github.com/spf13/cobra"
)

var transcriptLimit int

var transcriptCmd = &cobra.Command{
	Use:   "transcript <user-id>",
	Short: "Print the archived exchanges of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if err := loadEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}
		cfg, err := config.LoadAppConfig()
		if err != nil {
			return err
		}

		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		exchanges, err := sqlite.NewTranscriptRepo(db).Recent(ctx, args[0], transcriptLimit)
		if err != nil {
			return err
		}
		log.FromCtx(ctx).Debug().Int("count", len(exchanges)).Msg("loaded transcript")

		out := cmd.OutOrStdout()
		for _, ex := range exchanges {
			source := ex.Source
			if ex.Reason != "" {
				source += ": " + ex.Reason
			}
			fmt.Fprintf(out, "[%s] (%s, %s)\n  user: %s\n  bot:  %s\n",
				ex.CreatedAt.Local().Format("2006-01-02 15:04:05"), ex.Category, source,
				strconv.Quote(ex.UserMessage), strconv.Quote(ex.BotReply))
		}
		return nil
	},
}

func init() {
	transcriptCmd.Flags().IntVarP(&transcriptLimit, "limit", "n", 20, "number of exchanges to show")
	rootCmd.AddCommand(transcriptCmd)
}
