package command

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/pkg/log"
)

const noSessionText = "❓ No active session. Use /start to begin!"

type StatusCommand struct {
	store      SessionStore
	ai         GenerationStatus
	transcript core.TranscriptRepository
	now        func() time.Time
	formatter  *ResponseFormatter
}

// NewStatusCommand builds /status. transcript may be nil.
func NewStatusCommand(store SessionStore, ai GenerationStatus, transcript core.TranscriptRepository) *StatusCommand {
	return &StatusCommand{
		store:      store,
		ai:         ai,
		transcript: transcript,
		now:        time.Now,
		formatter:  NewResponseFormatter(),
	}
}

func (c *StatusCommand) Name() string {
	return "status"
}

func (c *StatusCommand) Description() string {
	return "Show your session info"
}

func (c *StatusCommand) Execute(ctx context.Context, req core.CommandRequest) (string, error) {
	stats, ok := c.store.Stats(req.UserID)
	if !ok {
		return noSessionText, nil
	}

	name := c.store.GetOrCreate(req.UserID).Name
	if name == "" {
		name = "Unknown"
	}

	aiStatus := "🔴 Offline"
	if c.ai.Enabled() {
		aiStatus = "🟢 Active"
	}

	lines := []string{
		c.formatter.Title("📊", "Your Session Status"),
		c.formatter.Label("👤", "User", name),
		c.formatter.Label("🕒", "Session Duration", formatDuration(c.now().Sub(stats.SessionStart))),
		c.formatter.Label("💬", "Messages Exchanged", fmt.Sprintf("%d", stats.MessageCount)),
		c.formatter.Label("🧠", "Conversation Memory", fmt.Sprintf("%d exchanges", stats.TurnCount)),
		c.formatter.Label("🤖", "AI Status", aiStatus),
	}

	if c.transcript != nil {
		total, err := c.transcript.Count(ctx, req.UserID)
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("failed to count transcript")
		} else {
			lines = append(lines, c.formatter.Label("🗄", "Archived Exchanges", fmt.Sprintf("%d", total)))
		}
	}

	lines = append(lines, "", c.formatter.Text("Ready to chat! 🚀"))
	return c.formatter.Combine(lines...), nil
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	hours, rem := total/3600, total%3600
	return fmt.Sprintf("%dh %dm", hours, rem/60)
}
