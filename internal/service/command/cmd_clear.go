package command

import (
	"context"

	"github.com/sandevgo/relaybot/internal/core"
)

type ClearCommand struct {
	store     SessionStore
	formatter *ResponseFormatter
}

func NewClearCommand(store SessionStore) *ClearCommand {
	return &ClearCommand{
		store:     store,
		formatter: NewResponseFormatter(),
	}
}

func (c *ClearCommand) Name() string {
	return "clear"
}

func (c *ClearCommand) Description() string {
	return "Clear conversation history"
}

func (c *ClearCommand) Execute(ctx context.Context, req core.CommandRequest) (string, error) {
	c.store.Clear(req.UserID)

	return c.formatter.Combine(
		c.formatter.Success("🧹", "Conversation history cleared!"),
		c.formatter.Text("I've forgotten our previous conversation. We can start fresh! 🆕"),
	), nil
}
