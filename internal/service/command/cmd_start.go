package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/relaybot/internal/core"
)

type StartCommand struct {
	store     SessionStore
	formatter *ResponseFormatter
}

func NewStartCommand(store SessionStore) *StartCommand {
	return &StartCommand{
		store:     store,
		formatter: NewResponseFormatter(),
	}
}

func (c *StartCommand) Name() string {
	return "start"
}

func (c *StartCommand) Description() string {
	return "Initialize the bot"
}

func (c *StartCommand) Execute(ctx context.Context, req core.CommandRequest) (string, error) {
	name := firstName(req.Name)
	if name == "" {
		name = "there"
	}

	c.store.SetName(req.UserID, req.Name)
	c.store.GetOrCreate(req.UserID)

	return c.formatter.Combine(
		c.formatter.Title("🤖", "AI Agent Bot"),
		c.formatter.Text(fmt.Sprintf("Hello %s! I'm your AI assistant. I can help you with:\n", name)),
		c.formatter.Label("✨", "Natural Conversation", "Just talk to me!"),
		c.formatter.Label("🤔", "Questions & Answers", "Ask me anything"),
		c.formatter.Label("🛠️", "General Assistance", "I'm here to help"),
		"",
		c.formatter.Text("Just send me a message and I'll respond naturally."),
		"",
		c.formatter.Text("Type /help for more commands."),
	), nil
}
