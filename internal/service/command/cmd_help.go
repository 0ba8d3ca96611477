package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/relaybot/internal/core"
)

type HelpCommand struct {
	commands  []core.Command
	formatter *ResponseFormatter
}

// NewHelpCommand lists the given commands followed by itself.
func NewHelpCommand(commands []core.Command) *HelpCommand {
	return &HelpCommand{
		commands:  commands,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Show this help message"
}

func (c *HelpCommand) Execute(ctx context.Context, req core.CommandRequest) (string, error) {
	lines := make([]string, 0, len(c.commands)+1)
	for _, cmd := range c.commands {
		lines = append(lines, fmt.Sprintf("`/%s` - %s", cmd.Name(), cmd.Description()))
	}
	lines = append(lines, fmt.Sprintf("`/%s` - %s", c.Name(), c.Description()))

	return c.formatter.Combine(
		c.formatter.Title("🆘", "Available Commands:"),
		c.formatter.Section("🤖", "Natural Chat", "Just type any message!"),
		c.formatter.List([]string{
			"Ask questions, request help, or chat casually",
			"I'll understand context from our conversation",
		}),
		c.formatter.Section("📝", "Commands:", ""),
		c.formatter.List(lines),
		c.formatter.Section("💡", "Examples:", ""),
		c.formatter.List([]string{
			`"What's the weather like?"`,
			`"Help me write an email"`,
			`"Tell me a joke"`,
			`"Explain quantum physics simply"`,
		}),
		c.formatter.Text("Just type naturally - I'm designed to understand and help! 🚀"),
	), nil
}
