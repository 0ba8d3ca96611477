package responder

import (
	"fmt"
	"os"
	"strings"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/internal/service/intent"
	"github.com/sandevgo/relaybot/internal/service/session"
)

const DefaultSystemPrompt = "You are a helpful AI assistant in a Telegram bot. Be friendly, concise, and helpful. " +
	"Keep responses under 200 words unless specifically asked for more detail."

// per-message overhead of the chat format, in tokens
const messageOverhead = 4

// SysPrompt reads the system prompt from disk on every build so edits apply without a restart.
type SysPrompt struct {
	path string
}

func NewSysPrompt(path string) *SysPrompt {
	return &SysPrompt{path: path}
}

func (p *SysPrompt) Build() core.Message {
	content := DefaultSystemPrompt
	if p != nil && p.path != "" {
		if data, err := os.ReadFile(p.path); err == nil && strings.TrimSpace(string(data)) != "" {
			content = strings.TrimSpace(string(data))
		}
	}
	return core.Message{Role: core.RoleSystem, Content: content}
}

// buildPrompt lays out system prompt, prior turns and the new message, dropping the oldest
// turns until the whole thing fits maxTokens. The new message is always kept.
func buildPrompt(system core.Message, turns []session.Turn, text string, analysis intent.Analysis, counter core.TokenCounter, maxTokens int) []core.Message {
	current := core.Message{
		Role:    core.RoleUser,
		Content: fmt.Sprintf("Context: %s\nUser message: %s", analysis.ContextLine(), text),
	}

	cost := func(m core.Message) int {
		return counter.Count(m.Content) + messageOverhead
	}

	if maxTokens > 0 {
		budget := cost(system) + cost(current)
		turnCosts := make([]int, len(turns))
		for i, t := range turns {
			turnCosts[i] = counter.Count(t.UserMessage) + counter.Count(t.BotReply) + 2*messageOverhead
			budget += turnCosts[i]
		}
		for len(turns) > 0 && budget > maxTokens {
			budget -= turnCosts[0]
			turns, turnCosts = turns[1:], turnCosts[1:]
		}
	}

	messages := make([]core.Message, 0, 2+2*len(turns))
	messages = append(messages, system)
	for _, t := range turns {
		messages = append(messages,
			core.Message{Role: core.RoleUser, Content: t.UserMessage},
			core.Message{Role: core.RoleAssistant, Content: t.BotReply},
		)
	}
	return append(messages, current)
}
