package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type choice struct {
	id    string
	title string
}

// SelectStep is a cursor list that hands the picked id to apply.
type SelectStep struct {
	prompt  string
	choices []choice
	cursor  int
	apply   func(state *InstallState, id string)
}

func NewProviderStep() Step {
	return &SelectStep{
		prompt: "Select your AI Provider:",
		choices: []choice{
			{"openai", "OpenAI"},
			{"anthropic", "Anthropic"},
			{"openrouter", "OpenRouter"},
			{"ollama", "Ollama"},
			{"custom", "Custom OpenAI-compatible"},
			{"none", "None (rule-based replies only)"},
		},
		apply: func(state *InstallState, id string) {
			if id == "none" {
				id = ""
			}
			state.Env.Provider = id
		},
	}
}

func NewChannelStep() Step {
	return &SelectStep{
		prompt: "Where should the bot talk?",
		choices: []choice{
			{"telegram", "Telegram"},
			{"console", "Console only"},
			{"both", "Telegram and console"},
		},
		apply: func(state *InstallState, id string) {
			state.Env.EnableTelegram = id != "console"
			state.Env.EnableCLI = id != "telegram"
		},
	}
}

func (s *SelectStep) Init() tea.Cmd {
	return nil
}

func (s *SelectStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.choices)-1 {
			s.cursor++
		}
	case "enter":
		s.apply(state, s.choices[s.cursor].id)
		return nil, nil
	}
	return s, nil
}

func (s *SelectStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.prompt + "\n\n")
	for i, c := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("❯ %s", c.title)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", c.title)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
