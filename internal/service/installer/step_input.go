package installer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/relaybot/internal/config"
)

// InputStep asks for one line of text. setup runs when the step becomes
// current and may skip it by returning false.
type InputStep struct {
	title  string
	input  textinput.Model
	ready  bool
	err    error
	setup  func(state *InstallState, in *textinput.Model) bool
	accept func(state *InstallState, value string) error
}

func newInputStep(
	title string,
	setup func(state *InstallState, in *textinput.Model) bool,
	accept func(state *InstallState, value string) error,
) *InputStep {
	return &InputStep{title: title, setup: setup, accept: accept}
}

func (s *InputStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *InputStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if !s.ready {
		s.input = textinput.New()
		s.input.CharLimit = 255
		s.input.Width = 50
		if s.setup != nil && !s.setup(state, &s.input) {
			return nil, nil
		}
		s.input.Focus()
		s.ready = true
		return s, textinput.Blink
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if err := s.accept(state, strings.TrimSpace(s.input.Value())); err != nil {
			s.err = err
			return s, cmd
		}
		return nil, nil
	}
	return s, cmd
}

func (s *InputStep) View(state *InstallState) string {
	if !s.ready {
		return "Loading...\n"
	}

	view := fmt.Sprintf("%s\n\n%s\n\n", s.title, s.input.View())
	if s.err != nil {
		view += errorStyle.Render(s.err.Error()) + "\n\n"
	}
	return view + "(press enter to confirm)\n"
}

func NewBaseURLStep() Step {
	return newInputStep("Enter the API base URL:",
		func(state *InstallState, in *textinput.Model) bool {
			switch state.Env.Provider {
			case "ollama":
				in.SetValue("http://localhost:11434")
				return true
			case "custom":
				in.Placeholder = "https://api.example.com/v1"
				return true
			}
			return false
		},
		func(state *InstallState, value string) error {
			if value == "" {
				return fmt.Errorf("base URL is required")
			}
			state.SetBaseURL(value)
			return nil
		},
	)
}

func NewAPIKeyStep() Step {
	return newInputStep("Enter your API key (leave empty to run on rule-based replies):",
		func(state *InstallState, in *textinput.Model) bool {
			if state.Env.Provider == "" {
				return false
			}
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
			switch state.Env.Provider {
			case "anthropic":
				in.Placeholder = "sk-ant-..."
			case "openrouter":
				in.Placeholder = "sk-or-v1-..."
			case "ollama":
				in.Placeholder = "optional"
			default:
				in.Placeholder = "sk-..."
			}
			return true
		},
		func(state *InstallState, value string) error {
			state.SetAPIKey(value)
			return nil
		},
	)
}

func NewModelStep() Step {
	return newInputStep("Model name:",
		func(state *InstallState, in *textinput.Model) bool {
			if state.Env.Provider == "" {
				return false
			}
			in.SetValue(defaultModel(state.Env.Provider))
			return true
		},
		func(state *InstallState, value string) error {
			if value == "" {
				value = defaultModel(state.Env.Provider)
			}
			state.Env.Model = value
			return nil
		},
	)
}

func NewTelegramTokenStep() Step {
	return newInputStep("Enter your Telegram Bot Token:",
		func(state *InstallState, in *textinput.Model) bool {
			if !state.Env.EnableTelegram {
				return false
			}
			in.Placeholder = "123456789:ABCDEF..."
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
			return true
		},
		func(state *InstallState, value string) error {
			if err := config.ValidateToken(value); err != nil {
				return err
			}
			state.Env.TelegramToken = value
			return nil
		},
	)
}

func NewAllowedUsersStep() Step {
	return newInputStep("Telegram user ids allowed to chat (comma separated, empty for everyone):",
		func(state *InstallState, in *textinput.Model) bool {
			in.Placeholder = "123456789, 987654321"
			return state.Env.EnableTelegram
		},
		func(state *InstallState, value string) error {
			ids, err := parseUserIDs(value)
			if err != nil {
				return fmt.Errorf("not a user id list: %w", err)
			}
			state.Env.AllowedUsers = ids
			return nil
		},
	)
}
