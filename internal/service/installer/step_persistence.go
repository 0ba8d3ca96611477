package installer

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/relaybot/internal/config"
	"github.com/sandevgo/relaybot/internal/service/responder"
	"github.com/sandevgo/relaybot/pkg/env"
)

// SaveStep writes .env plus editable SYSTEM.md and replies.yaml into the runtime directory.
type SaveStep struct {
	cfg   *config.AppConfig
	err   error
	saved bool
}

func NewSaveStep(cfg *config.AppConfig) Step {
	return &SaveStep{cfg: cfg}
}

func (s *SaveStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}
	if s.err != nil {
		return s, nil
	}

	if err := saveRuntime(s.cfg, state); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil
}

func (s *SaveStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}

func saveRuntime(cfg *config.AppConfig, state *InstallState) error {
	if err := env.WriteFile(cfg.GetEnvPath(), &state.Env); err != nil {
		return err
	}

	if err := writeIfMissing(cfg.GetSystemPromptPath(), []byte(responder.DefaultSystemPrompt+"\n")); err != nil {
		return err
	}

	err := responder.WriteRulebook(cfg.GetRepliesPath(), responder.DefaultRulebook())
	if err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	return nil
}

func writeIfMissing(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
