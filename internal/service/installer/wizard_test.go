package installer

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sandevgo/relaybot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// press feeds msg to w and follows the step hand-overs it triggers.
func press(w *wizard, msg tea.Msg) {
	for msg != nil {
		_, cmd := w.Update(msg)
		msg = nil
		if cmd == nil {
			continue
		}
		if next, ok := cmd().(nextMsg); ok {
			msg = next
		}
	}
}

func TestWizard_ConsoleOnlyWithoutProvider(t *testing.T) {
	cfg := &config.AppConfig{RuntimePath: filepath.Join(t.TempDir(), "relay")}
	w := newWizard(cfg)
	assert.Nil(t, w.Init())

	for i := 0; i < 5; i++ {
		press(w, keyDown)
	}
	press(w, keyEnter) // none
	assert.Contains(t, w.View(), "Where should the bot talk?")

	press(w, keyDown)
	press(w, keyEnter) // console only

	require.True(t, w.finished())
	assert.Equal(t, "Configuration complete!\n", w.View())

	vals, err := godotenv.Read(cfg.GetEnvPath())
	require.NoError(t, err)
	assert.Equal(t, "false", vals["ENABLE_TELEGRAM"])
	assert.Equal(t, "true", vals["ENABLE_CLI"])
	assert.NotContains(t, vals, "LLM_PROVIDER")
	assert.NotContains(t, vals, "TELEGRAM_BOT_TOKEN")
}

func TestWizard_CtrlCAborts(t *testing.T) {
	w := newWizard(&config.AppConfig{RuntimePath: t.TempDir()})

	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, w.aborted)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "Installation cancelled.\n", w.View())
}

func TestWizard_ShowsProgress(t *testing.T) {
	w := newWizard(&config.AppConfig{RuntimePath: t.TempDir()})
	assert.Contains(t, w.View(), "step 1 of 8")
}
