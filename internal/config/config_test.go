package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	t.Setenv("RELAY_RUNTIME_PATH", t.TempDir())

	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, 5, cfg.ContextTurns)
	assert.Equal(t, 300, cfg.MaxReplyTokens)
	assert.Equal(t, 15*time.Second, cfg.GenerationTimeout)
	assert.False(t, cfg.IntentAnalysis)
	assert.Equal(t, filepath.Join(cfg.RuntimePath, "SYSTEM.md"), cfg.GetSystemPromptPath())
}

func TestLoadAppConfig_Overrides(t *testing.T) {
	t.Setenv("RELAY_RUNTIME_PATH", t.TempDir())
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("CONTEXT_TURNS", "3")
	t.Setenv("GENERATION_TIMEOUT", "2s")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, 3, cfg.ContextTurns)
	assert.Equal(t, 2*time.Second, cfg.GenerationTimeout)
}

func TestResolveRuntimePath(t *testing.T) {
	abs := t.TempDir()
	assert.Equal(t, abs, ResolveRuntimePath(abs))

	rel := ResolveRuntimePath("")
	assert.True(t, filepath.IsAbs(rel))
	assert.Equal(t, defaultRuntimeDir, filepath.Base(rel))
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		token   string
		wantErr bool
	}{
		{token: "123456:ABC", wantErr: false},
		{token: "bot123456:ABC", wantErr: false},
		{token: "", wantErr: true},
		{token: "0123:ABC", wantErr: true},
		{token: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			err := ValidateToken(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadTelegramConfig(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "42:secret")
	t.Setenv("TELEGRAM_ALLOWED_USERS", "7,9")

	cfg, err := LoadTelegramConfig()
	require.NoError(t, err)

	assert.Equal(t, []int64{7, 9}, cfg.AllowedUsers)
	assert.True(t, cfg.IsAllowed(9))
	assert.False(t, cfg.IsAllowed(8))
}

func TestTelegramConfig_EmptyAllowListAllowsEveryone(t *testing.T) {
	cfg := TelegramConfig{Token: "1:x"}
	assert.True(t, cfg.IsAllowed(12345))
}
