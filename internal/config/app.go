package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/relaybot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"RELAY_RUNTIME_PATH" envDefault:".relaybot"`

	// Generation backend. An empty key for the selected provider keeps the bot in fallback mode.
	Provider            string `env:"LLM_PROVIDER" envDefault:"openai"`
	Model               string `env:"LLM_MODEL" envDefault:"gpt-3.5-turbo"`
	OpenAIAPIKey        string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey     string `env:"ANTHROPIC_API_KEY"`
	OpenRouterAPIKey    string `env:"OPENROUTER_API_KEY"`
	OllamaBaseURL       string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaAPIKey        string `env:"OLLAMA_API_KEY"`
	CustomOpenAIBaseURL string `env:"CUSTOM_OPENAI_BASE_URL"`
	CustomOpenAIAPIKey  string `env:"CUSTOM_OPENAI_API_KEY"`

	// Transport Flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"true"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"false"`

	// Context Management
	HistoryLimit    int `env:"HISTORY_LIMIT" envDefault:"10"`
	ContextTurns    int `env:"CONTEXT_TURNS" envDefault:"5"`
	MaxPromptTokens int `env:"MAX_PROMPT_TOKENS" envDefault:"3000"`

	// Generation
	MaxReplyTokens    int           `env:"MAX_REPLY_TOKENS" envDefault:"300"`
	Temperature       float64       `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"15s"`
	AnalysisTimeout   time.Duration `env:"ANALYSIS_TIMEOUT" envDefault:"10s"`
	IntentAnalysis    bool          `env:"LLM_INTENT_ANALYSIS" envDefault:"false"`

	TranscriptEnabled bool `env:"TRANSCRIPT_ENABLED" envDefault:"false"`
}

// LoadAppConfig parses the environment without terminating the process.
func LoadAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse app config: %w", err)
	}
	c.RuntimePath = ResolveRuntimePath(c.RuntimePath)
	return c, nil
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := LoadAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetSystemPromptPath() string {
	return filepath.Join(c.RuntimePath, "SYSTEM.md")
}

func (c AppConfig) GetRepliesPath() string {
	return filepath.Join(c.RuntimePath, "replies.yaml")
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "transcript.db")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
