package installer

import (
	"strconv"
	"strings"
)

// EnvFile is what the wizard writes to <runtime>/.env. Keys match config.AppConfig
// and config.TelegramConfig.
type EnvFile struct {
	Provider            string  `env:"LLM_PROVIDER"`
	Model               string  `env:"LLM_MODEL"`
	OpenAIAPIKey        string  `env:"OPENAI_API_KEY"`
	AnthropicAPIKey     string  `env:"ANTHROPIC_API_KEY"`
	OpenRouterAPIKey    string  `env:"OPENROUTER_API_KEY"`
	OllamaBaseURL       string  `env:"OLLAMA_BASE_URL"`
	OllamaAPIKey        string  `env:"OLLAMA_API_KEY"`
	CustomOpenAIBaseURL string  `env:"CUSTOM_OPENAI_BASE_URL"`
	CustomOpenAIAPIKey  string  `env:"CUSTOM_OPENAI_API_KEY"`
	EnableTelegram      bool    `env:"ENABLE_TELEGRAM"`
	EnableCLI           bool    `env:"ENABLE_CLI"`
	TelegramToken       string  `env:"TELEGRAM_BOT_TOKEN"`
	AllowedUsers        []int64 `env:"TELEGRAM_ALLOWED_USERS"`
}

type InstallState struct {
	Env EnvFile
}

func NewInstallState() *InstallState {
	return &InstallState{}
}

// SetAPIKey stores key in the field of the selected provider.
func (s *InstallState) SetAPIKey(key string) {
	switch s.Env.Provider {
	case "openai":
		s.Env.OpenAIAPIKey = key
	case "anthropic":
		s.Env.AnthropicAPIKey = key
	case "openrouter":
		s.Env.OpenRouterAPIKey = key
	case "ollama":
		s.Env.OllamaAPIKey = key
	case "custom":
		s.Env.CustomOpenAIAPIKey = key
	}
}

// SetBaseURL stores url for providers that take one.
func (s *InstallState) SetBaseURL(url string) {
	switch s.Env.Provider {
	case "ollama":
		s.Env.OllamaBaseURL = url
	case "custom":
		s.Env.CustomOpenAIBaseURL = url
	}
}

func defaultModel(provider string) string {
	switch provider {
	case "anthropic":
		return "claude-3-5-haiku-latest"
	case "openrouter":
		return "openai/gpt-4o-mini"
	case "ollama":
		return "llama3.2"
	default:
		return "gpt-3.5-turbo"
	}
}

// parseUserIDs reads "1, 2 3" style lists. Anything that is not a number is reported.
func parseUserIDs(s string) ([]int64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	ids := make([]int64, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
