package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/relaybot/internal/config"
	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/pkg/log"
)

// NewProvider creates the appropriate AIProvider based on configuration.
// It returns core.ErrNoCredential when the selected provider has no key.
func NewProvider(ctx context.Context, cfg *config.AppConfig) (core.AIProvider, error) {
	logger := log.FromCtx(ctx)

	var provider core.AIProvider
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, core.ErrNoCredential
		}
		provider = NewOpenAI(cfg.OpenAIAPIKey, cfg.Model)
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, core.ErrNoCredential
		}
		provider = NewAnthropic(cfg.AnthropicAPIKey, cfg.Model)
	case "openrouter":
		if cfg.OpenRouterAPIKey == "" {
			return nil, core.ErrNoCredential
		}
		provider = NewOpenRouter(cfg.OpenRouterAPIKey, cfg.Model)
	case "ollama":
		provider = NewOllama(cfg.OllamaBaseURL, cfg.OllamaAPIKey, cfg.Model)
	case "custom":
		if cfg.CustomOpenAIBaseURL == "" {
			return nil, fmt.Errorf("custom provider requires CUSTOM_OPENAI_BASE_URL")
		}
		provider = NewCustomOpenAI(cfg.CustomOpenAIBaseURL, cfg.CustomOpenAIAPIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}

	logger.Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Msg("starting llm provider")
	return provider, nil
}
