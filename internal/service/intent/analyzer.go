package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/pkg/log"
)

const analysisPrompt = `Analyze this message and return JSON with intent classification: %q

Return: {"intent": "greeting|question|request|casual", "sentiment": "positive|neutral|negative"}`

type Analysis struct {
	Category  Category
	Sentiment Sentiment
}

// ContextLine is the hint passed to the generator alongside the user message.
func (a Analysis) ContextLine() string {
	return fmt.Sprintf("Intent: %s, Sentiment: %s", a.Category, a.Sentiment)
}

// Analyzer classifies messages with the LLM when allowed and falls back to keywords.
type Analyzer struct {
	classifier *Classifier
	ai         core.AIProvider
	useLLM     bool
	timeout    time.Duration
}

func NewAnalyzer(classifier *Classifier, ai core.AIProvider, useLLM bool, timeout time.Duration) *Analyzer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Analyzer{
		classifier: classifier,
		ai:         ai,
		useLLM:     useLLM,
		timeout:    timeout,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, text string) Analysis {
	local := Analysis{
		Category:  a.classifier.Classify(text),
		Sentiment: a.classifier.Sentiment(text),
	}
	if !a.useLLM || a.ai == nil {
		return local
	}

	remote, err := a.analyzeRemote(ctx, text, local)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("llm analysis failed, using keyword analysis")
		return local
	}
	return remote
}

func (a *Analyzer) analyzeRemote(ctx context.Context, text string, local Analysis) (Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.ai.Chat(ctx, []core.Message{
		{Role: core.RoleUser, Content: fmt.Sprintf(analysisPrompt, text)},
	}, core.ChatOptions{MaxTokens: 100, Temperature: 0.1})
	if err != nil {
		return Analysis{}, core.ClassifyError(err)
	}

	return parseAnalysis(resp.Content, local)
}

// parseAnalysis decodes the model's JSON answer; fields it gets wrong keep the local guess.
func parseAnalysis(content string, local Analysis) (Analysis, error) {
	content = strings.TrimSpace(content)
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.TrimSpace(strings.ReplaceAll(content, "```", ""))

	var raw struct {
		Intent    string `json:"intent"`
		Sentiment string `json:"sentiment"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return Analysis{}, fmt.Errorf("decode analysis: %w", err)
	}

	out := local
	if c, ok := ParseCategory(raw.Intent); ok {
		out.Category = c
	}
	if s, ok := ParseSentiment(raw.Sentiment); ok {
		out.Sentiment = s
	}
	return out, nil
}
