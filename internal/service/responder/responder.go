// Package responder turns an incoming message into a reply. It prefers the generation
// backend and drops to canned replies whenever that is not possible, so callers always
// get text back.
package responder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/relaybot/internal/config"
	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/internal/providers/tokenizer"
	"github.com/sandevgo/relaybot/internal/service/intent"
	"github.com/sandevgo/relaybot/internal/service/session"
	"github.com/sandevgo/relaybot/pkg/log"
)

type Source int

const (
	Generated Source = iota
	Fallback
)

func (s Source) String() string {
	if s == Generated {
		return "generated"
	}
	return "fallback"
}

// Reply is either Generated(Text) or Fallback(Text, Reason).
type Reply struct {
	Text     string
	Source   Source
	Analysis intent.Analysis
	// Reason wraps core.ErrNoCredential, core.ErrServiceUnavailable or core.ErrServiceError.
	Reason error
}

func (r Reply) IsFallback() bool {
	return r.Source == Fallback
}

type SessionStore interface {
	Recent(userID string, n int) []session.Turn
	AppendTurn(userID string, turn session.Turn)
}

type Config struct {
	ContextTurns      int
	MaxPromptTokens   int
	MaxReplyTokens    int
	Temperature       float64
	GenerationTimeout time.Duration
}

func NewConfig(app *config.AppConfig) Config {
	return Config{
		ContextTurns:      app.ContextTurns,
		MaxPromptTokens:   app.MaxPromptTokens,
		MaxReplyTokens:    app.MaxReplyTokens,
		Temperature:       app.Temperature,
		GenerationTimeout: app.GenerationTimeout,
	}
}

type Option func(*Responder)

func WithTranscript(repo core.TranscriptRepository) Option {
	return func(r *Responder) {
		r.transcript = repo
	}
}

func WithTokenCounter(counter core.TokenCounter) Option {
	return func(r *Responder) {
		r.counter = counter
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Responder) {
		r.now = now
	}
}

type Responder struct {
	cfg        Config
	store      SessionStore
	analyzer   *intent.Analyzer
	ai         core.AIProvider
	prompter   *SysPrompt
	replies    Replies
	counter    core.TokenCounter
	transcript core.TranscriptRepository
	now        func() time.Time
}

// NewResponder wires the selector. ai may be nil, which pins every reply to fallback mode.
func NewResponder(
	cfg Config,
	store SessionStore,
	analyzer *intent.Analyzer,
	ai core.AIProvider,
	prompter *SysPrompt,
	replies Replies,
	opts ...Option,
) *Responder {
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = 15 * time.Second
	}
	if cfg.ContextTurns < 0 {
		cfg.ContextTurns = 0
	}

	r := &Responder{
		cfg:      cfg,
		store:    store,
		analyzer: analyzer,
		ai:       ai,
		prompter: prompter,
		replies:  replies.Merge(DefaultReplies()),
		counter:  tokenizer.Estimate{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Enabled reports whether a generation backend is configured.
func (r *Responder) Enabled() bool {
	return r.ai != nil
}

// Respond never fails: generation problems are logged and answered with a canned reply.
// The exchange is appended to the user's session either way.
func (r *Responder) Respond(ctx context.Context, userID, text string) Reply {
	logger := log.FromCtx(ctx)

	analysis := r.analyzer.Analyze(ctx, text)
	reply := r.generate(ctx, userID, text, analysis)

	if reply.IsFallback() {
		logger.Warn().
			Err(reply.Reason).
			Str("category", analysis.Category.String()).
			Msg("using fallback reply")
	} else {
		logger.Debug().Int("len", len(reply.Text)).Msg("generated reply")
	}

	now := r.now()
	r.store.AppendTurn(userID, session.Turn{
		UserMessage: text,
		BotReply:    reply.Text,
		Timestamp:   now,
	})
	r.record(ctx, userID, text, reply, now)

	return reply
}

func (r *Responder) generate(ctx context.Context, userID, text string, analysis intent.Analysis) Reply {
	if r.ai == nil {
		return r.fallback(text, analysis, core.ErrNoCredential)
	}

	history := r.store.Recent(userID, r.cfg.ContextTurns)
	messages := buildPrompt(r.prompter.Build(), history, text, analysis, r.counter, r.cfg.MaxPromptTokens)

	ctx, cancel := context.WithTimeout(ctx, r.cfg.GenerationTimeout)
	defer cancel()

	resp, err := r.ai.Chat(ctx, messages, core.ChatOptions{
		MaxTokens:   r.cfg.MaxReplyTokens,
		Temperature: r.cfg.Temperature,
	})
	if err != nil {
		return r.fallback(text, analysis, core.ClassifyError(err))
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return r.fallback(text, analysis, fmt.Errorf("empty reply: %w", core.ErrServiceError))
	}

	return Reply{
		Text:     content,
		Source:   Generated,
		Analysis: analysis,
	}
}

func (r *Responder) fallback(text string, analysis intent.Analysis, reason error) Reply {
	return Reply{
		Text:     r.replies.Fallback(analysis.Category, text),
		Source:   Fallback,
		Analysis: analysis,
		Reason:   reason,
	}
}

func (r *Responder) record(ctx context.Context, userID, text string, reply Reply, at time.Time) {
	if r.transcript == nil {
		return
	}

	ex := core.Exchange{
		ID:          uuid.NewString(),
		UserID:      userID,
		UserMessage: text,
		BotReply:    reply.Text,
		Source:      reply.Source.String(),
		Category:    reply.Analysis.Category.String(),
		CreatedAt:   at,
	}
	if reply.Reason != nil {
		ex.Reason = reply.Reason.Error()
	}

	if err := r.transcript.Record(ctx, ex); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to record exchange")
	}
}
