package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sandevgo/relaybot/internal/config"
	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/internal/service/responder"
	"github.com/sandevgo/relaybot/pkg/log"
	"github.com/sandevgo/relaybot/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

const apologyText = "😅 Sorry, I encountered an issue processing your message. " +
	"Please try again or use /help for available commands."

// Replier produces the answer for a plain (non-command) message.
type Replier interface {
	Respond(ctx context.Context, userID, text string) responder.Reply
}

// SessionNamer stores the sender's display name for /status.
type SessionNamer interface {
	NameIfUnset(userID, name string)
}

type Bot struct {
	bot      *tele.Bot
	cfg      *config.TelegramConfig
	replier  Replier
	router   core.CmdRouter
	sessions SessionNamer
	sender   *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	replier Replier,
	router core.CmdRouter,
	sessions SessionNamer,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			log.FromCtx(ctx).Error().Err(err).Msg("telegram handler failed")
		},
	}

	// getMe goes over the network and fails on flaky links
	var b *tele.Bot
	err := retry.NewDefaultRetrier().Do(ctx, func() error {
		var err error
		b, err = tele.NewBot(pref)
		if errors.Is(err, tele.ErrUnauthorized) {
			return retry.Permanent(err)
		}
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("telegram bot creation failed, retrying")
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		cfg:      cfg,
		replier:  replier,
		router:   router,
		sessions: sessions,
		sender:   newSender(b),
	}

	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || !bot.cfg.IsAllowed(c.Sender().ID) {
				return nil
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	cmds := make([]tele.Command, 0, len(b.router.ListCommands()))
	for _, c := range b.router.ListCommands() {
		cmds = append(cmds, tele.Command{Text: c.Name(), Description: c.Description()})
	}
	if err := b.bot.SetCommands(cmds); err != nil {
		logger.Warn().Err(err).Msg("failed to publish command menu")
	}

	logger.Info().Str("bot", b.bot.Me.Username).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx, ok := c.Get(baseContextKey).(context.Context)
	if !ok {
		ctx = context.Background()
	}
	in := inboundFrom(c)
	ctx = log.WithUser(ctx, in.UserID)
	logger := log.FromCtx(ctx)

	_ = c.Notify(tele.Typing)

	text := b.answer(ctx, in)

	if err := b.sender.sendMarkdown(ctx, c.Recipient(), text); err != nil {
		logger.Error().Err(err).Msg("failed to send reply")
		return c.Send(apologyText)
	}
	return nil
}

// answer routes commands first. Plain messages go to the replier, and the
// session that creates is named after the sender.
func (b *Bot) answer(ctx context.Context, in core.Inbound) string {
	if text, ok := b.router.Execute(ctx, in); ok {
		return text
	}

	reply := b.replier.Respond(ctx, in.UserID, in.Text)
	if reply.IsFallback() {
		log.FromCtx(ctx).Debug().AnErr("reason", reply.Reason).Msg("answered with fallback reply")
	}
	if in.Name != "" {
		b.sessions.NameIfUnset(in.UserID, in.Name)
	}
	return reply.Text
}

func inboundFrom(c tele.Context) core.Inbound {
	in := core.Inbound{Text: c.Text()}
	if u := c.Sender(); u != nil {
		in.UserID = strconv.FormatInt(u.ID, 10)
		in.Name = fullName(u)
	}
	return in
}

func fullName(u *tele.User) string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}
