package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/internal/service/responder"
	"github.com/sandevgo/relaybot/pkg/log"
)

const localUserID = "cli-local"

type Replier interface {
	Respond(ctx context.Context, userID, text string) responder.Reply
}

type SessionNamer interface {
	NameIfUnset(userID, name string)
}

// ReadLine is a console chat against the same router and responder the bot uses.
type ReadLine struct {
	replier  Replier
	router   core.CmdRouter
	sessions SessionNamer
	name     string
	rl      *readline.Instance
}

func NewReadLine(runtimePath string, replier Replier, router core.CmdRouter, sessions SessionNamer) (*ReadLine, error) {
	if err := os.MkdirAll(runtimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "you> ",
		HistoryFile:     filepath.Join(runtimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	name := os.Getenv("USER")
	if name == "" {
		name = "Local User"
	}

	return &ReadLine{
		replier:  replier,
		router:   router,
		sessions: sessions,
		name:     name,
		rl:       rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("console chat started, type 'exit' to quit")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		fmt.Fprintf(r.rl.Stdout(), "bot> %s\n", r.answer(ctx, line))
	}
}

func (r *ReadLine) answer(ctx context.Context, line string) string {
	return answer(ctx, r.replier, r.router, r.sessions, core.Inbound{UserID: localUserID, Name: r.name, Text: line})
}

func answer(ctx context.Context, replier Replier, router core.CmdRouter, sessions SessionNamer, in core.Inbound) string {
	ctx = log.WithUser(ctx, in.UserID)
	if text, ok := router.Execute(ctx, in); ok {
		return text
	}

	reply := replier.Respond(ctx, in.UserID, in.Text)
	if reply.IsFallback() {
		log.FromCtx(ctx).Debug().AnErr("reason", reply.Reason).Msg("answered with fallback reply")
	}
	if in.Name != "" {
		sessions.NameIfUnset(in.UserID, in.Name)
	}
	return reply.Text
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
