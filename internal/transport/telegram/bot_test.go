package telegram

import (
	"context"
	"testing"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/internal/service/command"
	"github.com/sandevgo/relaybot/internal/service/responder"
	"github.com/sandevgo/relaybot/internal/service/session"
	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		user *tele.User
		want string
	}{
		{&tele.User{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{&tele.User{FirstName: "Ada"}, "Ada"},
		{&tele.User{Username: "ada_l"}, "ada_l"},
		{&tele.User{}, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fullName(tt.user))
	}
}

type cannedReplier struct{ calls int }

func (c *cannedReplier) Respond(ctx context.Context, userID, text string) responder.Reply {
	c.calls++
	return responder.Reply{Text: "canned", Source: responder.Fallback, Reason: core.ErrNoCredential}
}

func newTestBot(store *session.Store, rep *cannedReplier) *Bot {
	return &Bot{
		replier:  rep,
		router:   command.New(command.NewCommands(store, offlineAI{}, nil)),
		sessions: store,
	}
}

type offlineAI struct{}

func (offlineAI) Enabled() bool { return false }

func TestAnswer_PlainMessageNamesSession(t *testing.T) {
	store := session.NewStore(10)
	rep := &cannedReplier{}
	b := newTestBot(store, rep)
	ctx := context.Background()

	got := b.answer(ctx, core.Inbound{UserID: "7", Name: "Ada Lovelace", Text: "hello there"})
	assert.Equal(t, "canned", got)
	assert.Equal(t, 1, rep.calls)
	assert.Equal(t, "Ada Lovelace", store.GetOrCreate("7").Name)

	status := b.answer(ctx, core.Inbound{UserID: "7", Name: "Ada Lovelace", Text: "/status"})
	assert.Contains(t, status, "Ada Lovelace")
	assert.NotContains(t, status, "Unknown")
	assert.Equal(t, 1, rep.calls)
}

func TestAnswer_KeepsNameFromStart(t *testing.T) {
	store := session.NewStore(10)
	b := newTestBot(store, &cannedReplier{})
	ctx := context.Background()

	b.answer(ctx, core.Inbound{UserID: "7", Name: "Ada", Text: "/start"})
	b.answer(ctx, core.Inbound{UserID: "7", Name: "Someone Else", Text: "hi"})

	assert.Equal(t, "Ada", store.GetOrCreate("7").Name)
}

func TestAnswer_CommandDoesNotCreateSession(t *testing.T) {
	store := session.NewStore(10)
	b := newTestBot(store, &cannedReplier{})

	b.answer(context.Background(), core.Inbound{UserID: "9", Name: "Bob", Text: "/status"})

	_, ok := store.Stats("9")
	assert.False(t, ok)
}
