package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/internal/service/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type aiStatus bool

func (a aiStatus) Enabled() bool { return bool(a) }

type countingTranscript struct {
	n   int
	err error
}

func (c countingTranscript) Record(ctx context.Context, ex core.Exchange) error { return nil }

func (c countingTranscript) Count(ctx context.Context, userID string) (int, error) {
	return c.n, c.err
}

func newRouter(store *session.Store, enabled bool, transcript core.TranscriptRepository) *Router {
	return New(NewCommands(store, aiStatus(enabled), transcript))
}

func TestRouter_NotACommand(t *testing.T) {
	r := newRouter(session.NewStore(10), false, nil)

	out, ok := r.Execute(context.Background(), core.Inbound{UserID: "u1", Text: "hello"})
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestRouter_UnknownCommand(t *testing.T) {
	r := newRouter(session.NewStore(10), false, nil)

	out, ok := r.Execute(context.Background(), core.Inbound{UserID: "u1", Text: "/dance now"})
	assert.True(t, ok)
	assert.Contains(t, out, "Unknown command: /dance")
}

func TestRouter_BotSuffixAndCase(t *testing.T) {
	store := session.NewStore(10)
	r := newRouter(store, false, nil)

	_, ok := r.Execute(context.Background(), core.Inbound{UserID: "u1", Text: "/START@relay_bot"})
	assert.True(t, ok)

	_, exists := store.Stats("u1")
	assert.True(t, exists)
}

type failingCommand struct{}

func (failingCommand) Name() string        { return "fail" }
func (failingCommand) Description() string { return "always fails" }
func (failingCommand) Execute(ctx context.Context, req core.CommandRequest) (string, error) {
	return "", errors.New("kaput")
}

func TestRouter_CommandError(t *testing.T) {
	r := New([]core.Command{failingCommand{}})

	out, ok := r.Execute(context.Background(), core.Inbound{Text: "/fail"})
	assert.True(t, ok)
	assert.Equal(t, "Error: kaput", out)
}

func TestRouter_ListCommandsSorted(t *testing.T) {
	r := newRouter(session.NewStore(10), false, nil)

	var names []string
	for _, c := range r.ListCommands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"clear", "help", "start", "status"}, names)
}

func TestStart_GreetsByFirstName(t *testing.T) {
	store := session.NewStore(10)
	r := newRouter(store, false, nil)

	out, _ := r.Execute(context.Background(), core.Inbound{UserID: "u1", Name: "Ada Lovelace", Text: "/start"})
	assert.Contains(t, out, "Hello Ada!")
	assert.Equal(t, "Ada Lovelace", store.GetOrCreate("u1").Name)

	out, _ = r.Execute(context.Background(), core.Inbound{UserID: "u2", Text: "/start"})
	assert.Contains(t, out, "Hello there!")
}

func TestHelp_ListsCommands(t *testing.T) {
	r := newRouter(session.NewStore(10), false, nil)

	out, ok := r.Execute(context.Background(), core.Inbound{UserID: "u1", Text: "/help"})
	require.True(t, ok)
	for _, name := range []string{"/start", "/help", "/clear", "/status"} {
		assert.Contains(t, out, name)
	}
}

func TestClear_ResetsSession(t *testing.T) {
	store := session.NewStore(10)
	store.AppendTurn("u1", session.Turn{UserMessage: "a", BotReply: "b"})
	r := newRouter(store, false, nil)

	out, _ := r.Execute(context.Background(), core.Inbound{UserID: "u1", Text: "/clear"})
	assert.Contains(t, out, "Conversation history cleared!")

	stats, ok := store.Stats("u1")
	require.True(t, ok)
	assert.Zero(t, stats.MessageCount)
	assert.Zero(t, stats.TurnCount)
}

func TestStatus_NoSession(t *testing.T) {
	r := newRouter(session.NewStore(10), true, nil)

	out, _ := r.Execute(context.Background(), core.Inbound{UserID: "nobody", Text: "/status"})
	assert.Equal(t, noSessionText, out)
}

func TestStatus_Report(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	store := session.NewStore(10, session.WithClock(func() time.Time { return start }))
	store.SetName("u1", "Ada")
	store.AppendTurn("u1", session.Turn{UserMessage: "a", BotReply: "b"})
	store.AppendTurn("u1", session.Turn{UserMessage: "c", BotReply: "d"})

	cmd := NewStatusCommand(store, aiStatus(true), countingTranscript{n: 42})
	cmd.now = func() time.Time { return start.Add(2*time.Hour + 5*time.Minute + 30*time.Second) }

	out, err := cmd.Execute(context.Background(), core.CommandRequest{UserID: "u1"})
	require.NoError(t, err)

	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "2h 5m")
	assert.Contains(t, out, "**Messages Exchanged:** 2")
	assert.Contains(t, out, "2 exchanges")
	assert.Contains(t, out, "🟢 Active")
	assert.Contains(t, out, "**Archived Exchanges:** 42")
}

func TestStatus_OfflineAndTranscriptError(t *testing.T) {
	store := session.NewStore(10)
	store.GetOrCreate("u1")

	cmd := NewStatusCommand(store, aiStatus(false), countingTranscript{err: errors.New("locked")})
	out, err := cmd.Execute(context.Background(), core.CommandRequest{UserID: "u1"})
	require.NoError(t, err)

	assert.Contains(t, out, "🔴 Offline")
	assert.Contains(t, out, "Unknown")
	assert.NotContains(t, out, "Archived")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h 0m", formatDuration(-time.Minute))
	assert.Equal(t, "0h 59m", formatDuration(59*time.Minute+59*time.Second))
	assert.Equal(t, "25h 1m", formatDuration(25*time.Hour+time.Minute))
}
