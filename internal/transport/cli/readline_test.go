package cli

import (
	"context"
	"testing"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/internal/service/responder"
	"github.com/stretchr/testify/assert"
)

type echoReplier struct {
	calls []string
}

func (e *echoReplier) Respond(ctx context.Context, userID, text string) responder.Reply {
	e.calls = append(e.calls, userID+":"+text)
	return responder.Reply{Text: "echo " + text, Source: responder.Fallback, Reason: core.ErrNoCredential}
}

type pingRouter struct{}

func (pingRouter) Execute(ctx context.Context, in core.Inbound) (string, bool) {
	if in.Text == "/ping" {
		return "pong", true
	}
	return "", false
}

func (pingRouter) ListCommands() []core.Command { return nil }

type namer map[string]string

func (n namer) NameIfUnset(userID, name string) {
	if n[userID] == "" {
		n[userID] = name
	}
}

func TestAnswer_CommandsFirst(t *testing.T) {
	rep := &echoReplier{}
	got := answer(context.Background(), rep, pingRouter{}, namer{}, core.Inbound{UserID: localUserID, Text: "/ping"})

	assert.Equal(t, "pong", got)
	assert.Empty(t, rep.calls)
}

func TestAnswer_Responder(t *testing.T) {
	rep := &echoReplier{}
	names := namer{}
	got := answer(context.Background(), rep, pingRouter{}, names, core.Inbound{UserID: localUserID, Name: "ada", Text: "hi there"})

	assert.Equal(t, "echo hi there", got)
	assert.Equal(t, []string{"cli-local:hi there"}, rep.calls)
	assert.Equal(t, "ada", names[localUserID])
}
