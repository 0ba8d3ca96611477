package command

import (
	"strings"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/internal/service/session"
)

// SessionStore is the part of session.Store the commands touch.
type SessionStore interface {
	GetOrCreate(userID string) session.Session
	SetName(userID, name string)
	Clear(userID string)
	Stats(userID string) (session.Stats, bool)
}

type GenerationStatus interface {
	Enabled() bool
}

func NewCommands(
	store SessionStore,
	ai GenerationStatus,
	transcript core.TranscriptRepository,
) []core.Command {
	base := []core.Command{
		NewStartCommand(store),
		NewClearCommand(store),
		NewStatusCommand(store, ai, transcript),
	}
	return append(base, NewHelpCommand(base))
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
