package responder

import (
	"strings"
	"testing"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/internal/service/intent"
	"github.com/sandevgo/relaybot/internal/service/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordCounter counts one token per whitespace separated word.
type wordCounter struct{}

func (wordCounter) Count(text string) int {
	return len(strings.Fields(text))
}

func TestBuildPrompt_TrimsOldestTurns(t *testing.T) {
	system := core.Message{Role: core.RoleSystem, Content: "sys"}
	turns := []session.Turn{
		{UserMessage: "one one one one", BotReply: "one"},
		{UserMessage: "two", BotReply: "two"},
		{UserMessage: "three", BotReply: "three"},
	}
	analysis := intent.Analysis{Category: intent.Casual, Sentiment: intent.Neutral}

	// costs: system 5, current 12, turns 13, 10, 10
	full := buildPrompt(system, turns, "hi", analysis, wordCounter{}, 0)
	require.Len(t, full, 8)

	trimmed := buildPrompt(system, turns, "hi", analysis, wordCounter{}, 40)
	require.Len(t, trimmed, 6)
	assert.Equal(t, "two", trimmed[1].Content)

	bare := buildPrompt(system, turns, "hi", analysis, wordCounter{}, 1)
	require.Len(t, bare, 2, "the new message survives any budget")
	assert.Equal(t, core.RoleUser, bare[1].Role)
	assert.True(t, strings.HasSuffix(bare[1].Content, "User message: hi"))
}
