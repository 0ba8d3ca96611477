package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *TranscriptRepo {
	t.Helper()

	db, err := NewDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewTranscriptRepo(db)
}

func TestTranscriptRepo_RecordAndCount(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	n, err := repo.Count(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, n)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Record(ctx, core.Exchange{
			UserID:      "u1",
			UserMessage: "hi",
			BotReply:    "hello",
			Source:      "generated",
		}))
	}
	require.NoError(t, repo.Record(ctx, core.Exchange{UserID: "u2", UserMessage: "x", BotReply: "y", Source: "fallback"}))

	n, err = repo.Count(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = repo.Count(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTranscriptRepo_Recent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, msg := range []string{"one", "two", "three"} {
		require.NoError(t, repo.Record(ctx, core.Exchange{
			ID:          msg,
			UserID:      "u1",
			UserMessage: msg,
			BotReply:    "ok",
			Source:      "fallback",
			Category:    "casual",
			Reason:      "no credential",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := repo.Recent(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "two", got[0].UserMessage)
	assert.Equal(t, "three", got[1].UserMessage)
	assert.Equal(t, "casual", got[1].Category)
	assert.True(t, got[1].CreatedAt.Equal(base.Add(2*time.Minute)))
}

func TestTranscriptRepo_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	ex := core.Exchange{ID: "same", UserID: "u1", UserMessage: "a", BotReply: "b", Source: "generated"}
	require.NoError(t, repo.Record(ctx, ex))
	assert.Error(t, repo.Record(ctx, ex))
}
