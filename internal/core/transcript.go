package core

import (
	"context"
	"time"
)

// Exchange is one handled message as written to the transcript.
type Exchange struct {
	ID          string
	UserID      string
	UserMessage string
	BotReply    string
	Source      string
	Category    string
	Reason      string
	CreatedAt   time.Time
}

type TranscriptRepository interface {
	Record(ctx context.Context, ex Exchange) error
	Count(ctx context.Context, userID string) (int, error)
}
