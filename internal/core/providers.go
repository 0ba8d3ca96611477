package core

import "context"

type AIProvider interface {
	Chat(ctx context.Context, history []Message, opts ChatOptions) (Message, error)
}

type TokenCounter interface {
	Count(text string) int
}
