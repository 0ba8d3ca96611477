package core

import "context"

type CmdRouter interface {
	Execute(ctx context.Context, in Inbound) (string, bool)
	ListCommands() []Command
}

type CommandRequest struct {
	UserID string
	Name   string
	Args   []string
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, req CommandRequest) (string, error)
}
