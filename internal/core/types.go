package core

const (
	RelayName          = "RelayBot"
	RelayUserAgent     = "RelayBot/0.1"
	RelayRepositoryURL = "https://github.com/sandevgo/relaybot"
	RelayVersion       = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatOptions are per-request generation knobs. Zero values leave the provider default.
type ChatOptions struct {
	MaxTokens   int
	Temperature float64
}

// Inbound is a text message handed over by a platform adapter.
type Inbound struct {
	UserID string
	Name   string
	Text   string
}
