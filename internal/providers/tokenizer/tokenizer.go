// Package tokenizer counts prompt tokens so context can be trimmed before a request.
package tokenizer

import (
	"context"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/pkg/log"
)

const defaultEncoding = "cl100k_base"

type Tiktoken struct {
	enc *tiktoken.Tiktoken
}

// New loads the cl100k_base encoding. The BPE ranks are fetched on first use, so
// offline hosts get the Estimate counter instead.
func New(ctx context.Context) core.TokenCounter {
	enc, err := tiktoken.GetEncoding(defaultEncoding)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("tiktoken unavailable, estimating tokens from length")
		return Estimate{}
	}
	return &Tiktoken{enc: enc}
}

func (t *Tiktoken) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(t.enc.Encode(text, nil, nil))
}

// Estimate assumes roughly four characters per token.
type Estimate struct{}

func (Estimate) Count(text string) int {
	n := utf8.RuneCountInString(text)
	return (n + 3) / 4
}
