package telegram

import (
	"context"
	"strings"

	"github.com/sandevgo/relaybot/pkg/conv"
	"github.com/sandevgo/relaybot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // below the 4096 hard limit

type messageSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type sender struct {
	bot messageSender
}

func newSender(bot messageSender) *sender {
	return &sender{bot: bot}
}

// sendMarkdown converts md to Telegram HTML and sends it in chunks.
// A chunk Telegram refuses to parse is resent as plain text.
func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string) error {
	logger := log.FromCtx(ctx)

	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	if html == "" {
		return s.sendPlain(to, md)
	}

	for i, chunk := range splitHTML(html, maxTelegramMsgLen) {
		if _, err := s.bot.Send(to, chunk, tele.ModeHTML); err != nil {
			logger.Warn().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("html send failed, falling back to plain text")
			if err := s.sendPlain(to, conv.StripTags(chunk)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *sender) sendPlain(to tele.Recipient, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	for _, chunk := range splitHTML(text, maxTelegramMsgLen) {
		if _, err := s.bot.Send(to, chunk); err != nil {
			return err
		}
	}
	return nil
}

// splitHTML splits text into chunks of at most maxLen bytes,
// preferring newlines in the last two thirds of a chunk.
func splitHTML(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		} else {
			for cut > 0 && !utf8Start(text[cut]) {
				cut--
			}
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}

func utf8Start(b byte) bool {
	return b&0xC0 != 0x80
}
