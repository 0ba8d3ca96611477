package responder

import (
	"hash/fnv"
	"strings"

	"github.com/sandevgo/relaybot/internal/service/intent"
)

// Replies are the canned texts used when nothing can be generated.
type Replies struct {
	Greeting string   `yaml:"greeting"`
	Question string   `yaml:"question"`
	Request  string   `yaml:"request"`
	Thanks   string   `yaml:"thanks"`
	Farewell string   `yaml:"farewell"`
	Casual   []string `yaml:"casual"`

	ThanksKeywords   []string `yaml:"thanks_keywords"`
	FarewellKeywords []string `yaml:"farewell_keywords"`
}

func DefaultReplies() Replies {
	return Replies{
		Greeting: "Hello! Nice to meet you. How can I help you today?",
		Question: "That's a great question! I'm here to help, though my AI features might be limited right now.",
		Request:  "I'd be glad to help with that. My AI features are limited right now, so could you tell me a bit more about what you need?",
		Thanks:   "You're welcome! Is there anything else I can help you with?",
		Farewell: "Goodbye! Feel free to message me anytime you need help.",
		Casual: []string{
			"I understand. How can I help you with that?",
			"That's interesting! Tell me more.",
			"I'm here to help. What would you like to know?",
			"Thanks for sharing that with me.",
			"I see. Is there anything specific you'd like assistance with?",
		},
		ThanksKeywords:   []string{"thanks", "thank you", "thx"},
		FarewellKeywords: []string{"bye", "goodbye", "see you"},
	}
}

// Merge fills blanks in r from base. Whitespace-only texts count as blank.
func (r Replies) Merge(base Replies) Replies {
	str := func(own, fallback string) string {
		if own = strings.TrimSpace(own); own != "" {
			return own
		}
		return fallback
	}
	list := func(own, fallback []string) []string {
		kept := make([]string, 0, len(own))
		for _, s := range own {
			if s = strings.TrimSpace(s); s != "" {
				kept = append(kept, s)
			}
		}
		if len(kept) > 0 {
			return kept
		}
		return fallback
	}
	return Replies{
		Greeting:         str(r.Greeting, base.Greeting),
		Question:         str(r.Question, base.Question),
		Request:          str(r.Request, base.Request),
		Thanks:           str(r.Thanks, base.Thanks),
		Farewell:         str(r.Farewell, base.Farewell),
		Casual:           list(r.Casual, base.Casual),
		ThanksKeywords:   list(r.ThanksKeywords, base.ThanksKeywords),
		FarewellKeywords: list(r.FarewellKeywords, base.FarewellKeywords),
	}
}

// Fallback picks the canned reply for a classified message. Same input, same output.
func (r Replies) Fallback(category intent.Category, text string) string {
	switch category {
	case intent.Greeting:
		return r.Greeting
	case intent.Question:
		return r.Question
	case intent.Request:
		return r.Request
	}

	switch {
	case intent.Matches(text, r.ThanksKeywords):
		return r.Thanks
	case intent.Matches(text, r.FarewellKeywords):
		return r.Farewell
	case len(r.Casual) == 0:
		return r.Greeting
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	return r.Casual[h.Sum32()%uint32(len(r.Casual))]
}
