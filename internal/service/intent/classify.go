package intent

import (
	"strings"
	"unicode"
)

// Rules are the keyword lists behind the classifier. A keyword may be a single word
// or a phrase; either way it has to match on word boundaries.
type Rules struct {
	Greeting []string `yaml:"greeting"`
	Request  []string `yaml:"request"`
	Question []string `yaml:"question"`
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

func DefaultRules() Rules {
	return Rules{
		Greeting: []string{"hello", "hi", "hey", "howdy", "greetings", "good morning", "good afternoon", "good evening"},
		Request:  []string{"please", "help", "can you", "could you", "would you"},
		Question: []string{"how to", "how do", "what is", "what's", "explain", "why"},
		Positive: []string{"great", "good", "excellent", "love", "amazing", "happy"},
		Negative: []string{"bad", "terrible", "awful", "hate", "angry", "frustrated"},
	}
}

// Merge returns r with every empty list taken from base.
func (r Rules) Merge(base Rules) Rules {
	pick := func(own, fallback []string) []string {
		if len(own) > 0 {
			return own
		}
		return fallback
	}
	return Rules{
		Greeting: pick(r.Greeting, base.Greeting),
		Request:  pick(r.Request, base.Request),
		Question: pick(r.Question, base.Question),
		Positive: pick(r.Positive, base.Positive),
		Negative: pick(r.Negative, base.Negative),
	}
}

type Classifier struct {
	rules Rules
}

func NewClassifier(rules Rules) *Classifier {
	return &Classifier{rules: rules.Merge(DefaultRules())}
}

// Classify is a pure function of text: greeting, then request, then question, else casual.
func (c *Classifier) Classify(text string) Category {
	norm := normalize(text)

	switch {
	case containsAny(norm, c.rules.Greeting):
		return Greeting
	case containsAny(norm, c.rules.Request):
		return Request
	case strings.Contains(text, "?") || containsAny(norm, c.rules.Question):
		return Question
	default:
		return Casual
	}
}

func (c *Classifier) Sentiment(text string) Sentiment {
	norm := normalize(text)

	switch {
	case containsAny(norm, c.rules.Positive):
		return Positive
	case containsAny(norm, c.rules.Negative):
		return Negative
	default:
		return Neutral
	}
}

// Matches reports whether any keyword occurs in text. Used by reply templates.
func Matches(text string, keywords []string) bool {
	return containsAny(normalize(text), keywords)
}

// normalize lowercases and reduces text to space separated words padded on both ends,
// so " hi " can be searched without matching "this".
func normalize(text string) string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	return " " + strings.Join(words, " ") + " "
}

func containsAny(norm string, keywords []string) bool {
	for _, kw := range keywords {
		k := strings.TrimSpace(normalize(kw))
		if k == "" {
			continue
		}
		if strings.Contains(norm, " "+k+" ") {
			return true
		}
	}
	return false
}
