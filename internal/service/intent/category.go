package intent

import "strings"

type Category int

const (
	Casual Category = iota
	Greeting
	Question
	Request
)

func (c Category) String() string {
	switch c {
	case Greeting:
		return "greeting"
	case Question:
		return "question"
	case Request:
		return "request"
	default:
		return "casual"
	}
}

// ParseCategory accepts our names plus the labels older prompts produced.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greeting":
		return Greeting, true
	case "question":
		return Question, true
	case "request", "help":
		return Request, true
	case "casual", "chitchat":
		return Casual, true
	}
	return Casual, false
}

type Sentiment int

const (
	Neutral Sentiment = iota
	Positive
	Negative
)

func (s Sentiment) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}

func ParseSentiment(s string) (Sentiment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive":
		return Positive, true
	case "negative":
		return Negative, true
	case "neutral":
		return Neutral, true
	}
	return Neutral, false
}
