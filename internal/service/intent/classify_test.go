package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(Rules{})

	tests := []struct {
		name  string
		input string
		want  Category
	}{
		{name: "hello with punctuation", input: "Hello!", want: Greeting},
		{name: "greeting phrase", input: "good morning everyone", want: Greeting},
		{name: "greeting wins over question", input: "hey, how are you?", want: Greeting},
		{name: "polite request", input: "Could you draft an email", want: Request},
		{name: "help word", input: "I need help with my resume", want: Request},
		{name: "question mark", input: "Is it raining", want: Casual},
		{name: "question mark present", input: "Is it raining?", want: Question},
		{name: "question phrase", input: "explain quantum physics simply", want: Question},
		{name: "what is", input: "what is a monad", want: Question},
		{name: "casual", input: "I had pasta for lunch", want: Casual},
		{name: "no substring greeting", input: "this is which", want: Casual},
		{name: "empty", input: "", want: Casual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.input))
		})
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	c := NewClassifier(Rules{})
	inputs := []string{"Hello!", "why is the sky blue", "please", "whatever", "Thanks a lot"}

	for _, in := range inputs {
		first := c.Classify(in)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, c.Classify(in), in)
		}
	}
}

func TestClassifier_Sentiment(t *testing.T) {
	c := NewClassifier(Rules{})

	assert.Equal(t, Positive, c.Sentiment("This is amazing"))
	assert.Equal(t, Negative, c.Sentiment("I hate Mondays"))
	assert.Equal(t, Neutral, c.Sentiment("The meeting is at 5"))
}

func TestClassifier_CustomRules(t *testing.T) {
	c := NewClassifier(Rules{Greeting: []string{"ahoy"}})

	assert.Equal(t, Greeting, c.Classify("Ahoy there"))
	assert.Equal(t, Casual, c.Classify("hello"), "custom list replaces the default one")
	assert.Equal(t, Request, c.Classify("please"), "unset lists keep defaults")
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("Thank you so much", []string{"thank you"}))
	assert.False(t, Matches("thankful", []string{"thank"}))
	assert.False(t, Matches("anything", []string{"", "  "}))
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   Category
		wantOK bool
	}{
		{"greeting", Greeting, true},
		{" Question ", Question, true},
		{"help", Request, true},
		{"chitchat", Casual, true},
		{"unknown", Casual, false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "greeting", Greeting.String())
	assert.Equal(t, "question", Question.String())
	assert.Equal(t, "request", Request.String())
	assert.Equal(t, "casual", Casual.String())
	assert.Equal(t, "negative", Negative.String())
}
