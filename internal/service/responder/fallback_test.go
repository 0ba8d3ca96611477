package responder

import (
	"strings"
	"testing"

	"github.com/sandevgo/relaybot/internal/service/intent"
	"github.com/stretchr/testify/assert"
)

func TestReplies_Fallback(t *testing.T) {
	r := DefaultReplies()

	assert.Equal(t, r.Greeting, r.Fallback(intent.Greeting, "hello"))
	assert.Equal(t, r.Question, r.Fallback(intent.Question, "why?"))
	assert.Equal(t, r.Request, r.Fallback(intent.Request, "please do it"))
	assert.Equal(t, r.Thanks, r.Fallback(intent.Casual, "Thank you!"))
	assert.Equal(t, r.Farewell, r.Fallback(intent.Casual, "ok bye"))
	assert.Contains(t, r.Casual, r.Fallback(intent.Casual, "I like trains"))
}

func TestReplies_FallbackIsDeterministic(t *testing.T) {
	r := DefaultReplies()
	for _, in := range []string{"one", "two", "the weather is mild", ""} {
		first := r.Fallback(intent.Casual, in)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, r.Fallback(intent.Casual, in))
		}
	}
}

func TestReplies_MergeDropsBlankText(t *testing.T) {
	own := Replies{
		Greeting: "  ",
		Thanks:   " Cheers! ",
		Casual:   []string{"", "  ", "Go on."},
		Farewell: "\n",
	}
	got := own.Merge(DefaultReplies())

	assert.Equal(t, DefaultReplies().Greeting, got.Greeting)
	assert.Equal(t, DefaultReplies().Farewell, got.Farewell)
	assert.Equal(t, "Cheers!", got.Thanks)
	assert.Equal(t, []string{"Go on."}, got.Casual)

	onlyBlank := Replies{Casual: []string{""}, ThanksKeywords: []string{" "}}.Merge(DefaultReplies())
	assert.Equal(t, DefaultReplies().Casual, onlyBlank.Casual)
	assert.Equal(t, DefaultReplies().ThanksKeywords, onlyBlank.ThanksKeywords)
}

func TestReplies_FallbackNeverBlankAfterMerge(t *testing.T) {
	r := Replies{Greeting: " ", Question: "", Casual: []string{""}}.Merge(DefaultReplies())

	for _, c := range []intent.Category{intent.Greeting, intent.Question, intent.Request, intent.Casual} {
		for _, text := range []string{"hi", "what is this?", "I like trains", "thanks", "bye"} {
			assert.NotEmpty(t, strings.TrimSpace(r.Fallback(c, text)), "%s / %q", c, text)
		}
	}
}
