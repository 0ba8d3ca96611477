package tokenizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate_Count(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 1},
		{"abcd", 1},
		{"abcde", 2},
		{"привет мир", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Estimate{}.Count(tt.in), tt.in)
	}
}

func TestNew_CountsSomething(t *testing.T) {
	// Either tiktoken or the estimate, depending on network access.
	c := New(context.Background())
	assert.Zero(t, c.Count(""))
	assert.Positive(t, c.Count("Hello there, how are you doing today?"))
}
