package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "already unavailable", err: fmt.Errorf("request: %w", ErrServiceUnavailable), want: ErrServiceUnavailable},
		{name: "no credential", err: ErrNoCredential, want: ErrNoCredential},
		{name: "deadline", err: fmt.Errorf("post: %w", context.DeadlineExceeded), want: ErrServiceUnavailable},
		{name: "canceled", err: context.Canceled, want: ErrServiceUnavailable},
		{name: "anything else", err: errors.New("boom"), want: ErrServiceError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
