package core

import (
	"context"
	"errors"
	"net"
)

var (
	// ErrNoCredential means no generation backend is configured.
	ErrNoCredential = errors.New("no generation credential configured")
	// ErrServiceUnavailable covers transport failures and timeouts.
	ErrServiceUnavailable = errors.New("generation service unavailable")
	// ErrServiceError covers non-success responses and malformed payloads.
	ErrServiceError = errors.New("generation service error")
)

// ClassifyError maps an arbitrary provider error onto one of the sentinel errors above.
func ClassifyError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNoCredential),
		errors.Is(err, ErrServiceUnavailable),
		errors.Is(err, ErrServiceError):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return errors.Join(ErrServiceUnavailable, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return errors.Join(ErrServiceUnavailable, err)
	}
	return errors.Join(ErrServiceError, err)
}
