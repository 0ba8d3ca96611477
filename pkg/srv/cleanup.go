package srv

import "context"

type funcService struct {
	start    func(ctx context.Context) error
	shutdown func(ctx context.Context) error
}

func (f *funcService) Start(ctx context.Context) error {
	if f.start != nil {
		return f.start(ctx)
	}
	return nil
}

func (f *funcService) Shutdown(ctx context.Context) error {
	if f.shutdown != nil {
		return f.shutdown(ctx)
	}
	return nil
}

// NewFunc adapts a pair of functions to Service. Either may be nil.
func NewFunc(start, shutdown func(ctx context.Context) error) Service {
	return &funcService{start: start, shutdown: shutdown}
}

// NewCleanup is a Service that only runs fn on shutdown.
func NewCleanup(fn func() error) Service {
	return NewFunc(nil, func(context.Context) error {
		if fn != nil {
			return fn()
		}
		return nil
	})
}
