package usecase

import (
	"context"
	"errors"

	"meeting-minutes/internal/confluence"
	pkgConfluence "meeting-minutes/pkg/confluence"
	pkgLog "meeting-minutes/pkg/log"
)

var errNoSource = errors.New("no listing source registered")

type namedSource interface {
	Name() string
}

// tryInOrder calls each source until one succeeds. The result of the first
// success is returned even when it is empty. Cancellation and a missing
// configuration abort immediately since no other source can do better.
func tryInOrder[S namedSource, R any](ctx context.Context, l pkgLog.Logger, op string, sources []S, call func(S) (R, error)) (R, error) {
	var zero R
	lastErr := errNoSource

	for i, src := range sources {
		out, err := call(src)
		if err == nil {
			if i > 0 {
				l.Infof(ctx, "%s: served by fallback source %s", op, src.Name())
			}
			return out, nil
		}

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		if errors.Is(err, pkgConfluence.ErrNotConfigured) {
			return zero, confluence.ErrNotConfigured
		}

		l.Warnf(ctx, "%s: source %s failed: %v", op, src.Name(), err)
		lastErr = err
	}

	return zero, lastErr
}
