package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const maxRetries = 4

// withRetry runs fn until it succeeds, doubling the wait between attempts.
func withRetry(ctx context.Context, op string, backoff time.Duration, fn func(context.Context) error) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		slog.Warn(
			"Operation failed, will retry.",
			"operation", op,
			"attempt", i+1,
			"maxRetries", maxRetries,
			"backoff", backoff.String(),
			"error", err,
		)
		select {
		case <-time.After(backoff):
			backoff *= 2
		case <-ctx.Done():
			slog.Error("Context cancelled during backoff. Aborting retries.", "operation", op, "error", ctx.Err())
			return ctx.Err()
		}
	}
	return fmt.Errorf("%s failed after all retries: %w", op, lastErr)
}
