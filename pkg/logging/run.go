package logging

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StartRun attaches a run ID to ctx (a new UUID unless ctx already carries one)
// and logs the start of the named phase. The returned function logs completion or
// failure together with the elapsed time and returns that time.
func StartRun(ctx context.Context, phase string, args ...any) (context.Context, func(err error) time.Duration) {
	if GetRunID(ctx) == "" {
		ctx = WithRunID(ctx, uuid.New().String())
	}

	start := time.Now()
	InfoContext(ctx, phase+" started", args...)

	return ctx, func(err error) time.Duration {
		elapsed := time.Since(start)
		if err != nil {
			ErrorContext(ctx, phase+" failed",
				"error", err,
				"durationMs", elapsed.Milliseconds(),
			)
		} else {
			InfoContext(ctx, phase+" completed",
				"durationMs", elapsed.Milliseconds(),
			)
		}
		return elapsed
	}
}
