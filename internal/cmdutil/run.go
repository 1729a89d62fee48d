// internal/cmdutil/run.go
package cmdutil

import (
	"context"
	"time"

	"advent/internal/ctxlog"
)

// Timed runs fn and logs how long it took at debug level under msg.
// Failures are logged at the same level; callers decide how to report them.
func Timed[T any](ctx context.Context, msg string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	log := ctxlog.FromContext(ctx)
	if err != nil {
		log.DebugContext(ctx, msg+" failed", "elapsed", time.Since(start), "error", err)
		return v, err
	}
	log.DebugContext(ctx, msg, "elapsed", time.Since(start))
	return v, nil
}
