package middleware

import (
	"context"
	"time"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/core"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
)

// MetricsCollector records handled interactions. An empty code means success.
type MetricsCollector interface {
	RecordInteraction(ctx context.Context, command, code string, duration time.Duration)
}

// MetricsMiddleware tracks count, failures and latency per command
func MetricsMiddleware(collector MetricsCollector) core.Middleware {
	return func(next core.Handler) core.Handler {
		if collector == nil {
			return next
		}

		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			start := time.Now()
			result, err := next.Handle(ctx)
			duration := time.Since(start)

			code := ""
			if failure := core.ResultError(result, err); failure != nil {
				code = errorCode(failure)
			}

			collector.RecordInteraction(ctx.Context, ctx.GetCommandName(), code, duration)

			return result, err
		})
	}
}

// errorCode labels a failure by its domain code
func errorCode(err error) string {
	return string(pkerr.GetCode(err))
}
