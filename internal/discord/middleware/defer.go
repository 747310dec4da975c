package middleware

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/core"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/logging"
)

// DeferConfig configures the defer middleware
type DeferConfig struct {
	// DeferAfter defers if handler doesn't respond within this duration
	// Set to 0 to disable auto-defer
	DeferAfter time.Duration

	// SkipDeferFor lists commands that always answer quickly
	SkipDeferFor []string
}

// DefaultDeferConfig returns a sensible default configuration
func DefaultDeferConfig() *DeferConfig {
	return &DeferConfig{
		DeferAfter: 2 * time.Second, // Discord requires response within 3s
	}
}

// DeferMiddleware keeps slow handlers inside Discord's 3-second acknowledgement window
func DeferMiddleware(config *DeferConfig) core.Middleware {
	if config == nil {
		config = DefaultDeferConfig()
	}

	skip := make(map[string]bool, len(config.SkipDeferFor))
	for _, name := range config.SkipDeferFor {
		skip[name] = true
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			responder := ctx.Responder()
			if responder == nil || skip[ctx.GetCommandName()] {
				return next.Handle(ctx)
			}

			if config.DeferAfter <= 0 {
				return next.Handle(ctx)
			}

			type handlerResponse struct {
				result *core.HandlerResult
				err    error
			}
			responseChan := make(chan handlerResponse, 1)

			go func() {
				result, err := next.Handle(ctx)
				responseChan <- handlerResponse{result, err}
			}()

			timer := time.NewTimer(config.DeferAfter)
			defer timer.Stop()

			select {
			case resp := <-responseChan:
				return resp.result, resp.err

			case <-timer.C:
				// The placeholder is public. Ephemeral replies are sent as follow-ups.
				if err := responder.Defer(false); err != nil {
					logging.L().Warn("failed to defer interaction after timeout",
						zap.String("command", ctx.GetCommandName()),
						zap.Error(err),
					)
				}

				resp := <-responseChan
				if resp.result != nil {
					resp.result.Deferred = responder.IsDeferred()
				}
				return resp.result, resp.err
			}
		})
	}
}
