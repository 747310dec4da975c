package middleware

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/core"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/logging"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/uuid"
)

// LoggingMiddleware logs each interaction and how it ended.
// A nil logger falls back to the global one at call time.
func LoggingMiddleware(logger *zap.Logger) core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			log := logger
			if log == nil {
				log = logging.L()
			}
			log = log.With(interactionFields(ctx)...)

			log.Debug("interaction received")

			start := time.Now()
			result, err := next.Handle(ctx)
			duration := time.Since(start)

			if failure := core.ResultError(result, err); failure != nil {
				log.Info("interaction failed",
					zap.Duration("duration", duration),
					zap.String("code", string(pkerr.GetCode(failure))),
					zap.Error(failure),
				)
			} else {
				log.Info("interaction completed", zap.Duration("duration", duration))
			}

			return result, err
		})
	}
}

// RequestIDMiddleware tags each interaction with a correlation id
func RequestIDMiddleware(gen uuid.Generator) core.Middleware {
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			ctx.SetRequestID(gen.New())
			return next.Handle(ctx)
		})
	}
}

func interactionFields(ctx *core.InteractionContext) []zap.Field {
	fields := []zap.Field{
		zap.String("command", ctx.GetCommandName()),
		zap.String("user_id", ctx.UserID),
		zap.String("guild_id", ctx.GuildID),
	}
	if id := ctx.RequestID(); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	return fields
}
