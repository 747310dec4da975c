package middleware

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/core"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/logging"
)

// User-facing replies for domain errors
const (
	DefaultUserMessage     = "An error occurred while processing your request."
	UnavailableUserMessage = "The move database is unreachable right now. Please try again later."
	PanicUserMessage       = "An unexpected error occurred. Please try again later."
	notFoundUserFormat     = "Move '%s' not found. Please enter a valid move name."
)

// ErrorConfig configures error handling behavior
type ErrorConfig struct {
	// LogErrors controls whether errors are logged
	LogErrors bool

	// ErrorFormatter turns an error into the reply text
	ErrorFormatter ErrorFormatter

	// ErrorLogger allows custom logging
	ErrorLogger ErrorLogger
}

// ErrorFormatter formats errors for user display
type ErrorFormatter func(err error) string

// ErrorLogger logs errors
type ErrorLogger func(ctx *core.InteractionContext, err error)

// DefaultErrorConfig returns sensible defaults
func DefaultErrorConfig() *ErrorConfig {
	return &ErrorConfig{
		LogErrors:      true,
		ErrorFormatter: UserMessage,
		ErrorLogger:    defaultErrorLogger,
	}
}

// ErrorMiddleware turns handler errors into one ephemeral reply. The error is
// kept on the result so outer middleware can still log and count it.
func ErrorMiddleware(config *ErrorConfig) core.Middleware {
	if config == nil {
		config = DefaultErrorConfig()
	}
	if config.ErrorFormatter == nil {
		config.ErrorFormatter = UserMessage
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			if config.LogErrors && config.ErrorLogger != nil {
				config.ErrorLogger(ctx, err)
			}

			deferred := result != nil && result.Deferred
			errResult := &core.HandlerResult{
				Response: core.NewEphemeralResponse(config.ErrorFormatter(err)),
				Deferred: deferred,
			}
			return errResult.WithError(err), nil
		})
	}
}

// RecoveryMiddleware turns a panic into an error reply
func RecoveryMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					var panicErr error
					switch v := r.(type) {
					case error:
						panicErr = v
					case string:
						panicErr = errors.New(v)
					default:
						panicErr = fmt.Errorf("panic: %v", r)
					}

					logging.L().Error("panic recovered in handler",
						zap.String("command", ctx.GetCommandName()),
						zap.String("user_id", ctx.UserID),
						zap.Error(panicErr),
						zap.Stack("stack"),
					)

					errResult := &core.HandlerResult{
						Response: core.NewEphemeralResponse(PanicUserMessage),
					}
					result = errResult.WithError(pkerr.WrapWithCode(panicErr, pkerr.CodeInternal, "handler panicked"))
					err = nil
				}
			}()

			return next.Handle(ctx)
		})
	}
}

// UserMessage maps an error onto the reply shown to the user
func UserMessage(err error) string {
	var handlerErr *core.HandlerError
	if errors.As(err, &handlerErr) && handlerErr.UserMessage != "" {
		return handlerErr.UserMessage
	}

	switch pkerr.GetCode(err) {
	case pkerr.CodeNotFound:
		if name, ok := pkerr.GetMeta(err)["move"].(string); ok && name != "" {
			return fmt.Sprintf(notFoundUserFormat, name)
		}
		return "Move not found. Please enter a valid move name."
	case pkerr.CodeUnavailable:
		return UnavailableUserMessage
	case pkerr.CodeValidation:
		if msg := validationMessage(err); msg != "" {
			return msg
		}
	}

	return DefaultUserMessage
}

// validationMessage returns the innermost validation message in the chain
func validationMessage(err error) string {
	var msg string
	for e := err; e != nil; e = errors.Unwrap(e) {
		if appErr, ok := e.(*pkerr.Error); ok && appErr.Code == pkerr.CodeValidation {
			msg = appErr.Message
		}
	}
	return msg
}

func defaultErrorLogger(ctx *core.InteractionContext, err error) {
	fields := []zap.Field{
		zap.String("command", ctx.GetCommandName()),
		zap.String("user_id", ctx.UserID),
		zap.String("guild_id", ctx.GuildID),
		zap.String("code", string(pkerr.GetCode(err))),
		zap.Error(err),
	}
	if id := ctx.RequestID(); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}

	switch pkerr.GetCode(err) {
	case pkerr.CodeNotFound, pkerr.CodeValidation:
		logging.L().Info("handler rejected input", fields...)
	default:
		logging.L().Error("handler error", fields...)
	}
}
