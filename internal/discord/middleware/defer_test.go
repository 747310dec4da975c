package middleware_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/core"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/middleware"
)

func sleepingHandler(d time.Duration) core.Handler {
	return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		time.Sleep(d)
		return &core.HandlerResult{Response: &core.Response{Content: "done"}}, nil
	})
}

func contextWithResponder(command string) (*core.InteractionContext, *core.MockResponder) {
	ctx := core.NewTestInteractionContext().AsCommand(command).InteractionContext
	responder := core.NewMockResponder()
	ctx.SetResponder(responder)
	return ctx, responder
}

func TestDeferMiddleware_FastHandlerIsNotDeferred(t *testing.T) {
	ctx, responder := contextWithResponder("ttmove")

	handler := middleware.DeferMiddleware(&middleware.DeferConfig{DeferAfter: time.Second})(sleepingHandler(0))
	result, err := handler.Handle(ctx)

	require.NoError(t, err)
	assert.False(t, result.Deferred)
	assert.Empty(t, responder.DeferCalls)
}

func TestDeferMiddleware_SlowHandlerIsDeferred(t *testing.T) {
	ctx, responder := contextWithResponder("registermoves")

	handler := middleware.DeferMiddleware(&middleware.DeferConfig{
		DeferAfter: 10 * time.Millisecond,
	})(sleepingHandler(100 * time.Millisecond))
	result, err := handler.Handle(ctx)

	require.NoError(t, err)
	assert.True(t, result.Deferred)
	assert.Equal(t, []bool{false}, responder.DeferCalls)
	assert.False(t, responder.IsEphemeral())
}

func TestDeferMiddleware_ZeroDelayDisablesDefer(t *testing.T) {
	ctx, responder := contextWithResponder("viewmoves")

	handler := middleware.DeferMiddleware(&middleware.DeferConfig{})(sleepingHandler(20 * time.Millisecond))
	result, err := handler.Handle(ctx)

	require.NoError(t, err)
	assert.False(t, result.Deferred)
	assert.Empty(t, responder.DeferCalls)
}

func TestDeferMiddleware_SkipsListedCommands(t *testing.T) {
	ctx, responder := contextWithResponder("helpmenu")

	handler := middleware.DeferMiddleware(&middleware.DeferConfig{
		DeferAfter:   10 * time.Millisecond,
		SkipDeferFor: []string{"helpmenu"},
	})(sleepingHandler(50 * time.Millisecond))
	result, err := handler.Handle(ctx)

	require.NoError(t, err)
	assert.False(t, result.Deferred)
	assert.Empty(t, responder.DeferCalls)
}

func TestDeferMiddleware_NoResponderRunsHandler(t *testing.T) {
	ctx := core.NewTestInteractionContext().InteractionContext

	handler := middleware.DeferMiddleware(middleware.DefaultDeferConfig())(sleepingHandler(0))
	result, err := handler.Handle(ctx)

	require.NoError(t, err)
	assert.Equal(t, "done", result.Response.Content)
}
