package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
)

func TestRouter_RoutesByCommandName(t *testing.T) {
	pipeline := NewPipeline()
	router := NewRouter(pipeline)

	var called string
	router.CommandFunc("ttmove", func(ctx *InteractionContext) (*HandlerResult, error) {
		called = "ttmove"
		return &HandlerResult{Response: &Response{Content: "converted"}}, nil
	})
	router.CommandFunc("viewmoves", func(ctx *InteractionContext) (*HandlerResult, error) {
		called = "viewmoves"
		return &HandlerResult{Response: &Response{Content: "listed"}}, nil
	})
	router.Register()

	assert.Equal(t, []string{"ttmove", "viewmoves"}, router.Commands())

	responder := NewMockResponder()
	require.NoError(t, pipeline.Dispatch(NewTestInteractionContext().AsCommand("viewmoves").InteractionContext, responder))
	assert.Equal(t, "viewmoves", called)
	assert.Equal(t, "listed", responder.LastResponse().Content)

	responder = NewMockResponder()
	require.NoError(t, pipeline.Dispatch(NewTestInteractionContext().AsCommand("unknown").InteractionContext, responder))
	assert.Equal(t, UnknownCommandMessage, responder.LastResponse().Content)
}

func TestRouter_Build(t *testing.T) {
	router := NewRouter(nil)
	router.CommandFunc("helpmenu", func(ctx *InteractionContext) (*HandlerResult, error) {
		return &HandlerResult{Response: NewEphemeralResponse("help")}, nil
	})

	handler := router.Build()

	ctx := NewTestInteractionContext().AsCommand("helpmenu").InteractionContext
	require.True(t, handler.CanHandle(ctx))
	result, err := handler.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "help", result.Response.Content)

	assert.False(t, handler.CanHandle(NewTestInteractionContext().AsCommand("pokedex").InteractionContext))
	assert.False(t, handler.CanHandle(NewTestInteractionContext().InteractionContext))

	_, err = handler.Handle(NewTestInteractionContext().AsCommand("pokedex").InteractionContext)
	var handlerErr *HandlerError
	require.ErrorAs(t, err, &handlerErr)
	assert.Equal(t, UnknownCommandMessage, handlerErr.UserMessage)
	assert.True(t, pkerr.IsNotFound(err))

	// Register without a pipeline is a no-op
	router.Register()
}
