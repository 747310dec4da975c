package middleware_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/core"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/middleware"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
)

type recorded struct {
	command string
	code    string
}

type fakeCollector struct {
	mu    sync.Mutex
	calls []recorded
}

func (f *fakeCollector) RecordInteraction(_ context.Context, command, code string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recorded{command: command, code: code})
}

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
	}{
		{name: "success", expectedCode: ""},
		{name: "domain code", err: pkerr.Unavailable(errors.New("timeout"), "pokeapi"), expectedCode: "unavailable"},
		{name: "rate limited", err: core.NewRateLimitError("slow down"), expectedCode: "rate_limited"},
		{name: "unknown command", err: core.NewUnknownCommandError("pokedex"), expectedCode: "not_found"},
		{name: "handler error keeps cause code", err: core.NewHandlerError(pkerr.Validationf("nope"), "Pick a move."), expectedCode: "validation"},
		{name: "plain error", err: errors.New("boom"), expectedCode: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := &fakeCollector{}
			handler := middleware.MetricsMiddleware(collector)(middleware.ErrorMiddleware(&middleware.ErrorConfig{})(core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return &core.HandlerResult{Response: &core.Response{Content: "ok"}}, nil
			})))

			_, err := handler.Handle(core.NewTestInteractionContext().AsCommand("moveinfo").InteractionContext)
			require.NoError(t, err)

			require.Len(t, collector.calls, 1)
			assert.Equal(t, recorded{command: "moveinfo", code: tt.expectedCode}, collector.calls[0])
		})
	}
}

func TestMetricsMiddleware_NilCollector(t *testing.T) {
	called := false
	handler := middleware.MetricsMiddleware(nil)(core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		called = true
		return nil, nil
	}))

	_, err := handler.Handle(core.NewTestInteractionContext().InteractionContext)
	require.NoError(t, err)
	assert.True(t, called)
}
