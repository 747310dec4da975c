package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/logging"
)

// UnknownCommandMessage is sent when no handler claims an interaction
const UnknownCommandMessage = "I don't know how to handle that command."

// Pipeline manages handler registration and execution
type Pipeline struct {
	// Handlers registered in the pipeline
	handlers []Handler

	// Middleware to apply to all handlers
	middleware []Middleware

	// Builds the responder for each interaction
	responderFactory ResponderFactory

	// Mutex for thread-safe handler registration
	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// NewPipeline creates a new handler pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		handlers:         make([]Handler, 0),
		middleware:       make([]Middleware, 0),
		responderFactory: NewDiscordResponder,
	}
}

// Register adds handlers to the pipeline. Middleware added later does not apply to them.
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		wrapped := h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = p.middleware[i](wrapped)
		}
		p.handlers = append(p.handlers, &matchedHandler{match: h, run: wrapped})
	}
}

// matchedHandler keeps the inner handler's CanHandle once middleware wraps it
type matchedHandler struct {
	match Handler
	run   Handler
}

func (m *matchedHandler) CanHandle(ctx *InteractionContext) bool {
	return m.match.CanHandle(ctx)
}

func (m *matchedHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return m.run.Handle(ctx)
}

// Use adds middleware to the pipeline. The first middleware added runs outermost.
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// SetResponderFactory replaces how responders are built
func (p *Pipeline) SetResponderFactory(factory ResponderFactory) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.responderFactory = factory
}

// Execute runs the pipeline for an interaction
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	p.mu.RLock()
	factory := p.responderFactory
	p.mu.RUnlock()

	return p.Dispatch(NewInteractionContext(ctx, s, i), factory(s, i))
}

// Dispatch runs the first handler that claims the interaction
func (p *Pipeline) Dispatch(interactionCtx *InteractionContext, responder InteractionResponder) error {
	interactionCtx.SetResponder(responder)

	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	p.mu.RUnlock()

	logging.L().Debug("dispatching interaction",
		zap.String("command", interactionCtx.GetCommandName()),
		zap.Int("handlers", len(handlers)),
	)

	for _, handler := range handlers {
		if !handler.CanHandle(interactionCtx) {
			continue
		}

		result, err := handler.Handle(interactionCtx)
		if err != nil {
			result = errorResult(err)
		}

		if result != nil && result.Response != nil {
			if err := sendResponse(responder, result); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}
		}
		return nil
	}

	if responder.HasResponded() {
		return nil
	}
	return sendResponse(responder, &HandlerResult{
		Response: NewEphemeralResponse(UnknownCommandMessage),
	})
}

// sendResponse edits a deferred reply, otherwise sends the initial one.
// An ephemeral reply cannot be edited into a public placeholder, so it
// goes out as a private follow-up instead.
func sendResponse(responder InteractionResponder, result *HandlerResult) error {
	if !result.Deferred && !responder.IsDeferred() {
		return responder.Respond(result.Response)
	}

	if result.Response.Ephemeral && !responder.IsEphemeral() {
		return responder.Followup(result.Response)
	}
	return responder.Edit(result.Response)
}

// errorResult covers errors that escaped the middleware chain
func errorResult(err error) *HandlerResult {
	message := "An error occurred while processing your request."

	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) && handlerErr.UserMessage != "" {
		message = handlerErr.UserMessage
	}

	return &HandlerResult{Response: NewEphemeralResponse(message)}
}
