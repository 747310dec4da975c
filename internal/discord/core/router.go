package core

import (
	"sort"
)

// Router maps top-level slash command names to handlers
type Router struct {
	handlers map[string]Handler
	pipeline *Pipeline
}

// NewRouter creates a command router that registers into pipeline
func NewRouter(pipeline *Pipeline) *Router {
	return &Router{
		handlers: make(map[string]Handler),
		pipeline: pipeline,
	}
}

// Command registers a slash command handler
func (r *Router) Command(name string, handler Handler) *Router {
	r.handlers[name] = handler
	return r
}

// CommandFunc registers a slash command handler function
func (r *Router) CommandFunc(name string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Command(name, HandlerFunc(fn))
}

// Commands lists the registered command names, sorted
func (r *Router) Commands() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates a single handler from all registered routes
func (r *Router) Build() Handler {
	handlers := make(map[string]Handler, len(r.handlers))
	for name, h := range r.handlers {
		handlers[name] = h
	}
	return &routerHandler{handlers: handlers}
}

// Register registers this router with the pipeline
func (r *Router) Register() {
	if r.pipeline != nil {
		r.pipeline.Register(r.Build())
	}
}

// routerHandler implements Handler for a router
type routerHandler struct {
	handlers map[string]Handler
}

// CanHandle checks if this router can handle the interaction
func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	if !ctx.IsCommand() {
		return false
	}
	_, ok := h.handlers[ctx.GetCommandName()]
	return ok
}

// Handle processes the interaction
func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler, ok := h.handlers[ctx.GetCommandName()]
	if !ok {
		return nil, NewUnknownCommandError(ctx.GetCommandName())
	}
	return handler.Handle(ctx)
}
