package core

import (
	"github.com/bwmarrin/discordgo"
)

// Handler defines the interface for all interaction handlers
type Handler interface {
	// CanHandle determines if this handler should process the interaction
	CanHandle(ctx *InteractionContext) bool

	// Handle processes the interaction and returns a result
	Handle(ctx *InteractionContext) (*HandlerResult, error)
}

// HandlerFunc allows functions to implement the Handler interface
type HandlerFunc func(ctx *InteractionContext) (*HandlerResult, error)

// CanHandle for HandlerFunc always returns true
func (f HandlerFunc) CanHandle(ctx *InteractionContext) bool {
	return true
}

// Handle calls the function
func (f HandlerFunc) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return f(ctx)
}

// HandlerResult contains the response and metadata from a handler
type HandlerResult struct {
	// Response to send to Discord
	Response *Response

	// Whether the response was already deferred
	Deferred bool

	// Additional context to pass to middleware
	Context map[string]any
}

// contextErrorKey is where ErrorMiddleware keeps the error it turned into a reply
const contextErrorKey = "error"

// WithError records an error that was already converted into a response
func (r *HandlerResult) WithError(err error) *HandlerResult {
	if r.Context == nil {
		r.Context = make(map[string]any)
	}
	r.Context[contextErrorKey] = err
	return r
}

// ResultError returns err, or the error a result carries after being converted into a reply
func ResultError(result *HandlerResult, err error) error {
	if err != nil {
		return err
	}
	if result == nil || result.Context == nil {
		return nil
	}
	handled, _ := result.Context[contextErrorKey].(error)
	return handled
}

// Response represents a Discord-agnostic response
type Response struct {
	// Text content of the response
	Content string

	// Discord embeds
	Embeds []*discordgo.MessageEmbed

	// Whether this response should be ephemeral (only visible to the user)
	Ephemeral bool

	// Allowed mentions configuration
	AllowedMentions *discordgo.MessageAllowedMentions
}

// NewEphemeralResponse creates a new ephemeral response
func NewEphemeralResponse(content string) *Response {
	return &Response{
		Content:   content,
		Ephemeral: true,
	}
}

// NewEmbedResponse creates a response with an embed
func NewEmbedResponse(embed *discordgo.MessageEmbed) *Response {
	return &Response{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
}

// AsEphemeral sets the response to be ephemeral
func (r *Response) AsEphemeral() *Response {
	r.Ephemeral = true
	return r
}
