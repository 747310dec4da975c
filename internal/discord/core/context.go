package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type contextKey string

const (
	responderKey contextKey = "responder"
	requestIDKey contextKey = "request_id"
)

// InteractionContext wraps a Discord interaction with useful helpers and context
type InteractionContext struct {
	// Core Discord objects
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate

	// Extracted common fields for convenience
	UserID    string
	Username  string
	GuildID   string
	ChannelID string

	// Context for cancellation and values
	Context context.Context

	// Slash command options by name
	params map[string]any
}

// NewInteractionContext creates a new InteractionContext from a Discord interaction
func NewInteractionContext(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) *InteractionContext {
	ic := &InteractionContext{
		Session:     s,
		Interaction: i,
		Context:     ctx,
		params:      make(map[string]any),
	}

	// Guild interactions carry a member, DMs carry a user
	var user *discordgo.User
	if i.Member != nil && i.Member.User != nil {
		user = i.Member.User
	} else if i.User != nil {
		user = i.User
	}
	if user != nil {
		ic.UserID = user.ID
		ic.Username = user.Username
	}

	ic.GuildID = i.GuildID
	ic.ChannelID = i.ChannelID

	if ic.IsCommand() {
		ic.parseOptions(i.ApplicationCommandData().Options)
	}

	return ic
}

// parseOptions flattens command options. Commands here have no subcommands,
// nested options are still walked so a future group does not drop values.
func (ic *InteractionContext) parseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		if len(opt.Options) > 0 {
			ic.parseOptions(opt.Options)
			continue
		}
		ic.params[opt.Name] = opt.Value
	}
}

// GetStringParam retrieves a string parameter or returns empty string
func (ic *InteractionContext) GetStringParam(name string) string {
	if val, ok := ic.params[name]; ok {
		if strVal, ok := val.(string); ok {
			return strVal
		}
	}
	return ""
}

// IsCommand checks if this is a slash command interaction
func (ic *InteractionContext) IsCommand() bool {
	return ic.Interaction != nil && ic.Interaction.Interaction != nil &&
		ic.Interaction.Type == discordgo.InteractionApplicationCommand
}

// GetCommandName returns the command name for slash commands
func (ic *InteractionContext) GetCommandName() string {
	if ic.IsCommand() {
		return ic.Interaction.ApplicationCommandData().Name
	}
	return ""
}

// WithValue adds a value to the context
func (ic *InteractionContext) WithValue(key, val any) {
	ic.Context = context.WithValue(ic.Context, key, val)
}

// Value retrieves a value from the context
func (ic *InteractionContext) Value(key any) any {
	return ic.Context.Value(key)
}

// SetResponder attaches the responder middleware uses to defer
func (ic *InteractionContext) SetResponder(r InteractionResponder) {
	ic.WithValue(responderKey, r)
}

// Responder returns the attached responder, nil when none is set
func (ic *InteractionContext) Responder() InteractionResponder {
	r, _ := ic.Value(responderKey).(InteractionResponder)
	return r
}

// SetRequestID tags the interaction with a correlation id
func (ic *InteractionContext) SetRequestID(id string) {
	ic.WithValue(requestIDKey, id)
}

// RequestID returns the correlation id, empty when none is set
func (ic *InteractionContext) RequestID() string {
	id, _ := ic.Value(requestIDKey).(string)
	return id
}
