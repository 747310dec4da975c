package core

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// InteractionResponder provides an abstraction over Discord's interaction response API
type InteractionResponder interface {
	// Defer sends a deferred response, optionally ephemeral
	Defer(ephemeral bool) error

	// Respond sends an immediate response
	Respond(response *Response) error

	// Edit updates a previous response (after defer or respond)
	Edit(response *Response) error

	// Followup sends a new message after the initial response and
	// removes a deferred placeholder it replaces
	Followup(response *Response) error

	// HasResponded reports whether anything was sent yet
	HasResponded() bool

	// IsDeferred reports whether a deferred response was sent
	IsDeferred() bool

	// IsEphemeral reports whether the initial response is only visible to the user
	IsEphemeral() bool
}

// ResponderFactory builds the responder for one interaction
type ResponderFactory func(s *discordgo.Session, i *discordgo.InteractionCreate) InteractionResponder

// DiscordResponder implements InteractionResponder using Discord's API.
// Defer may race with the pipeline's reply, so state is guarded.
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate

	mu        sync.Mutex
	responded bool
	deferred  bool
	ephemeral bool
}

// NewDiscordResponder creates a new Discord responder
func NewDiscordResponder(s *discordgo.Session, i *discordgo.InteractionCreate) InteractionResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Defer sends a deferred response
func (r *DiscordResponder) Defer(ephemeral bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.responded {
		return fmt.Errorf("interaction already responded to")
	}

	flags := discordgo.MessageFlags(0)
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: flags,
		},
	})

	if err == nil {
		r.deferred = true
		r.responded = true
		r.ephemeral = ephemeral
	}

	return err
}

// Respond sends an immediate response, or edits when something was already sent
func (r *DiscordResponder) Respond(response *Response) error {
	r.mu.Lock()
	if r.responded {
		r.mu.Unlock()
		return r.Edit(response)
	}
	defer r.mu.Unlock()

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: buildResponseData(response),
	})

	if err == nil {
		r.responded = true
		r.ephemeral = response.Ephemeral
	}

	return err
}

// Edit updates a previous response
func (r *DiscordResponder) Edit(response *Response) error {
	if !r.HasResponded() {
		return fmt.Errorf("cannot edit before responding")
	}

	webhook := &discordgo.WebhookEdit{
		Content:         &response.Content,
		Embeds:          &response.Embeds,
		AllowedMentions: response.AllowedMentions,
	}

	_, err := r.session.InteractionResponseEdit(r.interaction.Interaction, webhook)
	return err
}

// Followup posts response as a new message. A public deferred placeholder
// is deleted once the follow-up is out.
func (r *DiscordResponder) Followup(response *Response) error {
	if !r.HasResponded() {
		return fmt.Errorf("cannot follow up before responding")
	}

	params := &discordgo.WebhookParams{
		Content:         response.Content,
		Embeds:          response.Embeds,
		AllowedMentions: response.AllowedMentions,
	}
	if response.Ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}

	if _, err := r.session.FollowupMessageCreate(r.interaction.Interaction, true, params); err != nil {
		return err
	}

	if r.IsDeferred() && !r.IsEphemeral() {
		return r.session.InteractionResponseDelete(r.interaction.Interaction)
	}
	return nil
}

// HasResponded returns whether this responder has already sent a response
func (r *DiscordResponder) HasResponded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.responded
}

// IsDeferred returns whether this responder has sent a deferred response
func (r *DiscordResponder) IsDeferred() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deferred
}

// IsEphemeral returns whether the initial response was ephemeral
func (r *DiscordResponder) IsEphemeral() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ephemeral
}

// buildResponseData converts our Response to Discord's InteractionResponseData
func buildResponseData(response *Response) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:         response.Content,
		Embeds:          response.Embeds,
		AllowedMentions: response.AllowedMentions,
	}

	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return data
}
