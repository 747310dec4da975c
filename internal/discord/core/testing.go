package core

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// TestInteractionContext creates an InteractionContext for testing
type TestInteractionContext struct {
	*InteractionContext
}

// NewTestInteractionContext creates a test interaction context
func NewTestInteractionContext() *TestInteractionContext {
	ctx := &InteractionContext{
		Context:  context.Background(),
		UserID:   "test-user-123",
		Username: "test-trainer",
		GuildID:  "test-guild-123",
		params:   make(map[string]any),
	}

	return &TestInteractionContext{
		InteractionContext: ctx,
	}
}

// WithParam adds a command option for testing
func (t *TestInteractionContext) WithParam(key string, value any) *TestInteractionContext {
	t.params[key] = value
	return t
}

// WithUserID sets the user ID
func (t *TestInteractionContext) WithUserID(userID string) *TestInteractionContext {
	t.UserID = userID
	return t
}

// WithUsername sets the username
func (t *TestInteractionContext) WithUsername(username string) *TestInteractionContext {
	t.Username = username
	return t
}

// WithContext replaces the request context
func (t *TestInteractionContext) WithContext(ctx context.Context) *TestInteractionContext {
	t.Context = ctx
	return t
}

// AsCommand simulates a command interaction
func (t *TestInteractionContext) AsCommand(name string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: name,
			},
		},
	}
	return t
}

// MockResponder is a test implementation of InteractionResponder
type MockResponder struct {
	mu            sync.Mutex
	DeferCalls    []bool // Track ephemeral flags
	Responses     []*Response
	Edits         []*Response
	Followups     []*Response
	DeferError    error
	RespondError  error
	EditError     error
	FollowupError error
	Deferred      bool
	Responded     bool
	Ephemeral     bool
}

// NewMockResponder creates a new mock responder
func NewMockResponder() *MockResponder {
	return &MockResponder{
		DeferCalls: make([]bool, 0),
		Responses:  make([]*Response, 0),
		Edits:      make([]*Response, 0),
		Followups:  make([]*Response, 0),
	}
}

func (m *MockResponder) Defer(ephemeral bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeferCalls = append(m.DeferCalls, ephemeral)
	if m.DeferError == nil {
		m.Deferred = true
		m.Responded = true
		m.Ephemeral = ephemeral
	}
	return m.DeferError
}

func (m *MockResponder) Respond(response *Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Responses = append(m.Responses, response)
	if m.RespondError == nil {
		m.Responded = true
		m.Ephemeral = response.Ephemeral
	}
	return m.RespondError
}

func (m *MockResponder) Edit(response *Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Edits = append(m.Edits, response)
	return m.EditError
}

func (m *MockResponder) Followup(response *Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Followups = append(m.Followups, response)
	return m.FollowupError
}

func (m *MockResponder) HasResponded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Responded
}

func (m *MockResponder) IsDeferred() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Deferred
}

func (m *MockResponder) IsEphemeral() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Ephemeral
}

// LastResponse returns the last message sent, follow-ups and edits included
func (m *MockResponder) LastResponse() *Response {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Followups) > 0 {
		return m.Followups[len(m.Followups)-1]
	}
	if len(m.Edits) > 0 {
		return m.Edits[len(m.Edits)-1]
	}
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	return nil
}
