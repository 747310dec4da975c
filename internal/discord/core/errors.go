package core

import (
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
)

// HandlerError pairs a failure with the exact reply the invoking user should see.
// Err keeps the pkerr code so metrics and logs still categorize it.
type HandlerError struct {
	Err         error
	UserMessage string
}

// Error implements the error interface
func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

// Unwrap returns the underlying error
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// NewHandlerError attaches a user-facing message to err
func NewHandlerError(err error, userMessage string) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: userMessage,
	}
}

// NewRateLimitError reports a user who sent too many commands in the window
func NewRateLimitError(userMessage string) *HandlerError {
	return NewHandlerError(pkerr.New(pkerr.CodeRateLimited, "rate limit exceeded"), userMessage)
}

// NewUnknownCommandError reports a command no route claims
func NewUnknownCommandError(name string) *HandlerError {
	return NewHandlerError(
		pkerr.NotFoundf("command %q is not routed", name).WithMeta("command", name),
		UnknownCommandMessage,
	)
}
