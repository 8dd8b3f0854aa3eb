package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/polyglot/internal/domain/activity"
	"github.com/rpggio/polyglot/internal/domain/message"
	"github.com/rpggio/polyglot/internal/domain/session"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, message.ErrMessageNotFound):
		return &APIError{Code: "MESSAGE_NOT_FOUND", Message: "message not found", RecoveryHint: "Call list_messages for valid ids"}
	case errors.Is(err, session.ErrInvalidLanguage):
		return &APIError{Code: "INVALID_LANGUAGE", Message: "invalid language code", RecoveryHint: "Call list_languages for supported codes"}
	case errors.Is(err, activity.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid activity filter", RecoveryHint: "Use a non-negative limit and offset"}
	default:
		return nil
	}
}

// toolError returns the mapped form of err, or err itself when unmapped.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
