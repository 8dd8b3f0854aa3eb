package message

import "errors"

const (
	// MsgSummarizationFailed is stored on a message when summarizing blows up.
	MsgSummarizationFailed = "Summarization failed."
	// MsgTranslationFailed is stored on a message when translating blows up.
	MsgTranslationFailed = "Translation failed."
)

var (
	// ErrMessageNotFound indicates the message doesn't exist.
	ErrMessageNotFound = errors.New("message not found")

	errActionPanicked = errors.New("action panicked")
)
