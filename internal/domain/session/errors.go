package session

import "errors"

var (
	// ErrInvalidLanguage indicates an empty or malformed language code.
	ErrInvalidLanguage = errors.New("invalid language code")
)
