package activity

import "errors"

var (
	// ErrInvalidInput indicates an unusable activity entry or filter.
	ErrInvalidInput = errors.New("invalid activity input")
)
