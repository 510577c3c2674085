package authclient

import "errors"

var (
	// ErrBuilderUsed is returned when Build is called twice on one Builder.
	ErrBuilderUsed = errors.New("builder already used")
	// ErrInvalidConfig wraps configuration validation failures from Build.
	ErrInvalidConfig = errors.New("invalid configuration")
)
