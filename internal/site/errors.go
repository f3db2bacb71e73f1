package site

import "errors"

var (
	// ErrConfigNotFound is returned when an explicitly named config file
	// does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig is returned when the config file cannot be parsed
	// or holds unusable values.
	ErrInvalidConfig = errors.New("invalid config")
)
