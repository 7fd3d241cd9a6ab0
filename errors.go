package lingua

import "errors"

// Common errors used throughout the lingua package
var (
	// ErrUnsupportedLanguage is returned when a language code is not one of the 13 supported languages.
	ErrUnsupportedLanguage = errors.New("unsupported language code")
	// ErrUnknownAction indicates a canonical action id outside the shared command vocabulary.
	ErrUnknownAction = errors.New("unknown canonical action")
	// ErrUnknownRole indicates a semantic role name outside the closed role enum.
	ErrUnknownRole = errors.New("unknown semantic role")
	// ErrNilNode is returned when a renderer or converter receives a nil semantic node.
	ErrNilNode = errors.New("semantic node is nil")

	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
)
