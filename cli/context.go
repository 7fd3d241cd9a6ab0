// Package cli implements the lingua command line interface.
package cli

import (
	"errors"
	"fmt"

	lingua "github.com/hyperfixi/lingua"
)

// Error definitions
var (
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrNoInputFiles        = errors.New("no input files found")
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*lingua.Config, error) {
	return lingua.LoadConfig(configPath)
}

// resolveLanguage validates a language flag, falling back when it is unset
func resolveLanguage(flag, fallback string) (lingua.LanguageCode, error) {
	value := flag
	if value == "" {
		value = fallback
	}

	code := lingua.LanguageCode(value)
	if !lingua.IsLanguageSupported(code) {
		return "", fmt.Errorf("%w: %s", lingua.ErrUnsupportedLanguage, value)
	}

	return code, nil
}

// resolveTargets validates target flags, falling back to the configured
// target set when none are given
func resolveTargets(flags []string, config *lingua.Config) ([]lingua.LanguageCode, error) {
	if len(flags) == 0 {
		return config.TargetLanguages(), nil
	}

	targets := make([]lingua.LanguageCode, 0, len(flags))

	for _, flag := range flags {
		code := lingua.LanguageCode(flag)
		if !lingua.IsLanguageSupported(code) {
			return nil, fmt.Errorf("%w: %s", lingua.ErrUnsupportedLanguage, flag)
		}

		targets = append(targets, code)
	}

	return targets, nil
}

// resolveFormat picks the output format from the flag or the config
func resolveFormat(flag string, config *lingua.Config) (string, error) {
	format := flag
	if format == "" {
		format = config.Output.Format
	}

	switch format {
	case "text", "json":
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidOutputFormat, format)
	}
}
