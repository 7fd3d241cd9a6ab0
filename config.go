package lingua

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the lingua project configuration
type Config struct {
	DefaultSource string       `yaml:"default_source"`
	Targets       []string     `yaml:"targets"` // empty means every supported language
	Output        OutputConfig `yaml:"output"`
	Doc           DocConfig    `yaml:"doc"`
	Export        ExportConfig `yaml:"export"`
}

// OutputConfig represents CLI output settings
type OutputConfig struct {
	Format string `yaml:"format"` // text or json
	Color  *bool  `yaml:"color"`  // Pointer to distinguish between unset and false
}

// ColorEnabled returns true unless color output is explicitly disabled
func (o *OutputConfig) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// DocConfig represents markdown scanning settings
type DocConfig struct {
	Patterns      []string `yaml:"patterns"`
	CodeBlockTags []string `yaml:"code_block_tags"`
}

// ExportConfig represents XLIFF export settings
type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
	Datatype  string `yaml:"datatype"`
}

// defaultConfigFiles are searched in order when no explicit path is given
var defaultConfigFiles = []string{"lingua.yaml", ".lingua.yaml"}

// LoadConfig loads the project configuration. An empty path searches the
// default file names in the current directory; a missing config file is not
// an error and yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	if path == "" {
		for _, candidate := range defaultConfigFiles {
			if fileExists(candidate) {
				path = candidate
				break
			}
		}
	}

	config := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	expandConfigEnvVars(config)
	applyConfigDefaults(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for values the CLI cannot work with
func (c *Config) Validate() error {
	if c.DefaultSource != "" && !IsLanguageSupported(LanguageCode(c.DefaultSource)) {
		return fmt.Errorf("%w: default_source %q is not a supported language", ErrConfigValidation, c.DefaultSource)
	}

	for _, target := range c.Targets {
		if !IsLanguageSupported(LanguageCode(target)) {
			return fmt.Errorf("%w: target %q is not a supported language", ErrConfigValidation, target)
		}
	}

	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: output format must be text or json, got %q", ErrConfigValidation, c.Output.Format)
	}

	return nil
}

// TargetLanguages returns the configured target codes, or every supported
// language when none are configured.
func (c *Config) TargetLanguages() []LanguageCode {
	if len(c.Targets) == 0 {
		return SupportedLanguages()
	}

	result := make([]LanguageCode, len(c.Targets))
	for i, target := range c.Targets {
		result[i] = LanguageCode(target)
	}

	return result
}

func applyConfigDefaults(config *Config) {
	if config.DefaultSource == "" {
		config.DefaultSource = string(LangEnglish)
	}

	if config.Output.Format == "" {
		config.Output.Format = "text"
	}

	if len(config.Doc.Patterns) == 0 {
		config.Doc.Patterns = []string{"./docs"}
	}

	if len(config.Doc.CodeBlockTags) == 0 {
		config.Doc.CodeBlockTags = []string{"hyperscript", "_hs"}
	}

	if config.Export.OutputDir == "" {
		config.Export.OutputDir = "./xliff"
	}

	if config.Export.Datatype == "" {
		config.Export.Datatype = "plaintext"
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	re1 := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re1.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		return os.Getenv(varName)
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		return os.Getenv(varName)
	})

	return s
}

// expandConfigEnvVars expands environment variables in path-like settings
func expandConfigEnvVars(config *Config) {
	for i, pattern := range config.Doc.Patterns {
		config.Doc.Patterns[i] = expandEnvVars(pattern)
	}

	config.Export.OutputDir = expandEnvVars(config.Export.OutputDir)
	config.DefaultSource = strings.TrimSpace(expandEnvVars(config.DefaultSource))
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
