package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable except the downloader override
const EnvPrefix = "YTGUI"

// Default values
const (
	DefaultBinary     = "yt-dlp"
	DefaultOutputDir  = "./"
	DefaultLanguage   = "en"
	DefaultLineBuffer = 100
)

// Config holds the startup configuration. It is read from the environment
// once and never written back.
type Config struct {
	// Binary falls back to the unprefixed YTDLP_BINARY variable
	Binary     string `envconfig:"YTDLP_BINARY" default:"yt-dlp"`
	OutputDir  string `envconfig:"OUTPUT_DIR"   default:"./"`
	Language   string `envconfig:"UI_LANG"      default:"en"`
	LineBuffer int    `envconfig:"LINE_BUFFER"  default:"100"`
}

// Load reads the configuration from the environment and validates it
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	if c.Binary == "" {
		return fmt.Errorf("missing required configuration: binary / YTDLP_BINARY")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("missing required configuration: outputDir / %s_OUTPUT_DIR", EnvPrefix)
	}
	if c.LineBuffer < 1 {
		return fmt.Errorf("invalid configuration: lineBuffer / %s_LINE_BUFFER must be at least 1, got %d", EnvPrefix, c.LineBuffer)
	}
	return nil
}

// GetLanguageOptions returns the supported UI languages
func GetLanguageOptions() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}
