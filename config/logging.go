package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoggingConfig defines settings for the zerolog-backed logger.
type LoggingConfig struct {
	// Level is one of zerolog's named levels: trace, debug, info, warn,
	// error, fatal, panic.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks that the level is known to zerolog.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unknown log level %s", c.Level)
	}
	return nil
}

// ZerologLevel returns the parsed level. Validate must have passed.
func (c LoggingConfig) ZerologLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
