package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTranscript(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTranscript() error {
	switch c.Transcript.Prefer {
	case "ai", "native":
		return nil
	default:
		return fmt.Errorf("transcript.prefer must be %q or %q, got %q", "ai", "native", c.Transcript.Prefer)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be %q or %q, got %q", "console", "json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
}
