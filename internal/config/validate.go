package config

import (
	"fmt"

	"spotifyeq/internal/eq"
	"spotifyeq/internal/plistdoc"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validatePresets(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (valid: console, json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (valid: debug, info, warn, error)", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if _, err := plistdoc.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("output.precision must be between 0 and %d", maxPrecision)
	}
	return nil
}

func (c *Config) validatePresets() error {
	if len(c.Presets) == 0 {
		return nil
	}
	if _, err := eq.NewTable(c.Presets); err != nil {
		return fmt.Errorf("presets: %w", err)
	}
	return nil
}
