package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLogging()
	c.normalizeOutput()
	c.normalizePatch()
	return nil
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv(envLogFormat); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

func (c *Config) normalizeOutput() {
	if value, ok := os.LookupEnv(envOutputFormat); ok && strings.TrimSpace(value) != "" {
		c.Output.Format = value
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultFormat
	}
}

func (c *Config) normalizePatch() {
	c.Patch.KeyMarker = strings.TrimSpace(c.Patch.KeyMarker)
	if c.Patch.KeyMarker == "" {
		c.Patch.KeyMarker = defaultKeyMarker
	}
}
