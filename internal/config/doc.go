// Package config loads, normalizes, and validates spotifyeq configuration.
//
// It supplies defaults, reads an optional TOML file, and applies environment
// overrides such as SPOTIFYEQ_LOG_LEVEL. Custom presets declared in the file
// are validated here so the CLI can fail before any plist is touched.
package config
