package config

const (
	defaultConfigPath = "~/.config/spotifyeq/config.toml"
	projectConfigName = "spotifyeq.toml"
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"
	defaultFormat     = "binary"
	defaultPrecision  = 3
	defaultKeyMarker  = "equalizer.values"
	maxPrecision      = 12
	envLogLevel       = "SPOTIFYEQ_LOG_LEVEL"
	envLogFormat      = "SPOTIFYEQ_LOG_FORMAT"
	envOutputFormat   = "SPOTIFYEQ_OUTPUT_FORMAT"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Format:    defaultFormat,
			Precision: defaultPrecision,
		},
		Patch: Patch{
			KeyMarker: defaultKeyMarker,
		},
	}
}
