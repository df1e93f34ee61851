// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr" validate:"required"`

	// Source locates the ridership export: a local path or http(s) URL.
	Source string `koanf:"source" validate:"required"`

	// FetchTimeoutMS bounds the initial source fetch when Source is a URL.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms" validate:"gte=0"`

	// ErrorSampleSize caps how many row errors the load report keeps
	// verbatim for logging.
	ErrorSampleSize int `koanf:"error_sample_size" validate:"gte=0"`

	// HolidayRegion selects the holiday rule set. Only "US" is shipped.
	HolidayRegion string `koanf:"holiday_region" validate:"oneof=US"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9090",
		Source:          "daily-ridership.tsv",
		FetchTimeoutMS:  30_000,
		ErrorSampleSize: 10,
		HolidayRegion:   "US",
	}
}
