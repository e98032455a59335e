// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keys are flat snake_case so env vars map one to one (PODIUM_DATA_DIR -> data_dir).
// - New() returns a Config populated with defaults; Load layers file and env on top.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn warning error"`

	// LogJSON switches log output to JSON lines.
	LogJSON bool `koanf:"log_json"`

	// LogColor colourises text output for interactive terminals.
	LogColor bool `koanf:"log_color"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr" validate:"required"`

	// ReadTimeoutSec, WriteTimeoutSec and ShutdownTimeoutSec bound the HTTP server.
	ReadTimeoutSec     int `koanf:"read_timeout_sec" validate:"gte=1"`
	WriteTimeoutSec    int `koanf:"write_timeout_sec" validate:"gte=1"`
	ShutdownTimeoutSec int `koanf:"shutdown_timeout_sec" validate:"gte=1"`

	// DataDir holds the CSV datasets.
	DataDir string `koanf:"data_dir" validate:"required"`

	// ReferenceYear is used to derive athlete ages from birth dates.
	ReferenceYear int `koanf:"reference_year" validate:"gte=1896"`

	// MaxScheduleRows caps the unfiltered schedule view.
	MaxScheduleRows int `koanf:"max_schedule_rows" validate:"gte=1"`

	// Geocoder settings. The geocoder also serves as the external geography
	// fallback for continent resolution.
	GeocoderEnabled    bool    `koanf:"geocoder_enabled"`
	GeocoderURL        string  `koanf:"geocoder_url" validate:"omitempty,url"`
	GeocoderUserAgent  string  `koanf:"geocoder_user_agent"`
	GeocoderTimeoutMS  int     `koanf:"geocoder_timeout_ms" validate:"gte=1"`
	GeocoderRatePerSec float64 `koanf:"geocoder_rate_per_sec" validate:"gte=0"`
	GeocoderCity       string  `koanf:"geocoder_city"`
	GeocoderCountry    string  `koanf:"geocoder_country"`

	// GeographySource picks the continent fallback for untabled countries:
	// "geocoder" reuses the geocoder, "offline" matches names against a
	// built-in country list and "none" skips the fallback.
	GeographySource string `koanf:"geography_source" validate:"oneof=geocoder offline none"`

	// VenueWorkers bounds concurrent venue lookups.
	VenueWorkers int `koanf:"venue_workers" validate:"gte=1,lte=64"`

	// VenueCacheTTLSec is the lifetime of externally resolved coordinates.
	VenueCacheTTLSec int `koanf:"venue_cache_ttl_sec" validate:"gte=1"`

	// BreakerMaxFailures consecutive failures open a provider breaker for BreakerOpenSec.
	BreakerMaxFailures int `koanf:"breaker_max_failures" validate:"gte=1"`
	BreakerOpenSec     int `koanf:"breaker_open_sec" validate:"gte=1"`

	// Athlete image search.
	ImagesEnabled     bool   `koanf:"images_enabled"`
	ImagesURL         string `koanf:"images_url" validate:"omitempty,url"`
	ImagesTimeoutMS   int    `koanf:"images_timeout_ms" validate:"gte=1"`
	ImagesCacheTTLSec int    `koanf:"images_cache_ttl_sec" validate:"gte=1"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		ReadTimeoutSec:     10,
		WriteTimeoutSec:    60,
		ShutdownTimeoutSec: 15,
		DataDir:            "data",
		ReferenceYear:      2025,
		MaxScheduleRows:    2000,
		GeocoderEnabled:    true,
		GeocoderURL:        "https://nominatim.openstreetmap.org",
		GeocoderUserAgent:  "podium/1.0",
		GeocoderTimeoutMS:  10_000,
		GeocoderRatePerSec: 1,
		GeocoderCity:       "Paris",
		GeocoderCountry:    "France",
		GeographySource:    "geocoder",
		VenueWorkers:       5,
		VenueCacheTTLSec:   86_400,
		BreakerMaxFailures: 5,
		BreakerOpenSec:     30,
		ImagesEnabled:      true,
		ImagesURL:          "https://www.google.com/search",
		ImagesTimeoutMS:    5_000,
		ImagesCacheTTLSec:  3_600,
	}
}

// GeocoderTimeout returns the per-attempt geocoder timeout.
func (c *Config) GeocoderTimeout() time.Duration {
	return time.Duration(c.GeocoderTimeoutMS) * time.Millisecond
}

// VenueCacheTTL returns the venue coordinate cache lifetime.
func (c *Config) VenueCacheTTL() time.Duration {
	return time.Duration(c.VenueCacheTTLSec) * time.Second
}

// BreakerOpen returns how long a tripped breaker stays open.
func (c *Config) BreakerOpen() time.Duration {
	return time.Duration(c.BreakerOpenSec) * time.Second
}

// ImagesTimeout returns the image search timeout.
func (c *Config) ImagesTimeout() time.Duration {
	return time.Duration(c.ImagesTimeoutMS) * time.Millisecond
}

// ImagesCacheTTL returns the image URL cache lifetime.
func (c *Config) ImagesCacheTTL() time.Duration {
	return time.Duration(c.ImagesCacheTTLSec) * time.Second
}
