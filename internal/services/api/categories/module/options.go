package module

import (
	"time"

	"roamly/internal/platform/config"
)

// Options controls geo resolver and catalog client settings
type Options struct {
	// Geolocation
	GeoBaseURL string
	GeoUA      string
	GeoTimeout time.Duration

	// Catalog client
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
}

// FromConfig reads GEO_*/CATALOG_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	gc := cfg.Prefix("GEO_")
	cc := cfg.Prefix("CATALOG_")
	return Options{
		GeoBaseURL: gc.MayString("BASE_URL", ""),
		GeoUA:      gc.MayString("UA", "roamly-api"),
		GeoTimeout: gc.MayDuration("TIMEOUT", 5*time.Second),
		BaseURL:    cc.MayString("BASE_URL", ""),
		UserAgent:  cc.MayString("UA", "roamly-api"),
		Timeout:    cc.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries: cc.MayInt("MAX_RETRIES", 5),
		RetryBase:  cc.MayDuration("RETRY_BASE", 500*time.Millisecond),
	}
}
