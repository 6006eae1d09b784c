package module

import (
	"time"

	"roamly/internal/core/results"
	"roamly/internal/platform/config"
	browsesvc "roamly/internal/services/api/browse/service"
)

// Options controls browse session behavior and catalog client settings
type Options struct {
	SessionTTL time.Duration
	PageSize   int

	// Catalog client
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
}

// FromConfig reads SESSION_*/CATALOG_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	cc := cfg.Prefix("CATALOG_")
	return Options{
		SessionTTL: cfg.MayDuration("SESSION_TTL", browsesvc.DefaultSessionTTL),
		PageSize:   cfg.MayInt("PAGE_SIZE", results.DefaultPageSize),
		BaseURL:    cc.MayString("BASE_URL", ""),
		UserAgent:  cc.MayString("UA", "roamly-api"),
		Timeout:    cc.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries: cc.MayInt("MAX_RETRIES", 5),
		RetryBase:  cc.MayDuration("RETRY_BASE", 500*time.Millisecond),
	}
}
