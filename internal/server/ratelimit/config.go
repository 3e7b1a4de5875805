package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/config"
)

// Environment variables read by LoadConfig.
const (
	EnvEnabled         = "RESUME_MATCHER_RATE_LIMIT_ENABLED"
	EnvDefaultLimit    = "RESUME_MATCHER_RATE_LIMIT_DEFAULT_LIMIT"
	EnvDefaultWindow   = "RESUME_MATCHER_RATE_LIMIT_DEFAULT_WINDOW"
	EnvAnalyzeLimit    = "RESUME_MATCHER_RATE_LIMIT_ANALYZE_LIMIT"
	EnvBatchLimit      = "RESUME_MATCHER_RATE_LIMIT_BATCH_LIMIT"
	EnvCleanupInterval = "RESUME_MATCHER_RATE_LIMIT_CLEANUP_INTERVAL"
	EnvIdleTimeout     = "RESUME_MATCHER_RATE_LIMIT_IDLE_TIMEOUT"
	EnvWhitelist       = "RESUME_MATCHER_RATE_LIMIT_WHITELIST"
	EnvBlacklist       = "RESUME_MATCHER_RATE_LIMIT_BLACKLIST"
)

// Defaults applied when the environment says nothing.
const (
	DefaultLimit           = 600
	DefaultWindow          = time.Minute
	DefaultAnalyzeLimit    = 60
	DefaultBatchLimit      = 10
	DefaultCleanupInterval = 5 * time.Minute
	DefaultIdleTimeout     = time.Hour
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTimeout     time.Duration // buckets unused for this long are dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !config.GetEnvBool(EnvEnabled, true) {
		return &Config{Enabled: false}
	}

	analyzeLimit := config.GetEnvInt(EnvAnalyzeLimit, DefaultAnalyzeLimit)
	batchLimit := config.GetEnvInt(EnvBatchLimit, DefaultBatchLimit)

	return &Config{
		Enabled:         true,
		DefaultLimit:    config.GetEnvInt(EnvDefaultLimit, DefaultLimit),
		DefaultWindow:   config.GetEnvDuration(EnvDefaultWindow, DefaultWindow),
		CleanupInterval: config.GetEnvDuration(EnvCleanupInterval, DefaultCleanupInterval),
		IdleTimeout:     config.GetEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		Whitelist:       parseIPList(config.GetEnvString(EnvWhitelist, "")),
		Blacklist:       parseIPList(config.GetEnvString(EnvBlacklist, "")),
		EndpointConfigs: EndpointConfigs(analyzeLimit, batchLimit),
	}
}

// DefaultEndpointConfigs returns the endpoint table with the default limits.
func DefaultEndpointConfigs() []EndpointConfig {
	return EndpointConfigs(DefaultAnalyzeLimit, DefaultBatchLimit)
}

// EndpointConfigs returns the endpoint table for the given per-minute limits
// on single and batch analysis. Batch requests cost up to fifty analyses, so
// they get the smaller burst.
func EndpointConfigs(analyzeLimit, batchLimit int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/analyze/batch", Method: http.MethodPost, Limit: batchLimit, Window: time.Minute, Burst: max(1, batchLimit/5)},
		{Path: "/analyze", Method: http.MethodPost, Limit: analyzeLimit, Window: time.Minute, Burst: max(1, analyzeLimit/6)},
	}
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	if list == "" {
		return result
	}

	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}

	return result
}
