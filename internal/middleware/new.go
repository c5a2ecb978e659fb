package middleware

import (
	"sppd-activity/pkg/log"
)

// Config holds the security settings of the API.
type Config struct {
	APIKey          string // empty disables key checks
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	apiKey  string
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		apiKey:  cfg.APIKey,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
