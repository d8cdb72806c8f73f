package middleware

import (
	"movi-ops-console/config"
	"movi-ops-console/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

func New(l log.Logger, rateLimitCfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(rateLimitCfg.PerMin),
	}
}
