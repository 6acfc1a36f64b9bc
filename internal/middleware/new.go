package middleware

import (
	"meeting-minutes/config"
	"meeting-minutes/pkg/log"
)

type Middleware struct {
	l       log.Logger
	cors    config.CORSConfig
	limiter *rateLimiter
}

func New(l log.Logger, cors config.CORSConfig, upload config.UploadConfig) Middleware {
	return Middleware{
		l:       l,
		cors:    cors,
		limiter: newRateLimiter(upload.RateLimitPerMin),
	}
}
