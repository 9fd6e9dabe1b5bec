package config

import "time"

const (
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBUser     = "safaris"
	DefaultDBPassword = ""
	DefaultDBName     = "safaris"
	DefaultDBSSLMode  = "disable"

	DefaultPort = "8080"

	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour

	DefaultUploadDir     = "uploads"
	DefaultUploadBaseURL = "/uploads"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 8 * 1024 * 1024 // car image uploads

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultLogLevel = "info"
)
