package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "spalatorie"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultBookingLimit caps how many upcoming reservations one user may
	// hold at a time.
	DefaultBookingLimit = 4

	DefaultAdminEmail = "admin@spalatorie.com"
	// DefaultAdminPassword is only a development fallback; it is hashed at
	// startup and replaced in any real deployment via ADMIN_PASSWORD_HASH.
	DefaultAdminPassword = "p20spal"

	// DefaultSessionKey is a development-only AES key (base64, 32 bytes).
	// Deployments must set SESSION_KEY.
	DefaultSessionKey = "lfQVRuulcL2iOhOJ2r8BYTweoSKwVAJnIF9U+AL+M60="
	DefaultSessionTTL = 12 * time.Hour
)
