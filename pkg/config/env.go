package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvBookingLimit = "BOOKING_LIMIT"

	EnvAdminEmail        = "ADMIN_EMAIL"
	EnvAdminPassword     = "ADMIN_PASSWORD"
	EnvAdminPasswordHash = "ADMIN_PASSWORD_HASH"

	EnvSessionKey = "SESSION_KEY"
	EnvSessionTTL = "SESSION_TTL"

	EnvKafkaBrokers = "KAFKA_BROKERS"
)
