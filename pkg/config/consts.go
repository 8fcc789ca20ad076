package config

const EnvPrefix = "stocklight"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "STOCKLIGHT_APP_ENV"
	EnvPort     = "STOCKLIGHT_APP_PORT"
	EnvLogLevel = "STOCKLIGHT_LOG_LEVEL"
	EnvDBDSN    = "STOCKLIGHT_DB_DSN"
	EnvDBHost   = "STOCKLIGHT_DB_HOST"
	EnvDBUser   = "STOCKLIGHT_DB_USER"
	EnvDBName   = "STOCKLIGHT_DB_NAME"
	EnvRedisURL = "STOCKLIGHT_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
