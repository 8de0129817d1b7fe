package config

const EnvPrefix = "QAWAFEL"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvAppEnv     = "QAWAFEL_APP_ENV"
	EnvPort       = "QAWAFEL_APP_PORT"
	EnvPublicURL  = "QAWAFEL_PUBLIC_BASE_URL"
	EnvDBDSN      = "QAWAFEL_DB_DSN"
	EnvDBDriver   = "QAWAFEL_DB_DRIVER"
	EnvSQLitePath = "QAWAFEL_SQLITE_PATH"
	EnvDBHost     = "QAWAFEL_DB_HOST"
	EnvDBUser     = "QAWAFEL_DB_USER"
	EnvDBName     = "QAWAFEL_DB_NAME"
	EnvRedisURL   = "QAWAFEL_REDIS_URL"
	EnvJWTSecret  = "QAWAFEL_JWT_SECRET"
	EnvGeminiKey  = "QAWAFEL_GEMINI_API_KEY"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
