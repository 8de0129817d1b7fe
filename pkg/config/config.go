package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App             AppConfig
	DB              DBConfig
	Redis           RedisConfig
	JWT             JWTConfig
	IntakeRateLimit IntakeRateLimitConfig
	FeatureFlags    FeatureFlagsConfig
	Gemini          GeminiConfig
	Client          ClientConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env           string        `envconfig:"QAWAFEL_APP_ENV" default:"dev"`
	Port          string        `envconfig:"QAWAFEL_APP_PORT" default:"8080"`
	LogLevel      string        `envconfig:"QAWAFEL_LOG_LEVEL" default:"info"`
	LogWarnStack  bool          `envconfig:"QAWAFEL_LOG_WARN_STACK" default:"false"`
	PublicBaseURL string        `envconfig:"QAWAFEL_PUBLIC_BASE_URL" default:"http://localhost:3000"`
	CORSOrigins   []string      `envconfig:"QAWAFEL_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	ReadTimeout   time.Duration `envconfig:"QAWAFEL_HTTP_READ_TIMEOUT" default:"15s"`
	WriteTimeout  time.Duration `envconfig:"QAWAFEL_HTTP_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout   time.Duration `envconfig:"QAWAFEL_HTTP_IDLE_TIMEOUT" default:"60s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN        string `envconfig:"QAWAFEL_DB_DSN"`
	Driver     string `envconfig:"QAWAFEL_DB_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"QAWAFEL_SQLITE_PATH" default:"qawafel_crm.db"`

	LegacyHost     string `envconfig:"QAWAFEL_DB_HOST"`
	LegacyPort     int    `envconfig:"QAWAFEL_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"QAWAFEL_DB_USER"`
	LegacyPassword string `envconfig:"QAWAFEL_DB_PASSWORD"`
	LegacyName     string `envconfig:"QAWAFEL_DB_NAME"`
	LegacySSLMode  string `envconfig:"QAWAFEL_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"QAWAFEL_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"QAWAFEL_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"QAWAFEL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"QAWAFEL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the embedded file store is selected.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(db.Driver), DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"QAWAFEL_REDIS_URL"`
	Address      string        `envconfig:"QAWAFEL_REDIS_ADDR"`
	Password     string        `envconfig:"QAWAFEL_REDIS_PASSWORD"`
	DB           int           `envconfig:"QAWAFEL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"QAWAFEL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"QAWAFEL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"QAWAFEL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"QAWAFEL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"QAWAFEL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"QAWAFEL_JWT_SECRET"`
	Issuer            string `envconfig:"QAWAFEL_JWT_ISSUER" default:"qawafel-crm"`
	ExpirationMinutes int    `envconfig:"QAWAFEL_JWT_EXPIRATION_MINUTES" default:"720"`
}

// Enabled reports whether operator authentication is switched on.
func (j JWTConfig) Enabled() bool {
	return strings.TrimSpace(j.Secret) != ""
}

type IntakeRateLimitConfig struct {
	Window     time.Duration `envconfig:"QAWAFEL_INTAKE_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit    int           `envconfig:"QAWAFEL_INTAKE_RATE_LIMIT_IP_LIMIT" default:"30"`
	TokenLimit int           `envconfig:"QAWAFEL_INTAKE_RATE_LIMIT_TOKEN_LIMIT" default:"10"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"QAWAFEL_AUTO_MIGRATE" default:"true"`
}

type GeminiConfig struct {
	APIKey string `envconfig:"QAWAFEL_GEMINI_API_KEY"`
	Model  string `envconfig:"QAWAFEL_GEMINI_MODEL" default:"gemini-2.5-flash"`
}

type ClientConfig struct {
	BaseURL string        `envconfig:"QAWAFEL_API_BASE_URL" default:"http://localhost:8080"`
	Token   string        `envconfig:"QAWAFEL_API_TOKEN"`
	Timeout time.Duration `envconfig:"QAWAFEL_API_TIMEOUT" default:"30s"`
}

func (db *DBConfig) ensureDSN() error {
	if db.IsSQLite() {
		if strings.TrimSpace(db.SQLitePath) == "" {
			return fmt.Errorf("%s is required when %s=%s", EnvSQLitePath, EnvDBDriver, DriverSQLite)
		}
		return nil
	}
	if !strings.EqualFold(strings.TrimSpace(db.Driver), DriverPostgres) {
		return fmt.Errorf("unsupported %s %q (expected %s or %s)", EnvDBDriver, db.Driver, DriverPostgres, DriverSQLite)
	}
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
