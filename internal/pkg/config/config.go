package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	Redis  RedisConfig
	Jobs   JobsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Calendar dates ("today") are evaluated in this zone
	TimeZone string `envconfig:"SERVER_TIMEZONE" default:"UTC"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret              string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type RedisConfig struct {
	Addr           string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password       string        `envconfig:"REDIS_PASSWORD" default:""`
	DB             int           `envconfig:"REDIS_DB" default:"0"`
	ReadTimeout    time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout   time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
}

type JobsConfig struct {
	Enabled bool `envconfig:"JOBS_ENABLED" default:"true"`
	// cron spec with seconds field
	CompleteReservationsSpec string `envconfig:"JOBS_COMPLETE_RESERVATIONS_SPEC" default:"0 5 0 * * *"`
}

// ClientConfig configures the API client used by the reservation form engine.
type ClientConfig struct {
	BaseURL           string        `envconfig:"API_URL" default:"http://localhost:8080"`
	Token             string        `envconfig:"TOKEN" default:""`
	RequestsPerSecond float64       `envconfig:"RATE_LIMIT" default:"5"`
	Burst             int           `envconfig:"RATE_BURST" default:"5"`
	Timeout           time.Duration `envconfig:"TIMEOUT" default:"10s"`
	// must match the server's SERVER_TIMEZONE so both agree on "today"
	TimeZone string `envconfig:"TIMEZONE" default:"UTC"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c ServerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the DB_* variables, for tools that never serve HTTP.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	return cfg, nil
}

// LoadClientConfig reads TOOLSHARE_* variables.
func (c ClientConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadClientConfig() (ClientConfig, error) {
	var cfg ClientConfig
	if err := envconfig.Process("toolshare", &cfg); err != nil {
		return ClientConfig{}, fmt.Errorf("failed to process client env config: %w", err)
	}
	if _, err := time.LoadLocation(cfg.TimeZone); err != nil {
		return ClientConfig{}, fmt.Errorf("invalid TOOLSHARE_TIMEZONE %q: %w", cfg.TimeZone, err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:     "8889", // Test port
			TimeZone: "UTC",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:              "test-secret-key-for-toolshare",
			AccessTokenDuration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Redis: RedisConfig{
			Addr:           "localhost:16379",
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
			IdempotencyTTL: time.Hour,
		},
		Jobs: JobsConfig{
			Enabled:                  false,
			CompleteReservationsSpec: "0 5 0 * * *",
		},
	}
}
