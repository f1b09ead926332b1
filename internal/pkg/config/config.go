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
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Webhook  WebhookConfig
	Provider ProviderConfig
	Notifier NotifierConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Jakarta"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,x-callback-token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Jakarta"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// WebhookConfig holds the shared secret the payment gateway sends in the
// x-callback-token header. Deliveries carrying any other value are rejected
// before the body is parsed.
type WebhookConfig struct {
	CallbackToken string `envconfig:"WEBHOOK_CALLBACK_TOKEN" required:"true"`
}

// ProviderConfig points at the meeting-provisioning API. TokenTTL is the
// lifetime applied to cached bearer credentials, not a value returned by
// the provider.
type ProviderConfig struct {
	BaseURL  string        `envconfig:"PROVIDER_BASE_URL" required:"true"`
	Email    string        `envconfig:"PROVIDER_EMAIL" default:""`
	Password string        `envconfig:"PROVIDER_PASSWORD" default:""`
	TokenTTL time.Duration `envconfig:"PROVIDER_TOKEN_TTL" default:"168h"`
	Timeout  time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"15s"`
}

type NotifierConfig struct {
	AccountingURL string        `envconfig:"NOTIFIER_ACCOUNTING_URL" default:""`
	Timeout       time.Duration `envconfig:"NOTIFIER_TIMEOUT" default:"10s"`
}

type AdminConfig struct {
	Email        string `envconfig:"ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Jakarta",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Jakarta",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Webhook: WebhookConfig{
			CallbackToken: "test-callback-token",
		},
		Provider: ProviderConfig{
			BaseURL:  "http://localhost:18089",
			Email:    "svc@example.com",
			Password: "svc-password",
			TokenTTL: 168 * time.Hour,
			Timeout:  5 * time.Second,
		},
		Notifier: NotifierConfig{
			AccountingURL: "", // disabled in tests
			Timeout:       5 * time.Second,
		},
		Admin: AdminConfig{
			Email: "ops@example.com",
			// bcrypt hash of "password123"
			PasswordHash: "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A.",
		},
	}
}
