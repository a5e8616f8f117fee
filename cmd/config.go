package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment. A .env file in the working directory is
// loaded first when present; variables already set in the environment win.
type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"fueltrack"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	JWTSecret          string        `env:"JWT_SECRET,required"`
	JWTIssuer          string        `env:"JWT_ISSUER" envDefault:"fueltrack"`
	JWTAudience        string        `env:"JWT_AUDIENCE" envDefault:"fueltrack-api"`
	JWTAccessTokenTTL  time.Duration `env:"JWT_ACCESS_TOKEN_TTL" envDefault:"15m"`
	JWTRefreshTokenTTL time.Duration `env:"JWT_REFRESH_TOKEN_TTL" envDefault:"168h"`
	BcryptCost         int           `env:"BCRYPT_COST" envDefault:"12"`

	// CardEncryptionKey is a base64 encoded 32-byte AES key.
	CardEncryptionKey string `env:"CARD_ENCRYPTION_KEY,required"`

	RabbitMQURL      string `env:"RABBITMQ_URL"`
	RabbitMQExchange string `env:"RABBITMQ_EXCHANGE" envDefault:"fueltrack.notifications"`

	PaymentTTL            time.Duration `env:"PAYMENT_TTL" envDefault:"30m"`
	PaymentExpiryBatch    int           `env:"PAYMENT_EXPIRY_BATCH" envDefault:"100"`
	PaymentExpirySchedule string        `env:"PAYMENT_EXPIRY_SCHEDULE" envDefault:"0 */5 * * * *"`
	LicenseExpirySchedule string        `env:"LICENSE_EXPIRY_SCHEDULE" envDefault:"0 0 * * * *"`
	JobRunTimeout         time.Duration `env:"JOB_RUN_TIMEOUT" envDefault:"1m"`
	SeedAdminEmail        string        `env:"SEED_ADMIN_EMAIL" envDefault:"admin@fueltrack.local"`
	SeedAdminPassword     string        `env:"SEED_ADMIN_PASSWORD"`
	SeedDemoData          bool          `env:"SEED_DEMO_DATA" envDefault:"false"`
}

// LoadConfig reads envFile (when it exists) and then the process environment.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.PaymentTTL <= 0 {
		return Config{}, fmt.Errorf("PAYMENT_TTL must be positive, got %s", cfg.PaymentTTL)
	}
	if cfg.PaymentExpiryBatch <= 0 {
		return Config{}, fmt.Errorf("PAYMENT_EXPIRY_BATCH must be positive, got %d", cfg.PaymentExpiryBatch)
	}
	return cfg, nil
}

// DSN builds the PostgreSQL connection URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// HTTPAddr is the listen address of the API server.
func (c Config) HTTPAddr() string {
	return "0.0.0.0:" + c.HTTPPort
}
