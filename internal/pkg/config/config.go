package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Lifecycle LifecycleConfig
	Monitor   MonitorConfig
	Outbox    OutboxConfig
	AMQP      AMQPConfig
	Redis     RedisConfig
	Payment   PaymentConfig
}

type ServerConfig struct {
	Port           string `envconfig:"PORT" required:"true"`
	WorkersEnabled bool   `envconfig:"WORKERS_ENABLED" default:"true"`
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
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
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

// JWTConfig only validates tokens; issuing them belongs to the identity service.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type LifecycleConfig struct {
	MeetingMaxDuration time.Duration `envconfig:"MEETING_MAX_DURATION" default:"18m"`
	JoinEarlyWindow    time.Duration `envconfig:"JOIN_EARLY_WINDOW" default:"10m"`
	NoShowGrace        time.Duration `envconfig:"NO_SHOW_GRACE" default:"5m"`
	AcceptanceCutoff   time.Duration `envconfig:"ACCEPTANCE_CUTOFF" default:"0s"`
	PaymentTimeout     time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"1h"`
	MinLeadTime        time.Duration `envconfig:"MIN_LEAD_TIME" default:"30m"`
	MinDurationMinutes int           `envconfig:"MIN_DURATION_MINUTES" default:"15"`
	MaxDurationMinutes int           `envconfig:"MAX_DURATION_MINUTES" default:"240"`
}

type MonitorConfig struct {
	SweepInterval time.Duration `envconfig:"MONITOR_SWEEP_INTERVAL" default:"15s"`
	BatchSize     int32         `envconfig:"MONITOR_BATCH_SIZE" default:"100"`
}

type OutboxConfig struct {
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"2s"`
	BatchSize    int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts  int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
}

// AMQPConfig with an empty URL disables both the relay publisher and the payment consumer.
type AMQPConfig struct {
	URL               string `envconfig:"AMQP_URL"`
	Exchange          string `envconfig:"AMQP_EXCHANGE" default:"consultations"`
	PaymentQueue      string `envconfig:"AMQP_PAYMENT_QUEUE" default:"lifecycle.payment-signals"`
	PaymentRoutingKey string `envconfig:"AMQP_PAYMENT_ROUTING_KEY" default:"payment.status"`
	ConsumerPrefetch  int    `envconfig:"AMQP_CONSUMER_PREFETCH" default:"16"`
}

// RedisConfig with an empty Addr falls back to the no-op status cache.
type RedisConfig struct {
	Addr           string        `envconfig:"REDIS_ADDR"`
	Password       string        `envconfig:"REDIS_PASSWORD"`
	DB             int           `envconfig:"REDIS_DB" default:"0"`
	StatusCacheTTL time.Duration `envconfig:"STATUS_CACHE_TTL" default:"5s"`
}

type PaymentConfig struct {
	WebhookToken string `envconfig:"PAYMENT_WEBHOOK_TOKEN" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

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
			Port:           "8889", // Test port
			WorkersEnabled: false,
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
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Lifecycle: LifecycleConfig{
			MeetingMaxDuration: 18 * time.Minute,
			JoinEarlyWindow:    10 * time.Minute,
			NoShowGrace:        5 * time.Minute,
			PaymentTimeout:     time.Hour,
			MinLeadTime:        30 * time.Minute,
			MinDurationMinutes: 15,
			MaxDurationMinutes: 240,
		},
		Monitor: MonitorConfig{
			SweepInterval: time.Second,
			BatchSize:     100,
		},
		Outbox: OutboxConfig{
			PollInterval: time.Second,
			BatchSize:    50,
			MaxAttempts:  10,
		},
		Redis: RedisConfig{
			StatusCacheTTL: 5 * time.Second,
		},
		Payment: PaymentConfig{
			WebhookToken: "test-webhook-token",
		},
	}
}
