package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, queue sizes, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Stream     StreamConfig
	Dispatcher DispatcherConfig
	Routing    RoutingConfig
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
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// StreamConfig tunes the websocket gate and fan-out hub.
type StreamConfig struct {
	WriteTimeout   time.Duration `envconfig:"STREAM_WRITE_TIMEOUT" default:"10s"`
	PongTimeout    time.Duration `envconfig:"STREAM_PONG_TIMEOUT" default:"60s"`
	PingInterval   time.Duration `envconfig:"STREAM_PING_INTERVAL" default:"25s"`
	SendBufferSize int           `envconfig:"STREAM_SEND_BUFFER" default:"64"`
	MaxMessageSize int64         `envconfig:"STREAM_MAX_MESSAGE_SIZE" default:"4096"`
}

// DispatcherConfig tunes the notification work queue.
type DispatcherConfig struct {
	QueueSize    int           `envconfig:"DISPATCH_QUEUE_SIZE" default:"256"`
	MaxAttempts  int           `envconfig:"DISPATCH_MAX_ATTEMPTS" default:"3"`
	RetryBackoff time.Duration `envconfig:"DISPATCH_RETRY_BACKOFF" default:"2s"`
}

// RoutingConfig points at the external ETA provider. An empty API key
// disables the provider and the haversine fallback is used everywhere.
type RoutingConfig struct {
	BaseURL string        `envconfig:"ROUTING_BASE_URL" default:"https://graphhopper.com/api/1"`
	APIKey  string        `envconfig:"ROUTING_API_KEY" default:""`
	Timeout time.Duration `envconfig:"ROUTING_TIMEOUT" default:"5s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
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
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Stream: StreamConfig{
			WriteTimeout:   time.Second,
			PongTimeout:    5 * time.Second,
			PingInterval:   2 * time.Second,
			SendBufferSize: 8,
			MaxMessageSize: 4096,
		},
		Dispatcher: DispatcherConfig{
			QueueSize:    16,
			MaxAttempts:  3,
			RetryBackoff: time.Millisecond,
		},
		Routing: RoutingConfig{
			Timeout: time.Second,
		},
	}
}
