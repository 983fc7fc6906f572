package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Env      string         `json:"env"`
	Storage  string         `json:"storage"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	APIKey   string         `json:"api_key,omitempty"`
	Auth     AuthConfig     `json:"auth"`
	Webhook  WebhookConfig  `json:"webhook"`
	MQTT     MQTTConfig     `json:"mqtt"`
	Duty     DutyConfig     `json:"duty"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`
	Migrate  bool   `json:"migrate"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr         string        `json:"addr"`
	Password     string        `json:"password,omitempty"`
	DB           int           `json:"db"`
	AlertStream  string        `json:"alert_stream"`
	StreamMaxLen int64         `json:"stream_max_len"`
	ZoneCacheTTL time.Duration `json:"zone_cache_ttl"`
}

type AuthConfig struct {
	JWTSecret string `json:"-"`
	Issuer    string `json:"issuer"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

type MQTTConfig struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
	Workers  int    `json:"workers"`
}

// DutyConfig holds the timings of the duty engine.
type DutyConfig struct {
	TimeZone          string         `json:"time_zone"`
	Location          *time.Location `json:"-"`
	WarningAfter      time.Duration  `json:"warning_after"`
	EscalateAfter     time.Duration  `json:"escalate_after"`
	HeartbeatInterval time.Duration  `json:"heartbeat_interval"`
	HoldDuration      time.Duration  `json:"hold_duration"`
	HoldSampleEvery   time.Duration  `json:"hold_sample_every"`
	PositionMaxAge    time.Duration  `json:"position_max_age"`
	AlertTimeout      time.Duration  `json:"alert_timeout"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env:     getEnv("ENV", "local"),
		Storage: getEnv("STORAGE_DRIVER", StoragePostgres),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 0),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "guard_duty"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			Migrate:         getEnvBool("POSTGRES_MIGRATE", true),
			MaxConns:        int32(getEnvInt("POSTGRES_MAX_CONNS", 20)),
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:         getEnv("REDIS_ADDR", "redis-local:6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvInt("REDIS_DB", 0),
			AlertStream:  getEnv("REDIS_ALERT_STREAM", "alerts:events"),
			StreamMaxLen: int64(getEnvInt("REDIS_STREAM_MAX_LEN", 10000)),
			ZoneCacheTTL: getEnvDuration("REDIS_ZONE_CACHE_TTL", 5*time.Minute),
		},
		APIKey: getEnv("API_KEY", ""),
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Issuer:    getEnv("JWT_ISSUER", "guard-duty"),
		},
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", false),
		},
		MQTT: MQTTConfig{
			Enabled:  getEnvBool("MQTT_ENABLED", false),
			Broker:   getEnv("MQTT_BROKER", "tcp://mqtt-local:1883"),
			ClientID: getEnv("MQTT_CLIENT_ID", "guard-duty"),
			Username: getEnv("MQTT_USERNAME", ""),
			Password: getEnv("MQTT_PASSWORD", ""),
			Topic:    getEnv("MQTT_POSITION_TOPIC", "guards/+/position"),
			QoS:      byte(getEnvInt("MQTT_QOS", 1)),
			Workers:  getEnvInt("MQTT_WORKERS", 4),
		},
		Duty: DutyConfig{
			TimeZone:          getEnv("FACILITY_TZ", "UTC"),
			WarningAfter:      getEnvDuration("DUTY_WARNING_AFTER", 2*time.Minute),
			EscalateAfter:     getEnvDuration("DUTY_ESCALATE_AFTER", 5*time.Minute),
			HeartbeatInterval: getEnvDuration("DUTY_HEARTBEAT_INTERVAL", 5*time.Minute),
			HoldDuration:      getEnvDuration("DUTY_HOLD_DURATION", 3*time.Second),
			HoldSampleEvery:   getEnvDuration("DUTY_HOLD_SAMPLE_EVERY", 50*time.Millisecond),
			PositionMaxAge:    getEnvDuration("DUTY_POSITION_MAX_AGE", 2*time.Minute),
			AlertTimeout:      getEnvDuration("DUTY_ALERT_TIMEOUT", 10*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Bool("mqtt_enabled", cfg.MQTT.Enabled),
		slog.String("facility_tz", cfg.Duty.TimeZone))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	switch c.Storage {
	case StoragePostgres:
		if c.Postgres.Host == "" {
			return errors.New("POSTGRES_HOST required")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q", StoragePostgres, StorageMemory)
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET required")
	}
	if c.APIKey == "" {
		return errors.New("API_KEY required")
	}

	loc, err := time.LoadLocation(c.Duty.TimeZone)
	if err != nil {
		return fmt.Errorf("FACILITY_TZ: %w", err)
	}
	c.Duty.Location = loc

	if c.Duty.WarningAfter <= 0 || c.Duty.EscalateAfter <= c.Duty.WarningAfter {
		return errors.New("DUTY_ESCALATE_AFTER must be greater than DUTY_WARNING_AFTER > 0")
	}
	if c.Duty.HeartbeatInterval <= 0 || c.Duty.HoldDuration <= 0 || c.Duty.HoldSampleEvery <= 0 {
		return errors.New("duty intervals must be positive")
	}

	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return errors.New("MQTT_BROKER required when MQTT_ENABLED=true")
	}

	if c.Webhook.Disabled || c.Webhook.URL == "" {
		slog.Warn("Webhooks DISABLED", slog.Bool("WEBHOOK_DISABLED", c.Webhook.Disabled))
		c.Webhook.Disabled = true
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
