package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Типы хранилища
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса.
// Значения читаются из TOML, затем переопределяются переменными окружения
// (в том числе из .env, если файл есть).
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Storage   StorageConfig   `toml:"storage"`
	Database  DatabaseConfig  `toml:"database"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Cache     CacheConfig     `toml:"cache"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Events    EventsConfig    `toml:"events"`
	Tracing   TracingConfig   `toml:"tracing"`
	Seed      SeedConfig      `toml:"seed"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" env:"LOG_LEVEL"`
	File  string `toml:"file" env:"LOG_FILE"`
}

// StorageConfig выбор хранилища: memory или postgres
type StorageConfig struct {
	Type string `toml:"type" env:"STORAGE_TYPE"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path" env:"METRICS_PATH"`
	ServiceName string `toml:"service_name" env:"METRICS_SERVICE_NAME"`
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	// CancelledReleasesSlot если false, отмененная запись продолжает занимать слот
	CancelledReleasesSlot bool `toml:"cancelled_releases_slot" env:"BOOKING_CANCELLED_RELEASES_SLOT"`
}

// CacheConfig настройки LRU-кэша доступных слотов
type CacheConfig struct {
	Enabled   bool `toml:"enabled" env:"CACHE_ENABLED"`
	SlotsSize int  `toml:"slots_size" env:"CACHE_SLOTS_SIZE"`
}

// RateLimitConfig ограничение частоты создания записей (Redis, фиксированное окно)
type RateLimitConfig struct {
	Enabled       bool   `toml:"enabled" env:"RATE_LIMIT_ENABLED"`
	RedisAddr     string `toml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `toml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `toml:"redis_db" env:"REDIS_DB"`
	Limit         int    `toml:"limit" env:"RATE_LIMIT_LIMIT"`
	WindowSeconds int    `toml:"window_seconds" env:"RATE_LIMIT_WINDOW_SECONDS"`
	FailOpen      bool   `toml:"fail_open" env:"RATE_LIMIT_FAIL_OPEN"`
}

// EventsConfig публикация событий записей в Kafka
type EventsConfig struct {
	Enabled bool   `toml:"enabled" env:"EVENTS_ENABLED"`
	Brokers string `toml:"brokers" env:"KAFKA_BROKERS"` // через запятую
	Topic   string `toml:"topic" env:"EVENTS_TOPIC"`
}

// TracingConfig настройки OpenTelemetry
type TracingConfig struct {
	Enabled      bool    `toml:"enabled" env:"OTEL_ENABLED"`
	OTLPEndpoint string  `toml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SampleRatio  float64 `toml:"sample_ratio" env:"OTEL_SAMPLING_RATIO"`
}

// SeedConfig заполнение хранилища в памяти демонстрационными данными
type SeedConfig struct {
	Enabled bool `toml:"enabled" env:"SEED_ENABLED"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Type: StorageMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			DBName:          "appointments",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc_appointment_service",
		},
		Booking: BookingConfig{
			CancelledReleasesSlot: false,
		},
		Cache: CacheConfig{
			Enabled:   true,
			SlotsSize: 1000,
		},
		RateLimit: RateLimitConfig{
			Enabled:       false,
			RedisAddr:     "localhost:6379",
			Limit:         30,
			WindowSeconds: 60,
			FailOpen:      true,
		},
		Events: EventsConfig{
			Enabled: false,
			Brokers: "localhost:9092",
			Topic:   "appointments",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			OTLPEndpoint: "localhost:4317",
			SampleRatio:  1,
		},
		Seed: SeedConfig{
			Enabled: true,
		},
	}
}

// Load читает конфигурацию из TOML файла, затем применяет .env и переменные окружения.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	// .env опционален
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Storage.Type = strings.ToLower(strings.TrimSpace(cfg.Storage.Type))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет диапазоны значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Type {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("%w: storage.type must be %q or %q, got %q",
			ErrInvalidConfig, StorageMemory, StoragePostgres, c.Storage.Type)
	}

	if c.Storage.Type == StoragePostgres {
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres storage", ErrInvalidConfig)
		}
		if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
			return fmt.Errorf("%w: database pool sizes must not be negative", ErrInvalidConfig)
		}
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with '/'", ErrInvalidConfig)
	}

	if c.Cache.Enabled && c.Cache.SlotsSize <= 0 {
		return fmt.Errorf("%w: cache.slots_size must be positive", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.Limit <= 0 || c.RateLimit.WindowSeconds <= 0) {
		return fmt.Errorf("%w: rate_limit.limit and rate_limit.window_seconds must be positive", ErrInvalidConfig)
	}

	if c.Events.Enabled && (strings.TrimSpace(c.Events.Brokers) == "" || c.Events.Topic == "") {
		return fmt.Errorf("%w: events.brokers and events.topic are required", ErrInvalidConfig)
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("%w: tracing.sample_ratio must be in 0..1", ErrInvalidConfig)
	}

	return nil
}
