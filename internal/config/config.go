package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих значения из файла
// Например: INTERPRETER_DATABASE_PASSWORD, INTERPRETER_REDIS_URL
const EnvPrefix = "INTERPRETER"

var (
	// ErrReadConfig возвращается при ошибке чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается при недопустимых значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Logs        LogsConfig        `toml:"logs" envconfig:"LOGS"`
	Server      ServerConfig      `toml:"server" envconfig:"SERVER"`
	Database    DatabaseConfig    `toml:"database" envconfig:"DATABASE"`
	Metrics     MetricsConfig     `toml:"metrics" envconfig:"METRICS"`
	UserService UserServiceConfig `toml:"user_service" envconfig:"USER_SERVICE"`
	Redis       RedisConfig       `toml:"redis" envconfig:"REDIS"`
	RabbitMQ    RabbitMQConfig    `toml:"rabbitmq" envconfig:"RABBITMQ"`
	Scheduler   SchedulerConfig   `toml:"scheduler" envconfig:"SCHEDULER"`
	Slots       SlotsConfig       `toml:"slots" envconfig:"SLOTS"`
	RateLimit   RateLimitConfig   `toml:"rate_limit" envconfig:"RATE_LIMIT"`
}

type LogsConfig struct {
	File  string `toml:"file" split_words:"true"`
	Level string `toml:"level" split_words:"true"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

type UserServiceConfig struct {
	URL     string `toml:"url" split_words:"true"`
	Timeout int    `toml:"timeout" split_words:"true"`
}

type RedisConfig struct {
	Enabled        bool   `toml:"enabled" split_words:"true"`
	URL            string `toml:"url" split_words:"true"`
	LockTTLSeconds int    `toml:"lock_ttl_seconds" split_words:"true"`
}

type RabbitMQConfig struct {
	Enabled  bool   `toml:"enabled" split_words:"true"`
	URL      string `toml:"url" split_words:"true"`
	Exchange string `toml:"exchange" split_words:"true"`
}

type SchedulerConfig struct {
	Enabled               bool  `toml:"enabled" split_words:"true"`
	DefaultIntervalMs     int64 `toml:"default_interval_ms" split_words:"true"`
	ParameterCacheSeconds int   `toml:"parameter_cache_seconds" split_words:"true"`
}

// DefaultInterval интервал запуска по умолчанию
func (s SchedulerConfig) DefaultInterval() time.Duration {
	return time.Duration(s.DefaultIntervalMs) * time.Millisecond
}

type SlotsConfig struct {
	DurationMinutes int `toml:"duration_minutes" split_words:"true"`
	StepMinutes     int `toml:"step_minutes" split_words:"true"`
	MaxRangeDays    int `toml:"max_range_days" split_words:"true"`
}

type RateLimitConfig struct {
	SearchRPS   float64 `toml:"search_rps" split_words:"true"`
	SearchBurst int     `toml:"search_burst" split_words:"true"`
}

// Load читает конфигурацию из TOML файла
// Перед чтением подгружает .env (если есть), после чтения применяет переменные окружения
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: load .env: %v", ErrReadConfig, err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrReadConfig, path, err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("%w: apply env overrides: %v", ErrReadConfig, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "interpreter_service"
	}
	if c.UserService.Timeout == 0 {
		c.UserService.Timeout = 5
	}
	if c.Redis.LockTTLSeconds == 0 {
		c.Redis.LockTTLSeconds = 60
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "interpreter.appointments"
	}
	if c.Scheduler.DefaultIntervalMs == 0 {
		c.Scheduler.DefaultIntervalMs = 1800000
	}
	if c.Scheduler.ParameterCacheSeconds == 0 {
		c.Scheduler.ParameterCacheSeconds = 60
	}
	if c.Slots.DurationMinutes == 0 {
		c.Slots.DurationMinutes = 60
	}
	if c.Slots.StepMinutes == 0 {
		c.Slots.StepMinutes = 30
	}
	if c.Slots.MaxRangeDays == 0 {
		c.Slots.MaxRangeDays = 31
	}
	if c.RateLimit.SearchRPS == 0 {
		c.RateLimit.SearchRPS = 20
	}
	if c.RateLimit.SearchBurst == 0 {
		c.RateLimit.SearchBurst = 40
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Redis.Enabled && c.Redis.URL == "" {
		return fmt.Errorf("%w: redis.url is required when redis is enabled", ErrInvalidConfig)
	}
	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		return fmt.Errorf("%w: rabbitmq.url is required when rabbitmq is enabled", ErrInvalidConfig)
	}
	if c.Scheduler.DefaultIntervalMs < 0 {
		return fmt.Errorf("%w: scheduler.default_interval_ms must be positive", ErrInvalidConfig)
	}
	if c.Slots.DurationMinutes < 0 || c.Slots.StepMinutes < 0 {
		return fmt.Errorf("%w: slots duration and step must be positive", ErrInvalidConfig)
	}
	return nil
}
