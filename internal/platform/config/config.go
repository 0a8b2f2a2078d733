// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service and the admin CLI.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Database  DatabaseConfig  `koanf:"database"`
	Batch     BatchConfig     `koanf:"batch"`
	Events    EventsConfig    `koanf:"events"`
	Clients   ClientsConfig   `koanf:"clients"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// RequestTimeout is the per-request budget enforced by middleware. It
	// must leave room under WriteTimeout for the timeout response itself.
	// Zero disables it.
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig holds the SQLite store settings. DSN is passed to the
// modernc driver as-is, so pragmas may be given as _pragma query options.
type DatabaseConfig struct {
	DSN          string        `koanf:"dsn"`
	MaxOpenConns int           `koanf:"max_open_conns"`
	BusyTimeout  time.Duration `koanf:"busy_timeout"`
}

// BatchConfig bounds how account-action batches run.
type BatchConfig struct {
	// MaxWorkers caps concurrently running actions in one batch. Zero or
	// negative runs every action at once.
	MaxWorkers int `koanf:"max_workers"`
	// Timeout is the deadline handed to actions in a batch. Zero disables it.
	Timeout time.Duration `koanf:"timeout"`
	// AuditTimeout bounds the audit write, which outlives the caller's
	// cancellation.
	AuditTimeout time.Duration `koanf:"audit_timeout"`
}

// EventsConfig holds audit event publication settings.
type EventsConfig struct {
	Kafka KafkaConfig `koanf:"kafka"`
}

// KafkaConfig configures the audit event writer.
type KafkaConfig struct {
	Enabled      bool          `koanf:"enabled"`
	Brokers      []string      `koanf:"brokers"`
	Topic        string        `koanf:"topic"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// ClientsConfig holds one client block per downstream system.
type ClientsConfig struct {
	CRM       ClientConfig `koanf:"crm"`
	Rewards   ClientConfig `koanf:"rewards"`
	Marketing ClientConfig `koanf:"marketing"`
	Banking   ClientConfig `koanf:"banking"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side token bucket settings. A zero rate
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
