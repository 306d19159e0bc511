// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> .env ->
// APP_ env vars -> platform env vars.
package config

import "time"

// Config holds all configuration for the service. It is built once by Load
// and treated as read-only afterwards.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Log          LogConfig          `koanf:"log"`
	Client       ClientConfig       `koanf:"client"`
	Telemetry    TelemetryConfig    `koanf:"telemetry"`
	Provisioning ProvisioningConfig `koanf:"provisioning"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// RequestTimeout bounds one inbound request, including every backend
	// call of the provisioning runs it starts. Must be below WriteTimeout.
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the provisioning backend client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	UserAgent      string               `koanf:"user_agent"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
// Only requests marked idempotent are retried. MaxAttempts of 1 disables
// retries altogether.
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

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables limiting.
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

// ProvisioningConfig holds the values the provisioning workflow reads:
// the bearer credential, the target project and environment, the source
// repository and the current recursion level.
//
// Every string may be empty except Token. Level is kept as the raw string
// so that an unparseable value degrades to level 0 instead of failing Load.
type ProvisioningConfig struct {
	Token         string `koanf:"token"`
	ProjectID     string `koanf:"project_id"`
	EnvironmentID string `koanf:"environment_id"`
	RepoOwner     string `koanf:"repo_owner"`
	RepoName      string `koanf:"repo_name"`
	Branch        string `koanf:"branch"`
	Level         string `koanf:"level"`

	// Compensate deletes a created service when a later step fails.
	Compensate bool `koanf:"compensate"`

	MaxParallelRuns int `koanf:"max_parallel_runs"`
	MaxBatch        int `koanf:"max_batch"`
}
