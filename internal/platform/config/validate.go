package config

import (
	"errors"
	"fmt"
	"net/url"
)

// ConfigurationError reports a required setting that is missing or unusable.
// Load returns it (joined with any other validation failures) so the process
// fails at startup instead of inside a provisioning run.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s %s", e.Field, e.Reason)
}

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Provisioning.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	} else if s.RequestTimeout >= s.WriteTimeout {
		errs = append(errs, fmt.Errorf("server.request_timeout (%s) must be less than server.write_timeout (%s)",
			s.RequestTimeout, s.WriteTimeout))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, &ConfigurationError{Field: "client.base_url", Reason: "must not be empty"})
	} else if u, err := url.Parse(cl.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, &ConfigurationError{Field: "client.base_url", Reason: "must be an absolute URL"})
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

// validate only insists on the credential. Project, environment and source
// settings are optional and propagate as empty strings; the level is parsed
// leniently by the workflow.
func (p *ProvisioningConfig) validate() error {
	var errs []error

	if p.Token == "" {
		errs = append(errs, &ConfigurationError{Field: "provisioning.token", Reason: "must be set (RAILWAY_TOKEN)"})
	}
	if p.MaxParallelRuns < 1 {
		errs = append(errs, fmt.Errorf("provisioning.max_parallel_runs must be >= 1, got %d", p.MaxParallelRuns))
	}
	if p.MaxBatch < 1 {
		errs = append(errs, fmt.Errorf("provisioning.max_batch must be >= 1, got %d", p.MaxBatch))
	}

	return errors.Join(errs...)
}
