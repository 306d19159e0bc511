package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/replicator/internal/platform/config"
)

const testToken = "test-token"

// loadLocal loads the local profile from the repository configs with a token
// set and .env loading disabled.
func loadLocal(t *testing.T) *config.Config {
	t.Helper()
	t.Chdir("../../..")
	t.Setenv("RAILWAY_TOKEN", testToken)

	cfg, err := config.Load("local", config.WithDotEnv(""))
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}
	return cfg
}

func TestLoad_LocalProfile(t *testing.T) {
	cfg := loadLocal(t)

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("RAILWAY_TOKEN", testToken)

	cfg, err := config.Load("prod", config.WithDotEnv(""))
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if !cfg.Provisioning.Compensate {
		t.Error("Provisioning.Compensate = false, want true for prod")
	}
	if cfg.Client.RateLimit.RequestsPerSecond != 5 {
		t.Errorf("Client.RateLimit.RequestsPerSecond = %v, want 5", cfg.Client.RateLimit.RequestsPerSecond)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	cfg := loadLocal(t)

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.BaseURL != "https://backboard.railway.app/graphql/v2" {
		t.Errorf("Client.BaseURL = %q, want the backboard endpoint", cfg.Client.BaseURL)
	}
	if cfg.Provisioning.Level != "0" {
		t.Errorf("Provisioning.Level = %q, want \"0\" (from base)", cfg.Provisioning.Level)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")
	cfg := loadLocal(t)

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "5")
	cfg := loadLocal(t)

	if cfg.Client.Retry.MaxAttempts != 5 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 5 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_PlatformVariables(t *testing.T) {
	t.Setenv("RAILWAY_PROJECT_ID", "proj-1")
	t.Setenv("RAILWAY_ENVIRONMENT_ID", "env-1")
	t.Setenv("RAILWAY_GIT_REPO_OWNER", "octo")
	t.Setenv("RAILWAY_GIT_REPO_NAME", "replicator")
	t.Setenv("RAILWAY_GIT_BRANCH", "main")
	t.Setenv("LEVEL", "4")
	cfg := loadLocal(t)

	p := cfg.Provisioning
	if p.Token != testToken {
		t.Errorf("Token = %q, want %q", p.Token, testToken)
	}
	if p.ProjectID != "proj-1" || p.EnvironmentID != "env-1" {
		t.Errorf("ProjectID/EnvironmentID = %q/%q, want proj-1/env-1", p.ProjectID, p.EnvironmentID)
	}
	if p.RepoOwner != "octo" || p.RepoName != "replicator" || p.Branch != "main" {
		t.Errorf("source = %q/%q@%q, want octo/replicator@main", p.RepoOwner, p.RepoName, p.Branch)
	}
	if p.Level != "4" {
		t.Errorf("Level = %q, want \"4\"", p.Level)
	}
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "3000")
	cfg := loadLocal(t)

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout != 90*time.Second {
		t.Errorf("Server.RequestTimeout = %s, want 90s", cfg.Server.RequestTimeout)
	}
}

func TestLoad_PlatformVariableBeatsAppPrefix(t *testing.T) {
	t.Setenv("APP_PROVISIONING_LEVEL", "1")
	t.Setenv("LEVEL", "7")
	cfg := loadLocal(t)

	if cfg.Provisioning.Level != "7" {
		t.Errorf("Level = %q, want \"7\" (platform variable wins)", cfg.Provisioning.Level)
	}
}

func TestLoad_UnparseableLevelIsKept(t *testing.T) {
	t.Setenv("LEVEL", "not-a-number")
	cfg := loadLocal(t)

	if cfg.Provisioning.Level != "not-a-number" {
		t.Errorf("Level = %q, want raw value preserved", cfg.Provisioning.Level)
	}
}

func TestLoad_MissingTokenIsConfigurationError(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("RAILWAY_TOKEN", "")

	_, err := config.Load("local", config.WithDotEnv(""))
	if err == nil {
		t.Fatal("Load() returned nil error, want ConfigurationError")
	}

	var cerr *config.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v, want *config.ConfigurationError", err)
	}
	if cerr.Field != "provisioning.token" {
		t.Errorf("Field = %q, want \"provisioning.token\"", cerr.Field)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Chdir("../../..")
	// Registered with t.Setenv so the value is restored after the test;
	// the empty value is then removed so that .env can supply it.
	t.Setenv("RAILWAY_PROJECT_ID", "")
	if err := os.Unsetenv("RAILWAY_PROJECT_ID"); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}
	t.Setenv("RAILWAY_TOKEN", "from-env")

	dotEnv := filepath.Join(t.TempDir(), ".env")
	content := "RAILWAY_TOKEN=from-dotenv\nRAILWAY_PROJECT_ID=proj-dotenv\n"
	if err := os.WriteFile(dotEnv, []byte(content), 0o600); err != nil {
		t.Fatalf("writing .env: %v", err)
	}

	cfg, err := config.Load("local", config.WithDotEnv(dotEnv))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Provisioning.ProjectID != "proj-dotenv" {
		t.Errorf("ProjectID = %q, want value from .env", cfg.Provisioning.ProjectID)
	}
	if cfg.Provisioning.Token != "from-env" {
		t.Errorf("Token = %q, want real environment to win over .env", cfg.Provisioning.Token)
	}
}

func TestLoad_MissingDotEnvIgnored(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("RAILWAY_TOKEN", testToken)

	_, err := config.Load("local", config.WithDotEnv(filepath.Join(t.TempDir(), "absent.env")))
	if err != nil {
		t.Fatalf("Load error = %v, want nil for missing .env", err)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("RAILWAY_TOKEN", testToken)

	_, err := config.Load("nonexistent", config.WithDotEnv(""))
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_InvalidProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "a/b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_RequestTimeoutBelowWriteTimeout(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.RequestTimeout = cfg.Server.WriteTimeout

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for request_timeout >= write_timeout")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_RelativeBaseURL(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.BaseURL = "/graphql"

	var cerr *config.ConfigurationError
	if err := cfg.Validate(); !errors.As(err, &cerr) {
		t.Fatalf("Validate() = %v, want *ConfigurationError", err)
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_OptionalProvisioningFieldsMayBeEmpty(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Provisioning.ProjectID = ""
	cfg.Provisioning.EnvironmentID = ""
	cfg.Provisioning.RepoOwner = ""
	cfg.Provisioning.Level = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for empty optional fields: %v", err)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,

			RequestTimeout: 8 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "https://backboard.example.app/graphql/v2",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     1,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Provisioning: config.ProvisioningConfig{
			Token:           "token",
			ProjectID:       "proj",
			EnvironmentID:   "env",
			Level:           "0",
			MaxParallelRuns: 4,
			MaxBatch:        10,
		},
	}
}
