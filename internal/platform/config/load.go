package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
	defaultDotEnv    = ".env"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir  string
	dotEnvPath string
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithDotEnv sets the path of the optional .env file. An empty path skips
// .env loading entirely. Defaults to ".env" in the working directory.
func WithDotEnv(path string) Option {
	return func(o *loadOptions) {
		o.dotEnvPath = path
	}
}

// Load reads configuration using a layered hierarchy (highest precedence last):
//
//  1. Built-in defaults
//  2. Base config ({configDir}/base.yaml)
//  3. Profile config ({configDir}/{profile}.yaml)
//  4. Environment variables (APP_ prefix), after merging an optional .env
//     file into the process environment without overriding it
//  5. Platform variables (RAILWAY_TOKEN, RAILWAY_PROJECT_ID, LEVEL, ...)
//
// Environment variable mapping uses key matching against loaded config keys
// to resolve ambiguity between nesting separators and field-internal underscores:
//
//	APP_SERVER_PORT                 -> server.port
//	APP_SERVER_READ_TIMEOUT         -> server.read_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS   -> client.retry.max_attempts
//	APP_PROVISIONING_PROJECT_ID     -> provisioning.project_id
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir, dotEnvPath: defaultDotEnv}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Layer 1: Built-in defaults.
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	// Layer 2: Base config (shared across all profiles).
	basePath := filepath.Join(o.configDir, "base.yaml")
	if err := k.Load(file.Provider(basePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading base config %s: %w", basePath, err)
	}

	// Layer 3: Profile-specific config.
	profilePath := filepath.Join(o.configDir, profile+".yaml")
	if err := k.Load(file.Provider(profilePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading profile config %s: %w", profilePath, err)
	}

	// Layer 4: .env file (optional) and APP_ environment variables.
	if err := loadDotEnv(o.dotEnvPath); err != nil {
		return nil, err
	}

	envLookup := buildEnvLookup(k.Keys())

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			key = strings.ToLower(key)

			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}

			// Fallback: simple underscore-to-dot replacement.
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Layer 5: Platform variables, matched by exact name.
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			koanfKey, ok := platformEnv[key]
			if !ok {
				return "", nil
			}
			return koanfKey, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading platform env vars: %w", err)
	}

	// Unmarshal into Config struct.
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Validate.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv merges the .env file at path into the process environment.
// Variables already set in the environment win. A missing file is not an
// error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// validateProfile checks that the profile name is safe and non-empty.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup creates a reverse mapping from env-style keys to koanf dotted keys.
// For each koanf key like "server.read_timeout", the env form "server_read_timeout"
// is computed by replacing dots with underscores.
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
