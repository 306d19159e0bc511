package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultMaxParallelRuns = 4
	defaultMaxBatch        = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "120s",
		"server.idle_timeout":  "120s",

		"server.request_timeout": "90s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "https://backboard.railway.app/graphql/v2",
		"client.timeout":                         "30s",
		"client.user_agent":                      "replicator",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "200ms",
		"client.retry.max_interval":              "5s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "replicator",

		"provisioning.token":             "",
		"provisioning.project_id":        "",
		"provisioning.environment_id":    "",
		"provisioning.repo_owner":        "",
		"provisioning.repo_name":         "",
		"provisioning.branch":            "",
		"provisioning.level":             "0",
		"provisioning.compensate":        false,
		"provisioning.max_parallel_runs": defaultMaxParallelRuns,
		"provisioning.max_batch":         defaultMaxBatch,
	}
}

// platformEnv maps the variables the hosting platform (and a parent
// instance) sets on a service to their koanf keys. These take precedence
// over every other layer so that a provisioned child picks up the level
// and credential its parent injected.
var platformEnv = map[string]string{
	"RAILWAY_TOKEN":          "provisioning.token",
	"RAILWAY_PROJECT_ID":     "provisioning.project_id",
	"RAILWAY_ENVIRONMENT_ID": "provisioning.environment_id",
	"RAILWAY_GIT_REPO_OWNER": "provisioning.repo_owner",
	"RAILWAY_GIT_REPO_NAME":  "provisioning.repo_name",
	"RAILWAY_GIT_BRANCH":     "provisioning.branch",
	"LEVEL":                  "provisioning.level",
	"PORT":                   "server.port",
}
