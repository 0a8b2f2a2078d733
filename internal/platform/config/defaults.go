package config

import "time"

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultDatabaseMaxOpenConns = 1
	defaultBatchMaxWorkers      = 4
)

// clientNames lists the downstream client blocks under "clients".
var clientNames = []string{"crm", "rewards", "marketing", "banking"}

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	d := map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"server.request_timeout": "8s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "account-action-service",

		"database.dsn":            "file:accounts.db?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		"database.max_open_conns": defaultDatabaseMaxOpenConns,
		"database.busy_timeout":   "5s",

		"batch.max_workers":   defaultBatchMaxWorkers,
		"batch.timeout":       "0s",
		"batch.audit_timeout": "5s",

		"events.kafka.enabled":       false,
		"events.kafka.topic":         "account-audit-events",
		"events.kafka.write_timeout": (10 * time.Second).String(),
	}

	for _, name := range clientNames {
		prefix := "clients." + name + "."
		d[prefix+"timeout"] = "30s"
		d[prefix+"retry.max_attempts"] = defaultRetryMaxAttempts
		d[prefix+"retry.initial_interval"] = "100ms"
		d[prefix+"retry.max_interval"] = "10s"
		d[prefix+"retry.multiplier"] = defaultRetryMultiplier
		d[prefix+"circuit_breaker.max_failures"] = defaultCircuitBreakerMaxFailures
		d[prefix+"circuit_breaker.timeout"] = "30s"
		d[prefix+"circuit_breaker.half_open_limit"] = defaultCircuitBreakerHalfOpen
		d[prefix+"rate_limit.requests_per_second"] = 0
		d[prefix+"rate_limit.burst_size"] = 0
	}

	return d
}
