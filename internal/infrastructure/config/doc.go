// Package config provides 12-factor configuration for the shoplist client.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override individual values.
//
// Configuration Sections:
//   - API: base URL, timeout and user agent of the remote service
//   - Auth: request paths excluded from refresh-and-retry
//   - Resilience: transport retries, client rate limit, circuit breaker
//   - Store: token/preferences backend (file, redis, memory)
//   - Logging: log level and output format
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("talking to %s\n", cfg.API.BaseURL)
//
// Environment Variables:
//   - SHOPLIST_API_URL, SHOPLIST_API_TIMEOUT, SHOPLIST_USER_AGENT
//   - SHOPLIST_AUTH_EXCLUDED_PATHS (comma separated)
//   - SHOPLIST_RETRY_MAX, SHOPLIST_RETRY_WAIT_MIN, SHOPLIST_RETRY_WAIT_MAX
//   - SHOPLIST_RATE_LIMIT_RPS, SHOPLIST_BREAKER_ENABLED
//   - SHOPLIST_STORE, SHOPLIST_STORE_PATH, SHOPLIST_REDIS_ADDR, SHOPLIST_REDIS_PREFIX
//   - LOG_LEVEL, LOG_DEV
package config
