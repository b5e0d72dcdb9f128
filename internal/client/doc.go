// Package client builds the resty clients that talk to the shopping-list
// API.
//
// Layers, outermost first:
//   - Client: resty with sonic JSON, request middlewares, a token bucket
//     rate limiter and a circuit breaker
//   - the RoundTripper handed to New (for the session client, an
//     Authenticator from package transport)
//   - NewTransport: go-retryablehttp retrying connection errors and 5xx,
//     with every attempt instrumented
//
// Example:
//
//	base := client.NewTransport(opts, logger, metrics)
//	plain := client.New("auth", opts, base, logger, metrics)
//	session := client.New("api", opts, transport.NewAuthenticator(base, manager, paths, logger, metrics), logger, metrics)
package client
