/*
Package monitoring provides Prometheus metrics for the shoplist client.

# Overview

The client is a command line program, so metrics are mostly useful when the
packages are embedded in a longer running process (a sync daemon, a bot) or
when tests want to assert on what happened on the wire.

# Features

- Outbound request counts and latency (method, path, status)
- Token refresh attempts by outcome and refresh latency
- Requests re-sent after a refresh
- Repository call latency and results
- Circuit breaker state

# Usage

	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)

	// Count everything that reaches the transport
	transport := monitoring.InstrumentRoundTripper(metrics, base)

	// Time a repository call
	timer := monitoring.NewTimer(metrics, "shopping", "create")
	list, err := create(ctx)
	timer.Stop(err)

A nil *Metrics is accepted everywhere and records nothing.
*/
package monitoring
