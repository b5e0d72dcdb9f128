/*
Package resilience provides the circuit breaker that guards calls to the
shopping-list API.

When the API keeps failing (connection errors, 5xx after transport retries)
the breaker opens and further calls fail fast with ErrCircuitOpen instead of
queueing behind timeouts. After a cooldown a limited number of probe calls
decide whether to close it again.

# Usage

	breaker := resilience.New("shoplist-api", resilience.Settings{
		HalfOpenProbes: 2,
		Cooldown:       30 * time.Second,
		ShouldTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	err := breaker.Do(func() error {
		resp, err := req.Get(url)
		...
	})

# States

	Closed --[ShouldTrip]-> Open --[Cooldown]-> Half-Open --[probes succeed]-> Closed
	                                               |
	                                          [failure]
	                                               v
	                                             Open
*/
package resilience
