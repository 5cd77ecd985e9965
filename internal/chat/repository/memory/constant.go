package memory

const (
	// DefaultMaxHistory bounds a session's stored history. Oldest turns are
	// dropped first once the bound is hit.
	DefaultMaxHistory = 50

	// DefaultMaxSessions caps how many sessions the store keeps before the
	// least recently used one is evicted.
	DefaultMaxSessions = 10000
)
