package auth

import "time"

// Delayer emulates backend latency on session mutations. Once a delayed
// operation starts it always runs to completion; there is no abort path.
type Delayer interface {
	Delay()
}

// FixedDelay blocks the caller for a fixed duration.
type FixedDelay struct {
	D time.Duration
}

// Delay blocks for the configured duration.
func (f FixedDelay) Delay() {
	time.Sleep(f.D)
}

// NoDelay resolves immediately. Tests inject it to keep session flows instant.
type NoDelay struct{}

// Delay returns immediately.
func (NoDelay) Delay() {}
